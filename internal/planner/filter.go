package planner

import (
	"sort"
	"strings"
	"time"
)

// Filter narrows the full place set down to block-appropriate candidates.
type Filter struct {
	cfg Config
}

// NewFilter builds a Filter with the given tuning.
func NewFilter(cfg Config) Filter { return Filter{cfg: cfg} }

// ByTypes keeps places whose tags intersect the allowed type set.
func (f Filter) ByTypes(places []Place, allowed []string) []Place {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, t := range allowed {
		allowedSet[strings.ToLower(t)] = struct{}{}
	}

	var out []Place
	for _, p := range places {
		for _, t := range p.Types {
			if _, ok := allowedSet[strings.ToLower(t)]; ok {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// OpenDuring reports whether the place's opening-hours coverage of the
// block on the given weekday reaches the required fraction.
func (f Filter) OpenDuring(p Place, block TimeBlock, day time.Weekday, required float64) bool {
	return Coverage(p.Hours, block, day) >= required
}

// ByBlock applies the category filter and then the opening-hours filter.
// Hotels skip the hours check entirely; breakfast uses the relaxed
// threshold because many venues open just before the window closes.
func (f Filter) ByBlock(places []Place, block TimeBlock, day time.Weekday) []Place {
	typed := f.ByTypes(places, block.AllowedTypes())

	if block.Kind.Class() == ClassRest {
		return typed
	}

	required := f.cfg.RequiredCoverage
	if block.Kind == KindBreakfast {
		required = f.cfg.BreakfastCoverage
	}

	var out []Place
	for _, p := range typed {
		if f.OpenDuring(p, block, day, required) {
			out = append(out, p)
		}
	}
	return out
}

// ByInterests keeps places rated at or above minRating whose name or
// tags match at least one interest keyword. Places rated 4.5 or higher
// pass without a keyword match.
func (f Filter) ByInterests(places []Place, interests []string, minRating float64) []Place {
	keywords := make([]string, 0, len(interests))
	for _, kw := range interests {
		keywords = append(keywords, strings.ToLower(kw))
	}

	var out []Place
	for _, p := range places {
		if p.Rating < minRating {
			continue
		}
		if len(keywords) > 0 && !matchesAnyKeyword(p, keywords) && p.Rating < 4.5 {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesAnyKeyword(p Place, keywords []string) bool {
	text := strings.ToLower(p.Name) + " " + strings.ToLower(strings.Join(p.Types, " "))
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Candidates assembles the candidate pool for a block: block filters,
// interest/rating filter, rating-descending sort, top-K truncation.
func (f Filter) Candidates(all []Place, block TimeBlock, day time.Weekday, interests []string) []Place {
	candidates := f.ByBlock(all, block, day)

	if len(interests) > 0 {
		candidates = f.ByInterests(candidates, interests, f.cfg.MinRating)
	} else {
		var rated []Place
		for _, p := range candidates {
			if p.Rating >= f.cfg.MinRating {
				rated = append(rated, p)
			}
		}
		candidates = rated
	}

	sortByRating(candidates)
	if f.cfg.TopK > 0 && len(candidates) > f.cfg.TopK {
		candidates = candidates[:f.cfg.TopK]
	}
	return candidates
}

// BreakfastFallback rebuilds a breakfast pool without the opening-hours
// check so breakfast never comes back empty while eligible venues exist.
func (f Filter) BreakfastFallback(all []Place, block TimeBlock) []Place {
	candidates := f.ByTypes(all, block.AllowedTypes())

	var rated []Place
	for _, p := range candidates {
		if p.Rating >= f.cfg.MinRating {
			rated = append(rated, p)
		}
	}

	sortByRating(rated)
	if f.cfg.TopK > 0 && len(rated) > f.cfg.TopK {
		rated = rated[:f.cfg.TopK]
	}
	return rated
}

func sortByRating(places []Place) {
	sort.SliceStable(places, func(i, j int) bool {
		if places[i].Rating != places[j].Rating {
			return places[i].Rating > places[j].Rating
		}
		return places[i].ID < places[j].ID
	})
}
