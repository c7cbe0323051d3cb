package planner

import (
	"fmt"
	"time"
)

// DayPlan is one fully scheduled day: the seven block results in order.
type DayPlan struct {
	Day    int
	Date   time.Time
	Blocks []BlockResult
}

// AllVisits returns pointers to every visit of the day in schedule order
// so the optimize pass can fill transport legs in place.
func (d *DayPlan) AllVisits() []*Visit {
	var out []*Visit
	for bi := range d.Blocks {
		for vi := range d.Blocks[bi].Visits {
			out = append(out, &d.Blocks[bi].Visits[vi])
		}
	}
	return out
}

// TotalCost sums transport fares and average venue spend for the day.
func (d *DayPlan) TotalCost() float64 {
	total := 0.0
	for _, b := range d.Blocks {
		if !b.Success {
			continue
		}
		total += b.CostUSD
		for _, v := range b.Visits {
			total += v.Place.AvgPrice
			if v.ToNext != nil {
				total += v.ToNext.CostUSD
			}
		}
	}
	return total
}

// TotalScore sums the block scores of the day.
func (d *DayPlan) TotalScore() float64 {
	total := 0.0
	for _, b := range d.Blocks {
		if b.Success {
			total += b.TotalScore
		}
	}
	return total
}

// PlaceCount is the number of scheduled visits in the day.
func (d *DayPlan) PlaceCount() int {
	n := 0
	for _, b := range d.Blocks {
		n += len(b.Visits)
	}
	return n
}

// PreferenceSummary echoes the inputs the plan was built from.
type PreferenceSummary struct {
	City          string
	Days          int
	Interests     []string
	Budget        string
	TravelParty   string
	Accommodation string
}

// TourPlan is a complete multi-day itinerary.
type TourPlan struct {
	City        string
	StartDate   time.Time
	Days        []DayPlan
	Preferences PreferenceSummary
}

// TotalCost sums every day's cost.
func (t *TourPlan) TotalCost() float64 {
	total := 0.0
	for i := range t.Days {
		total += t.Days[i].TotalCost()
	}
	return total
}

// TotalPlaces counts every scheduled visit across the trip.
func (t *TourPlan) TotalPlaces() int {
	n := 0
	for i := range t.Days {
		n += t.Days[i].PlaceCount()
	}
	return n
}

// TourBuilder assembles day plans over a fixed place set. One builder
// serves one planning request; it holds no mutable state across Build
// calls, so reuse within a request is safe.
type TourBuilder struct {
	places    []Place
	graph     *Graph
	scheduler *BlockScheduler
	filter    Filter
	schedule  []TimeBlock
	cfg       Config
}

// NewTourBuilder prepares the distance graph and scheduler for the given
// place pool.
func NewTourBuilder(places []Place, cfg Config) *TourBuilder {
	graph := NewGraph(places)
	return &TourBuilder{
		places:    places,
		graph:     graph,
		scheduler: NewBlockScheduler(graph, cfg),
		filter:    NewFilter(cfg),
		schedule:  DailySchedule(),
		cfg:       cfg,
	}
}

// Graph exposes the underlying distance graph for route inspection.
func (t *TourBuilder) Graph() *Graph { return t.graph }

// Build plans numDays consecutive days starting at startDate. Scores come
// from the recommendation blend; a nil map falls back to place ratings.
//
// Within a day, no place is visited twice except the hotel, which also
// carries over as the next morning's start location.
func (t *TourBuilder) Build(pref UserPreference, startDate time.Time, scores ScoreMap) (*TourPlan, error) {
	numDays := pref.TripDays
	if numDays < 1 {
		return nil, fmt.Errorf("invalid trip length: %d days", numDays)
	}

	plan := &TourPlan{
		City:      pref.DestinationCity,
		StartDate: startDate,
		Preferences: PreferenceSummary{
			City:          pref.DestinationCity,
			Days:          numDays,
			Interests:     pref.Interests,
			Budget:        pref.Budget,
			TravelParty:   pref.TravelParty,
			Accommodation: pref.Accommodation,
		},
	}

	var hotel *Place
	for day := 0; day < numDays; day++ {
		date := startDate.AddDate(0, 0, day)
		dayPlan := t.buildDay(day+1, date, pref.Interests, hotel, scores)
		plan.Days = append(plan.Days, dayPlan)

		if h := lastHotel(dayPlan); h != nil {
			hotel = h
		}
	}
	return plan, nil
}

func (t *TourBuilder) buildDay(dayNum int, date time.Time, interests []string, startFrom *Place, scores ScoreMap) DayPlan {
	day := DayPlan{Day: dayNum, Date: date}
	weekday := date.Weekday()

	current := startFrom
	visited := make(map[string]struct{})

	for _, block := range t.schedule {
		candidates := t.filter.Candidates(t.places, block, weekday, interests)
		if block.Kind == KindBreakfast && len(candidates) == 0 {
			candidates = t.filter.BreakfastFallback(t.places, block)
		}
		if block.Kind.Class() == ClassActivity {
			candidates = excludeHotels(candidates)
		}
		if block.Kind.Class() != ClassRest {
			candidates = excludeVisited(candidates, visited)
		}

		result := t.scheduler.Schedule(block, candidates, current, scores)
		day.Blocks = append(day.Blocks, result)

		if !result.Success || len(result.Visits) == 0 {
			continue
		}
		for _, v := range result.Visits {
			if !IsHotel(v.Place) {
				visited[v.Place.ID] = struct{}{}
			}
		}
		last := result.Visits[len(result.Visits)-1].Place
		current = &last
	}
	return day
}

func lastHotel(day DayPlan) *Place {
	for i := len(day.Blocks) - 1; i >= 0; i-- {
		b := day.Blocks[i]
		if b.Block.Kind.Class() != ClassRest || !b.Success || len(b.Visits) == 0 {
			continue
		}
		p := b.Visits[0].Place
		return &p
	}
	return nil
}

func excludeHotels(places []Place) []Place {
	var out []Place
	for _, p := range places {
		if !IsHotel(p) {
			out = append(out, p)
		}
	}
	return out
}

func excludeVisited(places []Place, visited map[string]struct{}) []Place {
	var out []Place
	for _, p := range places {
		if _, ok := visited[p.ID]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// Optimize fills in any missing transport legs between consecutive visits,
// including legs that cross block boundaries. Block scheduling only
// resolves legs inside a block, so this pass completes the travel chain
// for the whole day.
func (t *TourBuilder) Optimize(plan *TourPlan) {
	for di := range plan.Days {
		visits := plan.Days[di].AllVisits()
		for i := 0; i < len(visits)-1; i++ {
			if visits[i].ToNext != nil {
				continue
			}
			from, to := visits[i].Place, visits[i+1].Place
			if from.ID == to.ID {
				continue
			}
			distance := t.graph.ShortestDistance(from.ID, to.ID)
			leg := NewLeg(distance, 0)
			visits[i].ToNext = &leg
		}
	}
}
