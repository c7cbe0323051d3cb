package planner

import (
	"fmt"
	"math"
)

// Visit is one place placed into a block, with the outbound transport leg
// to the next visit when one exists.
type Visit struct {
	Place      Place
	Arrival    Clock
	Departure  Clock
	VisitHours float64
	Score      float64
	ToNext     *Leg
}

// BlockResult is the outcome of scheduling a single block. A block that
// could not be filled reports Success=false with a reason; it never
// surfaces as an error because the rest of the day must go on.
type BlockResult struct {
	Block       TimeBlock
	Visits      []Visit
	TotalScore  float64
	TravelHours float64
	VisitHours  float64
	CostUSD     float64
	Success     bool
	Reason      string
}

// BlockScheduler assigns places to individual time blocks.
type BlockScheduler struct {
	graph *Graph
	cfg   Config
}

// NewBlockScheduler builds a scheduler over the given distance graph.
func NewBlockScheduler(graph *Graph, cfg Config) *BlockScheduler {
	return &BlockScheduler{graph: graph, cfg: cfg}
}

type scheduleFunc func(*BlockScheduler, TimeBlock, []Place, *Place, ScoreMap) BlockResult

// Strategy table keyed by block class; keeps kind dispatch in one place
// as block kinds grow.
var strategies = map[BlockClass]scheduleFunc{
	ClassMeal:     (*BlockScheduler).scheduleMeal,
	ClassActivity: (*BlockScheduler).scheduleActivity,
	ClassRest:     (*BlockScheduler).scheduleHotel,
}

// Schedule fills one block from the candidate pool, starting travel
// calculations from prev when it is known.
func (s *BlockScheduler) Schedule(block TimeBlock, candidates []Place, prev *Place, scores ScoreMap) BlockResult {
	if len(candidates) == 0 {
		return failedBlock(block, "No candidates available")
	}
	return strategies[block.Kind.Class()](s, block, candidates, prev, scores)
}

func failedBlock(block TimeBlock, reason string) BlockResult {
	return BlockResult{Block: block, Success: false, Reason: reason}
}

type scoredPlace struct {
	place Place
	score float64
}

func rankByScore(candidates []Place, scores ScoreMap) []scoredPlace {
	ranked := make([]scoredPlace, 0, len(candidates))
	for _, p := range candidates {
		ranked = append(ranked, scoredPlace{place: p, score: scoreOf(scores, p)})
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0; j-- {
			a, b := ranked[j-1], ranked[j]
			if b.score > a.score || (b.score == a.score && b.place.ID < a.place.ID) {
				ranked[j-1], ranked[j] = b, a
			} else {
				break
			}
		}
	}
	return ranked
}

// Meals pick a single venue. The shortlist gets a full travel evaluation:
// venues more than 18 minutes away take a linear score penalty.
func (s *BlockScheduler) scheduleMeal(block TimeBlock, candidates []Place, prev *Place, scores ScoreMap) BlockResult {
	ranked := rankByScore(candidates, scores)
	shortlist := ranked
	if len(shortlist) > s.cfg.MealShortlist {
		shortlist = shortlist[:s.cfg.MealShortlist]
	}

	var best *scoredPlace
	var bestLeg *Leg
	bestScore := 0.0

	for i := range shortlist {
		cand := shortlist[i]
		var leg *Leg
		penalty := 0.0

		if prev != nil {
			distance := s.graph.ShortestDistance(prev.ID, cand.place.ID)
			l := NewLeg(distance, 0.5)
			leg = &l
			if l.TravelHours > 0.3 {
				penalty = 0.1 * l.TravelHours
			}
		}

		if adjusted := cand.score - penalty; adjusted > bestScore {
			bestScore = adjusted
			best = &shortlist[i]
			bestLeg = leg
		}
	}

	if best == nil {
		best = &ranked[0]
		bestScore = ranked[0].score
		bestLeg = nil
	}

	visitHours := VisitDuration(block.Kind)
	visit := Visit{
		Place:      best.place,
		Arrival:    block.Start,
		Departure:  block.Start.Add(visitHours),
		VisitHours: visitHours,
		Score:      bestScore,
	}

	travelHours, cost := 0.0, 0.0
	if bestLeg != nil {
		travelHours = bestLeg.TravelHours
		cost = bestLeg.CostUSD
	}

	return BlockResult{
		Block:       block,
		Visits:      []Visit{visit},
		TotalScore:  bestScore,
		TravelHours: travelHours,
		VisitHours:  visitHours,
		CostUSD:     cost,
		Success:     true,
		Reason:      fmt.Sprintf("Selected %s (score: %.3f)", best.place.Name, bestScore),
	}
}

// Hotels get a proximity bonus instead of a travel penalty: staying near
// the last activity is desirable and the bonus decays to zero at 5km.
func (s *BlockScheduler) scheduleHotel(block TimeBlock, candidates []Place, prev *Place, scores ScoreMap) BlockResult {
	ranked := rankByScore(candidates, scores)

	best := ranked[0]
	bestScore := math.Inf(-1)
	for _, cand := range ranked {
		score := cand.score
		if prev != nil {
			distance := s.graph.ShortestDistance(prev.ID, cand.place.ID)
			score += math.Max(0, 0.2*(1-distance/5.0))
		}
		if score > bestScore {
			bestScore = score
			best = cand
		}
	}

	visitHours := VisitDuration(block.Kind)
	visit := Visit{
		Place:      best.place,
		Arrival:    block.Start,
		Departure:  block.End,
		VisitHours: visitHours,
		Score:      bestScore,
	}

	return BlockResult{
		Block:      block,
		Visits:     []Visit{visit},
		TotalScore: bestScore,
		VisitHours: visitHours,
		Success:    true,
		Reason:     fmt.Sprintf("Selected %s (score: %.3f)", best.place.Name, bestScore),
	}
}

// Activity blocks may need several places. Every combination and ordering
// of the top-ranked candidates is simulated against the block's time
// budget; the feasible sequence with the highest total score wins. When
// nothing fits, simple back-to-back packing keeps the block non-empty.
func (s *BlockScheduler) scheduleActivity(block TimeBlock, candidates []Place, prev *Place, scores ScoreMap) BlockResult {
	ranked := rankByScore(candidates, scores)
	if len(ranked) > s.cfg.MaxComboCandidates {
		ranked = ranked[:s.cfg.MaxComboCandidates]
	}

	visitHours := VisitDuration(block.Kind)
	availableHours := block.AvailableHours()

	slots := block.Slots
	if slots > s.cfg.MaxSlotsPerBlock {
		slots = s.cfg.MaxSlotsPerBlock
	}

	if slots == 1 {
		top := ranked[0]
		visit := Visit{
			Place:      top.place,
			Arrival:    block.Start,
			Departure:  block.Start.Add(visitHours),
			VisitHours: visitHours,
			Score:      top.score,
		}
		return BlockResult{
			Block:      block,
			Visits:     []Visit{visit},
			TotalScore: top.score,
			VisitHours: visitHours,
			Success:    true,
			Reason:     fmt.Sprintf("Selected %s", top.place.Name),
		}
	}

	var best *BlockResult
	forEachCombination(len(ranked), slots, func(combo []int) {
		forEachPermutation(combo, func(order []int) {
			seq := make([]Place, len(order))
			for i, idx := range order {
				seq[i] = ranked[idx].place
			}
			result := s.evaluateSequence(seq, block, prev, visitHours, availableHours, scores)
			if result != nil && (best == nil || result.TotalScore > best.TotalScore) {
				best = result
			}
		})
	})
	if best != nil {
		return *best
	}

	if slots > len(ranked) {
		slots = len(ranked)
	}
	fallback := make([]Place, 0, slots)
	for _, cand := range ranked[:slots] {
		fallback = append(fallback, cand.place)
	}
	return s.simplePack(fallback, block, visitHours, scores)
}

// evaluateSequence walks an ordered sequence from the previous location,
// accumulating travel and visit time on a 48-hour axis. It returns nil
// when the sequence overruns the block.
func (s *BlockScheduler) evaluateSequence(
	seq []Place,
	block TimeBlock,
	prev *Place,
	visitHours, availableHours float64,
	scores ScoreMap,
) *BlockResult {
	start := float64(int(block.Start))
	end := float64(int(block.End))
	if end < start {
		end += minutesPerDay
	}

	cursor := start
	currentID := ""
	if prev != nil {
		currentID = prev.ID
	}

	visits := make([]Visit, 0, len(seq))
	totalTravel, totalCost, totalScore := 0.0, 0.0, 0.0

	for i, p := range seq {
		if currentID != "" {
			distance := s.graph.ShortestDistance(currentID, p.ID)
			leg := NewLeg(distance, 0)
			cursor += leg.TravelHours * 60
			totalTravel += leg.TravelHours
			totalCost += leg.CostUSD
		}

		arrival := clockOnAxis(cursor)
		cursor += visitHours * 60
		departure := clockOnAxis(cursor)

		if cursor > end {
			return nil
		}

		score := scoreOf(scores, p)
		totalScore += score

		visit := Visit{
			Place:      p,
			Arrival:    arrival,
			Departure:  departure,
			VisitHours: visitHours,
			Score:      score,
		}
		if i < len(seq)-1 {
			distance := s.graph.ShortestDistance(p.ID, seq[i+1].ID)
			leg := NewLeg(distance, 0)
			visit.ToNext = &leg
		}
		visits = append(visits, visit)
		currentID = p.ID
	}

	if totalTravel+visitHours*float64(len(seq)) > availableHours {
		return nil
	}

	return &BlockResult{
		Block:       block,
		Visits:      visits,
		TotalScore:  totalScore,
		TravelHours: totalTravel,
		VisitHours:  visitHours * float64(len(seq)),
		CostUSD:     totalCost,
		Success:     true,
		Reason:      fmt.Sprintf("Optimized %d activities", len(seq)),
	}
}

// simplePack schedules places back to back from the block start with a
// fixed gap, ignoring travel feasibility. Last-resort behavior.
func (s *BlockScheduler) simplePack(seq []Place, block TimeBlock, visitHours float64, scores ScoreMap) BlockResult {
	cursor := float64(int(block.Start))
	totalScore := 0.0

	visits := make([]Visit, 0, len(seq))
	for _, p := range seq {
		score := scoreOf(scores, p)
		totalScore += score

		visits = append(visits, Visit{
			Place:      p,
			Arrival:    clockOnAxis(cursor),
			Departure:  clockOnAxis(cursor + visitHours*60),
			VisitHours: visitHours,
			Score:      score,
		})
		cursor += (visitHours + s.cfg.FallbackGapHours) * 60
	}

	return BlockResult{
		Block:      block,
		Visits:     visits,
		TotalScore: totalScore,
		VisitHours: visitHours * float64(len(seq)),
		Success:    true,
		Reason:     "Simple schedule (fallback)",
	}
}

func clockOnAxis(minutes float64) Clock {
	m := int(minutes+0.5) % minutesPerDay
	return Clock(m)
}

// forEachCombination yields every k-subset of [0, n) as index slices.
func forEachCombination(n, k int, fn func([]int)) {
	if k <= 0 || k > n {
		return
	}
	combo := make([]int, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			fn(combo)
			return
		}
		for i := start; i < n; i++ {
			combo[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

// forEachPermutation yields every ordering of the given indices.
func forEachPermutation(items []int, fn func([]int)) {
	perm := append([]int(nil), items...)
	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(perm) {
			fn(perm)
			return
		}
		for i := depth; i < len(perm); i++ {
			perm[depth], perm[i] = perm[i], perm[depth]
			walk(depth + 1)
			perm[depth], perm[i] = perm[i], perm[depth]
		}
	}
	walk(0)
}
