package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(places []Place) *BlockScheduler {
	return NewBlockScheduler(NewGraph(places), DefaultConfig())
}

func TestScheduleEmptyCandidates(t *testing.T) {
	s := newTestScheduler(nil)
	result := s.Schedule(blockByKind(KindLunch), nil, nil, nil)

	assert.False(t, result.Success)
	assert.Equal(t, "No candidates available", result.Reason)
	assert.Empty(t, result.Visits)
}

func TestScheduleMealPicksHighestScore(t *testing.T) {
	r1 := restaurant("r1", 4.0, 21.000, 105.800)
	r2 := restaurant("r2", 4.0, 21.001, 105.800)
	s := newTestScheduler([]Place{r1, r2})

	block := blockByKind(KindLunch)
	scores := ScoreMap{"r1": 0.6, "r2": 0.9}

	result := s.Schedule(block, []Place{r1, r2}, nil, scores)
	require.True(t, result.Success)
	require.Len(t, result.Visits, 1)

	v := result.Visits[0]
	assert.Equal(t, "r2", v.Place.ID)
	assert.Equal(t, block.Start, v.Arrival)
	assert.Equal(t, block.Start.Add(1.0), v.Departure)
	assert.InDelta(t, 0.9, result.TotalScore, 1e-9)
}

func TestScheduleMealTravelPenalty(t *testing.T) {
	// 0.18 degrees of latitude is about 20 km: too far for the 0.5h meal
	// travel budget, so the distant venue eats a taxi-time penalty and the
	// nearby, slightly lower-scored one wins.
	prev := attraction("start", 4.0, 21.000, 105.800)
	far := restaurant("far", 4.0, 21.180, 105.800)
	near := restaurant("near", 4.0, 21.0045, 105.800)
	s := newTestScheduler([]Place{prev, far, near})

	scores := ScoreMap{"far": 0.9, "near": 0.85}
	result := s.Schedule(blockByKind(KindLunch), []Place{far, near}, &prev, scores)

	require.True(t, result.Success)
	assert.Equal(t, "near", result.Visits[0].Place.ID)
}

func TestScheduleHotelProximityBonus(t *testing.T) {
	// The nearer hotel gains up to +0.2, outweighing a small score gap.
	prev := attraction("start", 4.0, 21.000, 105.800)
	farHotel := hotel("far", 4.0, 21.090, 105.800) // ~10 km, no bonus
	nearHotel := hotel("near", 4.0, 21.001, 105.800)
	s := newTestScheduler([]Place{prev, farHotel, nearHotel})

	block := blockByKind(KindHotel)
	scores := ScoreMap{"far": 0.8, "near": 0.75}

	result := s.Schedule(block, []Place{farHotel, nearHotel}, &prev, scores)
	require.True(t, result.Success)

	v := result.Visits[0]
	assert.Equal(t, "near", v.Place.ID)
	assert.Equal(t, block.Start, v.Arrival)
	assert.Equal(t, block.End, v.Departure)
}

func TestScheduleActivityPicksBestFeasiblePair(t *testing.T) {
	// Five co-located attractions, two slots, one-hour visits inside a
	// three-hour window: the two highest-scored places must be chosen.
	places := []Place{
		attraction("a1", 4.0, 21.0000, 105.800),
		attraction("a2", 4.0, 21.0005, 105.800),
		attraction("a3", 4.0, 21.0010, 105.800),
		attraction("a4", 4.0, 21.0015, 105.800),
		attraction("a5", 4.0, 21.0020, 105.800),
	}
	scores := ScoreMap{"a1": 0.9, "a2": 0.8, "a3": 0.7, "a4": 0.6, "a5": 0.5}
	s := newTestScheduler(places)

	result := s.Schedule(blockByKind(KindMorning), places, nil, scores)
	require.True(t, result.Success)
	require.Len(t, result.Visits, 2)

	ids := []string{result.Visits[0].Place.ID, result.Visits[1].Place.ID}
	assert.ElementsMatch(t, []string{"a1", "a2"}, ids)
	assert.InDelta(t, 1.7, result.TotalScore, 1e-9)
	assert.NotNil(t, result.Visits[0].ToNext)
	assert.Nil(t, result.Visits[1].ToNext)
}

func TestScheduleActivityFallsBackWhenNothingFits(t *testing.T) {
	// Two attractions over a thousand kilometers apart: no two-visit
	// sequence fits the morning block, so the simple packer takes over.
	a := attraction("a", 4.0, 21.0, 105.8)
	b := attraction("b", 4.0, 31.0, 115.8)
	s := newTestScheduler([]Place{a, b})

	block := blockByKind(KindMorning)
	result := s.Schedule(block, []Place{a, b}, nil, ScoreMap{"a": 0.9, "b": 0.8})

	require.True(t, result.Success)
	assert.Equal(t, "Simple schedule (fallback)", result.Reason)
	require.Len(t, result.Visits, 2)
	assert.Equal(t, block.Start, result.Visits[0].Arrival)
	// One-hour visit plus the half-hour fallback gap.
	assert.Equal(t, block.Start.Add(1.5), result.Visits[1].Arrival)
}

func TestScheduleActivitySingleSlot(t *testing.T) {
	places := []Place{
		attraction("a1", 4.0, 21.000, 105.800),
		attraction("a2", 4.0, 21.001, 105.800),
	}
	s := newTestScheduler(places)

	block := blockByKind(KindEvening)
	result := s.Schedule(block, places, nil, ScoreMap{"a1": 0.6, "a2": 0.8})

	require.True(t, result.Success)
	require.Len(t, result.Visits, 1)
	assert.Equal(t, "a2", result.Visits[0].Place.ID)
}
