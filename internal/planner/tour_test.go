package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hanoiTestSet() []Place {
	return []Place{
		cafe("c1", 4.6, 21.0000, 105.800),
		cafe("c2", 4.4, 21.0010, 105.800),
		restaurant("r1", 4.7, 21.0020, 105.800),
		restaurant("r2", 4.5, 21.0030, 105.800),
		attraction("a1", 4.8, 21.0040, 105.800),
		attraction("a2", 4.7, 21.0050, 105.800),
		attraction("a3", 4.6, 21.0060, 105.800),
		attraction("a4", 4.5, 21.0070, 105.800),
		attraction("a5", 4.4, 21.0080, 105.800),
		attraction("a6", 4.3, 21.0090, 105.800),
		attraction("a7", 4.2, 21.0100, 105.800),
		hotel("h1", 4.5, 21.0015, 105.800),
	}
}

func hanoiPreference(days int) UserPreference {
	return UserPreference{
		UserID:          "u1",
		DestinationCity: "Hanoi",
		TripDays:        days,
		Budget:          "medium",
	}
}

func TestBuildFullTour(t *testing.T) {
	builder := NewTourBuilder(hanoiTestSet(), DefaultConfig())
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	plan, err := builder.Build(hanoiPreference(2), start, nil)
	require.NoError(t, err)
	require.Len(t, plan.Days, 2)

	schedule := DailySchedule()
	for _, day := range plan.Days {
		require.Len(t, day.Blocks, ScheduleLength)
		for i, b := range day.Blocks {
			assert.Equal(t, schedule[i].Kind, b.Block.Kind)
			assert.True(t, b.Success, "block %s day %d: %s", b.Block.Kind, day.Day, b.Reason)
		}
	}

	assert.Equal(t, start, plan.Days[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 1), plan.Days[1].Date)
	assert.Equal(t, "Hanoi", plan.City)
}

func TestBuildNoRepeatsWithinDay(t *testing.T) {
	builder := NewTourBuilder(hanoiTestSet(), DefaultConfig())
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	plan, err := builder.Build(hanoiPreference(1), start, nil)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, b := range plan.Days[0].Blocks {
		for _, v := range b.Visits {
			if IsHotel(v.Place) {
				continue
			}
			seen[v.Place.ID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "place %s scheduled %d times", id, n)
	}
}

func TestBuildMealTimesMatchBlockWindows(t *testing.T) {
	builder := NewTourBuilder(hanoiTestSet(), DefaultConfig())
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	plan, err := builder.Build(hanoiPreference(1), start, nil)
	require.NoError(t, err)

	for _, b := range plan.Days[0].Blocks {
		if b.Block.Kind.Class() != ClassMeal {
			continue
		}
		require.Len(t, b.Visits, 1)
		assert.Equal(t, b.Block.Start, b.Visits[0].Arrival)
	}
}

func TestBuildHotelCarriesAcrossDays(t *testing.T) {
	builder := NewTourBuilder(hanoiTestSet(), DefaultConfig())
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	plan, err := builder.Build(hanoiPreference(3), start, nil)
	require.NoError(t, err)

	var hotels []string
	for _, day := range plan.Days {
		last := day.Blocks[len(day.Blocks)-1]
		require.Equal(t, KindHotel, last.Block.Kind)
		require.True(t, last.Success)
		hotels = append(hotels, last.Visits[0].Place.ID)
	}
	for _, id := range hotels[1:] {
		assert.Equal(t, hotels[0], id)
	}
}

func TestBuildRejectsInvalidTripLength(t *testing.T) {
	builder := NewTourBuilder(hanoiTestSet(), DefaultConfig())
	_, err := builder.Build(hanoiPreference(0), time.Now(), nil)
	assert.Error(t, err)
}

func TestOptimizeFillsTransportLegs(t *testing.T) {
	builder := NewTourBuilder(hanoiTestSet(), DefaultConfig())
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	plan, err := builder.Build(hanoiPreference(1), start, nil)
	require.NoError(t, err)

	builder.Optimize(plan)

	visits := plan.Days[0].AllVisits()
	require.NotEmpty(t, visits)
	for i := 0; i < len(visits)-1; i++ {
		if visits[i].Place.ID == visits[i+1].Place.ID {
			continue
		}
		assert.NotNil(t, visits[i].ToNext, "missing leg after %s", visits[i].Place.ID)
	}
	assert.Nil(t, visits[len(visits)-1].ToNext)
}

func TestTourPlanTotals(t *testing.T) {
	builder := NewTourBuilder(hanoiTestSet(), DefaultConfig())
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	plan, err := builder.Build(hanoiPreference(2), start, nil)
	require.NoError(t, err)

	total := 0
	for i := range plan.Days {
		total += plan.Days[i].PlaceCount()
	}
	assert.Equal(t, total, plan.TotalPlaces())
	assert.GreaterOrEqual(t, plan.TotalCost(), 0.0)
}
