package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoebe497/Travel-Recommendation/internal/models/db_models"
	"github.com/phoebe497/Travel-Recommendation/internal/models/request_models"
	"github.com/phoebe497/Travel-Recommendation/internal/planner"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

type fakePlaceRepo struct {
	rows []db_models.Place
}

func (f *fakePlaceRepo) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakePlaceRepo) ListByCity(ctx context.Context, city string) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, row := range f.rows {
		if strings.EqualFold(row.City, city) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Place, error) {
	return f.rows, nil
}

type fakeContentProvider struct {
	scores planner.ScoreMap
}

func (f *fakeContentProvider) Scores(ctx context.Context, pref planner.UserPreference, places []planner.Place) (planner.ScoreMap, error) {
	return f.scores, nil
}

func allWeekHoursJSON(openHour, closeHour int) string {
	var b strings.Builder
	b.WriteString(`{"periods":[`)
	for d := 0; d < 7; d++ {
		if d > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"open":{"day":%d,"hour":%d,"minute":0},"close":{"day":%d,"hour":%d,"minute":0}}`, d, openHour, d, closeHour)
	}
	b.WriteString("]}")
	return b.String()
}

func dbPlace(id string, types []string, rating, lat float64, priceLevel int) db_models.Place {
	return db_models.Place{
		ID:           id,
		Name:         "Place " + id,
		City:         "Hanoi",
		Types:        pq.StringArray(types),
		Rating:       rating,
		Latitude:     lat,
		Longitude:    105.8,
		PriceLevel:   priceLevel,
		AvgPrice:     10,
		OpeningHours: allWeekHoursJSON(6, 23),
	}
}

func hanoiRows() []db_models.Place {
	return []db_models.Place{
		dbPlace("c1", []string{"cafe"}, 4.6, 21.0000, 1),
		dbPlace("c2", []string{"cafe"}, 4.4, 21.0010, 1),
		dbPlace("r1", []string{"restaurant"}, 4.7, 21.0020, 1),
		dbPlace("r2", []string{"restaurant"}, 4.5, 21.0030, 1),
		dbPlace("a1", []string{"tourist_attraction"}, 4.8, 21.0040, 0),
		dbPlace("a2", []string{"tourist_attraction"}, 4.7, 21.0050, 0),
		dbPlace("a3", []string{"tourist_attraction"}, 4.6, 21.0060, 0),
		dbPlace("a4", []string{"tourist_attraction"}, 4.5, 21.0070, 0),
		dbPlace("a5", []string{"tourist_attraction"}, 4.4, 21.0080, 0),
		dbPlace("a6", []string{"tourist_attraction"}, 4.3, 21.0090, 0),
		dbPlace("a7", []string{"tourist_attraction"}, 4.2, 21.0100, 0),
		dbPlace("h1", []string{"lodging"}, 4.5, 21.0015, 1),
	}
}

func TestGenerateItineraryUnknownCity(t *testing.T) {
	svc := NewItineraryService(&fakePlaceRepo{}, nil, nil)

	_, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		City:    "Atlantis",
		NumDays: 2,
	}, "")
	assert.ErrorIs(t, err, utils.ErrCityNotFound)
}

func TestGenerateItineraryFullPlan(t *testing.T) {
	svc := NewItineraryService(&fakePlaceRepo{rows: hanoiRows()}, nil, nil)

	resp, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		City:      "Hanoi",
		NumDays:   2,
		StartDate: "2026-03-02",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "Hanoi", resp.City)
	assert.Equal(t, "2026-03-02", resp.StartDate)
	assert.Equal(t, 2, resp.TotalDays)
	assert.InDelta(t, 0.9, resp.Alpha, 1e-9) // no selection history
	require.Len(t, resp.Days, 2)

	for _, day := range resp.Days {
		require.Len(t, day.Blocks, planner.ScheduleLength)
		for _, block := range day.Blocks {
			assert.True(t, block.Success, "block %s: %s", block.Type, block.Reason)
			assert.NotEmpty(t, block.Visits)
		}
	}
	assert.Positive(t, resp.TotalPlaces)
}

func TestGenerateItineraryExcludesDisliked(t *testing.T) {
	svc := NewItineraryService(&fakePlaceRepo{rows: hanoiRows()}, nil, nil)

	resp, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		City:             "Hanoi",
		NumDays:          1,
		StartDate:        "2026-03-02",
		DislikedPlaceIDs: []string{"a1", "r1"},
	}, "")
	require.NoError(t, err)

	for _, day := range resp.Days {
		for _, block := range day.Blocks {
			for _, visit := range block.Visits {
				assert.NotEqual(t, "a1", visit.PlaceID)
				assert.NotEqual(t, "r1", visit.PlaceID)
			}
		}
	}
}

func TestGenerateItineraryBudgetFiltersHotel(t *testing.T) {
	rows := hanoiRows()
	for i := range rows {
		if rows[i].ID == "h1" {
			rows[i].PriceLevel = 4
		}
	}
	svc := NewItineraryService(&fakePlaceRepo{rows: rows}, nil, nil)

	resp, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		City:      "Hanoi",
		NumDays:   1,
		StartDate: "2026-03-02",
		Budget:    "low",
	}, "")
	require.NoError(t, err)

	// The luxury hotel is filtered out, so the hotel block cannot be
	// filled but the rest of the day still is.
	hotelBlock := resp.Days[0].Blocks[planner.ScheduleLength-1]
	assert.Equal(t, "hotel", hotelBlock.Type)
	assert.False(t, hotelBlock.Success)
	assert.True(t, resp.Days[0].Blocks[0].Success)
}

func TestGenerateItineraryUsesContentScores(t *testing.T) {
	// Boost a3 far above the rest; it should win the single evening slot
	// over the higher-rated attractions.
	scores := planner.ScoreMap{}
	for _, id := range []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"} {
		scores[id] = 0.1
	}
	scores["a3"] = 0.99

	svc := NewItineraryService(
		&fakePlaceRepo{rows: hanoiRows()},
		&fakeContentProvider{scores: scores},
		nil,
	)

	resp, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		City:      "Hanoi",
		NumDays:   1,
		StartDate: "2026-03-02",
	}, "")
	require.NoError(t, err)

	var scheduled []string
	for _, block := range resp.Days[0].Blocks {
		for _, visit := range block.Visits {
			scheduled = append(scheduled, visit.PlaceID)
		}
	}
	assert.Contains(t, scheduled, "a3")
}

func TestAllowedByBudget(t *testing.T) {
	assert.True(t, allowedByBudget("", 4))
	assert.True(t, allowedByBudget("low", 0))
	assert.True(t, allowedByBudget("low", 1))
	assert.False(t, allowedByBudget("low", 3))
	assert.True(t, allowedByBudget("medium", 2))
	assert.False(t, allowedByBudget("medium", 4))
	assert.True(t, allowedByBudget("high", 4))
	assert.False(t, allowedByBudget("high", 0))
}
