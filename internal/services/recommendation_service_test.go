package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoebe497/Travel-Recommendation/internal/models/request_models"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

func TestRecommendBalancesCategories(t *testing.T) {
	svc := NewRecommendationService(&fakePlaceRepo{rows: hanoiRows()}, nil, nil)

	resp, err := svc.Recommend(context.Background(), request_models.RecommendationRequest{
		City:  "Hanoi",
		Limit: 10,
	}, "")
	require.NoError(t, err)
	require.Len(t, resp.Places, 10)

	counts := map[string]int{}
	for _, p := range resp.Places {
		counts[p.Category]++
	}
	assert.Equal(t, 6, counts["attraction"])
	assert.Equal(t, 3, counts["restaurant"])
	assert.Equal(t, 1, counts["hotel"])
}

func TestRecommendSpillsUnfilledQuota(t *testing.T) {
	// The pool only holds 12 places; a limit of 20 returns all of them
	// regardless of per-category quotas.
	svc := NewRecommendationService(&fakePlaceRepo{rows: hanoiRows()}, nil, nil)

	resp, err := svc.Recommend(context.Background(), request_models.RecommendationRequest{
		City:  "Hanoi",
		Limit: 20,
	}, "")
	require.NoError(t, err)
	assert.Len(t, resp.Places, 12)
}

func TestRecommendRanksWithinCategory(t *testing.T) {
	svc := NewRecommendationService(&fakePlaceRepo{rows: hanoiRows()}, nil, nil)

	resp, err := svc.Recommend(context.Background(), request_models.RecommendationRequest{
		City:  "Hanoi",
		Limit: 10,
	}, "")
	require.NoError(t, err)

	prev := 2.0
	for _, p := range resp.Places {
		if p.Category != "attraction" {
			break
		}
		assert.LessOrEqual(t, p.Score, prev)
		prev = p.Score
	}
}

func TestRecommendUnknownCity(t *testing.T) {
	svc := NewRecommendationService(&fakePlaceRepo{}, nil, nil)

	_, err := svc.Recommend(context.Background(), request_models.RecommendationRequest{
		City: "Atlantis",
	}, "")
	assert.ErrorIs(t, err, utils.ErrCityNotFound)
}
