package services

import (
	"context"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/phoebe497/Travel-Recommendation/internal/planner"
	"github.com/phoebe497/Travel-Recommendation/internal/repositories"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

type collabScoreProvider struct {
	factors repositories.FactorRepository
}

func NewCollaborativeScoreProvider(factors repositories.FactorRepository) CollaborativeScoreProvider {
	return &collabScoreProvider{factors: factors}
}

// Scores predicts affinity as sigmoid(user · place) over the trained
// latent factors. Anonymous users and users the offline job has not seen
// yet get a nil map, which the blender treats as neutral.
func (p *collabScoreProvider) Scores(ctx context.Context, userID string, placeIDs []string) (planner.ScoreMap, error) {
	if userID == "" || len(placeIDs) == 0 {
		return nil, nil
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil
	}

	userFactors, err := p.factors.GetUserFactors(ctx, uid)
	if err != nil {
		log.Printf("Error loading user factors: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if userFactors == nil || len(userFactors.Factors) == 0 {
		return nil, nil
	}

	placeFactors, err := p.factors.GetPlaceFactors(ctx, placeIDs)
	if err != nil {
		log.Printf("Error loading place factors: %v", err)
		return nil, utils.ErrDatabaseError
	}

	scores := make(planner.ScoreMap, len(placeFactors))
	for _, pf := range placeFactors {
		if len(pf.Factors) != len(userFactors.Factors) {
			continue
		}
		scores[pf.PlaceID] = sigmoid(dot(userFactors.Factors, pf.Factors))
	}
	return scores, nil
}

func dot(a, b []float64) float64 {
	total := 0.0
	for i := range a {
		total += a[i] * b[i]
	}
	return total
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
