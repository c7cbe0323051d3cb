package services

import (
	"context"

	"github.com/phoebe497/Travel-Recommendation/internal/planner"
)

// ContentScoreProvider scores places by similarity between the place's
// embedding and the traveler's taste profile. Scores are in [0, 1].
type ContentScoreProvider interface {
	Scores(ctx context.Context, pref planner.UserPreference, places []planner.Place) (planner.ScoreMap, error)
}

// CollaborativeScoreProvider scores places from trained latent factors.
// A provider may return a nil map when it has no signal for the user;
// callers must treat that as neutral, not as an error.
type CollaborativeScoreProvider interface {
	Scores(ctx context.Context, userID string, placeIDs []string) (planner.ScoreMap, error)
}
