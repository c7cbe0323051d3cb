package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/phoebe497/Travel-Recommendation/internal/models/db_models"
	"github.com/phoebe497/Travel-Recommendation/internal/models/request_models"
	"github.com/phoebe497/Travel-Recommendation/internal/models/response_models"
	"github.com/phoebe497/Travel-Recommendation/internal/repositories"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

type PreferenceServiceInterface interface {
	SavePreference(ctx context.Context, userID string, req request_models.SavePreferenceRequest) error
	GetPreference(ctx context.Context, userID, city string) (*response_models.PreferenceResponse, error)
}

type preferenceService struct {
	preferences repositories.PreferenceRepository
}

func NewPreferenceService(preferences repositories.PreferenceRepository) PreferenceServiceInterface {
	return &preferenceService{preferences: preferences}
}

func (s *preferenceService) SavePreference(ctx context.Context, userID string, req request_models.SavePreferenceRequest) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	pref := &db_models.UserPreference{
		UserID:           uid,
		City:             req.City,
		Budget:           req.Budget,
		TravelParty:      req.TravelParty,
		Interests:        pq.StringArray(req.Interests),
		LikedPlaceIDs:    pq.StringArray(req.LikedPlaceIDs),
		DislikedPlaceIDs: pq.StringArray(req.DislikedPlaceIDs),
	}
	if err := s.preferences.Save(ctx, pref); err != nil {
		log.Printf("Error saving preference: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// GetPreference returns the stored preference for the city, falling back
// to the user's most recent preference when the city has none.
func (s *preferenceService) GetPreference(ctx context.Context, userID, city string) (*response_models.PreferenceResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var pref *db_models.UserPreference
	if city != "" {
		pref, err = s.preferences.GetByUserAndCity(ctx, uid, city)
	} else {
		pref, err = s.preferences.GetLatest(ctx, uid)
	}
	if err != nil {
		log.Printf("Error loading preference: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if pref == nil {
		return nil, utils.ErrPreferenceNotFound
	}

	return &response_models.PreferenceResponse{
		City:             pref.City,
		Budget:           pref.Budget,
		TravelParty:      pref.TravelParty,
		Interests:        []string(pref.Interests),
		LikedPlaceIDs:    []string(pref.LikedPlaceIDs),
		DislikedPlaceIDs: []string(pref.DislikedPlaceIDs),
	}, nil
}
