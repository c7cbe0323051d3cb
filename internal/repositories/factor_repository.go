package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/phoebe497/Travel-Recommendation/internal/models/db_models"
)

type FactorRepository interface {
	GetUserFactors(ctx context.Context, userID uuid.UUID) (*db_models.UserFactor, error)
	GetPlaceFactors(ctx context.Context, placeIDs []string) ([]db_models.PlaceFactor, error)
}

type factorRepository struct {
	db *gorm.DB
}

func NewFactorRepository(db *gorm.DB) FactorRepository {
	return &factorRepository{db: db}
}

func (r *factorRepository) GetUserFactors(ctx context.Context, userID uuid.UUID) (*db_models.UserFactor, error) {
	var factors db_models.UserFactor
	err := r.db.WithContext(ctx).First(&factors, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &factors, nil
}

func (r *factorRepository) GetPlaceFactors(ctx context.Context, placeIDs []string) ([]db_models.PlaceFactor, error) {
	if len(placeIDs) == 0 {
		return nil, nil
	}

	var factors []db_models.PlaceFactor
	err := r.db.WithContext(ctx).
		Where("place_id IN ?", placeIDs).
		Find(&factors).Error
	if err != nil {
		return nil, err
	}
	return factors, nil
}
