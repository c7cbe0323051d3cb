package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/phoebe497/Travel-Recommendation/internal/models/db_models"
)

type PreferenceRepository interface {
	GetByUserAndCity(ctx context.Context, userID uuid.UUID, city string) (*db_models.UserPreference, error)
	GetLatest(ctx context.Context, userID uuid.UUID) (*db_models.UserPreference, error)
	Save(ctx context.Context, pref *db_models.UserPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserAndCity(ctx context.Context, userID uuid.UUID, city string) (*db_models.UserPreference, error) {
	var pref db_models.UserPreference
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(city) = LOWER(?)", userID, city).
		First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*db_models.UserPreference, error) {
	var pref db_models.UserPreference
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

// Save updates the existing row for the user/city pair or inserts a new
// one. One row per destination keeps history simple.
func (r *preferenceRepository) Save(ctx context.Context, pref *db_models.UserPreference) error {
	existing, err := r.GetByUserAndCity(ctx, pref.UserID, pref.City)
	if err != nil {
		return err
	}
	if existing != nil {
		pref.ID = existing.ID
		pref.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(pref).Error
	}
	return r.db.WithContext(ctx).Create(pref).Error
}
