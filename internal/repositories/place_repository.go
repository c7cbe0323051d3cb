package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/phoebe497/Travel-Recommendation/internal/models/db_models"
)

// cityPoolLimit caps how many places one planning run loads. The distance
// graph is quadratic in this number.
const cityPoolLimit = 200

type PlaceRepository interface {
	GetByID(ctx context.Context, id string) (*db_models.Place, error)
	ListByCity(ctx context.Context, city string) ([]db_models.Place, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

// ListByCity returns the best-rated places of a city, capped so the
// planner's quadratic graph build stays bounded.
func (r *placeRepository) ListByCity(ctx context.Context, city string) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("LOWER(city) = LOWER(?)", city).
		Order("rating DESC").
		Limit(cityPoolLimit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
