package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/phoebe497/Travel-Recommendation/internal/models/db_models"
)

type EmbeddingRepository interface {
	GetByPlaceIDs(ctx context.Context, placeIDs []string) ([]db_models.PlaceEmbedding, error)
	Upsert(ctx context.Context, embedding *db_models.PlaceEmbedding) error
}

type embeddingRepository struct {
	db *gorm.DB
}

func NewEmbeddingRepository(db *gorm.DB) EmbeddingRepository {
	return &embeddingRepository{db: db}
}

func (r *embeddingRepository) GetByPlaceIDs(ctx context.Context, placeIDs []string) ([]db_models.PlaceEmbedding, error) {
	if len(placeIDs) == 0 {
		return nil, nil
	}

	var embeddings []db_models.PlaceEmbedding
	err := r.db.WithContext(ctx).
		Where("place_id IN ?", placeIDs).
		Find(&embeddings).Error
	if err != nil {
		return nil, err
	}
	return embeddings, nil
}

func (r *embeddingRepository) Upsert(ctx context.Context, embedding *db_models.PlaceEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "place_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"embedding", "updated_at"}),
		}).
		Create(embedding).Error
}
