package db_models

import "github.com/pgvector/pgvector-go"

type PlaceEmbedding struct {
	PlaceID   string          `gorm:"primaryKey"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	UpdatedAt int64           `gorm:"autoUpdateTime"`
}

func (PlaceEmbedding) TableName() string { return "place_embeddings" }
