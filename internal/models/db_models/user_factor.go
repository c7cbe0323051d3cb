package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserFactor is a trained latent-factor vector for one user, produced by
// the offline collaborative-filtering job.
type UserFactor struct {
	UserID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Factors   pq.Float64Array `gorm:"type:float8[]"`
	UpdatedAt int64           `gorm:"autoUpdateTime"`
}

func (UserFactor) TableName() string { return "user_factors" }
