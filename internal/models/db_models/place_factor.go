package db_models

import "github.com/lib/pq"

// PlaceFactor is the item-side latent-factor vector matching UserFactor.
type PlaceFactor struct {
	PlaceID   string          `gorm:"primaryKey"`
	Factors   pq.Float64Array `gorm:"type:float8[]"`
	UpdatedAt int64           `gorm:"autoUpdateTime"`
}

func (PlaceFactor) TableName() string { return "place_factors" }
