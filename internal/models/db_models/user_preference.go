package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserPreference stores the traveler's last submitted planning inputs so
// repeat requests can omit them.
type UserPreference struct {
	BaseModel
	UserID           uuid.UUID      `gorm:"type:uuid;index;not null"`
	City             string         `gorm:"index"`
	Budget           string
	TravelParty      string
	Interests        pq.StringArray `gorm:"type:text[]"`
	LikedPlaceIDs    pq.StringArray `gorm:"type:text[]"`
	DislikedPlaceIDs pq.StringArray `gorm:"type:text[]"`
}

func (UserPreference) TableName() string { return "user_preferences" }
