package db_models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/phoebe497/Travel-Recommendation/internal/planner"
)

// Place mirrors one row of the places table. IDs are the upstream place
// ids (strings), not UUIDs, so this table does not embed BaseModel.
type Place struct {
	ID           string         `gorm:"primaryKey"`
	Name         string         `gorm:"not null"`
	City         string         `gorm:"index;not null"`
	Types        pq.StringArray `gorm:"type:text[]"`
	Rating       float64
	Latitude     float64
	Longitude    float64
	PriceLevel   int
	AvgPrice     float64
	OpeningHours string `gorm:"type:jsonb"`
	CreatedAt    int64  `gorm:"autoCreateTime"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
}

func (Place) TableName() string { return "places" }

// storedHours is the persisted opening-hours JSON shape:
//
//	{"periods":[{"open":{"day":0,"hour":8,"minute":0},
//	             "close":{"day":0,"hour":22,"minute":0}}]}
//
// Day numbering is 0=Sunday, matching time.Weekday.
type storedHours struct {
	Periods []struct {
		Open  storedHoursPoint `json:"open"`
		Close storedHoursPoint `json:"close"`
	} `json:"periods"`
}

type storedHoursPoint struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ToPlanner converts the row into the planner's place view. A row with
// empty or null hours yields a nil Hours pointer, which the planner
// treats as "open default hours".
func (p *Place) ToPlanner() (planner.Place, error) {
	out := planner.Place{
		ID:         p.ID,
		Name:       p.Name,
		City:       p.City,
		Types:      []string(p.Types),
		Rating:     p.Rating,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		PriceLevel: p.PriceLevel,
		AvgPrice:   p.AvgPrice,
	}

	if p.OpeningHours == "" || p.OpeningHours == "null" {
		return out, nil
	}

	var stored storedHours
	if err := json.Unmarshal([]byte(p.OpeningHours), &stored); err != nil {
		return out, fmt.Errorf("place %s: parse opening hours: %w", p.ID, err)
	}
	if len(stored.Periods) == 0 {
		return out, nil
	}

	hours := &planner.OpeningHours{Periods: make([]planner.OpenPeriod, 0, len(stored.Periods))}
	for _, period := range stored.Periods {
		hours.Periods = append(hours.Periods, planner.OpenPeriod{
			Day:   time.Weekday(period.Open.Day),
			Open:  planner.NewClock(period.Open.Hour, period.Open.Minute),
			Close: planner.NewClock(period.Close.Hour, period.Close.Minute),
		})
	}
	out.Hours = hours
	return out, nil
}
