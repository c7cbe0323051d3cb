package response_models

type ItineraryResponse struct {
	City         string        `json:"city"`
	StartDate    string        `json:"start_date"`
	TotalDays    int           `json:"total_days"`
	TotalPlaces  int           `json:"total_places"`
	TotalCostUSD float64       `json:"total_cost_usd"`
	Alpha        float64       `json:"alpha"`
	ProcessingMs int64         `json:"processing_ms"`
	Days         []DayResponse `json:"days"`
}

type DayResponse struct {
	Day          int             `json:"day"`
	Date         string          `json:"date"`
	TotalCostUSD float64         `json:"total_cost_usd"`
	TotalScore   float64         `json:"total_score"`
	PlaceCount   int             `json:"place_count"`
	Blocks       []BlockResponse `json:"blocks"`
}

type BlockResponse struct {
	Type      string          `json:"type"`
	TimeRange string          `json:"time_range"`
	Success   bool            `json:"success"`
	Reason    string          `json:"reason,omitempty"`
	Visits    []VisitResponse `json:"visits"`
}

type VisitResponse struct {
	PlaceID    string             `json:"place_id"`
	Name       string             `json:"name"`
	Types      []string           `json:"types,omitempty"`
	Rating     float64            `json:"rating"`
	Arrival    string             `json:"arrival"`
	Departure  string             `json:"departure"`
	VisitHours float64            `json:"visit_hours"`
	Score      float64            `json:"score"`
	Transport  *TransportResponse `json:"transport_to_next,omitempty"`
}

type TransportResponse struct {
	Mode          string  `json:"mode"`
	DistanceKm    float64 `json:"distance_km"`
	DurationHours float64 `json:"duration_hours"`
	CostUSD       float64 `json:"cost_usd"`
	Reason        string  `json:"reason,omitempty"`
}
