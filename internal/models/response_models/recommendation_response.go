package response_models

type RecommendationResponse struct {
	City   string             `json:"city"`
	Alpha  float64            `json:"alpha"`
	Places []RecommendedPlace `json:"places"`
}

type RecommendedPlace struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Types    []string `json:"types,omitempty"`
	Rating   float64  `json:"rating"`
	Score    float64  `json:"score"`
	Category string   `json:"category"`
}
