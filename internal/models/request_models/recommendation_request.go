package request_models

type RecommendationRequest struct {
	City             string   `json:"city" binding:"required,min=2"`
	Limit            int      `json:"limit" binding:"omitempty,min=1,max=100"`
	TripDays         int      `json:"trip_days" binding:"omitempty,min=1,max=14"`
	Interests        []string `json:"interests"`
	Budget           string   `json:"budget" binding:"omitempty,oneof=low medium high"`
	LikedPlaceIDs    []string `json:"liked_place_ids"`
	DislikedPlaceIDs []string `json:"disliked_place_ids"`
}
