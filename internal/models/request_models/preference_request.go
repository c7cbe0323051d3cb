package request_models

type SavePreferenceRequest struct {
	City             string   `json:"city" binding:"required,min=2"`
	Budget           string   `json:"budget" binding:"omitempty,oneof=low medium high"`
	TravelParty      string   `json:"travel_party" binding:"omitempty,oneof=solo couple family friends"`
	Interests        []string `json:"interests"`
	LikedPlaceIDs    []string `json:"liked_place_ids"`
	DislikedPlaceIDs []string `json:"disliked_place_ids"`
}
