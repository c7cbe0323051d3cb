package response_models

type PreferenceResponse struct {
	City             string   `json:"city"`
	Budget           string   `json:"budget,omitempty"`
	TravelParty      string   `json:"travel_party,omitempty"`
	Interests        []string `json:"interests,omitempty"`
	LikedPlaceIDs    []string `json:"liked_place_ids,omitempty"`
	DislikedPlaceIDs []string `json:"disliked_place_ids,omitempty"`
}
