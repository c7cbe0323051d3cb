package request_models

type GenerateItineraryRequest struct {
	City              string   `json:"city" binding:"required,min=2"`
	NumDays           int      `json:"num_days" binding:"required,min=1,max=14"`
	StartDate         string   `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	Interests         []string `json:"interests"`
	Budget            string   `json:"budget" binding:"omitempty,oneof=low medium high"`
	TravelParty       string   `json:"travel_party" binding:"omitempty,oneof=solo couple family friends"`
	AccommodationType string   `json:"accommodation_type" binding:"omitempty,oneof=hotel hostel guest_house"`
	LikedPlaceIDs     []string `json:"liked_place_ids"`
	DislikedPlaceIDs  []string `json:"disliked_place_ids"`
}
