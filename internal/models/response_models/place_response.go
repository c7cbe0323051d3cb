package response_models

type PlaceResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Types      []string `json:"types,omitempty"`
	Rating     float64  `json:"rating"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	PriceLevel int      `json:"price_level"`
	AvgPrice   float64  `json:"avg_price"`
}
