package planner

// Place is the read-only view of a point of interest the planner works
// with. Instances are loaded once per planning run and never mutated.
type Place struct {
	ID         string
	Name       string
	City       string
	Types      []string
	Rating     float64
	Latitude   float64
	Longitude  float64
	PriceLevel int
	AvgPrice   float64
	Hours      *OpeningHours // nil when the venue published no hours
}

// UserPreference carries everything the planner needs to know about the
// traveler. Liked/disliked ids come from stored interaction history.
type UserPreference struct {
	UserID           string
	DestinationCity  string
	TripDays         int
	Budget           string
	Interests        []string
	TravelParty      string
	Accommodation    string
	LikedPlaceIDs    []string
	DislikedPlaceIDs []string
}

// ScoreMap maps a place id to its blended ranking score in [0, 1].
type ScoreMap map[string]float64

// scoreOf falls back to a rating-derived score when no blended score is
// available for the place, so planning still works without providers.
func scoreOf(scores ScoreMap, p Place) float64 {
	if s, ok := scores[p.ID]; ok {
		return s
	}
	return p.Rating / 5.0
}

var restaurantTypes = []string{
	"restaurant", "food", "cafe", "bar", "bakery",
	"meal_takeaway", "meal_delivery", "bistro", "diner",
	"chinese_restaurant", "italian_restaurant", "japanese_restaurant",
	"thai_restaurant", "vietnamese_restaurant", "korean_restaurant",
	"indian_restaurant", "french_restaurant", "mexican_restaurant",
	"vegetarian_restaurant", "vegan_restaurant", "seafood_restaurant",
	"steak_house", "pizza_restaurant", "hamburger_restaurant",
	"fast_food_restaurant", "sandwich_shop", "ramen_restaurant",
	"breakfast_restaurant", "brunch_restaurant", "coffee_shop",
}

var hotelTypes = []string{"hotel", "lodging", "motel", "hostel", "guest_house", "inn"}

func hasAnyType(p Place, types []string) bool {
	for _, t := range p.Types {
		for _, want := range types {
			if t == want {
				return true
			}
		}
	}
	return false
}

// IsRestaurant reports whether the place is primarily a food venue.
func IsRestaurant(p Place) bool { return hasAnyType(p, restaurantTypes) }

// IsHotel reports whether the place is lodging of any kind.
func IsHotel(p Place) bool { return hasAnyType(p, hotelTypes) }

// IsActivity reports whether the place is an attraction, i.e. neither a
// food venue nor lodging.
func IsActivity(p Place) bool { return !IsRestaurant(p) && !IsHotel(p) }
