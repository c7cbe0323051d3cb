package services

import (
	"context"
	"sort"

	"github.com/phoebe497/Travel-Recommendation/internal/models/request_models"
	"github.com/phoebe497/Travel-Recommendation/internal/models/response_models"
	"github.com/phoebe497/Travel-Recommendation/internal/planner"
	"github.com/phoebe497/Travel-Recommendation/internal/repositories"
)

const defaultRecommendationLimit = 20

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, req request_models.RecommendationRequest, userID string) (*response_models.RecommendationResponse, error)
}

type recommendationService struct {
	places  repositories.PlaceRepository
	content ContentScoreProvider
	collab  CollaborativeScoreProvider
}

func NewRecommendationService(
	places repositories.PlaceRepository,
	content ContentScoreProvider,
	collab CollaborativeScoreProvider,
) RecommendationServiceInterface {
	return &recommendationService{
		places:  places,
		content: content,
		collab:  collab,
	}
}

// Recommend returns a category-balanced shortlist: roughly 60% attractions,
// 30% restaurants and 10% hotels, each ranked by blended score. Quotas a
// category cannot fill spill over to the others.
func (s *recommendationService) Recommend(ctx context.Context, req request_models.RecommendationRequest, userID string) (*response_models.RecommendationResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	pool, err := loadPlannerPool(ctx, s.places, req.City, req.Budget, req.DislikedPlaceIDs)
	if err != nil {
		return nil, err
	}

	pref := planner.UserPreference{
		UserID:           userID,
		DestinationCity:  req.City,
		TripDays:         req.TripDays,
		Budget:           req.Budget,
		Interests:        req.Interests,
		LikedPlaceIDs:    req.LikedPlaceIDs,
		DislikedPlaceIDs: req.DislikedPlaceIDs,
	}

	alpha, blended := blendForPreference(ctx, s.content, s.collab, pref, pool)

	var attractions, restaurants, hotels []planner.Place
	for _, p := range pool {
		switch {
		case planner.IsHotel(p):
			hotels = append(hotels, p)
		case planner.IsRestaurant(p):
			restaurants = append(restaurants, p)
		default:
			attractions = append(attractions, p)
		}
	}
	sortByBlended(attractions, blended)
	sortByBlended(restaurants, blended)
	sortByBlended(hotels, blended)

	attractionQuota := limit * 6 / 10
	restaurantQuota := limit * 3 / 10
	hotelQuota := limit - attractionQuota - restaurantQuota

	picked := make([]response_models.RecommendedPlace, 0, limit)
	picked = appendCategory(picked, attractions, blended, attractionQuota, "attraction")
	picked = appendCategory(picked, restaurants, blended, restaurantQuota, "restaurant")
	picked = appendCategory(picked, hotels, blended, hotelQuota, "hotel")

	// Spill unused quota into whichever categories still have depth.
	if len(picked) < limit {
		picked = appendCategory(picked, attractions[min(attractionQuota, len(attractions)):], blended, limit-len(picked), "attraction")
	}
	if len(picked) < limit {
		picked = appendCategory(picked, restaurants[min(restaurantQuota, len(restaurants)):], blended, limit-len(picked), "restaurant")
	}
	if len(picked) < limit {
		picked = appendCategory(picked, hotels[min(hotelQuota, len(hotels)):], blended, limit-len(picked), "hotel")
	}

	return &response_models.RecommendationResponse{
		City:   req.City,
		Alpha:  alpha,
		Places: picked,
	}, nil
}

func sortByBlended(places []planner.Place, scores planner.ScoreMap) {
	sort.SliceStable(places, func(i, j int) bool {
		si, sj := scores[places[i].ID], scores[places[j].ID]
		if si != sj {
			return si > sj
		}
		return places[i].ID < places[j].ID
	})
}

func appendCategory(out []response_models.RecommendedPlace, places []planner.Place, scores planner.ScoreMap, quota int, category string) []response_models.RecommendedPlace {
	for _, p := range places {
		if quota <= 0 {
			break
		}
		out = append(out, response_models.RecommendedPlace{
			PlaceID:  p.ID,
			Name:     p.Name,
			Types:    p.Types,
			Rating:   p.Rating,
			Score:    round2(scores[p.ID]),
			Category: category,
		})
		quota--
	}
	return out
}
