package services

import (
	"context"
	"log"

	"github.com/phoebe497/Travel-Recommendation/internal/models/db_models"
	"github.com/phoebe497/Travel-Recommendation/internal/models/response_models"
	"github.com/phoebe497/Travel-Recommendation/internal/repositories"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

type PlaceServiceInterface interface {
	GetPlaceByID(ctx context.Context, id string) (*response_models.PlaceResponse, error)
	ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.PlaceResponse, error)
	ListByCity(ctx context.Context, city string) ([]response_models.PlaceResponse, error)
}

type placeService struct {
	placeRepository repositories.PlaceRepository
}

func NewPlaceService(placeRepository repositories.PlaceRepository) PlaceServiceInterface {
	return &placeService{placeRepository: placeRepository}
}

func (s *placeService) GetPlaceByID(ctx context.Context, id string) (*response_models.PlaceResponse, error) {
	place, err := s.placeRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching place: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	resp := toPlaceResponse(place)
	return &resp, nil
}

func (s *placeService) ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.PlaceResponse, error) {
	places, err := s.placeRepository.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing places: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toPlaceResponses(places), nil
}

func (s *placeService) ListByCity(ctx context.Context, city string) ([]response_models.PlaceResponse, error) {
	places, err := s.placeRepository.ListByCity(ctx, city)
	if err != nil {
		log.Printf("Error listing places for city %s: %v", city, err)
		return nil, utils.ErrDatabaseError
	}
	if len(places) == 0 {
		return nil, utils.ErrCityNotFound
	}
	return toPlaceResponses(places), nil
}

func toPlaceResponse(p *db_models.Place) response_models.PlaceResponse {
	return response_models.PlaceResponse{
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
}

func toPlaceResponses(places []db_models.Place) []response_models.PlaceResponse {
	out := make([]response_models.PlaceResponse, 0, len(places))
	for i := range places {
		out = append(out, toPlaceResponse(&places[i]))
	}
	return out
}
