package services

import (
	"context"
	"log"
	"time"

	"github.com/phoebe497/Travel-Recommendation/internal/models/db_models"
	"github.com/phoebe497/Travel-Recommendation/internal/models/request_models"
	"github.com/phoebe497/Travel-Recommendation/internal/models/response_models"
	"github.com/phoebe497/Travel-Recommendation/internal/planner"
	"github.com/phoebe497/Travel-Recommendation/internal/repositories"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest, userID string) (*response_models.ItineraryResponse, error)
}

type itineraryService struct {
	places  repositories.PlaceRepository
	content ContentScoreProvider
	collab  CollaborativeScoreProvider
	cfg     planner.Config
}

func NewItineraryService(
	places repositories.PlaceRepository,
	content ContentScoreProvider,
	collab CollaborativeScoreProvider,
) ItineraryServiceInterface {
	return &itineraryService{
		places:  places,
		content: content,
		collab:  collab,
		cfg:     planner.DefaultConfig(),
	}
}

func (s *itineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest, userID string) (*response_models.ItineraryResponse, error) {
	started := time.Now()

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	pool, err := loadPlannerPool(ctx, s.places, req.City, req.Budget, req.DislikedPlaceIDs)
	if err != nil {
		return nil, err
	}

	pref := planner.UserPreference{
		UserID:           userID,
		DestinationCity:  req.City,
		TripDays:         req.NumDays,
		Budget:           req.Budget,
		Interests:        req.Interests,
		TravelParty:      req.TravelParty,
		Accommodation:    req.AccommodationType,
		LikedPlaceIDs:    req.LikedPlaceIDs,
		DislikedPlaceIDs: req.DislikedPlaceIDs,
	}

	alpha, blended := blendForPreference(ctx, s.content, s.collab, pref, pool)

	builder := planner.NewTourBuilder(pool, s.cfg)
	plan, err := builder.Build(pref, startDate, blended)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	builder.Optimize(plan)

	resp := buildItineraryResponse(plan, alpha, time.Since(started).Milliseconds())
	return resp, nil
}

func loadPlannerPool(ctx context.Context, repo repositories.PlaceRepository, city, budget string, disliked []string) ([]planner.Place, error) {
	rows, err := repo.ListByCity(ctx, city)
	if err != nil {
		log.Printf("Error listing places for city %s: %v", city, err)
		return nil, utils.ErrDatabaseError
	}
	if len(rows) == 0 {
		return nil, utils.ErrCityNotFound
	}

	pool := buildPlannerPool(rows, budget, disliked)
	if len(pool) == 0 {
		return nil, utils.ErrCityNotFound
	}
	return pool, nil
}

// blendForPreference pulls both provider signals and merges them.
// Provider failures degrade to a neutral signal; they never fail the
// request.
func blendForPreference(ctx context.Context, content ContentScoreProvider, collab CollaborativeScoreProvider, pref planner.UserPreference, pool []planner.Place) (float64, planner.ScoreMap) {
	alpha := planner.Alpha(len(pref.LikedPlaceIDs), planner.ClampPoolSize(len(pool)), pref.TripDays)

	var contentScores planner.ScoreMap
	if content != nil {
		cs, err := content.Scores(ctx, pref, pool)
		if err != nil {
			log.Printf("Content provider unavailable, planning without it: %v", err)
		} else {
			contentScores = cs
		}
	}

	var collabScores planner.ScoreMap
	if collab != nil {
		ids := make([]string, 0, len(pool))
		for _, p := range pool {
			ids = append(ids, p.ID)
		}
		cs, err := collab.Scores(ctx, pref.UserID, ids)
		if err != nil {
			log.Printf("Collaborative provider unavailable, planning without it: %v", err)
		} else {
			collabScores = cs
		}
	}

	return alpha, planner.Blend(contentScores, collabScores, pool, alpha)
}

var budgetLevels = map[string][]int{
	"low":    {0, 1},
	"medium": {1, 2, 3},
	"high":   {2, 3, 4},
}

func allowedByBudget(budget string, priceLevel int) bool {
	levels, ok := budgetLevels[budget]
	if !ok {
		return true
	}
	for _, l := range levels {
		if l == priceLevel {
			return true
		}
	}
	return false
}

func excluded(id string, disliked []string) bool {
	for _, d := range disliked {
		if d == id {
			return true
		}
	}
	return false
}

// buildPlannerPool converts rows to planner places, dropping disliked ids
// and places outside the budget tier. Rows with unparseable opening hours
// stay in the pool with default hours.
func buildPlannerPool(rows []db_models.Place, budget string, disliked []string) []planner.Place {
	pool := make([]planner.Place, 0, len(rows))
	for i := range rows {
		if excluded(rows[i].ID, disliked) {
			continue
		}
		if !allowedByBudget(budget, rows[i].PriceLevel) {
			continue
		}
		place, err := rows[i].ToPlanner()
		if err != nil {
			log.Printf("Skipping stored hours: %v", err)
		}
		pool = append(pool, place)
	}
	return pool
}

func buildItineraryResponse(plan *planner.TourPlan, alpha float64, processingMs int64) *response_models.ItineraryResponse {
	resp := &response_models.ItineraryResponse{
		City:         plan.City,
		StartDate:    utils.FormatDate(plan.StartDate),
		TotalDays:    len(plan.Days),
		TotalPlaces:  plan.TotalPlaces(),
		TotalCostUSD: round2(plan.TotalCost()),
		Alpha:        alpha,
		ProcessingMs: processingMs,
		Days:         make([]response_models.DayResponse, 0, len(plan.Days)),
	}

	for i := range plan.Days {
		day := &plan.Days[i]
		dayResp := response_models.DayResponse{
			Day:          day.Day,
			Date:         utils.FormatDate(day.Date),
			TotalCostUSD: round2(day.TotalCost()),
			TotalScore:   round2(day.TotalScore()),
			PlaceCount:   day.PlaceCount(),
			Blocks:       make([]response_models.BlockResponse, 0, len(day.Blocks)),
		}

		for _, block := range day.Blocks {
			blockResp := response_models.BlockResponse{
				Type:      string(block.Block.Kind),
				TimeRange: block.Block.TimeRange(),
				Success:   block.Success,
				Reason:    block.Reason,
				Visits:    make([]response_models.VisitResponse, 0, len(block.Visits)),
			}
			for _, v := range block.Visits {
				blockResp.Visits = append(blockResp.Visits, buildVisitResponse(v))
			}
			dayResp.Blocks = append(dayResp.Blocks, blockResp)
		}
		resp.Days = append(resp.Days, dayResp)
	}
	return resp
}

func buildVisitResponse(v planner.Visit) response_models.VisitResponse {
	out := response_models.VisitResponse{
		PlaceID:    v.Place.ID,
		Name:       v.Place.Name,
		Types:      v.Place.Types,
		Rating:     v.Place.Rating,
		Arrival:    v.Arrival.String(),
		Departure:  v.Departure.String(),
		VisitHours: v.VisitHours,
		Score:      round2(v.Score),
	}
	if v.ToNext != nil {
		out.Transport = &response_models.TransportResponse{
			Mode:          string(v.ToNext.Mode),
			DistanceKm:    round2(v.ToNext.DistanceKm),
			DurationHours: round2(v.ToNext.TravelHours),
			CostUSD:       round2(v.ToNext.CostUSD),
			Reason:        v.ToNext.Reason,
		}
	}
	return out
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
