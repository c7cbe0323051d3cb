package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phoebe497/Travel-Recommendation/internal/models/request_models"
	"github.com/phoebe497/Travel-Recommendation/internal/services"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	itinerary, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
