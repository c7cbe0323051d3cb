package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phoebe497/Travel-Recommendation/internal/models/request_models"
	"github.com/phoebe497/Travel-Recommendation/internal/services"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

type PreferencesController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferencesController(preferenceService services.PreferenceServiceInterface) *PreferencesController {
	return &PreferencesController{
		preferenceService: preferenceService,
	}
}

func (p *PreferencesController) SavePreference(c *gin.Context) {
	var req request_models.SavePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := p.preferenceService.SavePreference(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Preference saved successfully")
}

func (p *PreferencesController) GetPreference(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	pref, err := p.preferenceService.GetPreference(c.Request.Context(), userID, c.Query("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pref, "Preference fetched successfully")
}
