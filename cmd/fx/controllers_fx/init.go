package controllersfx

import (
	"go.uber.org/fx"

	"github.com/phoebe497/Travel-Recommendation/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewItineraryController,
	controllers.NewRecommendationController,
	controllers.NewPlacesController,
	controllers.NewAccountController,
	controllers.NewPreferencesController)
