package plannerfx

import (
	"go.uber.org/fx"

	"github.com/phoebe497/Travel-Recommendation/internal/repositories"
	"github.com/phoebe497/Travel-Recommendation/internal/services"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(
	placeRepo repositories.PlaceRepository,
	content services.ContentScoreProvider,
	collab services.CollaborativeScoreProvider,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(placeRepo, content, collab)
}
