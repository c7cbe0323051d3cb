package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	accountfx "github.com/phoebe497/Travel-Recommendation/cmd/fx/account_fx"
	controllersfx "github.com/phoebe497/Travel-Recommendation/cmd/fx/controllers_fx"
	dbfx "github.com/phoebe497/Travel-Recommendation/cmd/fx/db_fx"
	placesfx "github.com/phoebe497/Travel-Recommendation/cmd/fx/places_fx"
	plannerfx "github.com/phoebe497/Travel-Recommendation/cmd/fx/planner_fx"
	recommenderfx "github.com/phoebe497/Travel-Recommendation/cmd/fx/recommender_fx"
	"github.com/phoebe497/Travel-Recommendation/internal/api/controllers"
	"github.com/phoebe497/Travel-Recommendation/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		dbfx.Module,
		placesfx.Module,
		accountfx.Module,
		recommenderfx.Module,
		plannerfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	recommendationController *controllers.RecommendationController,
	placesController *controllers.PlacesController,
	accountController *controllers.AccountController,
	preferencesController *controllers.PreferencesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		itineraryController,
		recommendationController,
		placesController,
		accountController,
		preferencesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	recommendationController *controllers.RecommendationController,
	placesController *controllers.PlacesController,
	accountController *controllers.AccountController,
	preferencesController *controllers.PreferencesController) {

	v1 := r.Group("/api/v1")

	accounts := v1.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	places := v1.Group("/places")
	places.GET("", placesController.ListPlaces)
	places.GET("/:id", placesController.GetPlaceById)
	places.GET("/city/:city", placesController.GetPlacesByCity)

	// Planning works anonymously; a token adds personal history.
	planning := v1.Group("")
	planning.Use(middleware.OptionalAuthMiddleware())
	planning.POST("/itinerary/generate", itineraryController.GenerateItinerary)
	planning.POST("/recommendations", recommendationController.Recommend)

	preferences := v1.Group("/preferences")
	preferences.Use(middleware.JWTAuthMiddleware())
	preferences.POST("", preferencesController.SavePreference)
	preferences.GET("", preferencesController.GetPreference)
}
