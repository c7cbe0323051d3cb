package recommenderfx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/phoebe497/Travel-Recommendation/internal/repositories"
	"github.com/phoebe497/Travel-Recommendation/internal/services"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

var Module = fx.Provide(
	provideEmbeddingRepo,
	provideFactorRepo,
	ProvideEmbeddingClient,
	provideContentProvider,
	provideCollabProvider,
	provideRecommendationService)

func provideEmbeddingRepo(db *gorm.DB) repositories.EmbeddingRepository {
	return repositories.NewEmbeddingRepository(db)
}

func provideFactorRepo(db *gorm.DB) repositories.FactorRepository {
	return repositories.NewFactorRepository(db)
}

// EmbeddingConfig holds configuration for embedding clients
type EmbeddingConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideEmbeddingClient creates an embedding client based on environment variables
func ProvideEmbeddingClient() (utils.EmbeddingClientInterface, error) {
	config := getEmbeddingConfig()

	log.Printf("Initializing %s embedding client with model: %s", config.Provider, config.Model)

	client, err := utils.NewEmbeddingClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}
	return client, nil
}

func provideContentProvider(
	embeddingRepo repositories.EmbeddingRepository,
	client utils.EmbeddingClientInterface,
) services.ContentScoreProvider {
	return services.NewContentScoreProvider(embeddingRepo, client)
}

func provideCollabProvider(factorRepo repositories.FactorRepository) services.CollaborativeScoreProvider {
	return services.NewCollaborativeScoreProvider(factorRepo)
}

func provideRecommendationService(
	placeRepo repositories.PlaceRepository,
	content services.ContentScoreProvider,
	collab services.CollaborativeScoreProvider,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(placeRepo, content, collab)
}

// getEmbeddingConfig reads configuration from environment variables
func getEmbeddingConfig() EmbeddingConfig {
	provider := getEnvWithDefault("EMBEDDING_PROVIDER", "openai")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "text-embedding-3-small")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "text-embedding-004")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return EmbeddingConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
