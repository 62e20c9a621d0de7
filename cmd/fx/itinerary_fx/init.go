package itinerary_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"dateplanner/internal/api/controllers"
	"dateplanner/internal/repositories"
	"dateplanner/internal/services"
	"dateplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	ProvideActionGuard,
	ProvideItineraryService,
	ProvideItineraryController)

// GenerationConfig holds configuration for model clients
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerationClient creates a generation client based on environment variables
func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)

	return utils.NewGenerationClient(config.Provider, config.APIKey, config.Model)
}

// ProvideActionGuard creates the shared in-flight action guard
func ProvideActionGuard() *utils.ActionGuard {
	return utils.NewActionGuard()
}

// ProvideItineraryService creates the itinerary service with all dependencies
func ProvideItineraryService(
	catalogRepo repositories.CatalogRepository,
	catalogService services.CatalogServiceInterface,
	client utils.GenerationClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(catalogRepo, catalogService, client)
}

// ProvideItineraryController creates the itinerary controller
func ProvideItineraryController(
	itineraryService services.ItineraryServiceInterface,
	guard *utils.ActionGuard,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService, guard)
}

// getGenerationConfig reads configuration from environment variables
func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
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
