package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"dateplanner/internal/models/request_models"
	"dateplanner/internal/models/response_models"
	"dateplanner/internal/repositories"
	"dateplanner/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (response_models.GenerateItineraryResponse, error)
}

type itineraryService struct {
	catalogRepo    repositories.CatalogRepository
	catalogService CatalogServiceInterface
	client         utils.GenerationClientInterface
	normalizer     *ResponseNormalizer
}

func NewItineraryService(catalogRepo repositories.CatalogRepository, catalogService CatalogServiceInterface, client utils.GenerationClientInterface) ItineraryServiceInterface {
	return &itineraryService{
		catalogRepo:    catalogRepo,
		catalogService: catalogService,
		client:         client,
		normalizer:     NewResponseNormalizer(),
	}
}

// GenerateItinerary runs the full pipeline: load catalogs, filter by
// preferences, prompt the model, normalize whatever comes back. Only a
// transport-level model failure surfaces as an error; malformed model
// output is repaired, never rejected.
func (s *itineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (response_models.GenerateItineraryResponse, error) {
	req.Cuisines = normalizeTags(req.Cuisines)
	req.Activities = normalizeTags(req.Activities)

	restaurants, err := s.catalogRepo.LoadRestaurants(ctx)
	if err != nil {
		return response_models.GenerateItineraryResponse{}, fmt.Errorf("%w: loading restaurants: %v", utils.ErrGenerationFailed, err)
	}
	activities, err := s.catalogRepo.LoadActivities(ctx)
	if err != nil {
		return response_models.GenerateItineraryResponse{}, fmt.Errorf("%w: loading activities: %v", utils.ErrGenerationFailed, err)
	}

	filteredRestaurants := s.catalogService.FilterRestaurants(restaurants, req.Cuisines, req.BudgetLevel)
	filteredActivities := s.catalogService.FilterActivities(activities, req.Activities)

	prompt := BuildItineraryPrompt(req, filteredRestaurants, filteredActivities)

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		log.Printf("itinerary generation call failed: %v", err)
		return response_models.GenerateItineraryResponse{}, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	return s.normalizer.Normalize(raw, req, filteredRestaurants, filteredActivities), nil
}

// normalizeTags trims and dedupes preference tags case-insensitively,
// keeping first-seen order and the caller's casing. The filter lowercases
// on its own; the prompt shows the tags as the user typed them.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}
