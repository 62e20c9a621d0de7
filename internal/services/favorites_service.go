package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"dateplanner/internal/models/db_models"
	"dateplanner/internal/models/request_models"
	"dateplanner/internal/models/response_models"
	"dateplanner/internal/repositories"
	"dateplanner/pkg/utils"
)

type FavoritesServiceInterface interface {
	SaveFavorite(ctx context.Context, userID string, req request_models.SaveFavoriteRequest) (string, error)
	ListFavorites(ctx context.Context, userID string) ([]response_models.FavoriteResponse, error)
	DeleteFavorite(ctx context.Context, userID, favoriteID string) error
	GetFavorite(ctx context.Context, userID, favoriteID string) (*db_models.FavoriteItinerary, error)
}

type favoritesService struct {
	repo repositories.FavoriteRepository
}

func NewFavoritesService(repo repositories.FavoriteRepository) FavoritesServiceInterface {
	return &favoritesService{repo: repo}
}

func (s *favoritesService) SaveFavorite(ctx context.Context, userID string, req request_models.SaveFavoriteRequest) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: missing user id", utils.ErrInvalidInput)
	}
	// Empty tag lists are fine; absent ones mean a malformed payload.
	if req.Activities == nil || req.Cuisines == nil {
		return "", fmt.Errorf("%w: missing preference tags", utils.ErrInvalidInput)
	}

	favorite := &db_models.FavoriteItinerary{
		UserID:             userID,
		Title:              req.Title,
		Date:               req.Date,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		BudgetLevel:        req.Budget,
		Activities:         req.Activities,
		Cuisines:           req.Cuisines,
		GeneratedItinerary: string(req.GeneratedItinerary),
	}

	id, err := s.repo.Create(ctx, favorite)
	if err != nil {
		log.Printf("failed to save favorite for user %s: %v", userID, err)
		return "", fmt.Errorf("%w: %v", utils.ErrSaveFailed, err)
	}

	return id.String(), nil
}

func (s *favoritesService) ListFavorites(ctx context.Context, userID string) ([]response_models.FavoriteResponse, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("failed to list favorites for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrFetchFailed, err)
	}

	responses := make([]response_models.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		responses = append(responses, response_models.FavoriteResponse{
			ID:                 f.ID.String(),
			Title:              f.Title,
			Date:               f.Date,
			StartTime:          f.StartTime,
			EndTime:            f.EndTime,
			Budget:             f.BudgetLevel,
			Activities:         f.Activities,
			Cuisines:           f.Cuisines,
			GeneratedItinerary: f.GeneratedItinerary,
			CreatedAt:          f.CreatedAt,
		})
	}

	return responses, nil
}

// DeleteFavorite is idempotent: deleting an id that no longer exists
// succeeds. Deleting another user's favorite does not.
func (s *favoritesService) DeleteFavorite(ctx context.Context, userID, favoriteID string) error {
	if favoriteID == "" {
		return fmt.Errorf("%w: missing favorite id", utils.ErrInvalidInput)
	}
	if _, err := uuid.Parse(favoriteID); err != nil {
		// A malformed id can never match a stored favorite.
		return nil
	}

	favorite, err := s.repo.GetByID(ctx, favoriteID)
	if err != nil {
		log.Printf("failed to look up favorite %s: %v", favoriteID, err)
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if favorite == nil {
		return nil
	}
	if favorite.UserID != userID {
		return utils.ErrNotFavoriteOwner
	}

	if err := s.repo.DeleteByID(ctx, favoriteID); err != nil {
		log.Printf("failed to delete favorite %s: %v", favoriteID, err)
		return fmt.Errorf("%w: %v", utils.ErrDeleteFailed, err)
	}

	return nil
}

// GetFavorite fetches a favorite for export, enforcing ownership.
func (s *favoritesService) GetFavorite(ctx context.Context, userID, favoriteID string) (*db_models.FavoriteItinerary, error) {
	if favoriteID == "" {
		return nil, fmt.Errorf("%w: missing favorite id", utils.ErrInvalidInput)
	}
	if _, err := uuid.Parse(favoriteID); err != nil {
		return nil, utils.ErrFavoriteNotFound
	}

	favorite, err := s.repo.GetByID(ctx, favoriteID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if favorite == nil {
		return nil, utils.ErrFavoriteNotFound
	}
	if favorite.UserID != userID {
		return nil, utils.ErrNotFavoriteOwner
	}

	return favorite, nil
}
