package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dateplanner/internal/models/db_models"
	"dateplanner/internal/models/request_models"
	"dateplanner/pkg/utils"
)

// fakeFavoriteRepo is an in-memory FavoriteRepository. Creates get a
// monotonically increasing CreatedAt and ListByUser sorts newest first,
// matching the gorm implementation's ordering contract.
type fakeFavoriteRepo struct {
	favorites map[uuid.UUID]*db_models.FavoriteItinerary
	clock     int64
	failAll   bool
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[uuid.UUID]*db_models.FavoriteItinerary)}
}

func (f *fakeFavoriteRepo) Create(_ context.Context, favorite *db_models.FavoriteItinerary) (uuid.UUID, error) {
	if f.failAll {
		return uuid.Nil, errors.New("connection refused")
	}
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	f.clock++
	favorite.CreatedAt = f.clock
	f.favorites[favorite.ID] = favorite
	return favorite.ID, nil
}

func (f *fakeFavoriteRepo) ListByUser(_ context.Context, userID string) ([]db_models.FavoriteItinerary, error) {
	if f.failAll {
		return nil, errors.New("connection refused")
	}
	var out []db_models.FavoriteItinerary
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			out = append(out, *fav)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (f *fakeFavoriteRepo) GetByID(_ context.Context, id string) (*db_models.FavoriteItinerary, error) {
	if f.failAll {
		return nil, errors.New("connection refused")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.favorites[parsed], nil
}

func (f *fakeFavoriteRepo) DeleteByID(_ context.Context, id string) error {
	if f.failAll {
		return errors.New("connection refused")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	delete(f.favorites, parsed)
	return nil
}

func saveRequest() request_models.SaveFavoriteRequest {
	return request_models.SaveFavoriteRequest{
		Title:              "Romantic Evening",
		Date:               "2026-02-14",
		StartTime:          "18:00",
		EndTime:            "22:00",
		Budget:             2,
		Activities:         []string{"museum"},
		Cuisines:           []string{"italian"},
		GeneratedItinerary: json.RawMessage(`{"theme":"Romantic & Intimate"}`),
	}
}

func TestSaveFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns an id", func(t *testing.T) {
		repo := newFakeFavoriteRepo()
		service := NewFavoritesService(repo)

		id, err := service.SaveFavorite(ctx, "user-1", saveRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		stored, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "user-1", stored.UserID)
		assert.Equal(t, `{"theme":"Romantic & Intimate"}`, stored.GeneratedItinerary)
	})

	t.Run("accepts empty tag lists", func(t *testing.T) {
		service := NewFavoritesService(newFakeFavoriteRepo())

		req := saveRequest()
		req.Activities = []string{}
		req.Cuisines = []string{}

		id, err := service.SaveFavorite(ctx, "user-1", req)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("rejects absent tag lists", func(t *testing.T) {
		service := NewFavoritesService(newFakeFavoriteRepo())

		req := saveRequest()
		req.Activities = nil

		_, err := service.SaveFavorite(ctx, "user-1", req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("rejects a missing user id", func(t *testing.T) {
		service := NewFavoritesService(newFakeFavoriteRepo())
		_, err := service.SaveFavorite(ctx, "", saveRequest())
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		repo := newFakeFavoriteRepo()
		repo.failAll = true
		service := NewFavoritesService(repo)

		_, err := service.SaveFavorite(ctx, "user-1", saveRequest())
		assert.ErrorIs(t, err, utils.ErrSaveFailed)
	})
}

func TestListFavorites(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFavoriteRepo()
	service := NewFavoritesService(repo)

	_, err := service.SaveFavorite(ctx, "user-1", saveRequest())
	require.NoError(t, err)
	_, err = service.SaveFavorite(ctx, "user-2", saveRequest())
	require.NoError(t, err)

	t.Run("returns only the caller's favorites", func(t *testing.T) {
		favorites, err := service.ListFavorites(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, "Romantic Evening", favorites[0].Title)
		assert.Equal(t, 2, favorites[0].Budget)
	})

	t.Run("newest favorite comes first", func(t *testing.T) {
		repo := newFakeFavoriteRepo()
		service := NewFavoritesService(repo)

		first := saveRequest()
		first.Title = "Older Plan"
		_, err := service.SaveFavorite(ctx, "user-1", first)
		require.NoError(t, err)

		second := saveRequest()
		second.Title = "Newer Plan"
		_, err = service.SaveFavorite(ctx, "user-1", second)
		require.NoError(t, err)

		favorites, err := service.ListFavorites(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, favorites, 2)
		assert.Equal(t, "Newer Plan", favorites[0].Title)
		assert.Equal(t, "Older Plan", favorites[1].Title)
		assert.Greater(t, favorites[0].CreatedAt, favorites[1].CreatedAt)
	})

	t.Run("unknown user gets an empty list", func(t *testing.T) {
		favorites, err := service.ListFavorites(ctx, "user-3")
		require.NoError(t, err)
		assert.Empty(t, favorites)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		repo.failAll = true
		defer func() { repo.failAll = false }()
		_, err := service.ListFavorites(ctx, "user-1")
		assert.ErrorIs(t, err, utils.ErrFetchFailed)
	})
}

func TestDeleteFavorite(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeFavoriteRepo, FavoritesServiceInterface, string) {
		repo := newFakeFavoriteRepo()
		service := NewFavoritesService(repo)
		id, err := service.SaveFavorite(ctx, "user-1", saveRequest())
		require.NoError(t, err)
		return repo, service, id
	}

	t.Run("owner deletes successfully", func(t *testing.T) {
		repo, service, id := setup(t)
		require.NoError(t, service.DeleteFavorite(ctx, "user-1", id))
		stored, _ := repo.GetByID(ctx, id)
		assert.Nil(t, stored)
	})

	t.Run("deleting a missing id succeeds", func(t *testing.T) {
		_, service, _ := setup(t)
		assert.NoError(t, service.DeleteFavorite(ctx, "user-1", uuid.New().String()))
	})

	t.Run("deleting twice succeeds", func(t *testing.T) {
		_, service, id := setup(t)
		require.NoError(t, service.DeleteFavorite(ctx, "user-1", id))
		assert.NoError(t, service.DeleteFavorite(ctx, "user-1", id))
	})

	t.Run("malformed id succeeds without touching the store", func(t *testing.T) {
		repo, service, _ := setup(t)
		assert.NoError(t, service.DeleteFavorite(ctx, "user-1", "not-a-uuid"))
		assert.Len(t, repo.favorites, 1)
	})

	t.Run("foreign owner is rejected and nothing is deleted", func(t *testing.T) {
		repo, service, id := setup(t)
		err := service.DeleteFavorite(ctx, "user-2", id)
		assert.ErrorIs(t, err, utils.ErrNotFavoriteOwner)
		assert.Len(t, repo.favorites, 1)
	})

	t.Run("empty id is invalid input", func(t *testing.T) {
		_, service, _ := setup(t)
		err := service.DeleteFavorite(ctx, "user-1", "")
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})
}

func TestGetFavorite(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFavoriteRepo()
	service := NewFavoritesService(repo)

	id, err := service.SaveFavorite(ctx, "user-1", saveRequest())
	require.NoError(t, err)

	t.Run("owner fetches successfully", func(t *testing.T) {
		favorite, err := service.GetFavorite(ctx, "user-1", id)
		require.NoError(t, err)
		assert.Equal(t, "Romantic Evening", favorite.Title)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		_, err := service.GetFavorite(ctx, "user-1", uuid.New().String())
		assert.ErrorIs(t, err, utils.ErrFavoriteNotFound)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		_, err := service.GetFavorite(ctx, "user-1", "not-a-uuid")
		assert.ErrorIs(t, err, utils.ErrFavoriteNotFound)
	})

	t.Run("foreign owner is forbidden", func(t *testing.T) {
		_, err := service.GetFavorite(ctx, "user-2", id)
		assert.ErrorIs(t, err, utils.ErrNotFavoriteOwner)
	})
}
