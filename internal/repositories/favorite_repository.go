package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "dateplanner/internal/models/db_models"
)

// FavoriteRepository is the CRUD facade over the favorites collection.
// Every read carries a mandatory user_id equality filter upstream of this
// layer or inside it; no query ever spans users.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *dbm.FavoriteItinerary) (uuid.UUID, error)
	ListByUser(ctx context.Context, userID string) ([]dbm.FavoriteItinerary, error)
	GetByID(ctx context.Context, id string) (*dbm.FavoriteItinerary, error)
	DeleteByID(ctx context.Context, id string) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *dbm.FavoriteItinerary) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return uuid.Nil, err
	}
	return favorite.ID, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]dbm.FavoriteItinerary, error) {
	var favorites []dbm.FavoriteItinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) GetByID(ctx context.Context, id string) (*dbm.FavoriteItinerary, error) {
	var favorite dbm.FavoriteItinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbm.FavoriteItinerary{}).Error
}
