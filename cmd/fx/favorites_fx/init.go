package favorites_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dateplanner/internal/api/controllers"
	"dateplanner/internal/repositories"
	"dateplanner/internal/services"
	"dateplanner/pkg/utils"
)

var Module = fx.Provide(
	provideFavoriteRepo, provideFavoritesService, provideFavoritesController,
)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoritesService(favoriteRepo repositories.FavoriteRepository) services.FavoritesServiceInterface {
	return services.NewFavoritesService(favoriteRepo)
}

func provideFavoritesController(favoritesService services.FavoritesServiceInterface, guard *utils.ActionGuard) *controllers.FavoritesController {
	return controllers.NewFavoritesController(favoritesService, guard)
}
