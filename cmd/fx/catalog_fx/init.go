package catalog_fx

import (
	"os"

	"go.uber.org/fx"

	"dateplanner/internal/repositories"
	"dateplanner/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo, provideCatalogService,
)

func provideCatalogRepo() repositories.CatalogRepository {
	dir := os.Getenv("CATALOG_DIR")
	if dir == "" {
		dir = "data"
	}
	return repositories.NewCatalogRepository(dir)
}

func provideCatalogService() services.CatalogServiceInterface {
	return services.NewCatalogService()
}
