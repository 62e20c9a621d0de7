package export_fx

import (
	"go.uber.org/fx"

	"dateplanner/internal/api/controllers"
	"dateplanner/internal/services"
)

var Module = fx.Provide(
	provideExportService, provideExportController,
)

func provideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func provideExportController(favoritesService services.FavoritesServiceInterface, exportService services.ExportServiceInterface) *controllers.ExportController {
	return controllers.NewExportController(favoritesService, exportService)
}
