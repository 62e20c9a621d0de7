package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dateplanner/cmd/fx/catalog_fx"
	"dateplanner/cmd/fx/db_fx"
	"dateplanner/cmd/fx/export_fx"
	"dateplanner/cmd/fx/favorites_fx"
	"dateplanner/cmd/fx/itinerary_fx"
	"dateplanner/internal/api/controllers"
	"dateplanner/internal/infra"
	"dateplanner/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		itinerary_fx.Module,
		favorites_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	favoritesController *controllers.FavoritesController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, favoritesController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	favoritesController *controllers.FavoritesController,
	exportController *controllers.ExportController) {

	r.POST("/generate-itinerary", itineraryController.GenerateItinerary)

	favoritesGroup := r.Group("/favorites")
	favoritesGroup.Use(middleware.JWTAuthMiddleware())
	favoritesGroup.GET("", favoritesController.ListFavorites)
	favoritesGroup.POST("", favoritesController.SaveFavorite)
	favoritesGroup.DELETE("", favoritesController.DeleteFavorite)
	favoritesGroup.GET("/:id/export/ics", exportController.ExportICS)
	favoritesGroup.GET("/:id/export/google", exportController.ExportGoogleCalendar)
}
