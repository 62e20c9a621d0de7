package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dateplanner/internal/services"
	"dateplanner/pkg/utils"
)

type ExportController struct {
	favoritesService services.FavoritesServiceInterface
	exportService    services.ExportServiceInterface
}

func NewExportController(favoritesService services.FavoritesServiceInterface, exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{favoritesService: favoritesService, exportService: exportService}
}

// ExportICS godoc
// @Summary Download a favorite as an .ics file
// @Tags Export
// @Produce text/calendar
// @Param id path string true "Favorite ID"
// @Success 200 {string} string
// @Failure 404 {object} utils.APIError
// @Router /favorites/{id}/export/ics [get]
func (e *ExportController) ExportICS(c *gin.Context) {
	favorite, err := e.favoritesService.GetFavorite(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	body := e.exportService.BuildICS(favorite)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "date-night.ics"))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// ExportGoogleCalendar godoc
// @Summary Get a Google Calendar link for a favorite
// @Tags Export
// @Produce json
// @Param id path string true "Favorite ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.APIError
// @Router /favorites/{id}/export/google [get]
func (e *ExportController) ExportGoogleCalendar(c *gin.Context) {
	favorite, err := e.favoritesService.GetFavorite(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": e.exportService.BuildGoogleCalendarLink(favorite)})
}
