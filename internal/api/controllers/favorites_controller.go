package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dateplanner/internal/models/request_models"
	"dateplanner/internal/services"
	"dateplanner/pkg/utils"
)

type FavoritesController struct {
	favoritesService services.FavoritesServiceInterface
	guard            *utils.ActionGuard
}

func NewFavoritesController(favoritesService services.FavoritesServiceInterface, guard *utils.ActionGuard) *FavoritesController {
	return &FavoritesController{favoritesService: favoritesService, guard: guard}
}

// ListFavorites godoc
// @Summary List saved itineraries
// @Tags Favorites
// @Produce json
// @Success 200 {array} response_models.FavoriteResponse
// @Failure 401 {object} utils.APIError
// @Router /favorites [get]
func (f *FavoritesController) ListFavorites(c *gin.Context) {
	favorites, err := f.favoritesService.ListFavorites(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// SaveFavorite godoc
// @Summary Save an itinerary
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body request_models.SaveFavoriteRequest true "Favorite payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} utils.APIError
// @Failure 409 {object} utils.APIError
// @Router /favorites [post]
func (f *FavoritesController) SaveFavorite(c *gin.Context) {
	var req request_models.SaveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")
	key := "save:" + userID
	if !f.guard.TryAcquire(key) {
		utils.RespondError(c, http.StatusConflict, "A save request is already in progress")
		return
	}
	defer f.guard.Release(key)

	id, err := f.favoritesService.SaveFavorite(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// DeleteFavorite godoc
// @Summary Delete a saved itinerary
// @Tags Favorites
// @Produce json
// @Param id query string true "Favorite ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} utils.APIError
// @Failure 403 {object} utils.APIError
// @Router /favorites [delete]
func (f *FavoritesController) DeleteFavorite(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing favorite id")
		return
	}

	if err := f.favoritesService.DeleteFavorite(c.Request.Context(), c.GetString("user_id"), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
