package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dateplanner/internal/models/request_models"
	"dateplanner/internal/services"
	"dateplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	guard            *utils.ActionGuard
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, guard *utils.ActionGuard) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService, guard: guard}
}

// GenerateItinerary godoc
// @Summary Generate date itineraries
// @Description Build themed date-night itineraries from the caller's preferences
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Preference payload"
// @Success 200 {object} response_models.GenerateItineraryResponse
// @Failure 400 {object} utils.APIError
// @Failure 409 {object} utils.APIError
// @Router /generate-itinerary [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	key := "generate:" + callerKey(c)
	if !i.guard.TryAcquire(key) {
		utils.RespondError(c, http.StatusConflict, "A generation request is already in progress")
		return
	}
	defer i.guard.Release(key)

	resp, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// callerKey identifies the caller for in-flight guarding: the
// authenticated user when present, otherwise the client address.
func callerKey(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	return c.ClientIP()
}
