package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Error string `json:"error"`
	Raw   string `json:"raw,omitempty"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIError{Error: message})
}

// RespondErrorWithRaw reports a failure alongside the raw upstream text
// that caused it, for diagnostic display.
func RespondErrorWithRaw(c *gin.Context, code int, message, raw string) {
	c.JSON(code, APIError{Error: message, Raw: raw})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, APIError{Error: err.Error()})
	case errors.Is(err, ErrFavoriteNotFound):
		c.JSON(http.StatusNotFound, APIError{Error: "Favorite not found"})
	case errors.Is(err, ErrNotFavoriteOwner):
		c.JSON(http.StatusForbidden, APIError{Error: "Favorite belongs to another user"})
	case errors.Is(err, ErrGenerationFailed):
		log.Printf("Generation error: %v", err)
		c.JSON(http.StatusInternalServerError, APIError{Error: "generation failed"})
	case errors.Is(err, ErrSaveFailed):
		log.Printf("Store error: %v", err)
		c.JSON(http.StatusInternalServerError, APIError{Error: "Failed to save favorite"})
	case errors.Is(err, ErrFetchFailed):
		log.Printf("Store error: %v", err)
		c.JSON(http.StatusInternalServerError, APIError{Error: "Failed to fetch favorites"})
	case errors.Is(err, ErrDeleteFailed):
		log.Printf("Store error: %v", err)
		c.JSON(http.StatusInternalServerError, APIError{Error: "Failed to delete favorite"})
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		c.JSON(http.StatusInternalServerError, APIError{Error: "Internal server error"})
	default:
		log.Printf("Unknown error: %v", err)
		c.JSON(http.StatusInternalServerError, APIError{Error: "Internal server error"})
	}
}
