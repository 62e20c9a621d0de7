package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrGenerationFailed = errors.New("generation failed")
	ErrSaveFailed       = errors.New("failed to save favorite")
	ErrFetchFailed      = errors.New("failed to fetch favorites")
	ErrDeleteFailed     = errors.New("failed to delete favorite")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrNotFavoriteOwner = errors.New("favorite belongs to another user")
	ErrDatabaseError    = errors.New("database error")
)
