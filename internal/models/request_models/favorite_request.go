package request_models

import "encoding/json"

// SaveFavoriteRequest carries a favorited itinerary plus the preferences
// that produced it. GeneratedItinerary is accepted either as a JSON object
// or as an already-serialized string; it is persisted verbatim. The tag
// slices must be present but may be empty: a plan generated with no
// preferences is still saveable.
type SaveFavoriteRequest struct {
	Title              string          `json:"title" binding:"required"`
	Date               string          `json:"date" binding:"required"`
	StartTime          string          `json:"startTime" binding:"required"`
	EndTime            string          `json:"endTime" binding:"required"`
	Budget             int             `json:"budget" binding:"required,min=1,max=4"`
	Activities         []string        `json:"activities"`
	Cuisines           []string        `json:"cuisines"`
	GeneratedItinerary json.RawMessage `json:"generatedItinerary" binding:"required"`
}
