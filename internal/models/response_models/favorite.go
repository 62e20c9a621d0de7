package response_models

// FavoriteResponse mirrors one stored favorite. GeneratedItinerary stays a
// serialized string; readers deserialize it before rendering.
type FavoriteResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Date               string   `json:"date"`
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	Budget             int      `json:"budget"`
	Activities         []string `json:"activities"`
	Cuisines           []string `json:"cuisines"`
	GeneratedItinerary string   `json:"generatedItinerary"`
	CreatedAt          int64    `json:"createdAt"`
}
