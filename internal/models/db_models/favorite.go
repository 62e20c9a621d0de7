package db_models

import "github.com/lib/pq"

// FavoriteItinerary is one saved plan, always scoped to exactly one user.
// GeneratedItinerary is stored as a serialized JSON string, not a nested
// structure.
type FavoriteItinerary struct {
	BaseModel
	UserID             string `gorm:"index;not null"`
	Title              string
	Date               string
	StartTime          string
	EndTime            string
	BudgetLevel        int
	Activities         pq.StringArray `gorm:"type:text[]"`
	Cuisines           pq.StringArray `gorm:"type:text[]"`
	GeneratedItinerary string         `gorm:"type:text"`
}
