package services

import (
	"strings"

	"dateplanner/internal/models/catalog_models"
)

// MaxRecordsPerCategory caps each filtered list to keep the prompt small.
// The cap takes the first N records in original order; it is not a
// relevance ranking.
const MaxRecordsPerCategory = 15

type CatalogServiceInterface interface {
	FilterRestaurants(records []catalog_models.Record, cuisines []string, budgetLevel int) []catalog_models.Record
	FilterActivities(records []catalog_models.Record, activities []string) []catalog_models.Record
}

type CatalogService struct{}

func NewCatalogService() CatalogServiceInterface {
	return &CatalogService{}
}

// FilterRestaurants keeps records whose category listing contains any of
// the requested cuisines (case-insensitive substring; an empty request
// matches everything) and whose price tier fits under the budget level.
// Unparsable price tiers count as 0 and always fit. Order is preserved.
func (s *CatalogService) FilterRestaurants(records []catalog_models.Record, cuisines []string, budgetLevel int) []catalog_models.Record {
	var filtered []catalog_models.Record
	for _, record := range records {
		if !matchesAnyTag(record.Categories(), cuisines) {
			continue
		}
		if budgetLevel > 0 && record.PriceLevel() > budgetLevel {
			continue
		}
		filtered = append(filtered, record)
	}
	return capRecords(filtered)
}

// FilterActivities keeps records whose type or use field contains any of
// the requested activity tags. Order is preserved.
func (s *CatalogService) FilterActivities(records []catalog_models.Record, activities []string) []catalog_models.Record {
	var filtered []catalog_models.Record
	for _, record := range records {
		if matchesAnyTag(record.Type(), activities) || matchesAnyTag(record.Use(), activities) {
			filtered = append(filtered, record)
		}
	}
	return capRecords(filtered)
}

func matchesAnyTag(field string, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if strings.Contains(field, strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

func capRecords(records []catalog_models.Record) []catalog_models.Record {
	if len(records) > MaxRecordsPerCategory {
		return records[:MaxRecordsPerCategory]
	}
	return records
}
