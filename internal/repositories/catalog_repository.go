package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"dateplanner/internal/models/catalog_models"
)

const (
	restaurantsFile = "restaurants.csv"
	activitiesFile  = "activities.csv"
)

// CatalogRepository reads the static restaurant/activity reference data.
// The source files never change at runtime, so they are re-read on each
// generation request instead of being cached.
type CatalogRepository interface {
	LoadRestaurants(ctx context.Context) ([]catalog_models.Record, error)
	LoadActivities(ctx context.Context) ([]catalog_models.Record, error)
}

type csvCatalogRepository struct {
	dir string
}

func NewCatalogRepository(dir string) CatalogRepository {
	return &csvCatalogRepository{dir: dir}
}

func (r *csvCatalogRepository) LoadRestaurants(ctx context.Context) ([]catalog_models.Record, error) {
	return r.load(ctx, restaurantsFile)
}

func (r *csvCatalogRepository) LoadActivities(ctx context.Context) ([]catalog_models.Record, error) {
	return r.load(ctx, activitiesFile)
}

func (r *csvCatalogRepository) load(ctx context.Context, name string) ([]catalog_models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(r.dir, name)
	f, err := os.Open(path)
	if err != nil {
		// A missing source file yields an empty catalog, not a failure.
		log.Printf("Catalog file not found: %s", path)
		return nil, nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	records := make([]catalog_models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// Tolerate slightly short rows; drop anything worse.
		if len(row) < len(headers)-2 {
			continue
		}
		rec := make(catalog_models.Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rec[header] = strings.TrimSpace(row[i])
			} else {
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}

	log.Printf("Loaded %d records from %s", len(records), path)
	return records, nil
}
