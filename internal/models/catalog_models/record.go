package catalog_models

import (
	"strconv"
	"strings"
)

// Record is one row of the static catalog data (a restaurant or an
// activity), keyed by CSV header. No schema is enforced beyond the handful
// of columns the filter and prompt builder read.
type Record map[string]string

// Categories returns the lowercased category listing of a restaurant row.
func (r Record) Categories() string {
	return strings.ToLower(r["categories"])
}

// PriceLevel parses the 1-4 price tier from the RestaurantsPriceRange2
// column. Unparsable or absent values yield 0, which always passes an
// upper-bound budget check.
func (r Record) PriceLevel() int {
	n, err := strconv.Atoi(strings.TrimSpace(r["RestaurantsPriceRange2"]))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Type returns the lowercased type column of an activity row.
func (r Record) Type() string {
	return strings.ToLower(r["type"])
}

// Use returns the lowercased use column of an activity row.
func (r Record) Use() string {
	return strings.ToLower(r["use"])
}

// Name returns the display name of the venue, tolerating the column
// spellings that appear across the source files.
func (r Record) Name() string {
	for _, key := range []string{"name", "Name", "NAME"} {
		if v := strings.TrimSpace(r[key]); v != "" {
			return v
		}
	}
	return ""
}

// Address returns the street address of the venue when present.
func (r Record) Address() string {
	for _, key := range []string{"address", "Address", "ADDRESS"} {
		if v := strings.TrimSpace(r[key]); v != "" {
			return v
		}
	}
	return ""
}
