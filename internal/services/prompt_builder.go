package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"dateplanner/internal/models/catalog_models"
	"dateplanner/internal/models/request_models"
	"dateplanner/pkg/utils"
)

// ItineraryThemes are the three fixed themes the model is asked for, in
// the order they must appear in its output.
var ItineraryThemes = []string{
	"Romantic & Intimate",
	"Fun & Active",
	"Cultural & Relaxed",
}

// BuildItineraryPrompt renders the preferences and the filtered catalog
// into a single instruction string with an explicit output schema. The
// string is built once per request, deterministically from its inputs.
func BuildItineraryPrompt(req request_models.GenerateItineraryRequest, restaurants, activities []catalog_models.Record) string {
	budgetLabel := utils.BudgetLabel(req.BudgetLevel)

	var b strings.Builder
	b.WriteString("You are a Vancouver-based date planner AI.\n")
	b.WriteString("Use the following restaurant and activity data to create 3 DIFFERENT ideal date itineraries based on the user's preferences.\n")
	b.WriteString("Each itinerary should be unique and offer different experiences while staying within the user's constraints.\n\n")

	b.WriteString("User preferences:\n")
	fmt.Fprintf(&b, "- Date: %s\n", req.Date)
	fmt.Fprintf(&b, "- Time: %s to %s\n", req.Time.Start, req.Time.End)
	fmt.Fprintf(&b, "- Budget Level: %d (%s)\n", req.BudgetLevel, budgetLabel)
	fmt.Fprintf(&b, "- Preferred Activities: %s\n", strings.Join(req.Activities, ", "))
	fmt.Fprintf(&b, "- Preferred Cuisines: %s\n\n", strings.Join(req.Cuisines, ", "))

	b.WriteString("Available Restaurant options (filtered by preferences):\n")
	b.WriteString(recordsJSON(restaurants))
	b.WriteString("\n\nAvailable Activity options (filtered by preferences):\n")
	b.WriteString(recordsJSON(activities))
	b.WriteString("\n\n")

	b.WriteString("Create 3 distinct itineraries with different themes:\n")
	for i, theme := range ItineraryThemes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, theme)
	}
	b.WriteString("\nReturn ONLY valid JSON in this exact format:\n")
	b.WriteString("{\n  \"itineraries\": [\n")
	for i, theme := range ItineraryThemes {
		b.WriteString(itineraryExample(i+1, theme, req, budgetLabel))
		if i < len(ItineraryThemes)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("  ]\n}\n\n")

	b.WriteString("Make sure each itinerary:\n")
	b.WriteString("- Uses different restaurants and activities when possible\n")
	b.WriteString("- Fits within the specified time frame\n")
	b.WriteString("- Respects the budget constraints\n")
	b.WriteString("- Incorporates the user's preferred activities and cuisines\n")
	b.WriteString("- Provides a logical flow of events throughout the date\n")

	return b.String()
}

func itineraryExample(id int, theme string, req request_models.GenerateItineraryRequest, budgetLabel string) string {
	return fmt.Sprintf(`    {
      "id": %d,
      "theme": %q,
      "date": %q,
      "time": {"start": %q, "end": %q},
      "budgetLevel": %d,
      "budgetLabel": %q,
      "timeline": [
        {
          "time": "HH:MM",
          "activity": "Activity Name",
          "location": "Location Name",
          "description": "Brief description",
          "type": "restaurant|activity"
        }
      ],
      "estimatedCost": "$XX-XX",
      "highlights": ["highlight1", "highlight2"]
    }`, id, theme, req.Date, req.Time.Start, req.Time.End, req.BudgetLevel, budgetLabel)
}

func recordsJSON(records []catalog_models.Record) string {
	if len(records) == 0 {
		return "[]"
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
