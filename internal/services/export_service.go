package services

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	ics "github.com/arran4/golang-ical"

	"dateplanner/internal/models/db_models"
	"dateplanner/internal/models/response_models"
	"dateplanner/pkg/utils"
)

type ExportServiceInterface interface {
	BuildICS(favorite *db_models.FavoriteItinerary) string
	BuildGoogleCalendarLink(favorite *db_models.FavoriteItinerary) string
}

type exportService struct{}

func NewExportService() ExportServiceInterface {
	return &exportService{}
}

// BuildICS renders a single-event calendar for the favorite. Timestamps
// are floating local time, so the event lands at the planned wall-clock
// hour regardless of the importer's timezone.
func (s *exportService) BuildICS(favorite *db_models.FavoriteItinerary) string {
	cal := ics.NewCalendar()
	cal.SetProductId("-//DatePlanner//EN")

	start := localTimestamp(favorite.Date, favorite.StartTime)

	event := cal.AddEvent(fmt.Sprintf("%s@dateplanner", favorite.ID))
	// DTSTAMP mirrors DTSTART so the document is stable for a given
	// favorite.
	event.SetProperty(ics.ComponentPropertyDtstamp, start)
	event.SetProperty(ics.ComponentPropertyDtStart, start)
	event.SetProperty(ics.ComponentPropertyDtEnd, localTimestamp(favorite.Date, favorite.EndTime))
	event.SetProperty(ics.ComponentPropertySummary, EventSummary(favorite.Title))
	event.SetProperty(ics.ComponentPropertyDescription, "Planned with DatePlanner!")

	return cal.Serialize()
}

// BuildGoogleCalendarLink builds a prefilled Google Calendar event URL.
func (s *exportService) BuildGoogleCalendarLink(favorite *db_models.FavoriteItinerary) string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", EventSummary(favorite.Title))
	params.Set("dates", fmt.Sprintf("%s/%s",
		localTimestamp(favorite.Date, favorite.StartTime),
		localTimestamp(favorite.Date, favorite.EndTime)))
	params.Set("details", eventDetails(favorite))

	return "https://calendar.google.com/calendar/render?" + params.Encode()
}

// EventSummary shortens a combined itinerary title to its leading
// segment, cutting at the first dash, en dash or pipe.
func EventSummary(title string) string {
	cut := len(title)
	for _, sep := range []string{"-", "–", "|"} {
		if idx := strings.Index(title, sep); idx != -1 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(title[:cut])
}

// eventDetails enriches the description with the saved itinerary's theme
// and highlights when the stored JSON still parses.
func eventDetails(favorite *db_models.FavoriteItinerary) string {
	details := "Planned with DatePlanner!"

	var itinerary response_models.GeneratedItinerary
	if err := json.Unmarshal([]byte(favorite.GeneratedItinerary), &itinerary); err != nil {
		return details
	}

	var lines []string
	if itinerary.Theme != "" {
		lines = append(lines, fmt.Sprintf("Theme: %s", itinerary.Theme))
	}
	if len(itinerary.Highlights) > 0 {
		lines = append(lines, "Highlights: "+strings.Join(itinerary.Highlights, ", "))
	}
	lines = append(lines, details)

	return strings.Join(lines, "\n")
}

func localTimestamp(date, clock string) string {
	return utils.CompactDate(date) + "T" + utils.CompactClock(clock)
}
