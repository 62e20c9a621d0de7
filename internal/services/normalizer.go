package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dateplanner/internal/models/catalog_models"
	"dateplanner/internal/models/request_models"
	"dateplanner/internal/models/response_models"
	"dateplanner/pkg/utils"
)

// rawStep accepts the step field variants the model (and older payloads)
// emit; "name" and "notes" are folded into "activity" and "description"
// exactly once, here.
type rawStep struct {
	Time          string `json:"time"`
	Activity      string `json:"activity"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	Notes         string `json:"notes"`
	EstimatedCost string `json:"estimatedCost"`
	Type          string `json:"type"`
}

// rawItinerary tolerates the "activities"-vs-"timeline" shape variance.
type rawItinerary struct {
	Theme             string                     `json:"theme"`
	Title             string                     `json:"title"`
	Date              string                     `json:"date"`
	Time              response_models.TimeWindow `json:"time"`
	BudgetLevel       int                        `json:"budgetLevel"`
	BudgetLabel       string                     `json:"budgetLabel"`
	Timeline          []rawStep                  `json:"timeline"`
	Activities        []rawStep                  `json:"activities"`
	EstimatedCost     string                     `json:"estimatedCost"`
	Highlights        []string                   `json:"highlights"`
	Tips              []string                   `json:"tips"`
	EmergencyContacts []string                   `json:"emergencyContacts"`
}

type rawEnvelope struct {
	Itineraries []rawItinerary `json:"itineraries"`
}

// ResponseNormalizer turns raw model text into validated itineraries. It
// is total: once constructed with catalog records to synthesize from, it
// always produces at least one itinerary, degraded if need be.
type ResponseNormalizer struct{}

func NewResponseNormalizer() *ResponseNormalizer {
	return &ResponseNormalizer{}
}

// Normalize parses and repairs the model output. Partial payloads get
// structural defaults; text with no recoverable JSON yields a single
// deterministic fallback itinerary with Degraded set and the raw text
// carried along for diagnostics.
func (n *ResponseNormalizer) Normalize(raw string, req request_models.GenerateItineraryRequest, restaurants, activities []catalog_models.Record) response_models.GenerateItineraryResponse {
	cleaned := CleanModelJSON(raw)

	var envelope rawEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil || len(envelope.Itineraries) == 0 {
		// A bare itinerary object is accepted and wrapped.
		var single rawItinerary
		if err := json.Unmarshal([]byte(cleaned), &single); err == nil && !single.empty() {
			envelope.Itineraries = []rawItinerary{single}
		}
	}

	if len(envelope.Itineraries) == 0 {
		return response_models.GenerateItineraryResponse{
			Itineraries: []response_models.GeneratedItinerary{n.fallbackItinerary(req, restaurants, activities)},
			Degraded:    true,
			Raw:         raw,
		}
	}

	itineraries := make([]response_models.GeneratedItinerary, 0, len(envelope.Itineraries))
	for _, it := range envelope.Itineraries {
		itineraries = append(itineraries, n.repair(it, req, restaurants, activities))
	}

	return response_models.GenerateItineraryResponse{Itineraries: itineraries}
}

func (r rawItinerary) empty() bool {
	return r.Theme == "" && r.Title == "" && len(r.Timeline) == 0 && len(r.Activities) == 0
}

// repair fills structural defaults on a partially valid itinerary.
func (n *ResponseNormalizer) repair(it rawItinerary, req request_models.GenerateItineraryRequest, restaurants, activities []catalog_models.Record) response_models.GeneratedItinerary {
	steps := it.Timeline
	if len(steps) == 0 {
		steps = it.Activities
	}

	timeline := make([]response_models.ItineraryStep, 0, len(steps))
	for _, s := range steps {
		timeline = append(timeline, normalizeStep(s))
	}
	if len(timeline) == 0 {
		timeline = n.fallbackTimeline(restaurants, activities)
	}

	theme := it.Theme
	if theme == "" {
		theme = it.Title
	}
	if theme == "" {
		theme = fmt.Sprintf("Date at %s", firstName(restaurants, "the restaurant"))
	}

	date := it.Date
	if date == "" {
		date = req.Date
	}
	if date == "" {
		date = utils.Today()
	}

	window := it.Time
	if window.Start == "" {
		window = response_models.TimeWindow{Start: req.Time.Start, End: req.Time.End}
	}

	budgetLevel := it.BudgetLevel
	if budgetLevel == 0 {
		budgetLevel = req.BudgetLevel
	}
	budgetLabel := it.BudgetLabel
	if budgetLabel == "" {
		budgetLabel = utils.BudgetLabel(budgetLevel)
	}

	return response_models.GeneratedItinerary{
		ID:                uuid.New().String(),
		Theme:             theme,
		Title:             it.Title,
		Date:              date,
		Time:              window,
		BudgetLevel:       budgetLevel,
		BudgetLabel:       budgetLabel,
		Timeline:          timeline,
		EstimatedCost:     it.EstimatedCost,
		Highlights:        orEmpty(it.Highlights),
		Tips:              it.Tips,
		EmergencyContacts: it.EmergencyContacts,
	}
}

func normalizeStep(s rawStep) response_models.ItineraryStep {
	activity := s.Activity
	if activity == "" {
		activity = s.Name
	}
	if activity == "" {
		activity = "Activity"
	}
	description := s.Description
	if description == "" {
		description = s.Notes
	}
	return response_models.ItineraryStep{
		Time:          s.Time,
		Activity:      activity,
		Location:      s.Location,
		Description:   description,
		EstimatedCost: s.EstimatedCost,
		Type:          s.Type,
	}
}

// fallbackTimeline builds the deterministic two-step evening from the
// first filtered restaurant and activity.
func (n *ResponseNormalizer) fallbackTimeline(restaurants, activities []catalog_models.Record) []response_models.ItineraryStep {
	dinner := response_models.ItineraryStep{
		Time:        "6:00 PM",
		Activity:    "Dinner",
		Location:    "Restaurant location",
		Description: "Enjoy a relaxed dinner together.",
		Type:        "restaurant",
	}
	if len(restaurants) > 0 {
		r := restaurants[0]
		dinner.Activity = fmt.Sprintf("Dinner at %s", r.Name())
		if r.Address() != "" {
			dinner.Location = r.Address()
		}
	}

	evening := response_models.ItineraryStep{
		Time:        "8:00 PM",
		Activity:    "Evening activity",
		Description: "Great for couples!",
		Type:        "activity",
	}
	if len(activities) > 0 {
		a := activities[0]
		if a.Name() != "" {
			evening.Activity = a.Name()
		}
		if a.Address() != "" {
			evening.Location = a.Address()
		}
	}

	return []response_models.ItineraryStep{dinner, evening}
}

// fallbackItinerary is the total-failure path: a complete synthetic plan
// derived only from the request and the first filtered catalog records.
func (n *ResponseNormalizer) fallbackItinerary(req request_models.GenerateItineraryRequest, restaurants, activities []catalog_models.Record) response_models.GeneratedItinerary {
	date := req.Date
	if date == "" {
		date = utils.Today()
	}

	return response_models.GeneratedItinerary{
		ID:          uuid.New().String(),
		Theme:       "Date Night",
		Title:       fmt.Sprintf("Date Night at %s", firstName(restaurants, "a local favorite")),
		Date:        date,
		Time:        response_models.TimeWindow{Start: req.Time.Start, End: req.Time.End},
		BudgetLevel: req.BudgetLevel,
		BudgetLabel: utils.BudgetLabel(req.BudgetLevel),
		Timeline:    n.fallbackTimeline(restaurants, activities),
		Highlights:  []string{},
		Tips: []string{
			"Check restaurant hours and make reservations",
			"Consider traffic and parking",
			"Dress appropriately for the weather",
		},
		EmergencyContacts: []string{},
	}
}

func firstName(records []catalog_models.Record, fallback string) string {
	if len(records) > 0 && records[0].Name() != "" {
		return records[0].Name()
	}
	return fallback
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// CleanModelJSON strips markdown code fences and, when the remainder is
// still not valid JSON, extracts the first balanced object or array span.
func CleanModelJSON(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```JSON", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	if json.Valid([]byte(cleaned)) {
		return cleaned
	}

	objStart := strings.Index(cleaned, "{")
	arrStart := strings.Index(cleaned, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatching(cleaned, objStart, '{', '}'); end != -1 {
			return strings.TrimSpace(cleaned[objStart : end+1])
		}
	} else if arrStart != -1 {
		if end := findMatching(cleaned, arrStart, '[', ']'); end != -1 {
			return strings.TrimSpace(cleaned[arrStart : end+1])
		}
	}

	return cleaned
}

func findMatching(s string, start int, open, close byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
