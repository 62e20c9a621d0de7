package response_models

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// ItineraryStep is one chronological entry of a generated date plan.
type ItineraryStep struct {
	Time          string `json:"time"`
	Activity      string `json:"activity"`
	Location      string `json:"location,omitempty"`
	Description   string `json:"description,omitempty"`
	EstimatedCost string `json:"estimatedCost,omitempty"`
	Type          string `json:"type,omitempty"`
}

// GeneratedItinerary is the single normalized itinerary shape. The
// normalizer collapses the model's field variants into it exactly once, so
// every consumer can rely on Timeline being the ordered step sequence and
// Activity being the step label.
type GeneratedItinerary struct {
	ID                string          `json:"id"`
	Theme             string          `json:"theme"`
	Title             string          `json:"title,omitempty"`
	Date              string          `json:"date"`
	Time              TimeWindow      `json:"time"`
	BudgetLevel       int             `json:"budgetLevel"`
	BudgetLabel       string          `json:"budgetLabel"`
	Timeline          []ItineraryStep `json:"timeline"`
	EstimatedCost     string          `json:"estimatedCost,omitempty"`
	Highlights        []string        `json:"highlights"`
	Tips              []string        `json:"tips,omitempty"`
	EmergencyContacts []string        `json:"emergencyContacts,omitempty"`
}

// GenerateItineraryResponse is the wire response of the generation
// endpoint. Degraded is set when the model output could not be parsed and
// the itineraries were synthesized from the filtered catalog; Raw then
// carries the model text for diagnostics.
type GenerateItineraryResponse struct {
	Itineraries []GeneratedItinerary `json:"itineraries"`
	Degraded    bool                 `json:"degraded,omitempty"`
	Raw         string               `json:"raw,omitempty"`
}
