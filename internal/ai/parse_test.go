package ai

import (
	"errors"
	"reflect"
	"testing"
)

const fullReply = "```json\n" + `{
  "itinerary": [
    {"day": 1, "date": "2026-09-01", "activities": ["Louvre"], "meals": ["Cafe A", "Bistro B"], "estimated_cost": 150.0},
    {"day": 2, "date": "2026-09-02", "activities": ["Versailles"], "meals": ["Cafe C"], "estimated_cost": 200.0}
  ],
  "accommodation_suggestions": [
    {"name": "Hotel Lutetia", "type": "hotel", "price_per_night": 320.0, "rating": 4.7, "location": "Saint-Germain", "amenities": ["wifi", "spa"]}
  ],
  "flight_suggestions": [
    {"route": "JFK - CDG", "departure_time": "2026-09-01 08:00", "arrival_time": "2026-09-01 20:00", "estimated_price": 650.0, "airline": "Air France"}
  ],
  "estimated_total_cost": 2800.0,
  "recommendations": ["Book early", "Get travel insurance"]
}` + "\n```"

func TestParsePlanText_FullReply(t *testing.T) {
	got, err := ParsePlanText(fullReply)
	if err != nil {
		t.Fatalf("ParsePlanText() error = %v", err)
	}
	if len(got.Itinerary) != 2 {
		t.Errorf("len(Itinerary) = %d, want 2", len(got.Itinerary))
	}
	if got.Itinerary[0].Day != 1 || got.Itinerary[0].Date != "2026-09-01" {
		t.Errorf("Itinerary[0] = %+v", got.Itinerary[0])
	}
	if len(got.Hotels) != 1 || got.Hotels[0].Name != "Hotel Lutetia" {
		t.Errorf("Hotels = %+v", got.Hotels)
	}
	if len(got.Flights) != 1 || got.Flights[0].Route != "JFK - CDG" {
		t.Errorf("Flights = %+v", got.Flights)
	}
	if got.EstimatedTotalCost != 2800.0 {
		t.Errorf("EstimatedTotalCost = %v, want 2800", got.EstimatedTotalCost)
	}
	if !reflect.DeepEqual(got.Recommendations, []string{"Book early", "Get travel insurance"}) {
		t.Errorf("Recommendations = %v", got.Recommendations)
	}
	if len(got.Degraded) != 0 {
		t.Errorf("Degraded = %v, want none", got.Degraded)
	}
}

// A reply that omits a section must yield an empty (non-nil) collection for it.
func TestParsePlanText_MissingSection(t *testing.T) {
	got, err := ParsePlanText(`{"itinerary": [{"day": 1, "date": "2026-09-01"}]}`)
	if err != nil {
		t.Fatalf("ParsePlanText() error = %v", err)
	}
	if got.Flights == nil || len(got.Flights) != 0 {
		t.Errorf("Flights = %#v, want empty non-nil slice", got.Flights)
	}
	if got.Hotels == nil || len(got.Hotels) != 0 {
		t.Errorf("Hotels = %#v, want empty non-nil slice", got.Hotels)
	}
	if got.Recommendations == nil || len(got.Recommendations) != 0 {
		t.Errorf("Recommendations = %#v, want empty non-nil slice", got.Recommendations)
	}
}

// A malformed section degrades to empty, without failing the other sections.
func TestParsePlanText_MalformedSection(t *testing.T) {
	got, err := ParsePlanText(`{
		"itinerary": "not an array",
		"flight_suggestions": [{"route": "A - B", "estimated_price": 100.0}]
	}`)
	if err != nil {
		t.Fatalf("ParsePlanText() error = %v", err)
	}
	if len(got.Itinerary) != 0 {
		t.Errorf("Itinerary = %+v, want empty", got.Itinerary)
	}
	if len(got.Flights) != 1 {
		t.Errorf("Flights = %+v, want 1 entry", got.Flights)
	}
	found := false
	for _, d := range got.Degraded {
		if d == "itinerary" {
			found = true
		}
	}
	if !found {
		t.Errorf("Degraded = %v, want to contain itinerary", got.Degraded)
	}
}

func TestParsePlanText_ObjectWrappedInProse(t *testing.T) {
	got, err := ParsePlanText("Here is your plan:\n{\"recommendations\": [\"Pack light\"]}\nEnjoy!")
	if err != nil {
		t.Fatalf("ParsePlanText() error = %v", err)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0] != "Pack light" {
		t.Errorf("Recommendations = %v", got.Recommendations)
	}
}

func TestParsePlanText_NoJSON(t *testing.T) {
	_, err := ParsePlanText("Sorry, I cannot help with that.")
	if err == nil {
		t.Fatal("expected error for reply without JSON")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Error("parse failure must not be classified as an upstream availability error")
	}
}

func TestParseTips(t *testing.T) {
	text := `1. Learn basic French phrases.
- Carry some cash for small cafes.

* Validate metro tickets before boarding.
10) Keep a copy of your passport.`
	want := []string{
		"Learn basic French phrases.",
		"Carry some cash for small cafes.",
		"Validate metro tickets before boarding.",
		"Keep a copy of your passport.",
	}
	got := parseTips(text)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseTips() = %v, want %v", got, want)
	}
}
