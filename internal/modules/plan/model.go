// README: Travel request/plan models and request validation.
package plan

import (
	"errors"
	"strings"
	"time"

	"voyago/internal/ai"
	"voyago/internal/maps"
)

const dateLayout = "2006-01-02"

// TravelRequest is one user submission. It is immutable once handed to the
// generation step.
type TravelRequest struct {
	Destination         string   `json:"destination"`
	Origin              string   `json:"origin"`
	DepartureDate       string   `json:"departure_date"`
	ReturnDate          string   `json:"return_date"`
	Travelers           int      `json:"travelers"`
	Budget              float64  `json:"budget"`
	AccommodationType   string   `json:"accommodation_type"`
	Activities          []string `json:"activities"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

// TravelPlan is the structured, best-effort result of one generation call.
type TravelPlan struct {
	ID                 string                `json:"id"`
	Destination        string                `json:"destination"`
	Request            TravelRequest         `json:"request"`
	Itinerary          []ai.DayPlan          `json:"itinerary"`
	Hotels             []ai.HotelSuggestion  `json:"accommodation_suggestions"`
	Flights            []ai.FlightSuggestion `json:"flight_suggestions"`
	EstimatedTotalCost float64               `json:"estimated_total_cost"`
	Recommendations    []string              `json:"recommendations"`
	Tips               []string              `json:"tips"`
	Attractions        []maps.Place          `json:"attractions"`
	DegradedSections   []string              `json:"degraded_sections,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
}

var (
	ErrNotFound = errors.New("plan not found")

	// ErrUpstream wraps completion API failures the user can retry by
	// resubmitting the request.
	ErrUpstream = errors.New("travel plan generation failed")
)

// ValidationError carries all problems found in a TravelRequest.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid travel request: " + strings.Join(e.Problems, ", ")
}

// Validate checks the request against the submission rules. now anchors the
// "departure in the past" check.
func (r TravelRequest) Validate(now time.Time) []string {
	var problems []string

	departure, errDep := time.Parse(dateLayout, r.DepartureDate)
	ret, errRet := time.Parse(dateLayout, r.ReturnDate)
	if errDep != nil || errRet != nil {
		problems = append(problems, "please use YYYY-MM-DD format for dates")
	} else {
		today := now.Truncate(24 * time.Hour)
		if departure.Before(today) {
			problems = append(problems, "departure date cannot be in the past")
		}
		if !ret.After(departure) {
			problems = append(problems, "return date must be after departure date")
		}
	}

	if r.Budget <= 0 {
		problems = append(problems, "budget must be greater than 0")
	}
	if r.Travelers <= 0 {
		problems = append(problems, "number of travelers must be at least 1")
	}
	if strings.TrimSpace(r.Destination) == "" {
		problems = append(problems, "destination cannot be empty")
	}
	return problems
}

// DurationDays is the trip length in days, 0 when the dates do not parse.
func (r TravelRequest) DurationDays() int {
	departure, err := time.Parse(dateLayout, r.DepartureDate)
	if err != nil {
		return 0
	}
	ret, err := time.Parse(dateLayout, r.ReturnDate)
	if err != nil {
		return 0
	}
	return int(ret.Sub(departure).Hours() / 24)
}
