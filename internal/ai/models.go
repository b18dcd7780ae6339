package ai

// PlanRequest holds the trip facts serialized into the plan prompt.
type PlanRequest struct {
	Destination         string
	Origin              string
	DepartureDate       string // YYYY-MM-DD
	ReturnDate          string // YYYY-MM-DD
	DurationDays        int
	Budget              float64
	Travelers           int
	AccommodationType   string
	Activities          []string
	DietaryRestrictions []string
}

// DayPlan is one day of the generated itinerary.
type DayPlan struct {
	Day           int      `json:"day"`
	Date          string   `json:"date"`
	Activities    []string `json:"activities"`
	Meals         []string `json:"meals"`
	EstimatedCost float64  `json:"estimated_cost"`
}

// HotelSuggestion is an advisory accommodation recommendation. It has no
// relationship to real inventory.
type HotelSuggestion struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
}

// FlightSuggestion is an advisory flight recommendation.
type FlightSuggestion struct {
	Route          string  `json:"route"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
	EstimatedPrice float64 `json:"estimated_price"`
	Airline        string  `json:"airline"`
}

// PlanSections captures the structured output parsed from the model's reply.
type PlanSections struct {
	Itinerary          []DayPlan          `json:"itinerary"`
	Hotels             []HotelSuggestion  `json:"accommodation_suggestions"`
	Flights            []FlightSuggestion `json:"flight_suggestions"`
	EstimatedTotalCost float64            `json:"estimated_total_cost"`
	Recommendations    []string           `json:"recommendations"`

	// Degraded lists sections that could not be parsed from the reply and
	// were replaced with empty collections.
	Degraded []string `json:"-"`
}
