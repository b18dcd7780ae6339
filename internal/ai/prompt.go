package ai

import (
	"fmt"
	"strings"
)

const (
	planSystemPrompt = "You are an expert travel agent. Provide detailed, practical, and budget-conscious travel plans in valid JSON format."
	tipsSystemPrompt = "You are a knowledgeable travel expert providing practical advice."
)

// buildPlanPrompt serializes the trip facts and the expected JSON shape into a
// natural-language prompt.
func buildPlanPrompt(req PlanRequest) string {
	activities := strings.Join(req.Activities, ", ")
	if activities == "" {
		activities = "None"
	}
	dietary := strings.Join(req.DietaryRestrictions, ", ")
	if dietary == "" {
		dietary = "None"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Create a detailed travel plan for the following trip:

Destination: %s
Origin: %s
Departure: %s
Return: %s
Duration: %d days
Budget: $%.2f USD
Travelers: %d
Accommodation Type: %s
Preferred Activities: %s
Dietary Restrictions: %s
`, req.Destination, req.Origin, req.DepartureDate, req.ReturnDate,
		req.DurationDays, req.Budget, req.Travelers, req.AccommodationType,
		activities, dietary)

	b.WriteString(`
Respond with JSON of the following structure:
{
    "itinerary": [
        {
            "day": 1,
            "date": "YYYY-MM-DD",
            "activities": ["activity1", "activity2"],
            "meals": ["breakfast location", "lunch location", "dinner location"],
            "estimated_cost": 150.00
        }
    ],
    "accommodation_suggestions": [
        {
            "name": "Hotel Name",
            "type": "hotel/airbnb/hostel",
            "price_per_night": 120.00,
            "rating": 4.5,
            "location": "City Center",
            "amenities": ["wifi", "breakfast", "pool"]
        }
    ],
    "flight_suggestions": [
        {
            "route": "Origin - Destination",
            "departure_time": "2024-01-15 08:00",
            "arrival_time": "2024-01-15 12:00",
            "estimated_price": 450.00,
            "airline": "Airline Name"
        }
    ],
    "estimated_total_cost": 2500.00,
    "recommendations": [
        "Book flights early for better prices",
        "Consider travel insurance",
        "Check visa requirements"
    ]
}

Make sure all suggestions fit within the specified budget and preferences.
`)
	return b.String()
}

// buildTipsPrompt asks for destination-specific travel tips as a plain list.
func buildTipsPrompt(destination string) string {
	return fmt.Sprintf(`Provide 10 essential travel tips for visiting %s.
Include practical advice about:
- Local customs and etiquette
- Safety considerations
- Money and payments
- Transportation
- Best time to visit
- What to pack
- Local cuisine recommendations
- Cultural attractions
- Language tips
- Emergency contacts

Format as a simple list of tips.
`, destination)
}
