package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"voyago/internal/ai"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable not set")
	}

	provider, err := ai.NewOpenAIProvider("", apiKey, "gpt-4", 60*time.Second, 5)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}

	ctx := context.Background()
	req := ai.PlanRequest{
		Destination:       "Kyoto, Japan",
		Origin:            "San Francisco",
		DepartureDate:     time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		ReturnDate:        time.Now().AddDate(0, 1, 5).Format("2006-01-02"),
		DurationDays:      5,
		Budget:            4000,
		Travelers:         2,
		AccommodationType: "hotel",
		Activities:        []string{"Sightseeing", "Food Tours"},
	}

	fmt.Printf("Generating plan for %s...\n", req.Destination)
	sections, err := provider.GeneratePlan(ctx, req)
	if err != nil {
		log.Fatalf("Error generating plan: %v", err)
	}

	fmt.Printf("Days: %d\n", len(sections.Itinerary))
	for _, day := range sections.Itinerary {
		fmt.Printf("  Day %d (%s): %d activities, est. $%.2f\n",
			day.Day, day.Date, len(day.Activities), day.EstimatedCost)
	}
	fmt.Printf("Hotels: %d, Flights: %d\n", len(sections.Hotels), len(sections.Flights))
	fmt.Printf("Estimated total: $%.2f\n", sections.EstimatedTotalCost)
	for _, rec := range sections.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
	if len(sections.Degraded) > 0 {
		fmt.Printf("Degraded sections: %v\n", sections.Degraded)
	}
}
