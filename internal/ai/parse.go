package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParsePlanText turns the model's free-text reply into PlanSections.
//
// The upstream output is not schema-constrained, so each top-level section is
// decoded independently: a section that is missing or malformed degrades to an
// empty collection and is recorded in Degraded. Only a reply with no decodable
// JSON object at all is an error.
func ParsePlanText(raw string) (*PlanSections, error) {
	clean := cleanJSONString(raw)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(clean), &top); err != nil {
		// Models sometimes wrap the object in prose. Retry on the outermost
		// braces before giving up.
		if sub, ok := extractObject(clean); ok {
			if err2 := json.Unmarshal([]byte(sub), &top); err2 != nil {
				return nil, fmt.Errorf("parse plan: no JSON object in reply: %w", err)
			}
		} else {
			return nil, fmt.Errorf("parse plan: no JSON object in reply: %w", err)
		}
	}

	sections := &PlanSections{
		Itinerary:       []DayPlan{},
		Hotels:          []HotelSuggestion{},
		Flights:         []FlightSuggestion{},
		Recommendations: []string{},
	}

	decodeSection(top, "itinerary", &sections.Itinerary, &sections.Degraded)
	decodeSection(top, "accommodation_suggestions", &sections.Hotels, &sections.Degraded)
	decodeSection(top, "flight_suggestions", &sections.Flights, &sections.Degraded)
	decodeSection(top, "recommendations", &sections.Recommendations, &sections.Degraded)

	if rawCost, ok := top["estimated_total_cost"]; ok {
		if err := json.Unmarshal(rawCost, &sections.EstimatedTotalCost); err != nil {
			sections.EstimatedTotalCost = 0
			sections.Degraded = append(sections.Degraded, "estimated_total_cost")
		}
	}

	return sections, nil
}

// decodeSection fills dst from top[key], leaving the pre-set empty value in
// place when the key is absent or undecodable.
func decodeSection[T any](top map[string]json.RawMessage, key string, dst *[]T, degraded *[]string) {
	rawSec, ok := top[key]
	if !ok {
		return
	}
	var v []T
	if err := json.Unmarshal(rawSec, &v); err != nil {
		*degraded = append(*degraded, key)
		return
	}
	if v == nil {
		v = []T{}
	}
	*dst = v
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// extractObject returns the substring spanning the first '{' and the last '}'.
func extractObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// parseTips splits a plain-text tip list into individual tips, stripping
// bullet and numbering prefixes.
func parseTips(text string) []string {
	tips := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		// Strip "1." / "10)" style numbering.
		if i := strings.IndexAny(line, ".)"); i > 0 && i <= 2 && isDigits(line[:i]) {
			line = strings.TrimSpace(line[i+1:])
		}
		if line == "" {
			continue
		}
		tips = append(tips, line)
	}
	return tips
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
