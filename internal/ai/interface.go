package ai

import (
	"context"
	"errors"
)

// Provider defines the contract for the hosted completion API.
// This interface allows for swapping different AI providers (OpenAI, Gemini, etc.).
type Provider interface {
	// GeneratePlan turns the trip facts into a prompt, submits it, and parses
	// the reply into plan sections. Sections missing from the reply come back
	// empty rather than failing the call.
	GeneratePlan(ctx context.Context, req PlanRequest) (*PlanSections, error)

	// TravelTips asks for a short list of practical tips for the destination.
	TravelTips(ctx context.Context, destination string) ([]string, error)
}

var (
	// ErrUnauthorized means the API key was rejected. Not recoverable by retrying.
	ErrUnauthorized = errors.New("completion api: unauthorized")

	// ErrRateLimited means the upstream throttled us. The caller may resubmit later.
	ErrRateLimited = errors.New("completion api: rate limited")

	// ErrUnavailable covers upstream 5xx and transport failures. The caller may
	// resubmit the request.
	ErrUnavailable = errors.New("completion api: unavailable")
)
