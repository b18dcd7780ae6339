// README: Plan service: validate, prompt, call the completion API, parse, persist.
package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"voyago/internal/ai"
	"voyago/internal/maps"
	"voyago/internal/observability"
)

const attractionsLimit = 5

// Storage persists generated plans for later retrieval.
type Storage interface {
	Create(ctx context.Context, p *TravelPlan) error
	Get(ctx context.Context, id string) (*TravelPlan, error)
}

// Service orchestrates plan generation.
type Service struct {
	provider ai.Provider
	store    Storage
	cache    *Cache
	places   *maps.PlacesService
	now      func() time.Time
}

// NewService wires the generation glue. cache and places may be nil; the
// service then skips caching and attraction enrichment.
func NewService(provider ai.Provider, store Storage, cache *Cache, places *maps.PlacesService) *Service {
	return &Service{
		provider: provider,
		store:    store,
		cache:    cache,
		places:   places,
		now:      time.Now,
	}
}

// Generate validates the request, fetches the plan and the destination tips
// concurrently, enriches with nearby attractions, and persists the result.
//
// A tips or attractions failure degrades that section to empty; only a failed
// plan call fails the whole operation.
func (s *Service) Generate(ctx context.Context, req TravelRequest) (*TravelPlan, error) {
	if problems := req.Validate(s.now()); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	planReq := ai.PlanRequest{
		Destination:         req.Destination,
		Origin:              req.Origin,
		DepartureDate:       req.DepartureDate,
		ReturnDate:          req.ReturnDate,
		DurationDays:        req.DurationDays(),
		Budget:              req.Budget,
		Travelers:           req.Travelers,
		AccommodationType:   req.AccommodationType,
		Activities:          req.Activities,
		DietaryRestrictions: req.DietaryRestrictions,
	}

	var (
		sections *ai.PlanSections
		tips     []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sections, err = s.provider.GeneratePlan(gctx, planReq)
		return err
	})
	g.Go(func() error {
		var err error
		tips, err = s.provider.TravelTips(gctx, req.Destination)
		if err != nil {
			// Tips are advisory; an empty list is still a valid response.
			log.Warn().Err(err).Str("destination", req.Destination).Msg("travel tips degraded to empty")
			tips = []string{}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		observability.ObservePlan("error")
		if errors.Is(err, ai.ErrUnauthorized) {
			log.Error().Err(err).Msg("completion api rejected credentials")
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	p := &TravelPlan{
		ID:                 strings.ReplaceAll(uuid.NewString(), "-", ""),
		Destination:        req.Destination,
		Request:            req,
		Itinerary:          sections.Itinerary,
		Hotels:             sections.Hotels,
		Flights:            sections.Flights,
		EstimatedTotalCost: sections.EstimatedTotalCost,
		Recommendations:    sections.Recommendations,
		Tips:               tips,
		Attractions:        []maps.Place{},
		DegradedSections:   sections.Degraded,
		CreatedAt:          s.now().UTC(),
	}

	if s.places != nil {
		attractions, err := s.places.TopAttractions(ctx, req.Destination, attractionsLimit)
		if err != nil {
			log.Warn().Err(err).Str("destination", req.Destination).Msg("attraction enrichment skipped")
		} else if attractions != nil {
			p.Attractions = attractions
		}
	}

	if s.store != nil {
		if err := s.store.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("store plan: %w", err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, p); err != nil {
			log.Warn().Err(err).Str("plan_id", p.ID).Msg("plan cache set failed")
		}
	}

	if len(p.DegradedSections) > 0 {
		observability.ObservePlan("degraded")
	} else {
		observability.ObservePlan("ok")
	}
	return p, nil
}

// Get returns a stored plan by ID, reading through the cache when present.
func (s *Service) Get(ctx context.Context, id string) (*TravelPlan, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, id); ok {
			return p, nil
		}
	}
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, p); err != nil {
			log.Warn().Err(err).Str("plan_id", id).Msg("plan cache set failed")
		}
	}
	return p, nil
}

// Tips returns destination tips without generating a full plan.
func (s *Service) Tips(ctx context.Context, destination string) ([]string, error) {
	if strings.TrimSpace(destination) == "" {
		return nil, &ValidationError{Problems: []string{"destination cannot be empty"}}
	}
	tips, err := s.provider.TravelTips(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if tips == nil {
		tips = []string{}
	}
	return tips, nil
}
