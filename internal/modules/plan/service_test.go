package plan

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"voyago/internal/ai"
)

// stubProvider is a test double for ai.Provider.
type stubProvider struct {
	sections *ai.PlanSections
	planErr  error
	tips     []string
	tipsErr  error
}

func (s *stubProvider) GeneratePlan(_ context.Context, _ ai.PlanRequest) (*ai.PlanSections, error) {
	return s.sections, s.planErr
}

func (s *stubProvider) TravelTips(_ context.Context, _ string) ([]string, error) {
	return s.tips, s.tipsErr
}

// memStorage is an in-memory Storage for tests.
type memStorage struct {
	plans map[string]*TravelPlan
}

func newMemStorage() *memStorage {
	return &memStorage{plans: map[string]*TravelPlan{}}
}

func (m *memStorage) Create(_ context.Context, p *TravelPlan) error {
	m.plans[p.ID] = p
	return nil
}

func (m *memStorage) Get(_ context.Context, id string) (*TravelPlan, error) {
	p, ok := m.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func validRequest() TravelRequest {
	return TravelRequest{
		Destination:   "Paris, France",
		Origin:        "New York",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-15",
		Travelers:     2,
		Budget:        3000,
	}
}

func newTestService(provider ai.Provider, store Storage) *Service {
	svc := NewService(provider, store, nil, nil)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestGenerate_StoresStructuredPlan(t *testing.T) {
	provider := &stubProvider{
		sections: &ai.PlanSections{
			Itinerary:          []ai.DayPlan{{Day: 1, Date: "2026-09-10", Activities: []string{"Louvre"}}},
			Hotels:             []ai.HotelSuggestion{{Name: "Hotel Lutetia", PricePerNight: 320}},
			Flights:            []ai.FlightSuggestion{},
			Recommendations:    []string{"Book early"},
			EstimatedTotalCost: 2800,
		},
		tips: []string{"Carry cash"},
	}
	store := newMemStorage()
	svc := newTestService(provider, store)

	p, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.ID == "" {
		t.Error("plan ID is empty")
	}
	if len(p.Itinerary) != 1 || p.Itinerary[0].Activities[0] != "Louvre" {
		t.Errorf("Itinerary = %+v", p.Itinerary)
	}
	if len(p.Tips) != 1 || p.Tips[0] != "Carry cash" {
		t.Errorf("Tips = %v", p.Tips)
	}
	if p.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	got, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Destination != "Paris, France" {
		t.Errorf("Get().Destination = %q", got.Destination)
	}
}

// An upstream failure surfaces as a retryable ErrUpstream, never a panic.
func TestGenerate_UpstreamFailure(t *testing.T) {
	provider := &stubProvider{
		planErr: fmt.Errorf("%w: connection timed out", ai.ErrUnavailable),
		tips:    []string{},
	}
	svc := newTestService(provider, newMemStorage())

	_, err := svc.Generate(context.Background(), validRequest())
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("Generate() error = %v, want ErrUpstream", err)
	}
}

// Tips failures degrade the tips section to empty; the plan still succeeds.
func TestGenerate_TipsDegrade(t *testing.T) {
	provider := &stubProvider{
		sections: &ai.PlanSections{
			Itinerary:       []ai.DayPlan{},
			Hotels:          []ai.HotelSuggestion{},
			Flights:         []ai.FlightSuggestion{},
			Recommendations: []string{},
		},
		tipsErr: errors.New("boom"),
	}
	svc := newTestService(provider, newMemStorage())

	p, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.Tips == nil || len(p.Tips) != 0 {
		t.Errorf("Tips = %#v, want empty non-nil slice", p.Tips)
	}
	if p.Flights == nil {
		t.Error("Flights must be an empty slice, not nil")
	}
}

func TestGenerate_ValidationError(t *testing.T) {
	svc := newTestService(&stubProvider{}, newMemStorage())

	req := validRequest()
	req.Destination = "  "
	req.Budget = 0

	_, err := svc.Generate(context.Background(), req)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Generate() error = %v, want *ValidationError", err)
	}
	if len(verr.Problems) != 2 {
		t.Errorf("Problems = %v, want 2 entries", verr.Problems)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(&stubProvider{}, newMemStorage())
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestTips(t *testing.T) {
	svc := newTestService(&stubProvider{tips: []string{"Pack light"}}, newMemStorage())

	tips, err := svc.Tips(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("Tips() error = %v", err)
	}
	if len(tips) != 1 || tips[0] != "Pack light" {
		t.Errorf("Tips() = %v", tips)
	}

	if _, err := svc.Tips(context.Background(), " "); err == nil {
		t.Error("expected validation error for empty destination")
	}
}
