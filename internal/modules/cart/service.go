// README: Cart service: add/remove items, summary, simulated checkout.
package cart

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service holds the session-scoped booking cart logic.
type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Add validates the item, assigns its booking reference, and appends it to
// the session's cart. Returns the reference (e.g. "HOTEL-0003").
func (s *Service) Add(ctx context.Context, session string, item Item) (string, error) {
	item.Type = strings.ToLower(strings.TrimSpace(item.Type))
	item.Name = strings.TrimSpace(item.Name)
	if !validItemType(item.Type) || item.Name == "" || item.Price < 0 {
		return "", ErrBadItem
	}

	seq, err := s.store.NextSeq(ctx, session)
	if err != nil {
		return "", err
	}
	item.Reference = fmt.Sprintf("%s-%04d", strings.ToUpper(item.Type), seq)
	item.AddedAt = s.now().UTC()

	if err := s.store.Append(ctx, session, item); err != nil {
		return "", err
	}
	return item.Reference, nil
}

// Remove deletes the item with the given booking reference.
func (s *Service) Remove(ctx context.Context, session, reference string) error {
	items, err := s.store.Items(ctx, session)
	if err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.Reference == reference {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrNotFound
	}
	return s.store.Replace(ctx, session, kept)
}

// Summary lists the session's items in the order they were added.
func (s *Service) Summary(ctx context.Context, session string) (*Summary, error) {
	items, err := s.store.Items(ctx, session)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Bookings: items}
	for _, item := range items {
		sum.TotalItems++
		sum.TotalCost += item.Price
	}
	return sum, nil
}

// Checkout simulates the booking process. Every item comes back confirmed;
// no external booking system is involved.
func (s *Service) Checkout(ctx context.Context, session string) (*CheckoutResult, error) {
	items, err := s.store.Items(ctx, session)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmpty
	}

	result := &CheckoutResult{Success: true}
	for _, item := range items {
		result.TotalCost += item.Price
		result.Bookings = append(result.Bookings, Confirmation{
			Reference:        item.Reference,
			Status:           "confirmed",
			ConfirmationCode: "CONF-" + item.Reference,
			Message:          fmt.Sprintf("%s booking confirmed", titleCase(item.Type)),
		})
	}
	result.Message = fmt.Sprintf("Successfully booked %d items", len(items))
	return result, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
