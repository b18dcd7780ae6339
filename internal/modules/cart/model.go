// README: Booking cart models and sentinel errors.
package cart

import (
	"errors"
	"time"
)

const (
	ItemTypeFlight   = "flight"
	ItemTypeHotel    = "hotel"
	ItemTypeActivity = "activity"
)

// Item is one suggestion the user marked for booking. The cart is a UI
// affordance only: there is no checkout integration behind it.
type Item struct {
	Reference string         `json:"reference"`
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Date      string         `json:"date"`
	Price     float64        `json:"price"`
	Details   map[string]any `json:"details,omitempty"`
	AddedAt   time.Time      `json:"added_at"`
}

// Summary lists the session's items in insertion order.
type Summary struct {
	TotalItems int     `json:"total_items"`
	TotalCost  float64 `json:"total_cost"`
	Bookings   []Item  `json:"bookings"`
}

// Confirmation is the simulated booking outcome for one item.
type Confirmation struct {
	Reference        string `json:"reference"`
	Status           string `json:"status"`
	ConfirmationCode string `json:"confirmation_code"`
	Message          string `json:"message"`
}

// CheckoutResult is the simulated booking outcome for the whole cart.
type CheckoutResult struct {
	Success   bool           `json:"success"`
	TotalCost float64        `json:"total_cost"`
	Bookings  []Confirmation `json:"bookings"`
	Message   string         `json:"message"`
}

var (
	ErrNotFound = errors.New("cart item not found")
	ErrEmpty    = errors.New("no items to book")
	ErrBadItem  = errors.New("invalid cart item")
)

func validItemType(t string) bool {
	switch t {
	case ItemTypeFlight, ItemTypeHotel, ItemTypeActivity:
		return true
	}
	return false
}
