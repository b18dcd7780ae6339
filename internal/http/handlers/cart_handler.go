// README: Cart handlers for add/list/remove/checkout.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/cart"
)

type CartHandler struct {
	cart *cart.Service
}

func NewCartHandler(svc *cart.Service) *CartHandler {
	return &CartHandler{cart: svc}
}

type addItemReq struct {
	Type    string         `json:"type"`
	Name    string         `json:"name"`
	Date    string         `json:"date"`
	Price   float64        `json:"price"`
	Details map[string]any `json:"details"`
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ref, err := h.cart.Add(c.Request.Context(), sid, cart.Item{
		Type:    req.Type,
		Name:    req.Name,
		Date:    req.Date,
		Price:   req.Price,
		Details: req.Details,
	})
	if err != nil {
		writeCartError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"reference": ref})
}

// Summary handles GET /api/cart.
func (h *CartHandler) Summary(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	sum, err := h.cart.Summary(c.Request.Context(), sid)
	if err != nil {
		writeCartError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sum)
}

// Remove handles DELETE /api/cart/items/:ref.
func (h *CartHandler) Remove(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	ref := c.Param("ref")
	if ref == "" {
		writeError(c, http.StatusBadRequest, "missing booking reference")
		return
	}

	if err := h.cart.Remove(c.Request.Context(), sid, ref); err != nil {
		writeCartError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"removed": ref})
}

// Checkout handles POST /api/cart/checkout.
func (h *CartHandler) Checkout(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.cart.Checkout(c.Request.Context(), sid)
	if err != nil {
		writeCartError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}
