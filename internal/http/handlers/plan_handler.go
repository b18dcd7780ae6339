// README: Plan handlers for generate/get/tips.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/plan"
)

// generateTimeout bounds one generation cycle (two completion calls plus
// enrichment).
const generateTimeout = 90 * time.Second

type PlanHandler struct {
	plan *plan.Service
}

func NewPlanHandler(svc *plan.Service) *PlanHandler {
	return &PlanHandler{plan: svc}
}

// Create handles POST /api/plans.
func (h *PlanHandler) Create(c *gin.Context) {
	var req plan.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	p, err := h.plan.Generate(ctx, req)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, p)
}

// Get handles GET /api/plans/:id.
func (h *PlanHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid plan id")
		return
	}
	p, err := h.plan.Get(c.Request.Context(), id)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

// Tips handles GET /api/tips?destination=...
func (h *PlanHandler) Tips(c *gin.Context) {
	destination := strings.TrimSpace(c.Query("destination"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	tips, err := h.plan.Tips(ctx, destination)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"destination": destination, "tips": tips})
}
