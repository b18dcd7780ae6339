// README: Base handler utilities (JSON helpers, error mapping, session IDs).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/cart"
	"voyago/internal/modules/plan"
)

// SessionHeader carries the caller's cart session identifier.
const SessionHeader = "X-Session-ID"

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID ensures IDs are alphanumeric and at most 64 chars.
func isValidID(v string) bool {
	if v == "" || len(v) > 64 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePlanError(c *gin.Context, err error) {
	var verr *plan.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, plan.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, plan.ErrUpstream):
		// The generation attempt failed; the user may retry by resubmitting.
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrBadItem):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, cart.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrEmpty):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// sessionID extracts and validates the cart session from the request header.
func sessionID(c *gin.Context) (string, bool) {
	sid := c.GetHeader(SessionHeader)
	if !isValidID(sid) {
		writeError(c, http.StatusBadRequest, "missing or invalid "+SessionHeader+" header")
		return "", false
	}
	return sid, true
}
