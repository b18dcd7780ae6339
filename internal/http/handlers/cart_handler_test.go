// README: Handler tests for cart endpoints.
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"voyago/internal/http/handlers"
	"voyago/internal/modules/cart"
)

func buildCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := cart.NewService(cart.NewStore(client, time.Hour))
	r := gin.New()
	h := handlers.NewCartHandler(svc)
	r.POST("/api/cart/items", h.Add)
	r.GET("/api/cart", h.Summary)
	r.DELETE("/api/cart/items/:ref", h.Remove)
	r.POST("/api/cart/checkout", h.Checkout)
	return r
}

func doCartRequest(r *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(handlers.SessionHeader, session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCart_RequiresSessionHeader(t *testing.T) {
	r := buildCartRouter(t)
	w := doCartRequest(r, http.MethodGet, "/api/cart", "", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCart_AddListRemoveCheckout(t *testing.T) {
	r := buildCartRouter(t)
	const session = "sess-abc-123"

	w := doCartRequest(r, http.MethodPost, "/api/cart/items", session,
		`{"type": "hotel", "name": "Hotel Lutetia", "date": "2099-09-10", "price": 1280}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body = %s", w.Code, w.Body.String())
	}
	var added struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &added); err != nil {
		t.Fatal(err)
	}
	if added.Reference != "HOTEL-0001" {
		t.Errorf("reference = %q, want HOTEL-0001", added.Reference)
	}

	w = doCartRequest(r, http.MethodGet, "/api/cart", session, "")
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d", w.Code)
	}
	var sum cart.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatal(err)
	}
	if sum.TotalItems != 1 || sum.Bookings[0].Reference != added.Reference {
		t.Errorf("summary = %+v", sum)
	}

	w = doCartRequest(r, http.MethodPost, "/api/cart/checkout", session, "")
	if w.Code != http.StatusOK {
		t.Fatalf("checkout status = %d", w.Code)
	}

	w = doCartRequest(r, http.MethodDelete, "/api/cart/items/"+added.Reference, session, "")
	if w.Code != http.StatusOK {
		t.Fatalf("remove status = %d", w.Code)
	}

	w = doCartRequest(r, http.MethodDelete, "/api/cart/items/"+added.Reference, session, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("repeated remove status = %d, want 404", w.Code)
	}

	w = doCartRequest(r, http.MethodPost, "/api/cart/checkout", session, "")
	if w.Code != http.StatusConflict {
		t.Errorf("empty checkout status = %d, want 409", w.Code)
	}
}

func TestCart_RejectsBadItem(t *testing.T) {
	r := buildCartRouter(t)

	w := doCartRequest(r, http.MethodPost, "/api/cart/items", "sess1",
		`{"type": "cruise", "name": "x", "price": 100}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
