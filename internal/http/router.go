// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"voyago/internal/http/handlers"
	"voyago/internal/http/middleware"
	"voyago/internal/modules/cart"
	"voyago/internal/modules/plan"
)

func NewRouter(planService *plan.Service, cartService *cart.Service) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	planHandler := handlers.NewPlanHandler(planService)
	r.POST("/api/plans", planHandler.Create)
	r.GET("/api/plans/:id", planHandler.Get)
	r.GET("/api/tips", planHandler.Tips)

	cartHandler := handlers.NewCartHandler(cartService)
	r.POST("/api/cart/items", cartHandler.Add)
	r.GET("/api/cart", cartHandler.Summary)
	r.DELETE("/api/cart/items/:ref", cartHandler.Remove)
	r.POST("/api/cart/checkout", cartHandler.Checkout)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", handlers.SessionHeader},
	}).Handler(r)
}
