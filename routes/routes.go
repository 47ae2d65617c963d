package routes

import (
	"pizza-restaurant-api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/", h.Home)
	r.GET("/health", h.Health)

	// ── Restaurants ────────────────────────────────────────────────
	r.GET("/restaurants", h.ListRestaurants)
	r.GET("/restaurants/:id", h.GetRestaurant)
	r.DELETE("/restaurants/:id", h.DeleteRestaurant)

	// ── Pizzas ─────────────────────────────────────────────────────
	r.GET("/pizzas", h.ListPizzas)

	// ── Offerings ──────────────────────────────────────────────────
	r.POST("/restaurant_pizzas", h.CreateRestaurantPizza)
}
