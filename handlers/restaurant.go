package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pizza-restaurant-api/middleware"
	"pizza-restaurant-api/store"
	"pizza-restaurant-api/views"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns every restaurant without its offerings.
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.repo.ListRestaurants(c.Request.Context())
	if err != nil {
		h.internalError(c, "list restaurants", err)
		return
	}
	c.JSON(http.StatusOK, views.NewRestaurantSummaries(restaurants))
}

// GetRestaurant returns a restaurant with its offerings and their pizzas.
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		restaurantNotFound(c)
		return
	}

	restaurant, err := h.repo.GetRestaurant(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		restaurantNotFound(c)
		return
	case err != nil:
		h.internalError(c, "get restaurant", err)
		return
	}
	c.JSON(http.StatusOK, views.NewRestaurantDetail(*restaurant))
}

// DeleteRestaurant removes a restaurant together with its offerings.
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		restaurantNotFound(c)
		return
	}

	removed, err := h.repo.DeleteRestaurant(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		restaurantNotFound(c)
		return
	case err != nil:
		h.internalError(c, "delete restaurant", err)
		return
	}

	h.log.Info().
		Uint("restaurant_id", id).
		Int64("restaurant_pizzas_removed", removed).
		Str("request_id", middleware.GetRequestID(c)).
		Msg("restaurant deleted")
	c.Status(http.StatusNoContent)
}

// restaurantID parses the :id segment. Anything that is not a positive
// integer cannot name a restaurant.
func restaurantID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
