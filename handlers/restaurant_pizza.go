package handlers

import (
	"errors"
	"math"
	"net/http"

	"pizza-restaurant-api/middleware"
	"pizza-restaurant-api/store"
	"pizza-restaurant-api/views"

	"github.com/gin-gonic/gin"
)

// CreateRestaurantPizzaRequest uses pointers so that "required" tests for
// presence of the key, not for a non-zero value. Price is decoded as a
// float so that 5 and 5.0 are the same price.
type CreateRestaurantPizzaRequest struct {
	Price        *float64 `json:"price" binding:"required"`
	PizzaID      *uint    `json:"pizza_id" binding:"required"`
	RestaurantID *uint    `json:"restaurant_id" binding:"required"`
}

// wholePrice converts p to an int when it has no fractional part and fits
// comfortably in one; range checking is left to the store.
func wholePrice(p float64) (int, bool) {
	if p != math.Trunc(p) || math.Abs(p) > math.MaxInt32 {
		return 0, false
	}
	return int(p), true
}

// CreateRestaurantPizza offers an existing pizza at an existing restaurant.
func (h *Handler) CreateRestaurantPizza(c *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("restaurant pizza: bad body")
		validationFailed(c)
		return
	}
	price, ok := wholePrice(*req.Price)
	if !ok {
		h.log.Debug().Float64("price", *req.Price).Str("request_id", middleware.GetRequestID(c)).Msg("restaurant pizza: fractional price")
		validationFailed(c)
		return
	}

	rp, err := h.repo.CreateRestaurantPizza(c.Request.Context(), price, *req.PizzaID, *req.RestaurantID)
	switch {
	case errors.Is(err, store.ErrValidation):
		h.log.Debug().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("restaurant pizza rejected")
		validationFailed(c)
		return
	case err != nil:
		h.internalError(c, "create restaurant pizza", err)
		return
	}
	c.JSON(http.StatusCreated, views.NewRestaurantPizzaCreated(*rp))
}
