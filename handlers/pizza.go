package handlers

import (
	"net/http"

	"pizza-restaurant-api/views"

	"github.com/gin-gonic/gin"
)

// ListPizzas returns every pizza without its offerings.
func (h *Handler) ListPizzas(c *gin.Context) {
	pizzas, err := h.repo.ListPizzas(c.Request.Context())
	if err != nil {
		h.internalError(c, "list pizzas", err)
		return
	}
	c.JSON(http.StatusOK, views.NewPizzaSummaries(pizzas))
}
