package handlers

import (
	"context"
	"net/http"

	"pizza-restaurant-api/middleware"
	"pizza-restaurant-api/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Repository is the slice of the store the handlers depend on.
type Repository interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id uint) (int64, error)
	ListPizzas(ctx context.Context) ([]models.Pizza, error)
	CreateRestaurantPizza(ctx context.Context, price int, pizzaID, restaurantID uint) (*models.RestaurantPizza, error)
	Ping(ctx context.Context) error
}

// Handler carries what every endpoint needs; one is built per process.
type Handler struct {
	repo Repository
	log  zerolog.Logger
}

func New(repo Repository, log zerolog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

const (
	msgRestaurantNotFound = "Restaurant not found"
	msgValidationErrors   = "validation errors"
)

func restaurantNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": msgRestaurantNotFound})
}

// validationFailed is the single 400 body for every rejected write.
func validationFailed(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": []string{msgValidationErrors}})
}

func (h *Handler) internalError(c *gin.Context, op string, err error) {
	h.log.Error().
		Err(err).
		Str("op", op).
		Str("request_id", middleware.GetRequestID(c)).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
