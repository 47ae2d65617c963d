package routes

import (
	"pizza-restaurant-api/handlers"
	"pizza-restaurant-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter builds the engine with the global middleware chain and all routes.
func NewRouter(h *handlers.Handler, log zerolog.Logger, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.CORS(corsOrigin),
	)
	SetupRoutes(r, h)
	return r
}
