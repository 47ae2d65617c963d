package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizza-restaurant-api/config"
	"pizza-restaurant-api/handlers"
	"pizza-restaurant-api/logger"
	"pizza-restaurant-api/routes"
	"pizza-restaurant-api/seed"
	"pizza-restaurant-api/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", true)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	srv, db, err := newServer(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	go func() {
		log.Info().Str("addr", "http://localhost:"+cfg.Port).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := closeDB(db); err != nil {
		log.Error().Err(err).Msg("database close")
	}
	log.Info().Msg("server stopped")
}

// newServer opens the database, seeds it when asked and wires the router.
// The caller owns both the server and the database handle.
func newServer(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*http.Server, *gorm.DB, error) {
	db, err := config.OpenDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Seed {
		if _, err := seed.Run(ctx, db, log); err != nil {
			return nil, nil, errors.Join(fmt.Errorf("seed database: %w", err), closeDB(db))
		}
	}

	h := handlers.New(store.New(db), log)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(h, log, cfg.CORSOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, db, nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
