// Package config loads runtime settings from the environment and opens the
// database handle the rest of the application is built on.
package config

import (
	"fmt"
	"strings"

	"pizza-restaurant-api/logger"
	"pizza-restaurant-api/models"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	// Loads a .env file from the working directory, if present, before Load reads the environment.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// EnvPrefix is stripped from variable names: PIZZA_DB_URI -> db_uri.
const EnvPrefix = "PIZZA_"

type Config struct {
	Port       string `koanf:"port" validate:"required,numeric"`
	DBURI      string `koanf:"db_uri" validate:"required"`
	GinMode    string `koanf:"gin_mode" validate:"oneof=debug release test"`
	LogLevel   string `koanf:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogPretty  bool   `koanf:"log_pretty"`
	CORSOrigin string `koanf:"cors_origin" validate:"required"`
	Seed       bool   `koanf:"seed"`
}

// Default returns the settings used when no variable overrides them.
func Default() *Config {
	return &Config{
		Port:       "5555",
		DBURI:      "app.db",
		GinMode:    "debug",
		LogLevel:   "info",
		LogPretty:  true,
		CORSOrigin: "*",
	}
}

// Load overlays PIZZA_* environment variables on Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DSN is DBURI with SQLite foreign key enforcement switched on for every connection.
func (c *Config) DSN() string {
	sep := "?"
	if strings.Contains(c.DBURI, "?") {
		sep = "&"
	}
	return c.DBURI + sep + "_pragma=foreign_keys(1)"
}

// OpenDB connects to SQLite and migrates the schema.
func OpenDB(cfg *Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.NewGormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.Pizza{},
		&models.RestaurantPizza{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	log.Info().Str("db", cfg.DBURI).Msg("database connected and migrated")
	return db, nil
}
