package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Resolver Resolver
	Fallback Fallback
	Routing  Routing
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Log      Log
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"numroute"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor     bool   `env:"LOG_NO_COLOR" envDefault:"false"`
	FieldMaxLen int    `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Fallback.normalize(); err != nil {
		return Config{}, err
	}

	return config, nil
}
