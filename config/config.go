// Package config loads runtime settings from the environment.
package config

import (
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/prognoshealth/rbxlookup/lookup"
	"github.com/prognoshealth/rbxlookup/roblox"
)

// Config holds every setting the lookup binaries read.
type Config struct {
	GamesURL      string `env:"ROBLOX_GAMES_URL" envDefault:"https://games.roblox.com" validate:"required,url"`
	UsersURL      string `env:"ROBLOX_USERS_URL" envDefault:"https://users.roblox.com" validate:"required,url"`
	ThumbnailsURL string `env:"ROBLOX_THUMBNAILS_URL" envDefault:"https://thumbnails.roblox.com" validate:"required,url"`
	GamePageURL   string `env:"ROBLOX_GAME_PAGE_URL" envDefault:"https://www.roblox.com/games/" validate:"required,url"`
	UserAgent     string `env:"USER_AGENT" envDefault:"rbxlookup/1.0"`

	// UpstreamTimeout bounds each upstream request. Zero leaves requests
	// bounded only by the invocation context.
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"0s" validate:"min=0"`

	LogLevel   string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080" validate:"required,hostname_port"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load parses and validates Config from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses and validates Config from the given variables only. It is
// meant for tests and tools that build an environment by hand.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, "failed parsing environment")
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// RobloxOptions returns the upstream client options for cfg.
func (cfg Config) RobloxOptions() roblox.Options {
	return roblox.Options{
		HTTPClient:    &http.Client{Timeout: cfg.UpstreamTimeout},
		GamesURL:      cfg.GamesURL,
		UsersURL:      cfg.UsersURL,
		ThumbnailsURL: cfg.ThumbnailsURL,
		UserAgent:     cfg.UserAgent,
	}
}

// NewHandler builds the lookup handler described by cfg.
func (cfg Config) NewHandler() *lookup.Handler {
	return lookup.NewHandler(
		roblox.NewClient(cfg.RobloxOptions()),
		lookup.WithGamePageURL(cfg.GamePageURL),
	)
}
