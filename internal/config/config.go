package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Render-Screenshot/rs-go/internal/xslog"
	"github.com/Render-Screenshot/rs-go/signedurl"
)

type Config struct {
	APIKey     string        `env:"API_KEY"`
	SigningKey string        `env:"SIGNING_KEY"`
	BaseURL    string        `env:"BASE_URL" envDefault:"https://api.renderscreenshot.com"`
	APIVersion string        `env:"API_VERSION" envDefault:"v1"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"60s"`
	LogLevel   xslog.Level   `env:"LOG_LEVEL" envDefault:"warn"`
	Webhook    Webhook       `envPrefix:"WEBHOOK_"`
	RateLimit  RateLimit     `envPrefix:"RATE_"`
}

type Webhook struct {
	Secret    string        `env:"SECRET"`
	Tolerance time.Duration `env:"TOLERANCE" envDefault:"300s"`
	Addr      string        `env:"ADDR" envDefault:":8787"`
}

// RateLimit paces outgoing API calls. A zero Limit disables pacing.
type RateLimit struct {
	Limit float64 `env:"LIMIT" envDefault:"0"`
	Burst int     `env:"BURST" envDefault:"1"`
}

// Prefix namespaces every variable, e.g. RS_API_KEY.
const Prefix = "RS_"

func Read() (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{Prefix: Prefix})
}

// SignerOptions returns the signedurl options matching the configured
// endpoint.
func (c Config) SignerOptions() []signedurl.Option {
	return []signedurl.Option{
		signedurl.WithBaseURL(c.BaseURL),
		signedurl.WithAPIVersion(c.APIVersion),
	}
}
