package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Render-Screenshot/rs-go/client"
	"github.com/Render-Screenshot/rs-go/internal/config"
)

var errMissingAPIKey = errors.New("RS_API_KEY is not set")

func readConfig() (config.Config, error) {
	cfg, err := config.Read()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}

func newClient(cfg config.Config) (*client.Client, error) {
	if cfg.APIKey == "" {
		return nil, errMissingAPIKey
	}
	return client.New(cfg.APIKey,
		client.WithBaseURL(cfg.BaseURL),
		client.WithAPIVersion(cfg.APIVersion),
		client.WithTimeout(cfg.Timeout),
		client.WithSigningKey(cfg.SigningKey),
		client.WithRateLimit(cfg.RateLimit.Limit, cfg.RateLimit.Burst),
		client.WithLogger(slog.Default()),
	)
}

// readInput reads a file argument, or stdin when the argument is "-" or
// absent.
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return b, nil
}
