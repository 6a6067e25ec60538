package server

import (
	"log/slog"

	"github.com/preston-bernstein/rivalry-service/internal/config"
	"github.com/preston-bernstein/rivalry-service/internal/providers"
	"github.com/preston-bernstein/rivalry-service/internal/providers/file"
	"github.com/preston-bernstein/rivalry-service/internal/providers/fixture"
	"github.com/preston-bernstein/rivalry-service/internal/providers/static"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.RecordProvider {
	switch cfg.Provider {
	case config.ProviderFixture, "":
		return fixture.New()
	case config.ProviderFile:
		return file.New(cfg.DataPath)
	case config.ProviderStatic:
		return static.NewClient(static.Config{
			BaseURL: cfg.DataBaseURL,
			Timeout: cfg.FetchTimeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
