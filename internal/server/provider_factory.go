package server

import (
	"log/slog"

	"setpiece-service/internal/config"
	"setpiece-service/internal/metrics"
	"setpiece-service/internal/providers"
	"setpiece-service/internal/providers/fixture"
)

// providerFactory assembles the report provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ReportProvider {
	base := selectProvider(cfg, f.logger, f.metrics)
	return providers.NewRetryingProvider(base, f.logger, 0, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.ReportProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	default:
		return providers.NewFileProvider(cfg.ReportPath, logger, recorder)
	}
}
