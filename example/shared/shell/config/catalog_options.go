package config

import (
	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
)

// ObservabilityOptions creates catalog options wired to the global OpenTelemetry providers.
// Call NewObservabilityProviders first, otherwise the no-op providers are used.
func ObservabilityOptions(instrumentationName string) (*oteladapters.SlogBridgeLogger, []catalog.Option) {
	logger := oteladapters.NewSlogBridgeLogger(instrumentationName)

	return logger, []catalog.Option{
		catalog.WithContextualLogger(logger),
		catalog.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))),
		catalog.WithTracing(oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))),
	}
}
