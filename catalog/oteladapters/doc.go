// Package oteladapters provides OpenTelemetry implementations of the catalog
// observability interfaces:
//   - SlogBridgeLogger and OTelLogger for catalog.Logger and catalog.ContextualLogger
//   - MetricsCollector for catalog.ContextualMetricsCollector
//   - TracingCollector for catalog.TracingCollector
//
// Typical wiring:
//
//	lib, err := catalog.New(
//		catalog.WithContextualLogger(oteladapters.NewSlogBridgeLogger("library-catalog")),
//		catalog.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter("library-catalog"))),
//		catalog.WithTracing(oteladapters.NewTracingCollector(otel.Tracer("library-catalog"))),
//	)
package oteladapters
