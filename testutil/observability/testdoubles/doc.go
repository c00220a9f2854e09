// Package testdoubles provides test doubles (spies) for the catalog's observability
// and notification interfaces:
//   - ContextualLoggerSpy: captures context-aware log calls
//   - LoggerSpy: captures plain log calls
//   - MetricsCollectorSpy: captures metrics recording calls
//   - TracingCollectorSpy: captures spans with their start and finish attributes
//   - NotifierSpy: captures notifications and can be told to fail
//
// They allow verifying instrumentation without any telemetry backend.
package testdoubles
