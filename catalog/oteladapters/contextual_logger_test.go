package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/helper" //nolint:revive
)

func Test_SlogBridgeLoggerWithHandler_LogsAllLevels(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "debug message")
	logger.InfoContext(ctx, "info message")
	logger.Warn("warn message")
	logger.Error("error message")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG","msg":"debug message"`)
	assert.Contains(t, output, `"level":"INFO","msg":"info message"`)
	assert.Contains(t, output, `"level":"WARN","msg":"warn message"`)
	assert.Contains(t, output, `"level":"ERROR","msg":"error message"`)
}

func Test_SlogBridgeLoggerWithHandler_WiredIntoCatalog_LogsAttributes(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, nil))
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithContextualLogger(logger))
	GivenStandardCollection(lib)

	// act
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"msg":"catalog operation succeeded: borrow_book"`)
	assert.Contains(t, output, `"patron_name":"Jane Smith"`)
	assert.Contains(t, output, `"book_title":"1984"`)
}

func Test_SlogBridgeLogger_WithActiveSpan_DoesNotPanic(t *testing.T) {
	// arrange
	provider := sdktrace.NewTracerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()
	ctx, span := provider.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	logger := oteladapters.NewSlogBridgeLogger("test")

	// act & assert
	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "message with trace", "key", "value")
	})
}

func Test_OTelLogger_EmitsAllLevels(t *testing.T) {
	// arrange
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("test"))
	ctx := context.Background()

	// act & assert
	assert.NotPanics(t, func() {
		logger.DebugContext(ctx, "debug", "count", 1)
		logger.InfoContext(ctx, "info", "patron_name", "Jane Smith")
		logger.WarnContext(ctx, "warn", "dangling")
		logger.ErrorContext(ctx, "error", 42, "non-string key")
	})
}
