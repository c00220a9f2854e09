package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
	. "github.com/AntonStoeckl/library-catalog-go/testutil/helper" //nolint:revive
)

func givenTracingCollector() (*oteladapters.TracingCollector, *tracetest.InMemoryExporter) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	return oteladapters.NewTracingCollector(provider.Tracer("test")), exporter
}

func Test_TracingCollector_StartAndFinish_ExportsSpanWithAttributes(t *testing.T) {
	// arrange
	collector, exporter := givenTracingCollector()

	// act
	ctx, spanCtx := collector.StartSpan(context.Background(), catalog.SpanNameBorrowBook, map[string]string{"patron_name": "Jane Smith"})
	spanCtx.AddAttribute("book_title", "1984")
	collector.FinishSpan(spanCtx, catalog.StatusSuccess, map[string]string{"duration_ms": "0.12"})

	// assert
	require.NotNil(t, ctx)
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, catalog.SpanNameBorrowBook, spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assertSpanHasAttribute(t, spans[0], "patron_name", "Jane Smith")
	assertSpanHasAttribute(t, spans[0], "book_title", "1984")
	assertSpanHasAttribute(t, spans[0], "duration_ms", "0.12")
}

func Test_TracingCollector_FinishSpan_MapsStatuses(t *testing.T) {
	testCases := []struct {
		status       string
		expectedCode codes.Code
	}{
		{catalog.StatusSuccess, codes.Ok},
		{catalog.StatusFailure, codes.Error},
		{catalog.StatusError, codes.Error},
		{"something-else", codes.Unset},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			// arrange
			collector, exporter := givenTracingCollector()
			_, spanCtx := collector.StartSpan(context.Background(), "op", nil)

			// act
			collector.FinishSpan(spanCtx, tc.status, nil)

			// assert
			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tc.expectedCode, spans[0].Status.Code)
		})
	}
}

func Test_TracingCollector_FinishSpan_WithForeignSpanContext_IsIgnored(t *testing.T) {
	// arrange
	collector, exporter := givenTracingCollector()

	// act
	collector.FinishSpan(nil, catalog.StatusSuccess, nil)

	// assert
	assert.Empty(t, exporter.GetSpans())
}

func Test_TracingCollector_WiredIntoCatalog_EndsSpanPerOperation(t *testing.T) {
	// arrange
	collector, exporter := givenTracingCollector()
	lib := GivenCatalog(t, catalog.WithClock(GivenFakeClock()), catalog.WithTracing(collector))
	GivenStandardCollection(lib)

	// act
	lib.BorrowBook(context.Background(), "Jane Smith", "1984")
	lib.ReturnBook(context.Background(), "John Doe", "1984")

	// assert
	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, catalog.SpanNameBorrowBook, spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Equal(t, catalog.SpanNameReturnBook, spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assertSpanHasAttribute(t, spans[1], "failure_reason", catalog.FailureReasonBookNotBorrowedByPatron)
}

func assertSpanHasAttribute(t *testing.T, span tracetest.SpanStub, key, expected string) {
	t.Helper()

	for _, attr := range span.Attributes {
		if string(attr.Key) == key {
			assert.Equal(t, expected, attr.Value.AsString(), "attribute %s", key)
			return
		}
	}

	t.Errorf("span %s has no attribute %s", span.Name, key)
}
