package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestProvider(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(sdktrace.NewTracerProvider()) })
	return exporter
}

func TestMiddleware_CreatesServerSpan(t *testing.T) {
	exporter := setupTestProvider(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/expenses?year=2026&month=3", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /expenses", spans[0].Name)
	assert.NotEmpty(t, rr.Header().Get("X-Trace-Id"))
}

func TestMiddleware_MarksServerErrors(t *testing.T) {
	exporter := setupTestProvider(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodGet, "/sources", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	found := false
	for _, attr := range spans[0].Attributes {
		if string(attr.Key) == "error" && attr.Value.AsBool() {
			found = true
		}
	}
	assert.True(t, found, "5xx response must mark the span as error")
}

func TestMiddleware_JoinsInboundTrace(t *testing.T) {
	setupTestProvider(t)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(propagation.TraceContext{}) })

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/budgets", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", rr.Header().Get("X-Trace-Id"))
}
