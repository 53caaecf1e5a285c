package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("fintrack")

// GetTracer returns the application tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
