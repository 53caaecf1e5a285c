// Package observability groups the cross-cutting observability
// infrastructure: structured logging helpers and OpenTelemetry tracing.
// Prometheus metrics live next to the code that records them.
package observability
