// Package tracing provides OpenTelemetry tracing for HTTP requests.
// The request middleware extracts W3C trace context from inbound
// headers, opens a server span, and echoes the trace ID back to the
// client; the logging middleware picks the same trace ID up from the
// request context.
package tracing
