// Package responsewriter wraps http.ResponseWriter so the logging and
// metrics middlewares can observe the status code and body size after
// the handler has run.
package responsewriter

import "net/http"

// ResponseWriter records the status code and byte count of a response.
// A handler that never calls WriteHeader is reported as 200, matching
// what net/http sends on the wire.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	bytes   int
	started bool
}

// Wrap returns w wrapped for observation.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code written; duplicates are
// dropped instead of triggering the net/http superfluous-call warning.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if w.started {
		return
	}
	w.status = statusCode
	w.started = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.started {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// StatusCode returns the recorded status code.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten returns the number of body bytes written.
func (w *ResponseWriter) BytesWritten() int { return w.bytes }

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Flush forwards to the underlying writer when it supports streaming.
func (w *ResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		if !w.started {
			w.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}
