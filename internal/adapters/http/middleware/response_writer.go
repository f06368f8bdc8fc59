// Package middleware holds the inbound HTTP pipeline. cmd/server installs
// it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Timeout sits innermost so a slow batch is cut off before the outer layers
// record the response.
package middleware

import "net/http"

// responseWriter records the status and size of a response for Recovery,
// OpenTelemetry and Logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader forwards the first status code and ignores the rest.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write marks the response as started with an implicit 200.
func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
