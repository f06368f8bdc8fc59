package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/dto"
)

// errPanic is what clients see; the panic value stays in the logs.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and a 500
// problem+json response. A panic after the response has started (for
// example midway through a CSV export) can only be logged.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := []any{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", rw.headerWritten),
				}
				if q := RedactQuery(r.URL); q != "" {
					attrs = append(attrs, slog.String("query", q))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
