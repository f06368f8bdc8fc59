package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/dto"
)

// Timeout bounds each request to d. The handler sees the deadline on its
// context, so a batch in progress stops issuing lookups once it passes.
// If the handler has not returned by then, the client gets a 504
// problem+json response and anything the handler writes afterwards is
// dropped with http.ErrHandlerTimeout.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			r = r.WithContext(ctx)
			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(tw, r)
			}()

			select {
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.copyTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				tw.timedOut = true
				tw.mu.Unlock()
				dto.WriteErrorResponse(w, r,
					fmt.Errorf("request exceeded %s: %w", d, context.DeadlineExceeded))
			}
		})
	}
}

// timeoutWriter buffers a handler's response until the handler returns.
type timeoutWriter struct {
	mu       sync.Mutex
	header   http.Header
	body     []byte
	status   int
	timedOut bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	tw.body = append(tw.body, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.status != 0 {
		return
	}
	tw.status = code
}

// copyTo replays the buffered response onto w. Caller holds tw.mu.
func (tw *timeoutWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.status != 0 {
		w.WriteHeader(tw.status)
	}
	if len(tw.body) > 0 {
		_, _ = w.Write(tw.body)
	}
}
