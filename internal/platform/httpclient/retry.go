package httpclient

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jsamuelsen11/startup-scorer/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry runs req up to maxAttempts times with jittered exponential
// backoff. Hunter lookups are bodiless GETs; a request whose body cannot be
// rewound through GetBody gets exactly one attempt. The response is handed
// back through resp so the bodyclose linter sees the caller own it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	attempts := c.retryCfg.maxAttempts
	if attempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", attempts)
	}
	if !replayable(req) {
		attempts = 1
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)

	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, retryAfter, lastErr); err != nil {
				return err
			}
			if err := rewindBody(req); err != nil {
				return err
			}
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			redactTransportError(err, req)
			lastErr = err
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"))

		if attempt == attempts-1 {
			*resp = r // body left open so the caller can translate the error
			return lastErr
		}

		drainResponseBody(r)
	}

	return lastErr
}

// redactTransportError masks credential query parameters in the URL that
// net/http embeds in a *url.Error, before the error reaches a span or log.
func redactTransportError(err error, req *http.Request) {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = redactURL(req.URL)
	}
}

// replayable reports whether req can be sent again after a failed attempt.
func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

// rewindBody gives req a fresh body from GetBody before a retry.
func rewindBody(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// drainResponseBody reads and discards the response body to enable HTTP
// connection reuse before a retry attempt.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry calculates the backoff delay, logs the retry attempt at WARN
// level, and waits for the delay or context cancellation. A Retry-After hint
// from the previous response raises the delay, capped at the max interval.
func (c *Client) waitForRetry(
	ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error,
) error {
	delay := backoff(attempt, c.retryCfg)
	if retryAfter > delay {
		delay = min(retryAfter, c.retryCfg.maxInterval)
	}

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", redactURL(req.URL)),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	// Cap at max interval before applying jitter.
	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	// Apply ±25% jitter to prevent thundering herd.
	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// parseRetryAfter reads a Retry-After header given in delta-seconds.
// HTTP-date values and malformed input yield zero.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable determines whether a request error is retryable.
// Context cancellation and deadline exceeded are not retryable.
// Network errors (including timeouts) and unknown errors are retryable.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Network errors are retryable.
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Default to retryable for unknown errors.
	return true
}

// isRetryableStatus determines whether an HTTP status code is retryable.
// Server errors (5xx) and 429 Too Many Requests are retryable.
func isRetryableStatus(statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	return statusCode >= http.StatusInternalServerError
}
