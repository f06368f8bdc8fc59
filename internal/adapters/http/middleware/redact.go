package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/startup-scorer/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders turns request headers into log attributes, masking the
// values of logging.SensitiveHeaders. Multi-value headers are joined with a
// comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		val := strings.Join(vals, ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			val = redacted
		}
		attrs = append(attrs, slog.String(key, val))
	}
	return attrs
}

// RedactQuery returns the encoded query of u with credential parameters
// masked. Callers sometimes paste a Hunter URL, api_key included, straight
// into a request.
func RedactQuery(u *url.URL) string {
	if u == nil || u.RawQuery == "" {
		return ""
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return redacted
	}
	for name := range q {
		if logging.SensitiveQueryParams[strings.ToLower(name)] {
			q[name] = []string{redacted}
		}
	}
	return q.Encode()
}
