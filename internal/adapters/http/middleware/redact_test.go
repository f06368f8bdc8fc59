package middleware_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "authorization",
			headers: http.Header{"Authorization": {"Bearer secret-token"}},
			want:    map[string]string{"Authorization": redactedValue},
		},
		{
			name:    "api key header",
			headers: http.Header{"X-Api-Key": {"hunter-key"}},
			want:    map[string]string{"X-Api-Key": redactedValue},
		},
		{
			name:    "cookie",
			headers: http.Header{"Cookie": {"session=abc123"}},
			want:    map[string]string{"Cookie": redactedValue},
		},
		{
			name:    "multi-value header joined",
			headers: http.Header{"Accept": {"text/csv", "application/json"}},
			want:    map[string]string{"Accept": "text/csv,application/json"},
		},
		{
			name: "mixed",
			headers: http.Header{
				"Authorization": {"Bearer secret"},
				"Content-Type":  {"text/csv"},
			},
			want: map[string]string{
				"Authorization": redactedValue,
				"Content-Type":  "text/csv",
			},
		},
		{
			name:    "empty",
			headers: http.Header{},
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)
			if len(attrs) != len(tt.want) {
				t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(tt.want))
			}
			for _, a := range attrs {
				if got := a.Value.String(); got != tt.want[a.Key] {
					t.Errorf("%s = %q, want %q", a.Key, got, tt.want[a.Key])
				}
			}
		})
	}
}

func TestRedactQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no query", "/api/v1/reports", ""},
		{"plain", "/api/v1/reports?format=csv", "format=csv"},
		{"api key masked", "/api/v1/scores/stripe.com?api_key=abc123", "api_key=%5BREDACTED%5D"},
		{"upper case key masked", "/x?API_KEY=abc&format=json", "API_KEY=%5BREDACTED%5D&format=json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(tt.raw)
			if err != nil {
				t.Fatalf("url.Parse(%q): %v", tt.raw, err)
			}
			if got := middleware.RedactQuery(u); got != tt.want {
				t.Errorf("RedactQuery(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRedactQuery_Nil(t *testing.T) {
	t.Parallel()

	if got := middleware.RedactQuery(nil); got != "" {
		t.Errorf("RedactQuery(nil) = %q, want empty", got)
	}
}
