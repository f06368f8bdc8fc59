package httpclient

import (
	"net/url"
	"strings"
	"testing"
)

func TestRedactURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    []string
		notWant string
	}{
		{
			name:    "api key redacted",
			raw:     "https://api.hunter.io/v2/domain-search?domain=stripe.com&api_key=secret123",
			want:    []string{"domain=stripe.com", "api_key=%5BREDACTED%5D"},
			notWant: "secret123",
		},
		{
			name:    "case insensitive name",
			raw:     "https://example.com/x?API_KEY=secret123",
			want:    []string{"API_KEY=%5BREDACTED%5D"},
			notWant: "secret123",
		},
		{
			name: "no query",
			raw:  "https://api.hunter.io/v2/domain-search",
			want: []string{"https://api.hunter.io/v2/domain-search"},
		},
		{
			name: "no sensitive params",
			raw:  "https://api.hunter.io/v2/domain-search?domain=stripe.com&limit=10",
			want: []string{"domain=stripe.com&limit=10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(tt.raw)
			if err != nil {
				t.Fatalf("url.Parse: %v", err)
			}

			got := redactURL(u)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("redactURL() = %q, want it to contain %q", got, w)
				}
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("redactURL() = %q leaks %q", got, tt.notWant)
			}
			if u.RawQuery != "" && strings.Contains(tt.raw, "secret") && !strings.Contains(u.RawQuery, "secret") {
				t.Error("redactURL() mutated the input URL")
			}
		})
	}
}

func TestRedactURL_Nil(t *testing.T) {
	t.Parallel()

	if got := redactURL(nil); got != "" {
		t.Errorf("redactURL(nil) = %q, want empty", got)
	}
}
