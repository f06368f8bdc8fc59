package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names whose values never
// reach the logs. The HTTP logging middleware redacts them at the call site;
// the slog handler masks them again by field name.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// SensitiveQueryParams lists query parameters that carry credentials. The
// Hunter.io API takes its key as api_key on every request URL.
var SensitiveQueryParams = map[string]bool{
	"api_key":      true,
	"apikey":       true,
	"key":          true,
	"token":        true,
	"access_token": true,
}

var (
	// sensitiveFields are attribute keys masked regardless of value.
	sensitiveFields = []string{"password", "secret", "token", "hunter_api_key"}

	// sensitivePrefixes catch variants such as api_key_hunter or secret_value.
	sensitivePrefixes = []string{"api_key", "secret_"}

	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// apiKeyInlinePattern matches api_key=..., apikey: ... inside free text
	// such as an upstream URL embedded in an error message.
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*[^\s&"]+`)
)

// newRedactAttr builds the masq ReplaceAttr hook installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+2)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
