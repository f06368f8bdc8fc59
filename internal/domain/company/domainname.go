package company

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"

	"github.com/jsamuelsen11/startup-scorer/internal/domain"
)

const fieldDomain = "domain"

// NormalizeDomain converts user input such as "https://www.Stripe.com/about"
// into a bare lowercase ASCII host name ("stripe.com"). It returns a
// *domain.ValidationError when the input is empty, is not a valid host name,
// or is itself a public suffix (e.g. "co.uk").
func NormalizeDomain(raw string) (string, error) {
	host := strings.TrimSpace(raw)
	if host == "" {
		return "", domain.NewValidationError(fieldDomain, domain.MsgRequired)
	}

	if strings.Contains(host, "://") {
		u, err := url.Parse(host)
		if err != nil || u.Host == "" {
			return "", domain.NewValidationError(fieldDomain, "must be a host name or URL")
		}
		host = u.Hostname()
	}

	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}

	host = strings.TrimSuffix(strings.ToLower(host), ".")
	host = strings.TrimPrefix(host, "www.")

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", domain.NewValidationError(fieldDomain, "must be a valid host name")
	}
	if !strings.Contains(ascii, ".") {
		return "", domain.NewValidationError(fieldDomain, "must include a top-level domain")
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(ascii); err != nil {
		return "", domain.NewValidationError(fieldDomain, "must not be a public suffix")
	}

	return ascii, nil
}
