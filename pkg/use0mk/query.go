package use0mk

import (
	"fmt"
	"net/url"
	"strings"
)

// Credentials identify the 0.mk account used for API calls.
// Both fields are optional, anonymous calls are allowed by the service.
type Credentials struct {
	Username string
	APIKey   string
}

// BuildURI assembles the query for a shorten or preview call against base.
// Parameters keep a fixed order: korisnik, apikey, format, nastavka, link.
// Empty optional values are left out, link is always present.
func BuildURI(base string, creds Credentials, link, shortName string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", fmt.Errorf("parse API endpoint: %w", err)
	}

	params := []struct {
		key, value string
	}{
		{"korisnik", creds.Username},
		{"apikey", creds.APIKey},
		{"format", "json"},
		{"nastavka", shortName},
	}

	pairs := make([]string, 0, len(params)+2)
	if u.RawQuery != "" {
		pairs = append(pairs, u.RawQuery)
	}
	for _, p := range params {
		v := strings.TrimSpace(p.value)
		if v == "" {
			continue
		}
		pairs = append(pairs, p.key+"="+url.QueryEscape(v))
	}
	pairs = append(pairs, "link="+url.QueryEscape(strings.TrimSpace(link)))

	u.RawQuery = strings.Join(pairs, "&")
	return u.String(), nil
}
