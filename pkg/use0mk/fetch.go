package use0mk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// DefaultMaxRedirects is the redirect budget of a single API call.
const DefaultMaxRedirects = 5

// Doer sends HTTP requests. It must hand redirects back to the caller
// instead of following them, see NewHTTPClient.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// fetcher performs GET requests and follows redirects itself, within a budget.
type fetcher struct {
	client       Doer
	maxRedirects int
	logger       *zap.Logger
}

// fetch returns the first 2xx response reached from uri. The caller closes its body.
func (f *fetcher) fetch(ctx context.Context, uri string) (*http.Response, error) {
	budget := f.maxRedirects
	current := uri

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, current, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", userAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return resp, nil

		case resp.StatusCode >= 300 && resp.StatusCode < 400:
			next, err := nextLocation(req.URL, resp)
			drain(resp)
			if err != nil {
				return nil, err
			}
			if budget <= 0 {
				return nil, &APIError{
					Kind:    KindRedirectDepthExceeded,
					Code:    int(KindRedirectDepthExceeded),
					Message: fmt.Sprintf("Redirect level too deep (max %d)", f.maxRedirects),
				}
			}
			budget--
			f.logger.Debug("following redirect",
				zap.String("from", redact(current)),
				zap.String("to", redact(next)),
				zap.Int("status", resp.StatusCode),
				zap.Int("budget", budget),
			)
			current = next

		default:
			drain(resp)
			return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: redact(current)}
		}
	}
}

// nextLocation resolves the Location header against the request URL.
func nextLocation(base *url.URL, resp *http.Response) (string, error) {
	loc := resp.Header.Get("Location")
	if loc == "" {
		return "", &HTTPStatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: redact(base.String())}
	}
	u, err := base.Parse(loc)
	if err != nil {
		return "", fmt.Errorf("parse redirect location %q: %w", loc, err)
	}
	return u.String(), nil
}

// redact drops the query, which carries the API key.
func redact(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	u.RawQuery = ""
	return u.String()
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
