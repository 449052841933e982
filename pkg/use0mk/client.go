// Package use0mk is a client for the 0.mk URL shortening service.
//
// A Client shortens URIs, previews existing short links, deletes links it
// created and rewrites free text by shortening every foreign URL in it:
//
//	c := use0mk.New(use0mk.DefaultEndpoints(), use0mk.Credentials{Username: "me", APIKey: "key"})
//	link, err := c.Shorten(ctx, "https://example.com/very/long/path", "")
//	if err != nil {
//		var apiErr *use0mk.APIError
//		if errors.As(err, &apiErr) { ... }
//	}
//	short, _ := link.ShortURI()
package use0mk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const userAgent = "use0mk-go/1.0"

// Endpoints locate the 0.mk API and the domain its short links live on.
type Endpoints struct {
	ShortenURI string
	PreviewURI string
	Domain     string
}

// DefaultEndpoints returns the public 0.mk API.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		ShortenURI: "http://api.0.mk/v2/skrati",
		PreviewURI: "http://api.0.mk/v2/pregled",
		Domain:     "0.mk",
	}
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport. The Doer must not follow redirects.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.http = d
	}
}

// WithLogger sets the logger, zap.NewNop is used by default.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMaxRedirects sets how many redirects a single API call may follow.
func WithMaxRedirects(n int) Option {
	return func(c *Client) {
		c.maxRedirects = n
	}
}

// NewHTTPClient returns an *http.Client suitable for a Client: redirects
// are returned to the caller and requests time out after timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Client talks to 0.mk. Its configuration is fixed at construction,
// so a Client is safe for concurrent use when its Doer is.
type Client struct {
	endpoints    Endpoints
	creds        Credentials
	http         Doer
	logger       *zap.Logger
	maxRedirects int

	domainPattern *regexp.Regexp
}

// New builds a Client for the given endpoints and credentials.
func New(endpoints Endpoints, creds Credentials, opts ...Option) *Client {
	c := &Client{
		endpoints:    endpoints,
		creds:        creds,
		http:         NewHTTPClient(30 * time.Second),
		logger:       zap.NewNop(),
		maxRedirects: DefaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.domainPattern = regexp.MustCompile(`(?i)^https?://(www\.)?` + regexp.QuoteMeta(endpoints.Domain) + `(/\S*)?$`)
	return c
}

// Endpoints returns the endpoints the client was built with.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// IsServiceURI reports whether uri points at the 0.mk domain itself.
func (c *Client) IsServiceURI(uri string) bool {
	return c.domainPattern.MatchString(strings.TrimSpace(uri))
}

// Shorten asks 0.mk for a short link to uri. shortName may be empty to let
// the service pick one.
func (c *Client) Shorten(ctx context.Context, uri, shortName string) (*Link, error) {
	uri = strings.TrimSpace(uri)
	if _, err := url.Parse(uri); err != nil {
		return nil, invalidArgument("uri %q: %v", uri, err)
	}

	return c.call(ctx, OriginShorten, c.endpoints.ShortenURI, uri, shortName)
}

// PreviewSpec selects the link to preview. Build it with ByShortName or
// ByURI; when both fields are set the short name wins.
type PreviewSpec struct {
	ShortName string
	URI       string
}

// ByShortName previews http://0.mk/<name>.
func ByShortName(name string) PreviewSpec {
	return PreviewSpec{ShortName: name}
}

// ByURI previews a full short URI on the service domain.
func ByURI(uri string) PreviewSpec {
	return PreviewSpec{URI: uri}
}

// Preview fetches what 0.mk knows about an existing short link.
func (c *Client) Preview(ctx context.Context, spec PreviewSpec) (*Link, error) {
	target, err := c.previewTarget(spec)
	if err != nil {
		return nil, err
	}

	return c.call(ctx, OriginPreview, c.endpoints.PreviewURI, target, "")
}

func (c *Client) previewTarget(spec PreviewSpec) (string, error) {
	if name := strings.TrimSpace(spec.ShortName); name != "" {
		return "http://" + c.endpoints.Domain + "/" + name, nil
	}
	uri := strings.TrimSpace(spec.URI)
	if uri == "" {
		return "", invalidArgument("preview needs a short name or a %s URI", c.endpoints.Domain)
	}
	if !c.IsServiceURI(uri) {
		return "", invalidArgument("%q is not a %s short URI", uri, c.endpoints.Domain)
	}
	return uri, nil
}

var deleteCodePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Delete removes a link created earlier. A non-success HTTP status is
// reported as false, only transport failures and bad input are errors.
func (c *Client) Delete(ctx context.Context, deleteURI, deleteCode string) (bool, error) {
	deleteURI = strings.TrimSpace(deleteURI)
	deleteCode = strings.TrimSpace(deleteCode)
	if !c.IsServiceURI(deleteURI) {
		return false, invalidArgument("%q is not a %s delete URI", deleteURI, c.endpoints.Domain)
	}
	if !deleteCodePattern.MatchString(deleteCode) {
		return false, invalidArgument("delete code %q must be alphanumeric", deleteCode)
	}

	form := url.Values{formDeleteCode: {deleteCode}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deleteURI, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	drain(resp)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	c.logger.Info("delete",
		zap.String("uri", deleteURI),
		zap.Int("status", resp.StatusCode),
		zap.Bool("deleted", ok),
	)
	return ok, nil
}

// call runs one API round trip: build the query, fetch it and parse the body.
func (c *Client) call(ctx context.Context, origin Origin, endpoint, link, shortName string) (*Link, error) {
	log := c.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.Stringer("origin", origin),
		zap.String("link", link),
	)

	reqURI, err := BuildURI(endpoint, c.creds, link, shortName)
	if err != nil {
		return nil, err
	}

	f := &fetcher{client: c.http, maxRedirects: c.maxRedirects, logger: log}
	resp, err := f.fetch(ctx, reqURI)
	if err != nil {
		log.Warn("fetch failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	l, err := parseResponse(origin, resp.Body, c)
	if err != nil {
		log.Warn("0.mk call failed", zap.Error(err))
		return nil, err
	}

	short, _ := l.ShortURI()
	log.Debug("0.mk call succeeded", zap.String("short_uri", short))
	return l, nil
}
