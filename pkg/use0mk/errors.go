package use0mk

import (
	"errors"
	"fmt"
)

// Kind identifies a class of failure reported by 0.mk or raised locally.
type Kind int

const (
	KindEmptyLink Kind = iota + 1
	KindInvalidLink
	KindInvalidFormat
	KindInvalidShortName
	KindInvalidAPIKey
	KindInvalidCredentials
	KindInvalidAPICall

	// KindRedirectDepthExceeded is never sent by the API, the fetcher raises it.
	KindRedirectDepthExceeded Kind = 100
	// KindUnknownAPIError covers a greskaId outside the documented table.
	KindUnknownAPIError Kind = 101
)

// apiKinds maps the numeric greskaId sent by 0.mk to its Kind.
var apiKinds = map[int]Kind{
	1: KindEmptyLink,
	2: KindInvalidLink,
	3: KindInvalidFormat,
	4: KindInvalidShortName,
	5: KindInvalidAPIKey,
	6: KindInvalidCredentials,
	7: KindInvalidAPICall,
}

var kindNames = map[Kind]string{
	KindEmptyLink:             "empty link",
	KindInvalidLink:           "invalid link",
	KindInvalidFormat:         "invalid format",
	KindInvalidShortName:      "invalid short name",
	KindInvalidAPIKey:         "invalid API key",
	KindInvalidCredentials:    "invalid credentials",
	KindInvalidAPICall:        "invalid API call",
	KindRedirectDepthExceeded: "redirect depth exceeded",
	KindUnknownAPIError:       "unknown API error",
}

// String returns a human readable name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error makes a Kind usable as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

// KindForCode returns the Kind registered for an API status code.
func KindForCode(code int) (Kind, bool) {
	k, ok := apiKinds[code]
	return k, ok
}

// Sentinels for errors.Is checks.
var (
	ErrEmptyLink          error = KindEmptyLink
	ErrInvalidLink        error = KindInvalidLink
	ErrInvalidFormat      error = KindInvalidFormat
	ErrInvalidShortName   error = KindInvalidShortName
	ErrInvalidAPIKey      error = KindInvalidAPIKey
	ErrInvalidCredentials error = KindInvalidCredentials
	ErrInvalidAPICall     error = KindInvalidAPICall
	ErrUnknownAPIError    error = KindUnknownAPIError

	// ErrRedirectDepthExceeded is returned when the redirect budget runs out.
	ErrRedirectDepthExceeded error = KindRedirectDepthExceeded

	// ErrInvalidArgument reports caller input rejected before any network call.
	ErrInvalidArgument = errors.New("invalid argument")
)

// APIError is a failure reported by 0.mk, or the local redirect failure.
type APIError struct {
	Kind    Kind
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("0.mk: %s (%d): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("0.mk: %s (%d)", e.Kind, e.Code)
}

// Is reports whether target is the Kind of this error.
func (e *APIError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// HTTPStatusError is returned for a response that is neither a success nor a redirect.
type HTTPStatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s: unexpected response %q", e.URL, e.Status)
}

func newAPIError(code int, message string) *APIError {
	kind, ok := KindForCode(code)
	if !ok {
		kind = KindUnknownAPIError
	}
	return &APIError{Kind: kind, Code: code, Message: message}
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
