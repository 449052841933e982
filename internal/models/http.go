// Package models defines the wire structures exchanged with 0.mk and the
// request and response bodies of the local gateway.
package models

import "encoding/json"

// ShortenRequest asks the gateway to shorten a URL.
type ShortenRequest struct {
	// URL is the long URL to be shortened.
	URL string `json:"url"`

	// ShortName is an optional custom name (http://0.mk/<name>).
	ShortName string `json:"short_name,omitempty"`
}

// PreviewRequest asks for metadata of an already shortened link.
// ShortName takes precedence over URI when both are set.
type PreviewRequest struct {
	ShortName string `json:"short_name,omitempty"`
	URI       string `json:"uri,omitempty"`
}

// DeleteRequest identifies a link to delete.
type DeleteRequest struct {
	DeleteURI  string `json:"delete_uri"`
	DeleteCode string `json:"delete_code"`
}

// DeleteResponse reports the outcome of a synchronous delete.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// TextRequest carries free text whose URLs should be shortened.
type TextRequest struct {
	Text string `json:"text"`
}

// TextResponse holds the rewritten text and the links produced for it.
// Links are pre-encoded so the gateway does not depend on the client types.
type TextResponse struct {
	Text  string            `json:"text"`
	Links []json.RawMessage `json:"links"`
}

// ErrorResponse is returned by the gateway for failed calls.
type ErrorResponse struct {
	// Kind names the failure, e.g. "invalid short name".
	Kind string `json:"kind"`

	// Code is the 0.mk greskaId, zero for local failures.
	Code int `json:"code,omitempty"`

	Message string `json:"message"`
}
