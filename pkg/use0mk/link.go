package use0mk

import (
	"context"
	"encoding/json"
)

// Origin tells which API call produced a Link.
type Origin int

const (
	OriginShorten Origin = iota + 1
	OriginPreview
)

func (o Origin) String() string {
	switch o {
	case OriginShorten:
		return "shorten"
	case OriginPreview:
		return "preview"
	default:
		return "unknown"
	}
}

type deleter interface {
	Delete(ctx context.Context, deleteURI, deleteCode string) (bool, error)
}

// Link is a shortened URI as reported by 0.mk. The amount of data depends on
// the call that produced it, so every attribute is optional and an absent one
// means "unknown" rather than empty.
//
// Links are only built from API responses. The single mutable bit is the
// deleted flag, flipped by a successful Delete.
type Link struct {
	origin Origin

	longURI    *string
	shortURI   *string
	shortName  *string
	statsURI   *string
	title      *string
	deleteURI  *string
	deleteCode *string

	deleted bool
	client  deleter
}

func (l *Link) Origin() Origin { return l.origin }

// LongURI is the original, long URI.
func (l *Link) LongURI() (string, bool) { return deref(l.longURI) }

// ShortURI is the shortened http://0.mk/<name> URI.
func (l *Link) ShortURI() (string, bool) { return deref(l.shortURI) }

// ShortName is the name part of the short URI.
func (l *Link) ShortName() (string, bool) { return deref(l.shortName) }

// StatsURI points to the statistics page of the link.
func (l *Link) StatsURI() (string, bool) { return deref(l.statsURI) }

// Title is the document title of the long URI.
func (l *Link) Title() (string, bool) { return deref(l.title) }

func (l *Link) DeleteURI() (string, bool) { return deref(l.deleteURI) }

func (l *Link) DeleteCode() (string, bool) { return deref(l.deleteCode) }

// Deleted reports whether the link was removed through Delete.
func (l *Link) Deleted() bool { return l.deleted }

// Deletable reports whether a delete can still be attempted.
func (l *Link) Deletable() bool {
	if l.deleted {
		return false
	}
	return l.origin == OriginShorten || (l.deleteURI != nil && l.deleteCode != nil)
}

// Delete removes the link from 0.mk. It returns false without touching the
// network when the link is already deleted or lacks a delete URI or code.
// Once it returns true the link stays deleted and further calls return false.
func (l *Link) Delete(ctx context.Context) (bool, error) {
	if l.deleted || l.deleteURI == nil || l.deleteCode == nil || l.client == nil {
		return false, nil
	}

	ok, err := l.client.Delete(ctx, *l.deleteURI, *l.deleteCode)
	if err != nil {
		return false, err
	}
	l.deleted = ok
	return ok, nil
}

// linkJSON is the exported representation of a Link, absent fields are omitted.
type linkJSON struct {
	Origin     string  `json:"origin"`
	LongURI    *string `json:"long_uri,omitempty"`
	ShortURI   *string `json:"short_uri,omitempty"`
	ShortName  *string `json:"short_name,omitempty"`
	StatsURI   *string `json:"stats_uri,omitempty"`
	Title      *string `json:"title,omitempty"`
	DeleteURI  *string `json:"delete_uri,omitempty"`
	DeleteCode *string `json:"delete_code,omitempty"`
	Deletable  bool    `json:"deletable"`
	Deleted    bool    `json:"deleted"`
}

// MarshalJSON encodes the link with snake_case keys.
func (l *Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(linkJSON{
		Origin:     l.origin.String(),
		LongURI:    l.longURI,
		ShortURI:   l.shortURI,
		ShortName:  l.shortName,
		StatsURI:   l.statsURI,
		Title:      l.title,
		DeleteURI:  l.deleteURI,
		DeleteCode: l.deleteCode,
		Deletable:  l.Deletable(),
		Deleted:    l.deleted,
	})
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
