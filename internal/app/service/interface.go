package service

import (
	"context"

	"github.com/atinyakov/use0mk/internal/models"
	"github.com/atinyakov/use0mk/pkg/use0mk"
)

// Client is the part of use0mk.Client the service relies on.
type Client interface {
	Shorten(ctx context.Context, uri, shortName string) (*use0mk.Link, error)
	Preview(ctx context.Context, spec use0mk.PreviewSpec) (*use0mk.Link, error)
	Delete(ctx context.Context, deleteURI, deleteCode string) (bool, error)
	ShortenText(ctx context.Context, text string) (string, []*use0mk.Link, error)
}

// LinkServiceIface is what the gateway handlers need.
type LinkServiceIface interface {
	Shorten(ctx context.Context, uri, shortName string) (*use0mk.Link, error)
	Preview(ctx context.Context, req models.PreviewRequest) (*use0mk.Link, error)
	Delete(ctx context.Context, req models.DeleteRequest) (bool, error)
	ShortenText(ctx context.Context, text string) (string, []*use0mk.Link, error)
	EnqueueDeletes(ctx context.Context, reqs []models.DeleteRequest)
}
