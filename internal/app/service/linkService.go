// Package service sits between the gateway handlers and the 0.mk client.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/atinyakov/use0mk/internal/models"
	"github.com/atinyakov/use0mk/pkg/use0mk"
)

type LinkService struct {
	client Client
	logger *zap.Logger
	ch     chan<- models.DeleteRequest
	done   <-chan struct{}
}

// NewLinks returns a service whose batch deletes go to the deletes channel,
// usually the input of a worker.DeleteTaskWorker. Closing done tells the
// service the worker is gone and pending enqueues are dropped.
func NewLinks(client Client, logger *zap.Logger, deletes chan<- models.DeleteRequest, done <-chan struct{}) *LinkService {
	return &LinkService{
		client: client,
		logger: logger,
		ch:     deletes,
		done:   done,
	}
}

func (s *LinkService) Shorten(ctx context.Context, uri, shortName string) (*use0mk.Link, error) {
	return s.client.Shorten(ctx, uri, shortName)
}

func (s *LinkService) Preview(ctx context.Context, req models.PreviewRequest) (*use0mk.Link, error) {
	return s.client.Preview(ctx, use0mk.PreviewSpec{ShortName: req.ShortName, URI: req.URI})
}

func (s *LinkService) Delete(ctx context.Context, req models.DeleteRequest) (bool, error) {
	return s.client.Delete(ctx, req.DeleteURI, req.DeleteCode)
}

func (s *LinkService) ShortenText(ctx context.Context, text string) (string, []*use0mk.Link, error) {
	return s.client.ShortenText(ctx, text)
}

// EnqueueDeletes hands the requests to the delete worker. It blocks until the
// worker takes them, ctx is done or the service is shut down.
func (s *LinkService) EnqueueDeletes(ctx context.Context, reqs []models.DeleteRequest) {
	s.logger.Info("Sending to a delete channel", zap.Int("count", len(reqs)))
	for _, r := range reqs {
		select {
		case s.ch <- r:
		case <-ctx.Done():
			s.logger.Warn("delete queue abandoned", zap.Error(ctx.Err()), zap.String("uri", r.DeleteURI))
			return
		case <-s.done:
			s.logger.Warn("delete queue closed, dropping requests", zap.String("uri", r.DeleteURI))
			return
		}
	}
}
