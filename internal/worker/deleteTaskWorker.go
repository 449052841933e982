package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/use0mk/internal/models"
)

// Deleter removes a single link from 0.mk.
type Deleter interface {
	Delete(ctx context.Context, req models.DeleteRequest) (bool, error)
}

type DeleteTaskWorker struct {
	in        chan models.DeleteRequest
	logger    *zap.Logger
	deleter   Deleter
	batchSize int
	interval  time.Duration
	timeout   time.Duration
}

func NewDeleteTaskWorker(logger *zap.Logger, deleter Deleter, batchSize int, interval time.Duration) *DeleteTaskWorker {
	if batchSize <= 0 {
		batchSize = 1
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &DeleteTaskWorker{
		in:        make(chan models.DeleteRequest),
		logger:    logger,
		deleter:   deleter,
		batchSize: batchSize,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

func (w *DeleteTaskWorker) GetInChannel() chan<- models.DeleteRequest {
	return w.in
}

// FlushRecords collects delete requests and sends them once batchSize of them
// are pending or the interval elapses. It returns after a final flush when
// ctx is done.
func (w *DeleteTaskWorker) FlushRecords(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var pending []models.DeleteRequest

	flush := func() {
		if len(pending) == 0 {
			return
		}
		w.logger.Info("Flushing delete requests", zap.Int("count", len(pending)))

		// детачим от ctx, чтобы последняя пачка ушла после остановки
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.timeout)
		defer cancel()

		var failed, refused int
		for _, req := range pending {
			ok, err := w.deleter.Delete(fctx, req)
			switch {
			case err != nil:
				failed++
				w.logger.Error("Cannot delete link", zap.String("uri", req.DeleteURI), zap.Error(err))
			case !ok:
				refused++
			}
		}
		if failed > 0 || refused > 0 {
			w.logger.Warn("Delete batch incomplete",
				zap.Int("failed", failed),
				zap.Int("refused", refused),
			)
		}
		// failed requests are not retried
		pending = pending[:0]
	}

	for {
		select {
		case req := <-w.in:
			w.logger.Debug("Got link to delete", zap.String("uri", req.DeleteURI))
			pending = append(pending, req)
			if len(pending) >= w.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			flush()
			return
		}
	}
}
