package settlement

import (
	"context"
	"time"

	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	"github.com/memespace/market-engine/pkg/logger"
)

//go:generate mockgen -source=worker.go -destination=mock/worker_mock.go -package=mock

// Matcher runs one settlement pass over a market.
type Matcher interface {
	RunMarket(ctx context.Context, marketID string) error
}

// Worker periodically sweeps markets flagged with pending orders and runs a
// settlement pass over each. Passes are serialized per market by the
// matcher's lock, so overlapping workers are safe.
type Worker struct {
	marketRepo marketv1.Repository
	matcher    Matcher
	interval   time.Duration
	logger     logger.Interface
}

// NewWorker creates a new settlement worker.
func NewWorker(marketRepo marketv1.Repository, matcher Matcher, interval time.Duration, logger logger.Interface) *Worker {
	return &Worker{
		marketRepo: marketRepo,
		matcher:    matcher,
		interval:   interval,
		logger:     logger,
	}
}

// Start runs the sweep loop until the context is cancelled. One sweep runs
// immediately, then one per interval.
func (w *Worker) Start(ctx context.Context) {
	w.logger.InfoContext(ctx, "starting settlement worker", logger.Field{
		Key:   "interval",
		Value: w.interval.String(),
	})

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "settlement worker stopped", logger.Field{
				Key:   "action",
				Value: "settlement_worker_stop",
			})
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep settles every market flagged as having pending orders. A failing
// market is logged and skipped so one bad market cannot starve the rest.
func (w *Worker) sweep(ctx context.Context) {
	markets, err := w.marketRepo.ListPendingSettlement(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "list_pending_settlement",
		})
		return
	}

	for _, market := range markets {
		if ctx.Err() != nil {
			return
		}

		if err := w.matcher.RunMarket(ctx, market.ID); err != nil {
			w.logger.ErrorContext(ctx, err,
				logger.Field{Key: "action", Value: "run_settlement"},
				logger.Field{Key: "marketID", Value: market.ID},
			)
		}
	}
}
