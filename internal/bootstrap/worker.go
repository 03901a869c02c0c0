package bootstrap

import (
	settlementWorker "github.com/memespace/market-engine/internal/worker/settlement"
)

// Worker holds the background workers.
type Worker struct {
	Settlement *settlementWorker.Worker
}

// registerWorker registers the workers.
func (b *Bootstrap) registerWorker() {
	b.Worker.Settlement = settlementWorker.NewWorker(
		b.Repository.Market,
		b.Usecase.Matcher,
		b.Config.Engine.SettlementInterval,
		b.Logger,
	)
}
