package settlement

import (
	"context"
	"testing"
	"time"

	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	marketMock "github.com/memespace/market-engine/internal/domain/market/v1/mock"
	workerMock "github.com/memespace/market-engine/internal/worker/settlement/mock"
	loggerMock "github.com/memespace/market-engine/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newWorker(t *testing.T, interval time.Duration) (*Worker, *marketMock.MockRepository, *workerMock.MockMatcher) {
	ctrl := gomock.NewController(t)

	repo := marketMock.NewMockRepository(ctrl)
	matcher := workerMock.NewMockMatcher(ctrl)

	log := loggerMock.NewMockInterface(ctrl)
	log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return NewWorker(repo, matcher, interval, log), repo, matcher
}

func TestWorker_Sweep(t *testing.T) {
	worker, repo, matcher := newWorker(t, time.Minute)

	markets := []*marketv1.Market{
		{ID: "m1", HasPendingOrder: true},
		{ID: "m2", HasPendingOrder: true},
	}

	repo.EXPECT().ListPendingSettlement(gomock.Any()).Return(markets, nil)

	// A failing market must not stop the sweep.
	matcher.EXPECT().RunMarket(gomock.Any(), "m1").Return(assert.AnError)
	matcher.EXPECT().RunMarket(gomock.Any(), "m2").Return(nil)

	worker.sweep(context.Background())
}

func TestWorker_Sweep_ListFailure(t *testing.T) {
	worker, repo, _ := newWorker(t, time.Minute)

	repo.EXPECT().ListPendingSettlement(gomock.Any()).Return(nil, assert.AnError)

	worker.sweep(context.Background())
}

func TestWorker_Start_StopsOnCancel(t *testing.T) {
	worker, repo, _ := newWorker(t, 5*time.Millisecond)

	swept := make(chan struct{}, 16)
	repo.EXPECT().
		ListPendingSettlement(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*marketv1.Market, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return nil, nil
		}).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("worker never swept")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on cancel")
	}
}
