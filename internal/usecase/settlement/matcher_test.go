package settlement

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	balanceMock "github.com/memespace/market-engine/internal/domain/balance/v1/mock"
	lockMock "github.com/memespace/market-engine/internal/domain/lock/v1/mock"
	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	marketMock "github.com/memespace/market-engine/internal/domain/market/v1/mock"
	orderv1 "github.com/memespace/market-engine/internal/domain/order/v1"
	orderMock "github.com/memespace/market-engine/internal/domain/order/v1/mock"
	memorylock "github.com/memespace/market-engine/internal/infrastructure/memory/marketlock"
	publisherMock "github.com/memespace/market-engine/internal/usecase/trade-publisher/mock"
	loggerMock "github.com/memespace/market-engine/pkg/logger/mock"
	pgMock "github.com/memespace/market-engine/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type matcherMocks struct {
	marketRepo *marketMock.MockRepository
	orderRepo  *orderMock.MockRepository
	balances   *balanceMock.MockService
	publisher  *publisherMock.MockTradePublisher
	locker     *lockMock.MockMarketLocker
	txManager  *pgMock.MockTxManager
}

func newMatcher(t *testing.T) (*Matcher, *matcherMocks) {
	ctrl := gomock.NewController(t)

	m := &matcherMocks{
		marketRepo: marketMock.NewMockRepository(ctrl),
		orderRepo:  orderMock.NewMockRepository(ctrl),
		balances:   balanceMock.NewMockService(ctrl),
		publisher:  publisherMock.NewMockTradePublisher(ctrl),
		locker:     lockMock.NewMockMarketLocker(ctrl),
		txManager:  pgMock.NewMockTxManager(ctrl),
	}

	log := loggerMock.NewMockInterface(ctrl)
	log.EXPECT().DebugContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	matcher := NewMatcher(
		m.marketRepo,
		m.orderRepo,
		m.balances,
		m.publisher,
		m.locker,
		m.txManager,
		marketv1.DefaultCurve(),
		log,
	)

	return matcher, m
}

func lockCycle(m *matcherMocks) {
	m.locker.EXPECT().TryLock(gomock.Any(), "m1").Return(true, nil)
	m.locker.EXPECT().Unlock(gomock.Any(), "m1").Return(nil)
}

func passThroughTx(m *matcherMocks) {
	m.txManager.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func freshMarket() *marketv1.Market {
	market := marketv1.NewMarket("content-1", 0.1, 1000)
	market.ID = "m1"
	market.HasPendingOrder = true
	return market
}

func TestMatcher_RunMarket_SkipsWhenLocked(t *testing.T) {
	matcher, m := newMatcher(t)

	m.locker.EXPECT().TryLock(gomock.Any(), "m1").Return(false, nil)

	err := matcher.RunMarket(context.Background(), "m1")
	assert.NoError(t, err)
}

func TestMatcher_RunMarket_FillsBuyInFull(t *testing.T) {
	matcher, m := newMatcher(t)

	order := orderv1.NewOrder("m1", "user-1", marketv1.SideBuy, 100, 0.12)

	lockCycle(m)
	passThroughTx(m)
	m.marketRepo.EXPECT().GetByIDForUpdate(gomock.Any(), "m1").Return(freshMarket(), nil)
	m.orderRepo.EXPECT().ListPending(gomock.Any(), "m1").Return([]*orderv1.Order{order}, nil)
	m.balances.EXPECT().GetSettlementBalance(gomock.Any(), "user-1").Return(1000.0, nil)

	var debited float64
	m.balances.EXPECT().
		DebitSettlementBalance(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, delta float64) (float64, error) {
			debited = delta
			return delta, nil
		})
	m.balances.EXPECT().CreditTokenHolding(gomock.Any(), "user-1", "m1", 100.0).Return(nil)
	m.marketRepo.EXPECT().AppendTrade(gomock.Any(), gomock.Any()).Return(nil)
	m.orderRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *orderv1.Order) error {
			assert.Equal(t, orderv1.StatusCompleted, updated.Status)
			assert.Zero(t, updated.Amount)
			return nil
		})
	m.orderRepo.EXPECT().HasPending(gomock.Any(), "m1").Return(false, nil)
	m.marketRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, market *marketv1.Market) error {
			assert.False(t, market.HasPendingOrder)
			assert.InDelta(t, 9900.0, market.ReserveToken, 1e-9)
			return nil
		})
	m.publisher.EXPECT().PublishTradeEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := matcher.RunMarket(context.Background(), "m1")
	assert.NoError(t, err)
	assert.InDelta(t, 10.1313131313, debited, 1e-6)
}

func TestMatcher_RunMarket_FillsBuyPartiallyByBalance(t *testing.T) {
	matcher, m := newMatcher(t)

	const balance = 5.0
	curve := marketv1.DefaultCurve()
	order := orderv1.NewOrder("m1", "user-1", marketv1.SideBuy, 100, 0.12)

	lockCycle(m)
	passThroughTx(m)
	m.marketRepo.EXPECT().GetByIDForUpdate(gomock.Any(), "m1").Return(freshMarket(), nil)
	m.orderRepo.EXPECT().ListPending(gomock.Any(), "m1").Return([]*orderv1.Order{order}, nil)
	m.balances.EXPECT().GetSettlementBalance(gomock.Any(), "user-1").Return(balance, nil)

	var debited, filled float64
	m.balances.EXPECT().
		DebitSettlementBalance(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, delta float64) (float64, error) {
			debited = delta
			return delta, nil
		})
	m.balances.EXPECT().
		CreditTokenHolding(gomock.Any(), "user-1", "m1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, delta float64) error {
			filled = delta
			return nil
		})
	m.marketRepo.EXPECT().AppendTrade(gomock.Any(), gomock.Any()).Return(nil)
	m.orderRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *orderv1.Order) error {
			assert.Equal(t, orderv1.StatusPending, updated.Status)
			return nil
		})
	m.orderRepo.EXPECT().HasPending(gomock.Any(), "m1").Return(true, nil)
	m.marketRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, market *marketv1.Market) error {
			assert.True(t, market.HasPendingOrder)
			return nil
		})
	m.publisher.EXPECT().PublishTradeEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := matcher.RunMarket(context.Background(), "m1")
	assert.NoError(t, err)

	assert.Greater(t, filled, 0.0)
	assert.Less(t, filled, 100.0)
	assert.LessOrEqual(t, debited, balance)
	assert.InDelta(t, 100.0, filled+order.Amount, 1e-9)

	// The fill is maximal: one more step would not have been affordable.
	reference := freshMarket()
	nextCost, err := curve.Quote(reference, marketv1.RoundAmount(filled+marketv1.AmountStep), 0)
	assert.NoError(t, err)
	assert.Greater(t, nextCost, balance)
}

func TestMatcher_RunMarket_SkipsUnaffordableBuy(t *testing.T) {
	matcher, m := newMatcher(t)

	order := orderv1.NewOrder("m1", "user-1", marketv1.SideBuy, 100, 0.12)

	lockCycle(m)
	passThroughTx(m)
	m.marketRepo.EXPECT().GetByIDForUpdate(gomock.Any(), "m1").Return(freshMarket(), nil)
	m.orderRepo.EXPECT().ListPending(gomock.Any(), "m1").Return([]*orderv1.Order{order}, nil)
	m.balances.EXPECT().GetSettlementBalance(gomock.Any(), "user-1").Return(0.0, nil)
	m.orderRepo.EXPECT().HasPending(gomock.Any(), "m1").Return(true, nil)
	m.marketRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	err := matcher.RunMarket(context.Background(), "m1")
	assert.NoError(t, err)
	assert.Equal(t, orderv1.StatusPending, order.Status)
	assert.InDelta(t, 100.0, order.Amount, 1e-9)
}

func TestMatcher_RunMarket_SettlesSellInFull(t *testing.T) {
	matcher, m := newMatcher(t)

	order := orderv1.NewOrder("m1", "user-1", marketv1.SideSell, 100, 0.09)

	lockCycle(m)
	passThroughTx(m)
	m.marketRepo.EXPECT().GetByIDForUpdate(gomock.Any(), "m1").Return(freshMarket(), nil)
	m.orderRepo.EXPECT().ListPending(gomock.Any(), "m1").Return([]*orderv1.Order{order}, nil)

	var proceeds float64
	m.balances.EXPECT().
		CreditSettlementBalance(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, delta float64) error {
			proceeds = delta
			return nil
		})
	m.marketRepo.EXPECT().AppendTrade(gomock.Any(), gomock.Any()).Return(nil)
	m.orderRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *orderv1.Order) error {
			assert.Equal(t, orderv1.StatusCompleted, updated.Status)
			return nil
		})
	m.orderRepo.EXPECT().HasPending(gomock.Any(), "m1").Return(false, nil)
	m.marketRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, market *marketv1.Market) error {
			assert.InDelta(t, 10100.0, market.ReserveToken, 1e-9)
			return nil
		})
	m.publisher.EXPECT().PublishTradeEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := matcher.RunMarket(context.Background(), "m1")
	assert.NoError(t, err)
	assert.InDelta(t, 9.8712871287, proceeds, 1e-6)
}

func TestMatcher_RunMarket_SellTriggerUsesPreBuySpot(t *testing.T) {
	matcher, m := newMatcher(t)

	// The buy fill pushes the spot past the sell's trigger, but the sell is
	// judged against the spot as it was entering the pass.
	buy := orderv1.NewOrder("m1", "buyer", marketv1.SideBuy, 100, 0.12)
	sell := orderv1.NewOrder("m1", "seller", marketv1.SideSell, 50, 0.101)

	lockCycle(m)
	passThroughTx(m)
	m.marketRepo.EXPECT().GetByIDForUpdate(gomock.Any(), "m1").Return(freshMarket(), nil)
	m.orderRepo.EXPECT().ListPending(gomock.Any(), "m1").Return([]*orderv1.Order{buy, sell}, nil)
	m.balances.EXPECT().GetSettlementBalance(gomock.Any(), "buyer").Return(1000.0, nil)
	m.balances.EXPECT().
		DebitSettlementBalance(gomock.Any(), "buyer", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, delta float64) (float64, error) {
			return delta, nil
		})
	m.balances.EXPECT().CreditTokenHolding(gomock.Any(), "buyer", "m1", 100.0).Return(nil)
	m.marketRepo.EXPECT().AppendTrade(gomock.Any(), gomock.Any()).Return(nil)
	m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.orderRepo.EXPECT().HasPending(gomock.Any(), "m1").Return(true, nil)
	m.marketRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishTradeEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := matcher.RunMarket(context.Background(), "m1")
	assert.NoError(t, err)
	assert.Equal(t, orderv1.StatusPending, sell.Status)
}

func TestMatcher_RunMarket_SkipsBuyBelowSpot(t *testing.T) {
	matcher, m := newMatcher(t)

	order := orderv1.NewOrder("m1", "user-1", marketv1.SideBuy, 100, 0.09)

	lockCycle(m)
	passThroughTx(m)
	m.marketRepo.EXPECT().GetByIDForUpdate(gomock.Any(), "m1").Return(freshMarket(), nil)
	m.orderRepo.EXPECT().ListPending(gomock.Any(), "m1").Return([]*orderv1.Order{order}, nil)
	m.orderRepo.EXPECT().HasPending(gomock.Any(), "m1").Return(true, nil)
	m.marketRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	err := matcher.RunMarket(context.Background(), "m1")
	assert.NoError(t, err)
	assert.Equal(t, orderv1.StatusPending, order.Status)
}

func TestMatcher_RunMarket_ConcurrentPassesOneWinner(t *testing.T) {
	ctrl := gomock.NewController(t)

	m := &matcherMocks{
		marketRepo: marketMock.NewMockRepository(ctrl),
		orderRepo:  orderMock.NewMockRepository(ctrl),
		balances:   balanceMock.NewMockService(ctrl),
		publisher:  publisherMock.NewMockTradePublisher(ctrl),
		txManager:  pgMock.NewMockTxManager(ctrl),
	}

	log := loggerMock.NewMockInterface(ctrl)
	log.EXPECT().DebugContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	var passes atomic.Int64
	m.txManager.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, func(context.Context) error) error {
			passes.Add(1)
			time.Sleep(100 * time.Millisecond)
			return nil
		}).
		AnyTimes()

	matcher := NewMatcher(
		m.marketRepo,
		m.orderRepo,
		m.balances,
		m.publisher,
		memorylock.NewLocker(),
		m.txManager,
		marketv1.DefaultCurve(),
		log,
	)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			assert.NoError(t, matcher.RunMarket(context.Background(), "m1"))
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), passes.Load())
}

func TestMaxAffordable_MatchesExhaustiveScan(t *testing.T) {
	curve := marketv1.DefaultCurve()

	// Small order domains keep the exhaustive scan cheap: 0.02 tokens is
	// 200 whole steps.
	const maxAmount = 0.02

	balances := []float64{0, 0.0000005, 0.000001, 0.0005, 0.001, 0.002006, 0.1}

	for _, balance := range balances {
		market := freshMarket()

		got, gotCost, err := maxAffordable(curve, market, maxAmount, balance)
		assert.NoError(t, err)

		// Exhaustive scan over every whole-step quantity.
		var want, wantCost float64
		for step := int64(1); step <= 200; step++ {
			q := marketv1.RoundAmount(float64(step) * marketv1.AmountStep)
			cost, err := curve.Quote(market, q, 0)
			assert.NoError(t, err)
			if cost <= balance {
				want, wantCost = q, cost
			}
		}

		assert.InDelta(t, want, got, 1e-12, "balance %v", balance)
		if want > 0 {
			assert.InDelta(t, wantCost, gotCost, 1e-12, "balance %v", balance)
		}
	}
}

func TestPartition(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	newOrderAt := func(id string, side marketv1.Side, price float64, updatedAt time.Time) *orderv1.Order {
		order := orderv1.NewOrder("m1", "user-1", side, 10, price)
		order.ID = id
		order.UpdatedAt = updatedAt
		return order
	}

	orders := []*orderv1.Order{
		newOrderAt("b-low", marketv1.SideBuy, 0.10, base),
		newOrderAt("b-high-late", marketv1.SideBuy, 0.12, base.Add(time.Minute)),
		newOrderAt("b-high-early", marketv1.SideBuy, 0.12, base),
		newOrderAt("s-high", marketv1.SideSell, 0.20, base),
		newOrderAt("s-low-late", marketv1.SideSell, 0.15, base.Add(time.Minute)),
		newOrderAt("s-low-early", marketv1.SideSell, 0.15, base),
	}

	buys, sells := partition(orders)

	assert.Equal(t, []string{"b-high-early", "b-high-late", "b-low"}, orderIDs(buys))
	assert.Equal(t, []string{"s-low-early", "s-low-late", "s-high"}, orderIDs(sells))
}

func orderIDs(orders []*orderv1.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	return ids
}
