package candle

import (
	"context"
	"testing"
	"time"

	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	marketMock "github.com/memespace/market-engine/internal/domain/market/v1/mock"
	"github.com/memespace/market-engine/pkg/errors"
	loggerMock "github.com/memespace/market-engine/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newCandleUsecase(t *testing.T) (*Usecase, *marketMock.MockRepository) {
	ctrl := gomock.NewController(t)

	repo := marketMock.NewMockRepository(ctrl)
	log := loggerMock.NewMockInterface(ctrl)

	return NewUsecase(repo, log), repo
}

func TestUsecase_GetCandles(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	market := &marketv1.Market{
		ID:           "m1",
		ContentID:    "content-1",
		Price:        0.12,
		ReserveToken: 9128.7,
		K:            10000000,
		CreatedAt:    base,
		UpdatedAt:    base,
	}

	trades := []*marketv1.TradeEvent{
		{ID: "t1", MarketID: "m1", Side: marketv1.SideBuy, Amount: 500, Price: 0.15, CreatedAt: base.Add(30 * time.Second)},
		{ID: "t2", MarketID: "m1", Side: marketv1.SideSell, Amount: 371.3, Price: 0.12, CreatedAt: base.Add(90 * time.Second)},
	}

	t.Run("seeds from pre-window trades and carries the close forward", func(t *testing.T) {
		uc, repo := newCandleUsecase(t)

		start := base.Add(time.Minute)
		end := base.Add(4 * time.Minute)

		repo.EXPECT().GetByID(ctx, "m1").Return(market, nil)
		repo.EXPECT().ListTrades(ctx, "m1", end).Return(trades, nil)

		candles, err := uc.GetCandles(ctx, "m1", "1m", start, end)
		assert.NoError(t, err)
		assert.Len(t, candles, 3)

		// First bucket opens at the price left by the trade before the
		// window; high and low come from the in-bucket trades alone.
		assert.Equal(t, start, candles[0].Time)
		assert.InDelta(t, 0.15, candles[0].Open, 1e-9)
		assert.InDelta(t, 0.12, candles[0].High, 1e-9)
		assert.InDelta(t, 0.12, candles[0].Low, 1e-9)
		assert.InDelta(t, 0.12, candles[0].Close, 1e-9)
		assert.InDelta(t, 371.3, candles[0].Volume, 1e-9)

		// Untraded buckets are flat at the previous close.
		for _, c := range candles[1:] {
			assert.InDelta(t, 0.12, c.Open, 1e-9)
			assert.InDelta(t, 0.12, c.High, 1e-9)
			assert.InDelta(t, 0.12, c.Low, 1e-9)
			assert.InDelta(t, 0.12, c.Close, 1e-9)
			assert.Zero(t, c.Volume)
		}
	})

	t.Run("single buy produces one non-flat bucket opening at the initial price", func(t *testing.T) {
		uc, repo := newCandleUsecase(t)

		// 100 tokens bought from a fresh pool: reserve 10000 -> 9900.
		traded := &marketv1.Market{
			ID:           "m1",
			ContentID:    "content-1",
			Price:        10000000.0 / (9900.0 * 9900.0),
			ReserveToken: 9900,
			K:            10000000,
			CreatedAt:    base,
			UpdatedAt:    base.Add(30 * time.Second),
		}
		buy := []*marketv1.TradeEvent{
			{ID: "t1", MarketID: "m1", Side: marketv1.SideBuy, Amount: 100, Price: traded.Price, CreatedAt: base.Add(30 * time.Second)},
		}

		end := base.Add(2 * time.Minute)
		repo.EXPECT().GetByID(ctx, "m1").Return(traded, nil)
		repo.EXPECT().ListTrades(ctx, "m1", end).Return(buy, nil)

		candles, err := uc.GetCandles(ctx, "m1", "1m", base, end)
		assert.NoError(t, err)
		assert.Len(t, candles, 2)

		assert.InDelta(t, 0.1, candles[0].Open, 1e-9)
		assert.InDelta(t, 0.10203041, candles[0].Close, 1e-8)
		assert.InDelta(t, 100.0, candles[0].Volume, 1e-9)

		// The trailing bucket is flat at the new spot.
		assert.InDelta(t, candles[0].Close, candles[1].Open, 1e-12)
		assert.Zero(t, candles[1].Volume)
	})

	t.Run("clamps the start to the market's creation", func(t *testing.T) {
		uc, repo := newCandleUsecase(t)

		end := base.Add(2 * time.Minute)

		repo.EXPECT().GetByID(ctx, "m1").Return(market, nil)
		repo.EXPECT().ListTrades(ctx, "m1", end).Return(trades, nil)

		candles, err := uc.GetCandles(ctx, "m1", "1m", base.Add(-time.Hour), end)
		assert.NoError(t, err)
		assert.Len(t, candles, 2)
		assert.Equal(t, base, candles[0].Time)
	})

	t.Run("stretches the end to cover at least one bucket", func(t *testing.T) {
		uc, repo := newCandleUsecase(t)

		start := base.Add(time.Minute)

		repo.EXPECT().GetByID(ctx, "m1").Return(market, nil)
		repo.EXPECT().ListTrades(ctx, "m1", start.Add(time.Minute)).Return(trades, nil)

		candles, err := uc.GetCandles(ctx, "m1", "1m", start, start.Add(10*time.Second))
		assert.NoError(t, err)
		assert.Len(t, candles, 1)
	})

	t.Run("rejects an unsupported interval", func(t *testing.T) {
		uc, _ := newCandleUsecase(t)

		candles, err := uc.GetCandles(ctx, "m1", "2m", base, base.Add(time.Hour))
		assert.Nil(t, candles)
		assert.True(t, errors.ErrorCodeEquals(err, errors.GeneralBadRequestError))
	})

	t.Run("rejects a range exceeding the point limit", func(t *testing.T) {
		uc, repo := newCandleUsecase(t)

		repo.EXPECT().GetByID(ctx, "m1").Return(market, nil)

		candles, err := uc.GetCandles(ctx, "m1", "1m", base, base.Add(6000*time.Minute))
		assert.Nil(t, candles)
		assert.True(t, errors.ErrorCodeEquals(err, errors.GeneralBadRequestError))
	})
}
