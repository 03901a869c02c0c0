package candle

import (
	"context"
	goerrors "errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	"github.com/memespace/market-engine/pkg/errors"
	"github.com/memespace/market-engine/pkg/interval"
	"github.com/memespace/market-engine/pkg/logger"
)

// Candle is one OHLCV bucket. Prices carry 8 decimal places, volume 6.
type Candle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Usecase aggregates a market's trade ledger into candles on demand. Candles
// are derived, never stored.
type Usecase struct {
	marketRepo marketv1.Repository
	logger     logger.Interface
}

// NewUsecase creates a new candle usecase.
func NewUsecase(marketRepo marketv1.Repository, logger logger.Interface) *Usecase {
	return &Usecase{
		marketRepo: marketRepo,
		logger:     logger,
	}
}

// GetCandles builds the market's candle series for the given interval.
//
// Buckets step from the clamped start time. A bucket without trades is flat:
// all four prices carry the previous close forward and volume is zero. The
// price entering the window is reconstructed from the ledger, replaying every
// trade that happened before the window.
func (u *Usecase) GetCandles(ctx context.Context, marketID, intervalName string, startTime, endTime time.Time) ([]*Candle, error) {
	iv, err := interval.GetInterval(intervalName)
	if err != nil {
		return nil, errors.NewErrorDetails(err.Error(), string(errors.GeneralBadRequestError), "interval")
	}

	market, err := u.marketRepo.GetByID(ctx, marketID)
	if err != nil {
		if goerrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NewErrorDetails("market not found", string(errors.GeneralNotFoundError), "marketID")
		}
		return nil, err
	}

	// No candles can exist before the market did.
	start := startTime
	if market.CreatedAt.After(start) {
		start = market.CreatedAt
	}

	end := endTime
	if end.IsZero() {
		end = time.Now().UTC()
	}
	if minEnd := start.Add(iv.Duration); end.Before(minEnd) {
		end = minEnd
	}

	if err := interval.ValidateTimeRange(start, end, intervalName); err != nil {
		return nil, errors.NewErrorDetails(err.Error(), string(errors.GeneralBadRequestError), "interval")
	}

	trades, err := u.marketRepo.ListTrades(ctx, marketID, end)
	if err != nil {
		return nil, err
	}

	// Replay trades preceding the window so the first bucket opens at the
	// price the market actually had entering it.
	lastPrice := priceBeforeTrades(market, trades)
	idx := 0
	for idx < len(trades) && trades[idx].CreatedAt.Before(start) {
		lastPrice = trades[idx].Price
		idx++
	}

	candles := []*Candle{}
	for bucket := start; bucket.Before(end); bucket = bucket.Add(iv.Duration) {
		bucketEnd := bucket.Add(iv.Duration)

		open := lastPrice
		high := lastPrice
		low := lastPrice
		closePrice := lastPrice
		volume := 0.0

		traded := false
		for idx < len(trades) && trades[idx].CreatedAt.Before(bucketEnd) {
			price := trades[idx].Price
			if !traded {
				high, low = price, price
				traded = true
			} else {
				high = math.Max(high, price)
				low = math.Min(low, price)
			}
			closePrice = price
			volume += trades[idx].Amount
			idx++
		}

		candles = append(candles, &Candle{
			Time:   bucket,
			Open:   roundPrice(open),
			High:   roundPrice(high),
			Low:    roundPrice(low),
			Close:  roundPrice(closePrice),
			Volume: roundVolume(volume),
		})

		lastPrice = closePrice
	}

	return candles, nil
}

// priceBeforeTrades reconstructs the spot price the market had before its
// first trade. The reserve after trades[0] follows from the invariant, and the
// trade's own amount undoes the reserve move.
func priceBeforeTrades(market *marketv1.Market, trades []*marketv1.TradeEvent) float64 {
	if len(trades) == 0 {
		return market.Price
	}

	first := trades[0]
	reserveAfter := math.Sqrt(market.K / first.Price)

	signed := first.Amount
	if first.Side == marketv1.SideSell {
		signed = -first.Amount
	}
	reserveBefore := reserveAfter + signed

	return market.K / (reserveBefore * reserveBefore)
}

func roundPrice(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}

func roundVolume(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
