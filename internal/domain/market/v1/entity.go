package v1

import (
	"math"
	"time"

	"github.com/memespace/market-engine/pkg/errors"
	"github.com/oklog/ulid/v2"
)

// Curve and market defaults.
const (
	// InitialPrice is the spot price every market opens at.
	InitialPrice = 0.1
	// InitialLiquidity is the virtual settlement-currency liquidity seeding the pool.
	InitialLiquidity = 1000.0
	// DefaultFee is the proportional fee charged on both sides of a trade.
	DefaultFee = 0.003
	// AmountStep is the smallest tradable token increment (4 decimal places).
	AmountStep = 0.0001
)

// Side identifies the direction of a trade or order.
type Side string

const (
	// SideBuy buys market tokens with settlement currency.
	SideBuy Side = "BUY"
	// SideSell sells market tokens back into the pool.
	SideSell Side = "SELL"
)

// Market owns one bonding-curve market's invariant state. Price is always
// derived: price == k / reserveToken² after every mutation.
type Market struct {
	ID              string
	ContentID       string
	Price           float64
	ReserveToken    float64
	K               float64
	HasPendingOrder bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewMarket initializes a market at the given price with the given virtual
// liquidity: reserveToken = liquidity / price, k = liquidity² / price.
func NewMarket(contentID string, initialPrice, initialLiquidity float64) *Market {
	now := time.Now().UTC()
	return &Market{
		ID:           ulid.Make().String(),
		ContentID:    contentID,
		Price:        initialPrice,
		ReserveToken: initialLiquidity / initialPrice,
		K:            initialLiquidity * initialLiquidity / initialPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TradeEvent is one executed trade, immutable once appended to the ledger.
type TradeEvent struct {
	ID        string
	MarketID  string
	UserID    string // empty for system-driven ticks
	Side      Side
	Amount    float64 // token magnitude
	Cost      float64 // settlement-currency magnitude paid/received
	Price     float64 // spot price after the trade
	CreatedAt time.Time
}

// ApplyTrade mutates the reserve by the signed token amount (positive = buy),
// recomputes the spot price from the invariant and returns the ledger event.
// Callers must hold the market's exclusive lock.
func (m *Market) ApplyTrade(userID string, amount, cost float64) *TradeEvent {
	m.ReserveToken -= amount
	m.Price = m.K / (m.ReserveToken * m.ReserveToken)
	m.UpdatedAt = time.Now().UTC()

	side := SideBuy
	if amount < 0 {
		side = SideSell
	}

	return &TradeEvent{
		ID:        ulid.Make().String(),
		MarketID:  m.ID,
		UserID:    userID,
		Side:      side,
		Amount:    math.Abs(amount),
		Cost:      math.Abs(cost),
		Price:     m.Price,
		CreatedAt: m.UpdatedAt,
	}
}

// InvariantHolds reports whether price == k / reserveToken² within tolerance
// and the reserve is still strictly positive.
func (m *Market) InvariantHolds(tolerance float64) bool {
	if m.ReserveToken <= 0 {
		return false
	}
	derived := m.K / (m.ReserveToken * m.ReserveToken)
	return math.Abs(m.Price-derived) <= tolerance*math.Max(1, derived)
}

// RoundAmount rounds a token amount to the supported precision (4 decimals).
func RoundAmount(amount float64) float64 {
	return math.Round(amount*10000) / 10000
}

// Curve is the pure pricing function over a market's invariant state.
type Curve struct {
	Fee        float64
	PriceFloor float64
}

// DefaultCurve returns the curve with the standard fee and price floor.
func DefaultCurve() Curve {
	return Curve{Fee: DefaultFee, PriceFloor: InitialPrice}
}

// Quote computes the settlement-currency magnitude for trading the signed
// token amount (positive = buy, negative = sell). Buys pay a fee surcharge,
// sells have the fee deducted from proceeds; both directions return a
// positive magnitude.
//
// When expectedPrice is at or above the floor, the quote is computed against
// a hypothetical reserve r0 = sqrt(k / expectedPrice), pricing the trade as
// if it executed exactly at that trigger price instead of the live spot.
func (c Curve) Quote(m *Market, amount, expectedPrice float64) (float64, error) {
	if amount == 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errors.NewErrorDetails("amount must be a non-zero finite number", string(errors.ErrInvalidAmount), "amount")
	}

	isBuy := amount > 0
	if isBuy && amount >= m.ReserveToken {
		return 0, errors.NewErrorDetails("buy would drain the market's pool", string(errors.ErrInsufficientLiquidity), "amount")
	}

	r0 := m.ReserveToken
	if expectedPrice >= c.PriceFloor {
		r0 = math.Sqrt(m.K / expectedPrice)
	}

	r1 := r0 - amount
	if r1 <= 0 {
		return 0, errors.NewErrorDetails("buy would drain the market's pool", string(errors.ErrInsufficientLiquidity), "amount")
	}

	settlement := m.K/r1 - m.K/r0
	if isBuy {
		return settlement * (1 + c.Fee), nil
	}
	return -settlement * (1 - c.Fee), nil
}
