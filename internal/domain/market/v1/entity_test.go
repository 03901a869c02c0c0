package v1

import (
	"testing"

	"github.com/memespace/market-engine/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMarket() *Market {
	return NewMarket("content-1", InitialPrice, InitialLiquidity)
}

func TestNewMarket(t *testing.T) {
	m := newTestMarket()

	assert.Equal(t, 0.1, m.Price)
	assert.Equal(t, 10000.0, m.ReserveToken)
	assert.Equal(t, 10000000.0, m.K)
	assert.False(t, m.HasPendingOrder)
	assert.True(t, m.InvariantHolds(1e-9))
}

func TestCurve_Quote(t *testing.T) {
	curve := DefaultCurve()

	testCases := []struct {
		name          string
		amount        float64
		expectedPrice float64
		assertFn      func(t *testing.T, settlement float64, err error)
	}{
		{
			name:   "buy pays cost plus fee",
			amount: 100,
			assertFn: func(t *testing.T, settlement float64, err error) {
				require.NoError(t, err)
				// k/9900 - k/10000 = 10.1010..., surcharged by 0.3%
				raw := 10000000.0/9900 - 10000000.0/10000
				assert.InDelta(t, raw*1.003, settlement, 1e-9)
			},
		},
		{
			name:   "sell receives proceeds minus fee",
			amount: -100,
			assertFn: func(t *testing.T, settlement float64, err error) {
				require.NoError(t, err)
				raw := 10000000.0/10000 - 10000000.0/10100
				assert.InDelta(t, raw*0.997, settlement, 1e-9)
				assert.Positive(t, settlement)
			},
		},
		{
			name:          "expected price pins the starting reserve",
			amount:        100,
			expectedPrice: 0.1,
			assertFn: func(t *testing.T, settlement float64, err error) {
				require.NoError(t, err)
				// sqrt(k/0.1) == live reserve here, so identical to the spot quote
				raw := 10000000.0/9900 - 10000000.0/10000
				assert.InDelta(t, raw*1.003, settlement, 1e-9)
			},
		},
		{
			name:          "expected price below floor is ignored",
			amount:        100,
			expectedPrice: 0.05,
			assertFn: func(t *testing.T, settlement float64, err error) {
				require.NoError(t, err)
				raw := 10000000.0/9900 - 10000000.0/10000
				assert.InDelta(t, raw*1.003, settlement, 1e-9)
			},
		},
		{
			name:   "zero amount is invalid",
			amount: 0,
			assertFn: func(t *testing.T, _ float64, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.ErrInvalidAmount))
			},
		},
		{
			name:   "buying the whole pool fails",
			amount: 10000,
			assertFn: func(t *testing.T, _ float64, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.ErrInsufficientLiquidity))
			},
		},
		{
			name:   "buying more than the pool fails",
			amount: 20000,
			assertFn: func(t *testing.T, _ float64, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.ErrInsufficientLiquidity))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMarket()
			settlement, err := curve.Quote(m, tc.amount, tc.expectedPrice)
			tc.assertFn(t, settlement, err)
		})
	}
}

func TestCurve_Quote_Monotonic(t *testing.T) {
	curve := DefaultCurve()
	m := newTestMarket()

	prevBuy := 0.0
	prevSell := 0.0
	for _, amount := range []float64{1, 10, 100, 1000, 5000} {
		buy, err := curve.Quote(m, amount, 0)
		require.NoError(t, err)
		assert.Greater(t, buy, prevBuy, "buy cost must grow with amount")
		prevBuy = buy

		sell, err := curve.Quote(m, -amount, 0)
		require.NoError(t, err)
		assert.Greater(t, sell, prevSell, "sell proceeds must grow with amount")
		prevSell = sell
	}
}

func TestCurve_RoundTripErodesValue(t *testing.T) {
	curve := DefaultCurve()

	for _, amount := range []float64{0.5, 10, 250, 4000} {
		m := newTestMarket()

		cost, err := curve.Quote(m, amount, 0)
		require.NoError(t, err)
		m.ApplyTrade("u1", amount, cost)

		proceeds, err := curve.Quote(m, -amount, 0)
		require.NoError(t, err)
		m.ApplyTrade("u1", -amount, proceeds)

		assert.Less(t, proceeds, cost, "round trip of %v must lose the fee", amount)
		assert.True(t, m.InvariantHolds(1e-9))
	}
}

func TestMarket_ApplyTrade(t *testing.T) {
	m := newTestMarket()
	curve := DefaultCurve()

	cost, err := curve.Quote(m, 100, 0)
	require.NoError(t, err)

	event := m.ApplyTrade("u1", 100, cost)

	assert.Equal(t, 9900.0, m.ReserveToken)
	assert.InDelta(t, 0.1020304, m.Price, 1e-7)
	assert.True(t, m.InvariantHolds(1e-9))

	assert.Equal(t, m.ID, event.MarketID)
	assert.Equal(t, SideBuy, event.Side)
	assert.Equal(t, 100.0, event.Amount)
	assert.Equal(t, cost, event.Cost)
	assert.Equal(t, m.Price, event.Price)
	assert.NotEmpty(t, event.ID)

	proceeds, err := curve.Quote(m, -50, 0)
	require.NoError(t, err)
	sellEvent := m.ApplyTrade("", -50, proceeds)

	assert.Equal(t, 9950.0, m.ReserveToken)
	assert.Equal(t, SideSell, sellEvent.Side)
	assert.Equal(t, 50.0, sellEvent.Amount)
	assert.Empty(t, sellEvent.UserID)
	assert.True(t, m.InvariantHolds(1e-9))
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, 1.2346, RoundAmount(1.23456))
	assert.Equal(t, 1.2345, RoundAmount(1.23454))
	assert.Equal(t, 0.0001, RoundAmount(0.00006))
	assert.Equal(t, 0.0, RoundAmount(0.00004))
	assert.Equal(t, -2.5, RoundAmount(-2.5))
}
