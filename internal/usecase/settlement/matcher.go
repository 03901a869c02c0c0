package settlement

import (
	"context"
	goerrors "errors"
	"math"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	balancev1 "github.com/memespace/market-engine/internal/domain/balance/v1"
	lockv1 "github.com/memespace/market-engine/internal/domain/lock/v1"
	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	orderv1 "github.com/memespace/market-engine/internal/domain/order/v1"
	tradepublisher "github.com/memespace/market-engine/internal/usecase/trade-publisher"
	"github.com/memespace/market-engine/pkg/errors"
	"github.com/memespace/market-engine/pkg/logger"
	"github.com/memespace/market-engine/pkg/postgresql"
)

// Matcher settles pending orders against the bonding curve. One pass per
// market settles at most the head order of each side, so a single pass moves
// the price at most twice and later passes observe the new spot.
type Matcher struct {
	marketRepo marketv1.Repository
	orderRepo  orderv1.Repository
	balances   balancev1.Service
	publisher  tradepublisher.TradePublisher
	locker     lockv1.MarketLocker
	txManager  postgresql.TxManager
	curve      marketv1.Curve
	logger     logger.Interface
}

// NewMatcher creates a new settlement matcher.
func NewMatcher(
	marketRepo marketv1.Repository,
	orderRepo orderv1.Repository,
	balances balancev1.Service,
	publisher tradepublisher.TradePublisher,
	locker lockv1.MarketLocker,
	txManager postgresql.TxManager,
	curve marketv1.Curve,
	logger logger.Interface,
) *Matcher {
	return &Matcher{
		marketRepo: marketRepo,
		orderRepo:  orderRepo,
		balances:   balances,
		publisher:  publisher,
		locker:     locker,
		txManager:  txManager,
		curve:      curve,
		logger:     logger,
	}
}

// RunMarket runs one settlement pass over a market. The pass is guarded by a
// non-blocking per-market lock: when another settler holds it, RunMarket
// returns nil without doing anything. All mutations of the pass commit in a
// single transaction; trade events are published only after the commit.
func (m *Matcher) RunMarket(ctx context.Context, marketID string) error {
	acquired, err := m.locker.TryLock(ctx, marketID)
	if err != nil {
		return err
	}
	if !acquired {
		m.logger.DebugContext(ctx, "settlement already running", logger.Field{
			Key:   "marketID",
			Value: marketID,
		})
		return nil
	}
	defer func() {
		if err := m.locker.Unlock(ctx, marketID); err != nil {
			m.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "release_settlement_lock",
			})
		}
	}()

	var events []*marketv1.TradeEvent

	err = m.txManager.WithTx(ctx, func(ctx context.Context) error {
		market, err := m.marketRepo.GetByIDForUpdate(ctx, marketID)
		if err != nil {
			if goerrors.Is(err, pgx.ErrNoRows) {
				return errors.NewErrorDetails("market not found", string(errors.GeneralNotFoundError), "marketID")
			}
			return err
		}

		orders, err := m.orderRepo.ListPending(ctx, marketID)
		if err != nil {
			return err
		}

		buys, sells := partition(orders)

		// Both triggers compare against the spot as it was entering the
		// pass. A buy fill moves the price up, which must not unlock a
		// sell that was not fillable when the pass began.
		spot := market.Price

		if len(buys) > 0 && buys[0].ExpectedPrice >= spot {
			event, err := m.settleBuy(ctx, market, buys[0])
			if err != nil {
				return err
			}
			if event != nil {
				events = append(events, event)
			}
		}

		if len(sells) > 0 && sells[0].ExpectedPrice <= spot {
			event, err := m.settleSell(ctx, market, sells[0])
			if err != nil {
				return err
			}
			if event != nil {
				events = append(events, event)
			}
		}

		hasPending, err := m.orderRepo.HasPending(ctx, marketID)
		if err != nil {
			return err
		}
		market.HasPendingOrder = hasPending
		market.UpdatedAt = time.Now().UTC()

		return m.marketRepo.Update(ctx, market)
	})
	if err != nil {
		return err
	}

	for _, event := range events {
		if err := m.publisher.PublishTradeEvent(ctx, event); err != nil {
			m.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "publish_settled_trade",
			})
		}
	}

	return nil
}

// partition splits pending orders by side and sorts each side into settlement
// priority: buys by highest expected price first, sells by lowest first, ties
// going to the order least recently touched.
func partition(orders []*orderv1.Order) (buys, sells []*orderv1.Order) {
	for _, order := range orders {
		if order.Side == marketv1.SideBuy {
			buys = append(buys, order)
		} else {
			sells = append(sells, order)
		}
	}

	sort.SliceStable(buys, func(i, j int) bool {
		if buys[i].ExpectedPrice != buys[j].ExpectedPrice {
			return buys[i].ExpectedPrice > buys[j].ExpectedPrice
		}
		return buys[i].UpdatedAt.Before(buys[j].UpdatedAt)
	})
	sort.SliceStable(sells, func(i, j int) bool {
		if sells[i].ExpectedPrice != sells[j].ExpectedPrice {
			return sells[i].ExpectedPrice < sells[j].ExpectedPrice
		}
		return sells[i].UpdatedAt.Before(sells[j].UpdatedAt)
	})

	return buys, sells
}

// settleBuy fills as much of the buy order as the user's settlement balance
// affords, via binary search over whole multiples of the amount step. A fill
// smaller than the order leaves the remainder pending; an unaffordable order
// is skipped without filling.
func (m *Matcher) settleBuy(ctx context.Context, market *marketv1.Market, order *orderv1.Order) (*marketv1.TradeEvent, error) {
	balance, err := m.balances.GetSettlementBalance(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	quantity, cost, err := maxAffordable(m.curve, market, order.Amount, balance)
	if err != nil {
		return nil, err
	}
	if quantity == 0 {
		return nil, nil
	}

	applied, err := m.balances.DebitSettlementBalance(ctx, order.UserID, cost)
	if err != nil {
		return nil, err
	}
	if applied < cost {
		return nil, errors.NewErrorDetails("balance changed during settlement", string(errors.ErrInsufficientBalance), "userID")
	}

	if err := m.balances.CreditTokenHolding(ctx, order.UserID, market.ID, quantity); err != nil {
		return nil, err
	}

	event := market.ApplyTrade(order.UserID, quantity, cost)
	if err := m.marketRepo.AppendTrade(ctx, event); err != nil {
		return nil, err
	}

	order.Fill(quantity)
	if err := m.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "buy order settled",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "quantity", Value: quantity},
		logger.Field{Key: "cost", Value: cost},
	)

	return event, nil
}

// maxAffordable finds the largest whole-step quantity within maxAmount whose
// buy cost stays within balance. Cost is monotonically increasing in quantity
// for a fixed reserve, so a binary search over step multiples suffices; the
// step count bounds the iterations regardless of the amounts involved.
func maxAffordable(curve marketv1.Curve, market *marketv1.Market, maxAmount, balance float64) (float64, float64, error) {
	steps := int64(math.Round(maxAmount / marketv1.AmountStep))

	best := int64(0)
	lo, hi := int64(1), steps
	for lo <= hi {
		mid := (lo + hi) / 2
		quantity := marketv1.RoundAmount(float64(mid) * marketv1.AmountStep)

		cost, err := curve.Quote(market, quantity, 0)
		if err != nil {
			if errors.ErrorCodeEquals(err, errors.ErrInsufficientLiquidity) {
				hi = mid - 1
				continue
			}
			return 0, 0, err
		}

		if cost <= balance {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	// Requote the winner and back off step by step if rounding pushed the
	// cost past the balance after all.
	for best > 0 {
		quantity := marketv1.RoundAmount(float64(best) * marketv1.AmountStep)
		cost, err := curve.Quote(market, quantity, 0)
		if err != nil {
			return 0, 0, err
		}
		if cost <= balance {
			return quantity, cost, nil
		}
		best--
	}

	return 0, 0, nil
}

// settleSell fills the sell order in full at the live reserve. The tokens
// were escrowed when the order was placed, so only the proceeds move here.
func (m *Matcher) settleSell(ctx context.Context, market *marketv1.Market, order *orderv1.Order) (*marketv1.TradeEvent, error) {
	proceeds, err := m.curve.Quote(market, -order.Amount, 0)
	if err != nil {
		return nil, err
	}

	if err := m.balances.CreditSettlementBalance(ctx, order.UserID, proceeds); err != nil {
		return nil, err
	}

	event := market.ApplyTrade(order.UserID, -order.Amount, proceeds)
	if err := m.marketRepo.AppendTrade(ctx, event); err != nil {
		return nil, err
	}

	order.Fill(order.Amount)
	if err := m.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "sell order settled",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "proceeds", Value: proceeds},
	)

	return event, nil
}
