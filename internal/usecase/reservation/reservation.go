package reservation

import (
	"context"
	goerrors "errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	balancev1 "github.com/memespace/market-engine/internal/domain/balance/v1"
	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	orderv1 "github.com/memespace/market-engine/internal/domain/order/v1"
	"github.com/memespace/market-engine/pkg/errors"
	"github.com/memespace/market-engine/pkg/logger"
	"github.com/memespace/market-engine/pkg/postgresql"
)

// Usecase owns the reservation book: placing and cancelling deferred orders.
// Settlement of pending orders lives in the settlement matcher.
type Usecase struct {
	marketRepo marketv1.Repository
	orderRepo  orderv1.Repository
	balances   balancev1.Service
	txManager  postgresql.TxManager
	logger     logger.Interface
}

// NewUsecase creates a new reservation usecase.
func NewUsecase(
	marketRepo marketv1.Repository,
	orderRepo orderv1.Repository,
	balances balancev1.Service,
	txManager postgresql.TxManager,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		marketRepo: marketRepo,
		orderRepo:  orderRepo,
		balances:   balances,
		txManager:  txManager,
		logger:     logger,
	}
}

// Place creates a pending order against a market.
//
// Sell orders escrow the tokens immediately: the user's holding is debited up
// front and the clamped result becomes the order amount, so a later partial
// cancel or fill can never release more tokens than were taken. Buy orders
// reserve nothing; the matcher checks the balance at settlement time.
func (u *Usecase) Place(ctx context.Context, marketID, userID string, side marketv1.Side, amount, expectedPrice float64) (*orderv1.Order, error) {
	if side != marketv1.SideBuy && side != marketv1.SideSell {
		return nil, errors.NewErrorDetails("unknown order side", string(errors.GeneralBadRequestError), "side")
	}

	amount = marketv1.RoundAmount(amount)
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, errors.NewErrorDetails("amount must be a positive finite number", string(errors.ErrInvalidAmount), "amount")
	}
	if expectedPrice <= 0 || math.IsNaN(expectedPrice) || math.IsInf(expectedPrice, 0) {
		return nil, errors.NewErrorDetails("expected price must be a positive finite number", string(errors.ErrInvalidAmount), "expectedPrice")
	}

	var order *orderv1.Order

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		market, err := u.marketRepo.GetByIDForUpdate(ctx, marketID)
		if err != nil {
			if goerrors.Is(err, pgx.ErrNoRows) {
				return errors.NewErrorDetails("market not found", string(errors.GeneralNotFoundError), "marketID")
			}
			return err
		}

		if side == marketv1.SideSell {
			applied, err := u.balances.DebitTokenHolding(ctx, userID, marketID, amount)
			if err != nil {
				return err
			}
			applied = marketv1.RoundAmount(applied)
			if applied <= 0 {
				return errors.NewErrorDetails("holding does not cover the order", string(errors.ErrInsufficientHolding), "amount")
			}
			amount = applied
		}

		order = orderv1.NewOrder(marketID, userID, side, amount, expectedPrice)
		if err := u.orderRepo.Create(ctx, order); err != nil {
			return err
		}

		market.HasPendingOrder = true
		market.UpdatedAt = time.Now().UTC()
		return u.marketRepo.Update(ctx, market)
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "order placed",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "marketID", Value: marketID},
		logger.Field{Key: "side", Value: string(side)},
	)

	return order, nil
}

// Cancel cancels a pending order. Only the owner may cancel; sell orders get
// their escrowed tokens credited back. The market's pending flag is left for
// the matcher to recompute on its next pass.
func (u *Usecase) Cancel(ctx context.Context, orderID, userID string) (*orderv1.Order, error) {
	var order *orderv1.Order

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = u.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			if goerrors.Is(err, pgx.ErrNoRows) {
				return errors.NewErrorDetails("order not found", string(errors.GeneralNotFoundError), "orderID")
			}
			return err
		}

		if order.UserID != userID {
			return errors.NewErrorDetails("order belongs to another user", string(errors.GeneralForbiddenError), "orderID")
		}
		if !order.IsPending() {
			return errors.NewErrorDetails("order is no longer pending", string(errors.ErrOrderNotPending), "orderID")
		}

		if order.Side == marketv1.SideSell {
			if err := u.balances.CreditTokenHolding(ctx, userID, order.MarketID, order.Amount); err != nil {
				return err
			}
		}

		order.Cancel()
		return u.orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "order cancelled",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "marketID", Value: order.MarketID},
	)

	return order, nil
}
