package market

import (
	"context"
	goerrors "errors"
	"math"

	"github.com/jackc/pgx/v5"
	balancev1 "github.com/memespace/market-engine/internal/domain/balance/v1"
	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	tradepublisher "github.com/memespace/market-engine/internal/usecase/trade-publisher"
	"github.com/memespace/market-engine/pkg/config"
	"github.com/memespace/market-engine/pkg/errors"
	"github.com/memespace/market-engine/pkg/logger"
	"github.com/memespace/market-engine/pkg/postgresql"
)

// Usecase owns market issuance, quoting and immediate trade execution.
type Usecase struct {
	marketRepo marketv1.Repository
	balances   balancev1.Service
	publisher  tradepublisher.TradePublisher
	txManager  postgresql.TxManager
	curve      marketv1.Curve
	cfg        config.EngineConfig
	logger     logger.Interface
}

// NewUsecase creates a new market usecase.
func NewUsecase(
	marketRepo marketv1.Repository,
	balances balancev1.Service,
	publisher tradepublisher.TradePublisher,
	txManager postgresql.TxManager,
	cfg config.EngineConfig,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		marketRepo: marketRepo,
		balances:   balances,
		publisher:  publisher,
		txManager:  txManager,
		curve:      marketv1.Curve{Fee: cfg.Fee, PriceFloor: cfg.InitialPrice},
		cfg:        cfg,
		logger:     logger,
	}
}

// Tokenize opens a market for a content item, charging the creator the fixed
// issuance cost. Each content item gets at most one market.
func (u *Usecase) Tokenize(ctx context.Context, contentID, userID string) (*marketv1.Market, error) {
	existing, err := u.marketRepo.GetByContentID(ctx, contentID)
	if err != nil && !goerrors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewErrorDetails("content already has a market", string(errors.ErrMarketExists), "contentID")
	}

	market := marketv1.NewMarket(contentID, u.cfg.InitialPrice, u.cfg.InitialLiquidity)

	err = u.txManager.WithTx(ctx, func(ctx context.Context) error {
		applied, err := u.balances.DebitSettlementBalance(ctx, userID, u.cfg.IssueCost)
		if err != nil {
			return err
		}
		if applied < u.cfg.IssueCost {
			return errors.NewErrorDetails("balance does not cover the issuance cost", string(errors.ErrInsufficientBalance), "userID")
		}

		return u.marketRepo.Create(ctx, market)
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "market tokenized",
		logger.Field{Key: "marketID", Value: market.ID},
		logger.Field{Key: "contentID", Value: contentID},
	)

	return market, nil
}

// Quote prices a hypothetical trade without touching market state. A positive
// amount quotes a buy, a negative amount a sell. When expectedPrice is at or
// above the curve's floor the quote is anchored at that price instead of the
// live spot.
func (u *Usecase) Quote(ctx context.Context, marketID string, amount, expectedPrice float64) (float64, error) {
	market, err := u.marketRepo.GetByID(ctx, marketID)
	if err != nil {
		if goerrors.Is(err, pgx.ErrNoRows) {
			return 0, errors.NewErrorDetails("market not found", string(errors.GeneralNotFoundError), "marketID")
		}
		return 0, err
	}

	return u.curve.Quote(market, marketv1.RoundAmount(amount), expectedPrice)
}

// ExecuteTrade executes an immediate trade at the live spot price. Buys debit
// the settlement balance and credit the token holding; sells do the reverse.
// The whole mutation runs in one transaction with the market row locked.
func (u *Usecase) ExecuteTrade(ctx context.Context, marketID, userID string, side marketv1.Side, amount float64) (*marketv1.TradeEvent, error) {
	amount = marketv1.RoundAmount(amount)
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, errors.NewErrorDetails("amount must be a positive finite number", string(errors.ErrInvalidAmount), "amount")
	}

	signed := amount
	if side == marketv1.SideSell {
		signed = -amount
	}

	var event *marketv1.TradeEvent

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		market, err := u.marketRepo.GetByIDForUpdate(ctx, marketID)
		if err != nil {
			if goerrors.Is(err, pgx.ErrNoRows) {
				return errors.NewErrorDetails("market not found", string(errors.GeneralNotFoundError), "marketID")
			}
			return err
		}

		cost, err := u.curve.Quote(market, signed, 0)
		if err != nil {
			return err
		}

		switch side {
		case marketv1.SideBuy:
			applied, err := u.balances.DebitSettlementBalance(ctx, userID, cost)
			if err != nil {
				return err
			}
			if applied < cost {
				return errors.NewErrorDetails("balance does not cover the trade", string(errors.ErrInsufficientBalance), "amount")
			}
			if err := u.balances.CreditTokenHolding(ctx, userID, marketID, amount); err != nil {
				return err
			}
		case marketv1.SideSell:
			applied, err := u.balances.DebitTokenHolding(ctx, userID, marketID, amount)
			if err != nil {
				return err
			}
			if applied < amount {
				return errors.NewErrorDetails("holding does not cover the trade", string(errors.ErrInsufficientHolding), "amount")
			}
			if err := u.balances.CreditSettlementBalance(ctx, userID, cost); err != nil {
				return err
			}
		default:
			return errors.NewErrorDetails("unknown trade side", string(errors.GeneralBadRequestError), "side")
		}

		event = market.ApplyTrade(userID, signed, cost)
		if err := u.marketRepo.AppendTrade(ctx, event); err != nil {
			return err
		}

		return u.marketRepo.Update(ctx, market)
	})
	if err != nil {
		return nil, err
	}

	// The trade is committed; a publish failure must not undo it.
	if err := u.publisher.PublishTradeEvent(ctx, event); err != nil {
		u.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "publish_trade_event",
		})
	}

	return event, nil
}
