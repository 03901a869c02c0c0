package balance

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/memespace/market-engine/pkg/errors"
	"github.com/memespace/market-engine/pkg/logger"
	"github.com/memespace/market-engine/pkg/postgresql"
)

// Repository is the PostgreSQL-backed balance service. Settlement balances
// and token holdings are rows keyed by user (and market, for holdings);
// debits clamp at zero and report the magnitude actually applied.
type repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

// NewRepository creates a new repository.
func NewRepository(db postgresql.PostgreSQLClient, logger logger.Interface) *repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetSettlementBalance returns the user's settlement-currency balance,
// zero for unknown users.
func (r *repository) GetSettlementBalance(ctx context.Context, userID string) (float64, error) {
	query := `SELECT balance FROM settlement_balances WHERE user_id = $1`

	var balance float64
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, errors.TracerFromError(err)
	}

	return balance, nil
}

// CreditSettlementBalance adds delta to the user's settlement balance.
func (r *repository) CreditSettlementBalance(ctx context.Context, userID string, delta float64) error {
	query := `INSERT INTO settlement_balances (user_id, balance, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET balance = settlement_balances.balance + $2, updated_at = NOW()`

	_, err := r.db.Exec(ctx, query, userID, delta)
	if err != nil {
		return errors.TracerFromError(err)
	}

	return nil
}

// DebitSettlementBalance debits up to delta, clamping at zero, and returns
// the amount actually debited.
func (r *repository) DebitSettlementBalance(ctx context.Context, userID string, delta float64) (float64, error) {
	query := `WITH current AS (
			SELECT balance FROM settlement_balances WHERE user_id = $1 FOR UPDATE
		)
		UPDATE settlement_balances
		SET balance = GREATEST(settlement_balances.balance - $2, 0), updated_at = NOW()
		FROM current
		WHERE user_id = $1
		RETURNING LEAST($2, current.balance)`

	var applied float64
	err := r.db.QueryRow(ctx, query, userID, delta).Scan(&applied)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, errors.TracerFromError(err)
	}

	return applied, nil
}

// GetTokenHolding returns the user's token holding for a market, zero when
// absent.
func (r *repository) GetTokenHolding(ctx context.Context, userID, marketID string) (float64, error) {
	query := `SELECT amount FROM token_holdings WHERE user_id = $1 AND market_id = $2`

	var amount float64
	err := r.db.QueryRow(ctx, query, userID, marketID).Scan(&amount)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, errors.TracerFromError(err)
	}

	return amount, nil
}

// CreditTokenHolding adds delta tokens to the user's holding for a market.
func (r *repository) CreditTokenHolding(ctx context.Context, userID, marketID string, delta float64) error {
	query := `INSERT INTO token_holdings (user_id, market_id, amount, updated_at) VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, market_id) DO UPDATE SET amount = token_holdings.amount + $3, updated_at = NOW()`

	_, err := r.db.Exec(ctx, query, userID, marketID, delta)
	if err != nil {
		return errors.TracerFromError(err)
	}

	return nil
}

// DebitTokenHolding debits up to delta tokens, clamping at zero, and returns
// the amount actually debited.
func (r *repository) DebitTokenHolding(ctx context.Context, userID, marketID string, delta float64) (float64, error) {
	query := `WITH current AS (
			SELECT amount FROM token_holdings WHERE user_id = $1 AND market_id = $2 FOR UPDATE
		)
		UPDATE token_holdings
		SET amount = GREATEST(token_holdings.amount - $3, 0), updated_at = NOW()
		FROM current
		WHERE user_id = $1 AND market_id = $2
		RETURNING LEAST($3, current.amount)`

	var applied float64
	err := r.db.QueryRow(ctx, query, userID, marketID, delta).Scan(&applied)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, errors.TracerFromError(err)
	}

	return applied, nil
}
