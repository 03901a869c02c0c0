package order

import (
	"context"

	v1 "github.com/memespace/market-engine/internal/domain/order/v1"
	"github.com/memespace/market-engine/pkg/errors"
	"github.com/memespace/market-engine/pkg/logger"
	"github.com/memespace/market-engine/pkg/postgresql"
)

// Repository is the PostgreSQL-backed order repository.
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

const orderColumns = `id, market_id, user_id, side, amount, expected_price, status, created_at, updated_at, completed_at`

// Create stores a new reservation.
func (r *repository) Create(ctx context.Context, order *v1.Order) error {
	query := `INSERT INTO orders (id, market_id, user_id, side, amount, expected_price, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	cmd, err := r.db.Exec(ctx, query,
		order.ID,
		order.MarketID,
		order.UserID,
		order.Side,
		order.Amount,
		order.ExpectedPrice,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return errors.TracerFromError(err)
	}

	r.logger.Info("Inserted order", logger.Field{
		Key:   "commandTag",
		Value: cmd.String(),
	})

	return nil
}

// GetByID gets an order by ID.
func (r *repository) GetByID(ctx context.Context, id string) (*v1.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order := &v1.Order{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.MarketID,
		&order.UserID,
		&order.Side,
		&order.Amount,
		&order.ExpectedPrice,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.CompletedAt,
	)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	return order, nil
}

// ListPending returns all pending orders for a market.
func (r *repository) ListPending(ctx context.Context, marketID string) ([]*v1.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE market_id = $1 AND status = $2 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, marketID, v1.StatusPending)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	orders := []*v1.Order{}
	for rows.Next() {
		order := &v1.Order{}
		err := rows.Scan(
			&order.ID,
			&order.MarketID,
			&order.UserID,
			&order.Side,
			&order.Amount,
			&order.ExpectedPrice,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
			&order.CompletedAt,
		)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// Update persists the order's mutable state.
func (r *repository) Update(ctx context.Context, order *v1.Order) error {
	query := `UPDATE orders SET amount = $1, status = $2, updated_at = $3, completed_at = $4 WHERE id = $5`

	_, err := r.db.Exec(ctx, query,
		order.Amount,
		order.Status,
		order.UpdatedAt,
		order.CompletedAt,
		order.ID,
	)
	if err != nil {
		return errors.TracerFromError(err)
	}

	return nil
}

// HasPending reports whether any pending order remains for the market.
func (r *repository) HasPending(ctx context.Context, marketID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM orders WHERE market_id = $1 AND status = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, marketID, v1.StatusPending).Scan(&exists)
	if err != nil {
		return false, errors.TracerFromError(err)
	}

	return exists, nil
}
