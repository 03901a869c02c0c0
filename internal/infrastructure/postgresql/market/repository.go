package market

import (
	"context"
	"time"

	v1 "github.com/memespace/market-engine/internal/domain/market/v1"
	"github.com/memespace/market-engine/pkg/errors"
	"github.com/memespace/market-engine/pkg/logger"
	"github.com/memespace/market-engine/pkg/postgresql"
)

// Repository is the PostgreSQL-backed market repository.
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

const marketColumns = `id, content_id, price, reserve_token, k, has_pending_order, created_at, updated_at`

// Create stores a new market.
func (r *repository) Create(ctx context.Context, market *v1.Market) error {
	query := `INSERT INTO markets (id, content_id, price, reserve_token, k, has_pending_order, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	cmd, err := r.db.Exec(ctx, query,
		market.ID,
		market.ContentID,
		market.Price,
		market.ReserveToken,
		market.K,
		market.HasPendingOrder,
		market.CreatedAt,
		market.UpdatedAt,
	)
	if err != nil {
		return errors.TracerFromError(err)
	}

	r.logger.Info("Inserted market", logger.Field{
		Key:   "commandTag",
		Value: cmd.String(),
	})

	return nil
}

// GetByID gets a market by ID.
func (r *repository) GetByID(ctx context.Context, id string) (*v1.Market, error) {
	query := `SELECT ` + marketColumns + ` FROM markets WHERE id = $1`
	return r.scanMarket(ctx, query, id)
}

// GetByIDForUpdate gets a market by ID with its row locked until the
// surrounding transaction ends.
func (r *repository) GetByIDForUpdate(ctx context.Context, id string) (*v1.Market, error) {
	query := `SELECT ` + marketColumns + ` FROM markets WHERE id = $1 FOR UPDATE`
	return r.scanMarket(ctx, query, id)
}

// GetByContentID gets a market by the content item it prices.
func (r *repository) GetByContentID(ctx context.Context, contentID string) (*v1.Market, error) {
	query := `SELECT ` + marketColumns + ` FROM markets WHERE content_id = $1`
	return r.scanMarket(ctx, query, contentID)
}

func (r *repository) scanMarket(ctx context.Context, query string, arg any) (*v1.Market, error) {
	market := &v1.Market{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&market.ID,
		&market.ContentID,
		&market.Price,
		&market.ReserveToken,
		&market.K,
		&market.HasPendingOrder,
		&market.CreatedAt,
		&market.UpdatedAt,
	)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	return market, nil
}

// Update persists the market's mutable state.
func (r *repository) Update(ctx context.Context, market *v1.Market) error {
	query := `UPDATE markets SET price = $1, reserve_token = $2, has_pending_order = $3, updated_at = $4 WHERE id = $5`

	_, err := r.db.Exec(ctx, query,
		market.Price,
		market.ReserveToken,
		market.HasPendingOrder,
		market.UpdatedAt,
		market.ID,
	)
	if err != nil {
		return errors.TracerFromError(err)
	}

	return nil
}

// ListPendingSettlement returns markets flagged as having pending orders.
func (r *repository) ListPendingSettlement(ctx context.Context) ([]*v1.Market, error) {
	query := `SELECT ` + marketColumns + ` FROM markets WHERE has_pending_order = TRUE ORDER BY updated_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	markets := []*v1.Market{}
	for rows.Next() {
		market := &v1.Market{}
		err := rows.Scan(
			&market.ID,
			&market.ContentID,
			&market.Price,
			&market.ReserveToken,
			&market.K,
			&market.HasPendingOrder,
			&market.CreatedAt,
			&market.UpdatedAt,
		)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		markets = append(markets, market)
	}

	return markets, nil
}

// AppendTrade appends a trade event to the market's ledger.
func (r *repository) AppendTrade(ctx context.Context, event *v1.TradeEvent) error {
	query := `INSERT INTO trade_events (id, market_id, user_id, side, amount, cost, price, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.MarketID,
		event.UserID,
		event.Side,
		event.Amount,
		event.Cost,
		event.Price,
		event.CreatedAt,
	)
	if err != nil {
		return errors.TracerFromError(err)
	}

	return nil
}

// ListTrades returns the market's trades created before until, ascending.
func (r *repository) ListTrades(ctx context.Context, marketID string, until time.Time) ([]*v1.TradeEvent, error) {
	query := `SELECT id, market_id, user_id, side, amount, cost, price, created_at FROM trade_events WHERE market_id = $1 AND created_at < $2 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, marketID, until)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	events := []*v1.TradeEvent{}
	for rows.Next() {
		event := &v1.TradeEvent{}
		err := rows.Scan(
			&event.ID,
			&event.MarketID,
			&event.UserID,
			&event.Side,
			&event.Amount,
			&event.Cost,
			&event.Price,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		events = append(events, event)
	}

	return events, nil
}
