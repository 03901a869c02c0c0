package v1

import (
	"context"
	"time"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// Repository persists markets and their append-only trade ledger.
type Repository interface {
	Create(ctx context.Context, market *Market) error
	GetByID(ctx context.Context, id string) (*Market, error)
	// GetByIDForUpdate loads the market with its row locked for the duration
	// of the surrounding transaction, serializing mutations per market.
	GetByIDForUpdate(ctx context.Context, id string) (*Market, error)
	GetByContentID(ctx context.Context, contentID string) (*Market, error)
	Update(ctx context.Context, market *Market) error
	// ListPendingSettlement returns markets flagged as having pending orders.
	ListPendingSettlement(ctx context.Context) ([]*Market, error)
	AppendTrade(ctx context.Context, event *TradeEvent) error
	// ListTrades returns the market's trades created before until, ascending
	// by creation time.
	ListTrades(ctx context.Context, marketID string, until time.Time) ([]*TradeEvent, error)
}
