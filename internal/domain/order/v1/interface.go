package v1

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// Repository persists reservations.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	// ListPending returns all pending orders for a market.
	ListPending(ctx context.Context, marketID string) ([]*Order, error)
	Update(ctx context.Context, order *Order) error
	// HasPending reports whether any pending order remains for the market.
	HasPending(ctx context.Context, marketID string) (bool, error)
}
