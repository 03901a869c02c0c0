package v1

import (
	"time"

	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	"github.com/oklog/ulid/v2"
)

// Status represents the lifecycle state of a reservation.
type Status string

const (
	// StatusPending is an order waiting to be settled.
	StatusPending Status = "pending"
	// StatusCompleted is a fully filled order. Terminal.
	StatusCompleted Status = "completed"
	// StatusCancelled is an order cancelled by its owner. Terminal.
	StatusCancelled Status = "cancelled"
)

// Order is a deferred (limit-style) reservation against a market. Amount is
// the remaining magnitude and shrinks on partial fills; only the settlement
// matcher mutates a pending order, except for owner cancellation.
type Order struct {
	ID            string
	MarketID      string
	UserID        string
	Side          marketv1.Side
	Amount        float64
	ExpectedPrice float64
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

// NewOrder creates a pending reservation.
func NewOrder(marketID, userID string, side marketv1.Side, amount, expectedPrice float64) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:            ulid.Make().String(),
		MarketID:      marketID,
		UserID:        userID,
		Side:          side,
		Amount:        amount,
		ExpectedPrice: expectedPrice,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Fill reduces the remaining amount by the filled quantity, transitioning to
// completed when nothing remains.
func (o *Order) Fill(quantity float64) {
	now := time.Now().UTC()
	o.UpdatedAt = now

	if quantity < o.Amount {
		o.Amount -= quantity
		return
	}

	o.Amount = 0
	o.Status = StatusCompleted
	o.CompletedAt = &now
}

// Cancel transitions a pending order to cancelled.
func (o *Order) Cancel() {
	now := time.Now().UTC()
	o.Status = StatusCancelled
	o.UpdatedAt = now
}

// IsPending reports whether the order can still be settled or cancelled.
func (o *Order) IsPending() bool {
	return o.Status == StatusPending
}
