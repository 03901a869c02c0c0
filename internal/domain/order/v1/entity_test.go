package v1

import (
	"testing"

	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	"github.com/stretchr/testify/assert"
)

func TestNewOrder(t *testing.T) {
	order := NewOrder("m1", "user-1", marketv1.SideBuy, 250, 0.09)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, StatusPending, order.Status)
	assert.True(t, order.IsPending())
	assert.Nil(t, order.CompletedAt)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
}

func TestOrder_Fill(t *testing.T) {
	t.Run("partial fill keeps the order pending", func(t *testing.T) {
		order := NewOrder("m1", "user-1", marketv1.SideBuy, 250, 0.09)
		created := order.UpdatedAt

		order.Fill(100)

		assert.Equal(t, StatusPending, order.Status)
		assert.InDelta(t, 150.0, order.Amount, 1e-9)
		assert.Nil(t, order.CompletedAt)
		assert.False(t, order.UpdatedAt.Before(created))
	})

	t.Run("full fill completes the order", func(t *testing.T) {
		order := NewOrder("m1", "user-1", marketv1.SideSell, 250, 0.15)

		order.Fill(250)

		assert.Equal(t, StatusCompleted, order.Status)
		assert.Zero(t, order.Amount)
		assert.NotNil(t, order.CompletedAt)
		assert.False(t, order.IsPending())
	})
}

func TestOrder_Cancel(t *testing.T) {
	order := NewOrder("m1", "user-1", marketv1.SideSell, 250, 0.15)

	order.Cancel()

	assert.Equal(t, StatusCancelled, order.Status)
	assert.False(t, order.IsPending())
}
