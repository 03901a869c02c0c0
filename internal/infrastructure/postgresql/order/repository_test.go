package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	v1 "github.com/memespace/market-engine/internal/domain/order/v1"
	"github.com/memespace/market-engine/pkg/logger"
	loggerMock "github.com/memespace/market-engine/pkg/logger/mock"
	pgMock "github.com/memespace/market-engine/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOrder_Create(t *testing.T) {
	ctx := context.Background()
	query := `INSERT INTO orders (id, market_id, user_id, side, amount, expected_price, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	testCases := []struct {
		name     string
		mockFn   func(mockpg *pgMock.MockPostgreSQLClient, mockLogger *loggerMock.MockInterface, tc *v1.Order)
		testData *v1.Order
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *pgMock.MockPostgreSQLClient, mockLogger *loggerMock.MockInterface, tc *v1.Order) {
				mockpg.EXPECT().
					Exec(ctx, query,
						tc.ID,
						tc.MarketID,
						tc.UserID,
						tc.Side,
						tc.Amount,
						tc.ExpectedPrice,
						tc.Status,
						tc.CreatedAt,
						tc.UpdatedAt,
					).Return(pgconn.CommandTag{}, nil)

				mockLogger.EXPECT().
					Info("Inserted order", logger.Field{
						Key:   "commandTag",
						Value: "",
					})
			},
			testData: v1.NewOrder("m1", "u1", marketv1.SideBuy, 50, 0.2),
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(mockpg *pgMock.MockPostgreSQLClient, mockLogger *loggerMock.MockInterface, tc *v1.Order) {
				mockpg.EXPECT().
					Exec(ctx, query,
						tc.ID,
						tc.MarketID,
						tc.UserID,
						tc.Side,
						tc.Amount,
						tc.ExpectedPrice,
						tc.Status,
						tc.CreatedAt,
						tc.UpdatedAt,
					).Return(pgconn.CommandTag{}, errors.New("error"))
			},
			testData: v1.NewOrder("m1", "u1", marketv1.SideSell, 25, 0.05),
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := pgMock.NewMockPostgreSQLClient(ctrl)
			log := loggerMock.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, log, tc.testData)

			err := repo.Create(ctx, tc.testData)
			tc.assertFn(t, err)
		})
	}
}

func TestOrder_Update(t *testing.T) {
	ctx := context.Background()
	query := `UPDATE orders SET amount = $1, status = $2, updated_at = $3, completed_at = $4 WHERE id = $5`
	now := time.Now().UTC()

	order := &v1.Order{
		ID:          "01JTEST0000000000000000000",
		MarketID:    "m1",
		UserID:      "u1",
		Side:        marketv1.SideBuy,
		Amount:      0,
		Status:      v1.StatusCompleted,
		UpdatedAt:   now,
		CompletedAt: &now,
	}

	testCases := []struct {
		name     string
		mockFn   func(mockpg *pgMock.MockPostgreSQLClient)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *pgMock.MockPostgreSQLClient) {
				mockpg.EXPECT().
					Exec(ctx, query,
						order.Amount,
						order.Status,
						order.UpdatedAt,
						order.CompletedAt,
						order.ID,
					).Return(pgconn.CommandTag{}, nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(mockpg *pgMock.MockPostgreSQLClient) {
				mockpg.EXPECT().
					Exec(ctx, query,
						order.Amount,
						order.Status,
						order.UpdatedAt,
						order.CompletedAt,
						order.ID,
					).Return(pgconn.CommandTag{}, errors.New("error"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := pgMock.NewMockPostgreSQLClient(ctrl)
			log := loggerMock.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg)

			err := repo.Update(ctx, order)
			tc.assertFn(t, err)
		})
	}
}
