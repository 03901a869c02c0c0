package v1

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=mock/service_mock.go -package=mock

// Service is the external balance collaborator: virtual settlement currency
// plus per-market token holdings. Debits clamp at zero rather than failing
// and return the magnitude actually applied.
type Service interface {
	GetSettlementBalance(ctx context.Context, userID string) (float64, error)
	CreditSettlementBalance(ctx context.Context, userID string, delta float64) error
	// DebitSettlementBalance debits up to delta, clamping at zero, and
	// returns the amount actually debited.
	DebitSettlementBalance(ctx context.Context, userID string, delta float64) (float64, error)

	GetTokenHolding(ctx context.Context, userID, marketID string) (float64, error)
	CreditTokenHolding(ctx context.Context, userID, marketID string, delta float64) error
	// DebitTokenHolding debits up to delta tokens, clamping at zero, and
	// returns the amount actually debited.
	DebitTokenHolding(ctx context.Context, userID, marketID string, delta float64) (float64, error)
}
