package tradepublisher

import (
	"context"

	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/publisher_mock.go -package=tradepublisher_mock

// TradePublisher publishes executed trades to downstream consumers.
type TradePublisher interface {
	PublishTradeEvent(ctx context.Context, event *marketv1.TradeEvent) error
}
