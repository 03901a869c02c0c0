package bootstrap

import (
	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	candleUc "github.com/memespace/market-engine/internal/usecase/candle"
	marketUc "github.com/memespace/market-engine/internal/usecase/market"
	reservationUc "github.com/memespace/market-engine/internal/usecase/reservation"
	settlementUc "github.com/memespace/market-engine/internal/usecase/settlement"
	tradepublisher "github.com/memespace/market-engine/internal/usecase/trade-publisher"
)

// Usecase holds the application-layer collaborators.
type Usecase struct {
	Market      *marketUc.Usecase
	Candle      *candleUc.Usecase
	Reservation *reservationUc.Usecase
	Matcher     *settlementUc.Matcher
	Publisher   *tradepublisher.Publisher
}

// registerUsecase registers the usecases.
func (b *Bootstrap) registerUsecase() {
	curve := marketv1.Curve{
		Fee:        b.Config.Engine.Fee,
		PriceFloor: b.Config.Engine.InitialPrice,
	}

	b.Usecase.Publisher = tradepublisher.NewPublisher(b.Config.Kafka, b.Logger)
	b.Usecase.Market = marketUc.NewUsecase(b.Repository.Market, b.Repository.Balance, b.Usecase.Publisher, b.TxManager, b.Config.Engine, b.Logger)
	b.Usecase.Candle = candleUc.NewUsecase(b.Repository.Market, b.Logger)
	b.Usecase.Reservation = reservationUc.NewUsecase(b.Repository.Market, b.Repository.Order, b.Repository.Balance, b.TxManager, b.Logger)
	b.Usecase.Matcher = settlementUc.NewMatcher(
		b.Repository.Market,
		b.Repository.Order,
		b.Repository.Balance,
		b.Usecase.Publisher,
		b.Repository.Locker,
		b.TxManager,
		curve,
		b.Logger,
	)
}
