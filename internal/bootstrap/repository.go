package bootstrap

import (
	balancev1 "github.com/memespace/market-engine/internal/domain/balance/v1"
	lockv1 "github.com/memespace/market-engine/internal/domain/lock/v1"
	marketv1 "github.com/memespace/market-engine/internal/domain/market/v1"
	orderv1 "github.com/memespace/market-engine/internal/domain/order/v1"
	memorylock "github.com/memespace/market-engine/internal/infrastructure/memory/marketlock"
	balanceInfra "github.com/memespace/market-engine/internal/infrastructure/postgresql/balance"
	marketInfra "github.com/memespace/market-engine/internal/infrastructure/postgresql/market"
	orderInfra "github.com/memespace/market-engine/internal/infrastructure/postgresql/order"
	redislock "github.com/memespace/market-engine/internal/infrastructure/redis/marketlock"
)

// Repository holds the storage-layer collaborators.
type Repository struct {
	Market  marketv1.Repository
	Order   orderv1.Repository
	Balance balancev1.Service
	Locker  lockv1.MarketLocker
}

// registerRepository registers the repositories. The settlement lock goes
// through Redis when a client is configured, falling back to the in-process
// locker otherwise.
func (b *Bootstrap) registerRepository() {
	b.Repository.Market = marketInfra.NewRepository(b.DB, b.Logger)
	b.Repository.Order = orderInfra.NewRepository(b.DB, b.Logger)
	b.Repository.Balance = balanceInfra.NewRepository(b.DB, b.Logger)

	if b.Redis != nil {
		b.Repository.Locker = redislock.NewLocker(b.Redis, b.Logger, b.Config.Redis.PrefixKey, b.Config.Engine.LockTTL)
		return
	}
	b.Repository.Locker = memorylock.NewLocker()
}
