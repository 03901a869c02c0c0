package bootstrap

import (
	"github.com/memespace/market-engine/pkg/config"
	"github.com/memespace/market-engine/pkg/logger"
	"github.com/memespace/market-engine/pkg/postgresql"
	"github.com/memespace/market-engine/pkg/redis"
)

// Bootstrap wires the market engine's repositories, usecases and workers.
type Bootstrap struct {
	Repository Repository
	Usecase    Usecase
	Worker     Worker

	Config    *config.Config
	Logger    logger.Interface
	DB        postgresql.PostgreSQLClient
	Redis     redis.Client
	TxManager postgresql.TxManager
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config *config.Config
	Logger logger.Interface
	DB     postgresql.PostgreSQLClient
	Redis  redis.Client
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Config = config.Config
	b.Logger = config.Logger
	b.DB = config.DB
	b.Redis = config.Redis
	b.TxManager = postgresql.NewTxManager(config.DB)

	b.registerRepository()
	b.registerUsecase()
	b.registerWorker()

	return *b
}
