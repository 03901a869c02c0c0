package balance

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/memespace/market-engine/pkg/logger"
	"github.com/memespace/market-engine/pkg/postgresql"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	helper *postgresql.TestHelper
	repo   *repository
	ctx    context.Context
}

// SetupSuite runs once before all tests
func (suite *RepositoryTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../../migrations")
	require.NoError(suite.T(), err)

	config := &postgresql.TestContainerConfig{
		Image:            "postgres:15-alpine",
		Database:         "market_test_db",
		Username:         "market_test_user",
		Password:         "market_test_pass",
		MigrationsPath:   migrationsPath,
		MigrationPattern: "*.up.sql",
		StartupTimeout:   3 * time.Minute,
	}

	suite.helper = postgresql.NewTestHelperWithConfig(suite.T(), config)

	log, err := logger.NewLogger()
	require.NoError(suite.T(), err)
	suite.repo = NewRepository(suite.helper.GetClient(), log)
}

// SetupTest runs before each test
func (suite *RepositoryTestSuite) SetupTest() {
	suite.helper.CleanupTables()
}

func (suite *RepositoryTestSuite) TestSettlementBalanceLifecycle() {
	balance, err := suite.repo.GetSettlementBalance(suite.ctx, "u1")
	suite.NoError(err)
	suite.Zero(balance)

	suite.NoError(suite.repo.CreditSettlementBalance(suite.ctx, "u1", 100))
	suite.NoError(suite.repo.CreditSettlementBalance(suite.ctx, "u1", 25.5))

	balance, err = suite.repo.GetSettlementBalance(suite.ctx, "u1")
	suite.NoError(err)
	suite.InDelta(125.5, balance, 1e-9)
}

func (suite *RepositoryTestSuite) TestDebitSettlementBalanceClampsAtZero() {
	suite.NoError(suite.repo.CreditSettlementBalance(suite.ctx, "u1", 40))

	applied, err := suite.repo.DebitSettlementBalance(suite.ctx, "u1", 15)
	suite.NoError(err)
	suite.InDelta(15, applied, 1e-9)

	// Over-debit applies only what remains and leaves the balance at zero.
	applied, err = suite.repo.DebitSettlementBalance(suite.ctx, "u1", 100)
	suite.NoError(err)
	suite.InDelta(25, applied, 1e-9)

	balance, err := suite.repo.GetSettlementBalance(suite.ctx, "u1")
	suite.NoError(err)
	suite.Zero(balance)

	// Debiting an unknown user applies nothing.
	applied, err = suite.repo.DebitSettlementBalance(suite.ctx, "ghost", 10)
	suite.NoError(err)
	suite.Zero(applied)
}

func (suite *RepositoryTestSuite) TestTokenHoldingClampsAtZero() {
	marketID := suite.seedMarket("01JTESTMARKET0000000000000")

	suite.NoError(suite.repo.CreditTokenHolding(suite.ctx, "u1", marketID, 30))

	holding, err := suite.repo.GetTokenHolding(suite.ctx, "u1", marketID)
	suite.NoError(err)
	suite.InDelta(30, holding, 1e-9)

	applied, err := suite.repo.DebitTokenHolding(suite.ctx, "u1", marketID, 50)
	suite.NoError(err)
	suite.InDelta(30, applied, 1e-9)

	holding, err = suite.repo.GetTokenHolding(suite.ctx, "u1", marketID)
	suite.NoError(err)
	suite.Zero(holding)
}

// seedMarket inserts the market row holdings reference.
func (suite *RepositoryTestSuite) seedMarket(id string) string {
	_, err := suite.helper.GetClient().Exec(suite.ctx,
		`INSERT INTO markets (id, content_id, price, reserve_token, k, has_pending_order) VALUES ($1, $2, 0.1, 10000, 10000000, FALSE)`,
		id, "content-"+id,
	)
	suite.Require().NoError(err)
	return id
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
