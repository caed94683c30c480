//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "roadside/internal/adapters/out/postgres"
	"roadside/internal/adapters/out/postgres/pgtest"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/core/ports"
	"roadside/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite checks transaction boundaries of the GORM
// unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	db         *pgtest.Database
	factory    ports.UnitOfWorkFactory
	contractID kernel.UUID
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	suite.db = pgtest.Start(context.Background(), suite.T())
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.db.Truncate(suite.T())

	contractID, err := kernel.UUIDFromGoogle(suite.db.SeedContract(suite.T(), "100", "20", "2"))
	suite.Require().NoError(err)
	suite.contractID = contractID
}

// newOrder prices the order with the seeded contract inside uow.
func (suite *UnitOfWorkIntegrationTestSuite) newOrder(ctx context.Context, uow ports.UnitOfWork) *order.Order {
	coverage, err := uow.CoverageRepository().GetCoverage(ctx, suite.contractID)
	suite.Require().NoError(err)

	location, err := kernel.NewLocation(10.4806, -66.9036)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), suite.contractID, "Grúa", now, location, location, coverage, now)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder(ctx, uow)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))
	suite.True(loaded.Coverage().DistanceCoverage().Equal(o.Coverage().DistanceCoverage()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder(ctx, uow)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin() {
	err := suite.factory.Create().Commit(context.Background())

	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommitIsHarmless() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCoverage_UnknownContract() {
	_, err := suite.factory.Create().CoverageRepository().GetCoverage(context.Background(), kernel.NewUUID())

	suite.Require().True(errors.Is(err, errs.ErrObjectNotFound))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
