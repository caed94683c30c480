//go:build integration

package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"roadside/internal/adapters/out/postgres/orderrepo"
	"roadside/internal/adapters/out/postgres/pgtest"
	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite runs the repository against a real
// PostgreSQL with the production schema.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	db         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	contractID kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	suite.db = pgtest.Start(context.Background(), suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.db.Truncate(suite.T())

	raw := suite.db.SeedContract(suite.T(), "100", "20", "2")
	contractID, err := kernel.UUIDFromGoogle(raw)
	suite.Require().NoError(err)
	suite.contractID = contractID

	suite.repository = orderrepo.NewGormOrderRepository(suite.db.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(createdAt time.Time) *order.Order {
	incident, err := kernel.NewLocation(10.4806, -66.9036)
	suite.Require().NoError(err)
	destination, err := kernel.NewLocation(10.5, -66.91)
	suite.Require().NoError(err)
	coverage, err := billing.NewCoverage(decimal.NewFromInt(100), decimal.NewFromInt(20), decimal.NewFromInt(2))
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), suite.contractID, "Grúa",
		createdAt.Add(-time.Hour), incident, destination, coverage, createdAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	o := suite.newOrder(now)
	_, err := o.AddExtraCost(order.TireChange, decimal.NewFromInt(15))
	suite.Require().NoError(err)
	_, err = o.AddExtraCost(order.Locksmith, decimal.RequireFromString("12.50"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))
	suite.Equal(order.AwaitingAssignment, loaded.Status())
	suite.Require().Len(loaded.ExtraCosts(), 2)
	suite.Equal(order.TireChange, loaded.ExtraCosts()[0].Name())
	suite.Equal(order.Locksmith, loaded.ExtraCosts()[1].Name())
	suite.True(o.TotalCost().Equal(loaded.TotalCost()))
	suite.True(loaded.IncidentDate().Equal(o.IncidentDate()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_BumpsVersionAndPersistsLedger() {
	ctx := context.Background()
	o := suite.newOrder(now)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	driverID := kernel.NewUUID()
	suite.Require().NoError(o.AssignDriver(driverID, now))
	cost, err := o.AddExtraCost(order.OilChange, decimal.NewFromInt(40))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), loaded.Version())
	suite.Equal(order.AwaitingDriverAcceptance, loaded.Status())
	suite.Require().NotNil(loaded.Driver())
	suite.True(loaded.Driver().IsEqual(driverID))

	_, err = loaded.SetExtraCostActive(cost.ID(), false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.GetByExtraCostID(ctx, cost.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(2), reloaded.Version())
	suite.False(reloaded.ExtraCosts()[0].IsActive())
	suite.True(reloaded.TotalCost().IsZero())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersionConflicts() {
	ctx := context.Background()
	o := suite.newOrder(now)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Cancel(now))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.AssignDriver(kernel.NewUUID(), now))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)
	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Canceled, stored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListStaleAcceptances() {
	ctx := context.Background()

	stale := suite.newOrder(now.Add(-2 * time.Hour))
	suite.Require().NoError(stale.AssignDriver(kernel.NewUUID(), now.Add(-30*time.Minute)))
	fresh := suite.newOrder(now)
	suite.Require().NoError(fresh.AssignDriver(kernel.NewUUID(), now.Add(-time.Minute)))
	unassigned := suite.newOrder(now.Add(-2 * time.Hour))

	for _, o := range []*order.Order{stale, fresh, unassigned} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.ListStaleAcceptances(ctx, now.Add(-10*time.Minute), 10)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].IsEqual(stale))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
