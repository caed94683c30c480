package commands_test

import (
	"context"
	"testing"
	"time"

	"roadside/internal/core/application/usecases/commands"
	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
	"roadside/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByExtraCostID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListStaleAcceptances(
	ctx context.Context, before time.Time, limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCoverageRepository struct{ mock.Mock }

func (m *MockCoverageRepository) GetCoverage(ctx context.Context, contractID kernel.UUID) (billing.Coverage, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).(billing.Coverage), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct {
	MockOrderUoW
}

func (m *MockUoW) CoverageRepository() ports.CoverageRepository {
	args := m.Called()
	return args.Get(0).(ports.CoverageRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (kernel.Location, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.Location), args.Error(1)
}

type MockEventDispatcher struct{ mock.Mock }

func (m *MockEventDispatcher) Dispatch(ctx context.Context, events []order.StatusChanged) {
	m.Called(ctx, events)
}

type MockDeviceRegistry struct{ mock.Mock }

func (m *MockDeviceRegistry) Register(ctx context.Context, driverID kernel.UUID, deviceToken string) error {
	args := m.Called(ctx, driverID, deviceToken)
	return args.Error(0)
}

func (m *MockDeviceRegistry) Lookup(ctx context.Context, driverID kernel.UUID) (string, error) {
	args := m.Called(ctx, driverID)
	return args.String(0), args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCoverage(t *testing.T) billing.Coverage {
	t.Helper()
	c, err := billing.NewCoverage(dec("100"), dec("20"), dec("2"))
	require.NoError(t, err)
	return c
}

func testLocation(t *testing.T) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(10.4806, -66.9036)
	require.NoError(t, err)
	return loc
}

// newOrderIn builds an order and drives it into status.
func newOrderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Motor recalentado", now.Add(-time.Hour),
		testLocation(t), testLocation(t), testCoverage(t), now.Add(-time.Hour))
	require.NoError(t, err)

	steps := []func() error{
		func() error { return o.AssignDriver(kernel.NewUUID(), now.Add(-time.Hour)) },
		func() error { return o.AcceptAssignment(now.Add(-time.Hour)) },
		func() error { return o.LocateDriver(now.Add(-time.Hour)) },
		func() error { return o.StartService(now.Add(-time.Hour)) },
		func() error { return o.FinishService(dec("150"), now.Add(-time.Hour)) },
		func() error { return o.ConfirmPayment(now.Add(-time.Hour)) },
	}
	for _, step := range steps {
		if o.Status() == status {
			break
		}
		require.NoError(t, step())
	}
	require.Equal(t, status, o.Status())
	o.PullDomainEvents()
	return o
}
