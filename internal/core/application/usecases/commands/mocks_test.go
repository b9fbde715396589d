package commands_test

import (
	"context"

	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/menu"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/domain/model/slot"
	"myfood/internal/core/domain/model/user"
	"myfood/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateMade(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Confirm(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockSlotRepository struct{ mock.Mock }

func (m *MockSlotRepository) Add(ctx context.Context, s *slot.Slot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSlotRepository) Get(ctx context.Context, id kernel.ID) (*slot.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slot.Slot), args.Error(1)
}

func (m *MockSlotRepository) Reserve(ctx context.Context, s *slot.Slot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) AddDish(ctx context.Context, d *menu.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockMenuRepository) GetDish(ctx context.Context, id kernel.ID) (*menu.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Dish), args.Error(1)
}

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.ID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}

// MockUoW satisfies every unit of work flavour of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SlotRepository() ports.SlotRepository {
	args := m.Called()
	return args.Get(0).(ports.SlotRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockLocker struct{ mock.Mock }

func (m *MockLocker) Acquire(ctx context.Context, orderID int64) (string, bool, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockLocker) Release(ctx context.Context, orderID int64, token string) error {
	args := m.Called(ctx, orderID, token)
	return args.Error(0)
}

func eventOfType(t ports.OrderEventType) any {
	return mock.MatchedBy(func(e ports.OrderChangedEvent) bool { return e.Type == t })
}
