package http_test

import (
	"context"

	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/application/usecases/queries"
	"myfood/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockUpdateOrderHandler struct{ mock.Mock }

func (m *MockUpdateOrderHandler) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockMarkOrderAsMadeHandler struct{ mock.Mock }

func (m *MockMarkOrderAsMadeHandler) Handle(ctx context.Context, cmd commands.MarkOrderAsMadeCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockConfirmOrderHandler struct{ mock.Mock }

func (m *MockConfirmOrderHandler) Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderListHandler[Q any] struct{ mock.Mock }

func (m *MockOrderListHandler[Q]) Handle(ctx context.Context, query Q) ([]queries.OrderProjection, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderProjection), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderProjection, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderProjection), args.Error(1)
}

type MockGetVisibleMenusHandler struct{ mock.Mock }

func (m *MockGetVisibleMenusHandler) Handle(ctx context.Context, query queries.GetVisibleMenusQuery) ([]queries.MenuView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.MenuView), args.Error(1)
}

func orderQuery(id int64) any {
	return mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.OrderID().Int64() == id
	})
}
