package commands_test

import (
	"testing"
	"time"

	"myfood/internal/core/application/usecases"
	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/user"
	"myfood/internal/core/ports"
	"myfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_FullReplacement(t *testing.T) {
	ctx := t.Context()
	orderID, userID, slotID := kernel.MustNewID(1), kernel.MustNewID(2), kernel.MustNewID(6)
	at := time.Date(2025, 2, 3, 13, 0, 0, 0, time.UTC)
	cmd, _ := commands.NewUpdateOrderCommand(orderID, true, &userID, &slotID, &at)

	o := unconfirmedOrder(t, 1)
	owner, _ := user.RestoreUser(userID, "Ana")
	s := storedSlot(t, 6, 2, 2)

	orders := new(MockOrderRepository)
	users := new(MockUserRepository)
	slots := new(MockSlotRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, orderID).Return(o, nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Get", ctx, userID).Return(owner, nil).Once(),
		uow.On("SlotRepository").Return(slots).Once(),
		slots.On("Get", ctx, slotID).Return(s, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockPublisher)
	publisher.On("Publish", ctx, eventOfType(ports.OrderUpdated)).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, kernel.FixedClock(testNow), publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, o.IsMade())
	assert.True(t, o.User().IsEqual(userID))
	assert.True(t, o.Slot().IsEqual(slotID))
	assert.True(t, at.Equal(o.Confirmation().At()))
	// a replacement never reserves a place
	assert.Equal(t, 2, s.Actual())
	slots.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ClearsConfirmation(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.MustNewID(1)
	cmd, _ := commands.NewUpdateOrderCommand(orderID, false, nil, nil, nil)

	o := confirmedOrder(t, 1, 6)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, orderID).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, kernel.FixedClock(testNow), nil)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.False(t, o.IsConfirmed())
	uow.AssertNotCalled(t, "SlotRepository")
	uow.AssertNotCalled(t, "UserRepository")
}

func TestUpdateOrderCommandHandler_Handle_Errors(t *testing.T) {
	orderID, userID, slotID := kernel.MustNewID(1), kernel.MustNewID(2), kernel.MustNewID(6)
	at := time.Now()

	testCases := []struct {
		name     string
		setup    func(orders *MockOrderRepository, users *MockUserRepository, slots *MockSlotRepository)
		expected error
	}{
		{
			name: "order not found",
			setup: func(orders *MockOrderRepository, _ *MockUserRepository, _ *MockSlotRepository) {
				orders.On("Get", mock.Anything, orderID).Return(nil, errs.NewObjectNotFoundError("order", "1"))
			},
			expected: usecases.ErrOrderNotFound,
		},
		{
			name: "user not found",
			setup: func(orders *MockOrderRepository, users *MockUserRepository, _ *MockSlotRepository) {
				orders.On("Get", mock.Anything, orderID).Return(unconfirmedOrder(t, 1), nil)
				users.On("Get", mock.Anything, userID).Return(nil, errs.NewObjectNotFoundError("user", "2"))
			},
			expected: usecases.ErrUserNotFound,
		},
		{
			name: "slot not found",
			setup: func(orders *MockOrderRepository, users *MockUserRepository, slots *MockSlotRepository) {
				owner, _ := user.RestoreUser(userID, "Ana")
				orders.On("Get", mock.Anything, orderID).Return(unconfirmedOrder(t, 1), nil)
				users.On("Get", mock.Anything, userID).Return(owner, nil)
				slots.On("Get", mock.Anything, slotID).Return(nil, errs.NewObjectNotFoundError("slot", "6"))
			},
			expected: usecases.ErrSlotNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewUpdateOrderCommand(orderID, true, &userID, &slotID, &at)
			require.NoError(t, err)

			orders, users, slots := new(MockOrderRepository), new(MockUserRepository), new(MockSlotRepository)
			tc.setup(orders, users, slots)

			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(orders).Maybe()
			uow.On("UserRepository").Return(users).Maybe()
			uow.On("SlotRepository").Return(slots).Maybe()
			uow.On("Rollback", ctx).Return(nil).Once()
			factory := new(MockUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewUpdateOrderCommandHandler(factory, kernel.FixedClock(testNow), nil)
			err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, tc.expected)
			orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

