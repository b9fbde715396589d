package order_test

import (
	"testing"
	"time"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

func TestNewOrder(t *testing.T) {
	t.Run("should create standalone order", func(t *testing.T) {
		o, err := order.NewOrder(nil, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Nil(t, o.User())
		assert.False(t, o.IsMade())
		assert.False(t, o.IsConfirmed())
		assert.Nil(t, o.Slot())
		assert.Nil(t, o.Confirmation())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.Error(t, o.ID().Validate(), "identity is assigned by the store")
	})

	t.Run("should create order owned by user", func(t *testing.T) {
		owner := kernel.MustNewID(7)

		o, err := order.NewOrder(&owner, createdAt)

		require.NoError(t, err)
		require.NotNil(t, o.User())
		assert.True(t, o.User().IsEqual(owner))
	})

	t.Run("should fail with invalid owner", func(t *testing.T) {
		var owner kernel.ID

		o, err := order.NewOrder(&owner, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore confirmed order", func(t *testing.T) {
		at := time.Date(2024, 5, 17, 13, 0, 0, 0, time.UTC)
		c, err := order.NewConfirmation(kernel.MustNewID(6), at)
		require.NoError(t, err)

		o, err := order.RestoreOrder(kernel.MustNewID(1), nil, true, &c, createdAt)

		require.NoError(t, err)
		assert.Equal(t, int64(1), o.ID().Int64())
		assert.True(t, o.IsMade())
		assert.True(t, o.IsConfirmed())
		assert.Equal(t, int64(6), o.Slot().Int64())
		assert.Equal(t, at, o.Confirmation().At())
	})

	t.Run("should fail without identity", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.ID{}, nil, false, nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with zero value confirmation", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.MustNewID(1), nil, false, &order.Confirmation{}, createdAt)

		require.ErrorIs(t, err, order.ErrConfirmationIsNotConstructed)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		o := &order.Order{}

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Confirm(t *testing.T) {
	at := time.Date(2024, 5, 17, 13, 30, 0, 0, time.UTC)

	t.Run("should attach slot and stamp instant", func(t *testing.T) {
		o, _ := order.NewOrder(nil, createdAt)

		err := o.Confirm(kernel.MustNewID(6), at)

		require.NoError(t, err)
		assert.True(t, o.IsConfirmed())
		assert.Equal(t, int64(6), o.Slot().Int64())
		assert.Equal(t, at, o.Confirmation().At())
	})

	t.Run("should reject second confirmation and keep the first", func(t *testing.T) {
		o, _ := order.NewOrder(nil, createdAt)
		require.NoError(t, o.Confirm(kernel.MustNewID(6), at))

		err := o.Confirm(kernel.MustNewID(7), at.Add(time.Hour))

		require.ErrorIs(t, err, order.ErrAlreadyConfirmed)
		assert.Equal(t, int64(6), o.Slot().Int64())
		assert.Equal(t, at, o.Confirmation().At())
	})

	t.Run("should reject invalid slot", func(t *testing.T) {
		o, _ := order.NewOrder(nil, createdAt)

		err := o.Confirm(kernel.ID{}, at)

		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
		assert.False(t, o.IsConfirmed())
	})

	t.Run("should reject zero instant", func(t *testing.T) {
		o, _ := order.NewOrder(nil, createdAt)

		err := o.Confirm(kernel.MustNewID(6), time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.False(t, o.IsConfirmed())
	})

	t.Run("confirmation accessor returns a copy", func(t *testing.T) {
		o, _ := order.NewOrder(nil, createdAt)
		require.NoError(t, o.Confirm(kernel.MustNewID(6), at))

		slotID := o.Slot()
		*slotID = kernel.MustNewID(99)

		assert.Equal(t, int64(6), o.Slot().Int64())
	})
}

func TestOrder_MarkAsMade(t *testing.T) {
	t.Run("should be idempotent", func(t *testing.T) {
		o, _ := order.NewOrder(nil, createdAt)

		o.MarkAsMade()
		o.MarkAsMade()

		assert.True(t, o.IsMade())
	})

	t.Run("should not touch confirmation", func(t *testing.T) {
		o, _ := order.NewOrder(nil, createdAt)

		o.MarkAsMade()

		assert.False(t, o.IsConfirmed())
	})
}

func TestOrder_Replace(t *testing.T) {
	at := time.Date(2024, 5, 17, 13, 30, 0, 0, time.UTC)

	t.Run("should overwrite every mutable field", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.MustNewID(3), nil, false, nil, createdAt)
		owner := kernel.MustNewID(8)
		c, _ := order.NewConfirmation(kernel.MustNewID(6), at)

		err := o.Replace(true, &owner, &c)

		require.NoError(t, err)
		assert.Equal(t, int64(3), o.ID().Int64())
		assert.True(t, o.IsMade())
		assert.True(t, o.User().IsEqual(owner))
		assert.Equal(t, int64(6), o.Slot().Int64())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should clear owner and confirmation when absent", func(t *testing.T) {
		owner := kernel.MustNewID(8)
		c, _ := order.NewConfirmation(kernel.MustNewID(6), at)
		o, _ := order.RestoreOrder(kernel.MustNewID(3), &owner, true, &c, createdAt)

		err := o.Replace(false, nil, nil)

		require.NoError(t, err)
		assert.False(t, o.IsMade())
		assert.Nil(t, o.User())
		assert.False(t, o.IsConfirmed())
	})

	t.Run("should leave order untouched on invalid input", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.MustNewID(3), nil, false, nil, createdAt)
		var badOwner kernel.ID

		err := o.Replace(true, &badOwner, nil)

		require.Error(t, err)
		assert.False(t, o.IsMade())
		assert.Nil(t, o.User())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a, _ := order.RestoreOrder(kernel.MustNewID(1), nil, false, nil, createdAt)
	b, _ := order.RestoreOrder(kernel.MustNewID(1), nil, true, nil, createdAt)
	c, _ := order.RestoreOrder(kernel.MustNewID(2), nil, false, nil, createdAt)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
