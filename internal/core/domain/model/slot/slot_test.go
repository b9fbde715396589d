package slot_test

import (
	"testing"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/slot"
	"myfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	t.Run("should create empty slot", func(t *testing.T) {
		s, err := slot.NewSlot(3)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, 3, s.Limit())
		assert.Equal(t, 0, s.Actual())
		assert.True(t, s.HasRoom())
		require.Error(t, s.ID().Validate())
	})

	t.Run("should accept zero capacity", func(t *testing.T) {
		s, err := slot.NewSlot(0)

		require.NoError(t, err)
		assert.False(t, s.HasRoom())
	})

	t.Run("should reject negative capacity", func(t *testing.T) {
		s, err := slot.NewSlot(-1)

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestRestoreSlot(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		s, err := slot.RestoreSlot(kernel.MustNewID(5), 2, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(5), s.ID().Int64())
		assert.Equal(t, 2, s.Actual())
		assert.False(t, s.HasRoom())
	})

	t.Run("should reject occupancy above limit", func(t *testing.T) {
		_, err := slot.RestoreSlot(kernel.MustNewID(5), 2, 3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative occupancy", func(t *testing.T) {
		_, err := slot.RestoreSlot(kernel.MustNewID(5), 2, -1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject missing identity", func(t *testing.T) {
		_, err := slot.RestoreSlot(kernel.ID{}, 2, 0)

		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	})
}

func TestSlot_Reserve(t *testing.T) {
	t.Run("should increment occupancy by one", func(t *testing.T) {
		s, _ := slot.RestoreSlot(kernel.MustNewID(6), 2, 1)

		require.NoError(t, s.Reserve())

		assert.Equal(t, 2, s.Actual())
		assert.False(t, s.HasRoom())
	})

	t.Run("should fail on full slot without mutating it", func(t *testing.T) {
		s, _ := slot.RestoreSlot(kernel.MustNewID(5), 2, 2)

		err := s.Reserve()

		require.ErrorIs(t, err, slot.ErrSlotFull)
		assert.Equal(t, 2, s.Actual())
	})

	t.Run("occupancy never exceeds limit", func(t *testing.T) {
		s, _ := slot.NewSlot(4)
		for range 10 {
			_ = s.Reserve()
		}

		assert.Equal(t, 4, s.Actual())
	})
}

func TestSlot_AssignID(t *testing.T) {
	s, _ := slot.NewSlot(1)

	require.NoError(t, s.AssignID(kernel.MustNewID(9)))
	assert.Equal(t, int64(9), s.ID().Int64())

	err := s.AssignID(kernel.MustNewID(10))
	require.ErrorIs(t, err, slot.ErrIDAlreadyAssigned)
	assert.Equal(t, int64(9), s.ID().Int64())
}

func TestSlot_Validate(t *testing.T) {
	var nilSlot *slot.Slot
	assert.Equal(t, slot.ErrSlotIsNotConstructed, nilSlot.Validate())
	assert.Equal(t, slot.ErrSlotIsNotConstructed, (&slot.Slot{}).Validate())
}
