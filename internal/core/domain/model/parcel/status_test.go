package parcel_test

import (
	"fmt"
	"testing"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(parcel.Unknown))
		assert.Equal(t, 1, int(parcel.Pending))
		assert.Equal(t, 2, int(parcel.PickedUp))
		assert.Equal(t, 3, int(parcel.InTransit))
		assert.Equal(t, 4, int(parcel.Delivered))
		assert.Equal(t, 5, int(parcel.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []parcel.Status{
			parcel.Pending,
			parcel.PickedUp,
			parcel.InTransit,
			parcel.Delivered,
			parcel.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		invalidStatuses := []parcel.Status{
			parcel.Unknown,
			parcel.Status(-1),
			parcel.Status(6),
			parcel.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		testCases := []struct {
			status   parcel.Status
			expected string
		}{
			{parcel.Pending, "pending"},
			{parcel.PickedUp, "picked_up"},
			{parcel.InTransit, "in_transit"},
			{parcel.Delivered, "delivered"},
			{parcel.Cancelled, "cancelled"},
			{parcel.Unknown, "unknown"},
			{parcel.Status(42), "unknown"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		for _, name := range []string{"pending", "picked_up", "in_transit", "delivered", "cancelled"} {
			t.Run(fmt.Sprintf("should parse %s", name), func(t *testing.T) {
				status, err := parcel.StatusFromString(name)

				require.NoError(t, err)
				assert.Equal(t, name, status.String())
			})
		}
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "Pending", "PICKED_UP", "shipped"} {
			t.Run(fmt.Sprintf("should reject %q", name), func(t *testing.T) {
				_, err := parcel.StatusFromString(name)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, parcel.Pending.IsTerminal())
	assert.False(t, parcel.PickedUp.IsTerminal())
	assert.False(t, parcel.InTransit.IsTerminal())
	assert.True(t, parcel.Delivered.IsTerminal())
	assert.True(t, parcel.Cancelled.IsTerminal())
}

func TestStatus_Transition(t *testing.T) {
	t.Run("should allow valid transitions", func(t *testing.T) {
		allowed := []struct {
			from parcel.Status
			to   parcel.Status
		}{
			{parcel.Pending, parcel.PickedUp},
			{parcel.Pending, parcel.InTransit},
			{parcel.Pending, parcel.Delivered},
			{parcel.Pending, parcel.Cancelled},
			{parcel.PickedUp, parcel.InTransit},
			{parcel.PickedUp, parcel.Delivered},
			{parcel.PickedUp, parcel.Cancelled},
			{parcel.InTransit, parcel.Delivered},
			{parcel.InTransit, parcel.Cancelled},
		}

		for _, tc := range allowed {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				newStatus, err := tc.from.Transition(tc.to)

				require.NoError(t, err)
				assert.Equal(t, tc.to, newStatus)
			})
		}
	})

	t.Run("should reject invalid transitions", func(t *testing.T) {
		rejected := []struct {
			from parcel.Status
			to   parcel.Status
		}{
			{parcel.Delivered, parcel.Pending},
			{parcel.Delivered, parcel.InTransit},
			{parcel.Delivered, parcel.Cancelled},
			{parcel.Cancelled, parcel.Pending},
			{parcel.Cancelled, parcel.Delivered},
			{parcel.InTransit, parcel.PickedUp},
			{parcel.PickedUp, parcel.PickedUp},
			{parcel.InTransit, parcel.Pending},
			{parcel.Pending, parcel.Pending},
		}

		for _, tc := range rejected {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				_, err := tc.from.Transition(tc.to)

				require.Error(t, err)
				require.ErrorIs(t, err, parcel.ErrInvalidTransition)
			})
		}
	})

	t.Run("should reject transitions involving invalid statuses", func(t *testing.T) {
		_, err := parcel.Unknown.Transition(parcel.Pending)
		require.Error(t, err)

		_, err = parcel.Pending.Transition(parcel.Unknown)
		require.Error(t, err)
	})
}
