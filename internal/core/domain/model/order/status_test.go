package order_test

import (
	"fmt"
	"testing"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.InProgress))
		assert.Equal(t, 3, int(order.Completed))
		assert.Equal(t, 4, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.InProgress,
			order.Completed,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "PENDING"},
			{order.InProgress, "IN_PROGRESS"},
			{order.Completed, "COMPLETED"},
			{order.Cancelled, "CANCELLED"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return UNKNOWN for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Unknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(-1).String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})
}

func TestStatusFromName(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected order.Status
		}{
			{"PENDING", order.Pending},
			{"IN_PROGRESS", order.InProgress},
			{"COMPLETED", order.Completed},
			{"CANCELLED", order.Cancelled},
		}

		for _, tc := range testCases {
			status, err := order.StatusFromName(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "UNKNOWN", "pending", "DONE"} {
			status, err := order.StatusFromName(name)

			require.Error(t, err)
			assert.Equal(t, order.Unknown, status)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("transition table is exhaustive", func(t *testing.T) {
		statuses := []order.Status{
			order.Pending,
			order.InProgress,
			order.Completed,
			order.Cancelled,
		}

		allowed := map[order.Status]map[order.Status]bool{
			order.Pending:    {order.InProgress: true, order.Cancelled: true},
			order.InProgress: {order.Completed: true, order.Cancelled: true},
			order.Completed:  {},
			order.Cancelled:  {},
		}

		for _, current := range statuses {
			for _, target := range statuses {
				expected := allowed[current][target]
				assert.Equal(t, expected, current.CanTransitionTo(target),
					"transition %s -> %s", current, target)
			}
		}
	})

	t.Run("should reject skipping IN_PROGRESS", func(t *testing.T) {
		assert.False(t, order.Pending.CanTransitionTo(order.Completed))
	})

	t.Run("should reject self transitions", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.InProgress, order.Completed, order.Cancelled} {
			assert.False(t, s.CanTransitionTo(s))
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should perform valid transitions", func(t *testing.T) {
		newStatus, err := order.Pending.TransitionTo(order.InProgress)
		require.NoError(t, err)
		assert.Equal(t, order.InProgress, newStatus)

		newStatus, err = order.InProgress.TransitionTo(order.Completed)
		require.NoError(t, err)
		assert.Equal(t, order.Completed, newStatus)

		newStatus, err = order.Pending.TransitionTo(order.Cancelled)
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should reject illegal transitions with typed error", func(t *testing.T) {
		_, err := order.Completed.TransitionTo(order.Pending)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Contains(t, err.Error(), "COMPLETED -> PENDING")
	})

	t.Run("should reject invalid target statuses", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
