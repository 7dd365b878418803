package order_test

import (
	"testing"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "withdrawn", order.Withdrawn.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "canceled", order.Canceled.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("valid_values", func(t *testing.T) {
		for _, name := range []string{"withdrawn", "delivered", "canceled"} {
			s, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("invalid_value", func(t *testing.T) {
		_, err := order.StatusFromString("pending")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Withdrawn.Validate())
	require.NoError(t, order.Delivered.Validate())
	require.NoError(t, order.Canceled.Validate())
	assert.Error(t, order.Unknown.Validate())
	assert.Error(t, order.Status(42).Validate())
}

func TestStatus_Finish(t *testing.T) {
	t.Run("withdrawn_to_delivered", func(t *testing.T) {
		s, err := order.Withdrawn.Finish()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, s)
	})

	t.Run("terminal_states_rejected", func(t *testing.T) {
		_, err := order.Delivered.Finish()
		assert.Error(t, err)

		_, err = order.Canceled.Finish()
		assert.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("withdrawn_to_canceled", func(t *testing.T) {
		s, err := order.Withdrawn.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Canceled, s)
	})

	t.Run("terminal_states_rejected", func(t *testing.T) {
		_, err := order.Delivered.Cancel()
		assert.Error(t, err)

		_, err = order.Canceled.Cancel()
		assert.Error(t, err)
	})
}
