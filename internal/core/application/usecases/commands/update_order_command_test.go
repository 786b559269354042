package commands_test

import (
	"testing"
	"time"

	"purchasing/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	issuedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	deliveredAt := issuedAt.AddDate(0, 0, 5)

	cmd, err := commands.NewUpdateOrderCommand(1, 42, "FAC-2024-002", issuedAt, &deliveredAt, "reprogramada")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cmd.OrderID())
	assert.Equal(t, int64(42), cmd.SupplierID())
	assert.Equal(t, "FAC-2024-002", cmd.InvoiceNumber())
	assert.Equal(t, issuedAt, cmd.IssuedAt())
	require.NotNil(t, cmd.DeliveredAt())
	assert.Equal(t, deliveredAt, *cmd.DeliveredAt())
	assert.Equal(t, "reprogramada", cmd.Notes())
}

func TestNewUpdateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(0, 42, "FAC-2024-002", time.Now(), nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
}

func TestNewUpdateOrderCommand_ZeroIssuedAt(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(1, 42, "FAC-2024-002", time.Time{}, nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrIssuedAtIsRequired)
}

func TestUpdateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
}
