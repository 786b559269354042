package commands_test

import (
	"testing"

	"purchasing/internal/core/application/usecases/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateLineItemCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewUpdateLineItemCommand(
		7, 11, 9, "Tinta negra", 3, dec(t, "19.90"), dec(t, "5"),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, int64(11), cmd.LineItemID())
	assert.Equal(t, int64(9), cmd.ProductID())
	assert.Equal(t, "Tinta negra", cmd.ProductName())
	assert.Equal(t, 3, cmd.Quantity())
	assert.True(t, dec(t, "19.90").Equal(cmd.UnitPrice()))
	assert.True(t, dec(t, "5").Equal(cmd.Discount()))
}

func TestNewUpdateLineItemCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name        string
		orderID     int64
		lineItemID  int64
		productID   int64
		productName string
		quantity    int
		unitPrice   decimal.Decimal
		discount    decimal.Decimal
		want        error
	}{
		{"zero order ID", 0, 11, 9, "Tinta negra", 3, decimal.NewFromInt(1), decimal.Zero, commands.ErrOrderIDIsInvalid},
		{"zero line item ID", 7, 0, 9, "Tinta negra", 3, decimal.NewFromInt(1), decimal.Zero, commands.ErrLineItemIDIsInvalid},
		{"zero product ID", 7, 11, 0, "Tinta negra", 3, decimal.NewFromInt(1), decimal.Zero, commands.ErrProductIDIsInvalid},
		{"empty product name", 7, 11, 9, "", 3, decimal.NewFromInt(1), decimal.Zero, commands.ErrProductNameIsEmpty},
		{"zero quantity", 7, 11, 9, "Tinta negra", 0, decimal.NewFromInt(1), decimal.Zero, commands.ErrQuantityIsInvalid},
		{"zero unit price", 7, 11, 9, "Tinta negra", 3, decimal.Zero, decimal.Zero, commands.ErrUnitPriceIsInvalid},
		{"negative discount", 7, 11, 9, "Tinta negra", 3, decimal.NewFromInt(1), decimal.NewFromInt(-1), commands.ErrDiscountIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewUpdateLineItemCommand(
				tc.orderID, tc.lineItemID, tc.productID,
				tc.productName, tc.quantity, tc.unitPrice, tc.discount,
			)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUpdateLineItemCommand_NotConstructed(t *testing.T) {
	cmd := commands.UpdateLineItemCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateLineItemCommandIsNotConstructed)
}
