package guard_test

import (
	"errors"
	"testing"

	"purchasing/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type invoiceReference struct {
		number string
		guard  guard.ConstructorGuard
	}

	var errInvoiceReferenceNotConstructed = errors.New("InvoiceReference must be created via its constructor")

	newInvoiceReference := func(number string) (invoiceReference, error) {
		if number == "" {
			return invoiceReference{}, errors.New("invoice number is required")
		}
		return invoiceReference{
			number: number,
			guard:  guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		ref, err := newInvoiceReference("FAC-2024-001")

		require.NoError(t, err)
		require.NoError(t, ref.guard.Validate(errInvoiceReferenceNotConstructed))
		assert.Equal(t, "FAC-2024-001", ref.number)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var ref invoiceReference // zero value

		err := ref.guard.Validate(errInvoiceReferenceNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errInvoiceReferenceNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newInvoiceReference("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invoice number is required")
	})
}

func TestConstructorGuard_CopySemantics(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		gCopy := g

		require.NoError(t, g.Validate(testError))
		require.NoError(t, gCopy.Validate(testError))
	})
}
