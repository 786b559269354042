package order

import (
	"errors"
	"fmt"

	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// maxProductNameLength is the maximum length of the product name snapshot.
	maxProductNameLength = 200
	// amountScale is the number of fractional digits kept for currency amounts.
	amountScale = 2
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem or RestoreLineItem constructors.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem represents one product line within a purchase order. It is an
// entity owned exclusively by its parent Order: a line item never exists
// without a parent and is removed when the parent is deleted.
//
// The product name is a snapshot denormalized at add-time; it is not
// re-synced if the product record later changes.
//
// The subtotal is derived: it always equals
// round2(unitPrice * quantity * (1 - discount/100)) and is recomputed
// whenever quantity, unit price, or discount changes. There is no way to set
// it to a diverging value.
type LineItem struct {
	// id is the persistence-assigned identifier, zero until stored
	id int64

	// orderID is a back-reference to the owning order, used for lookup and
	// ownership validation only
	orderID int64

	// productID references the product aggregate in the catalog service
	productID int64

	// productName is the product name snapshot taken at add-time
	productName string

	// quantity is the number of units ordered, at least 1
	quantity int

	// unitPrice is the price per unit, strictly positive
	unitPrice decimal.Decimal

	// discount is a percentage between 0 and 100
	discount decimal.Decimal

	// subtotal is the derived discounted line amount
	subtotal decimal.Decimal

	// guard ensures the line item was properly constructed
	guard guard.ConstructorGuard
}

// NewLineItem creates a new LineItem with validation. This is the only way
// to create a valid line item that is not being restored from persistence.
//
// Parameters:
//   - productID: referenced product id (must be positive)
//   - productName: product name snapshot (required, max 200 chars)
//   - quantity: units ordered (must be at least 1)
//   - unitPrice: price per unit (must be greater than 0)
//   - discount: percentage discount (must not be negative; zero means none)
//
// The subtotal is computed during construction; the identity and parent
// order reference stay zero until the repository persists the line.
func NewLineItem(
	productID int64,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	discount decimal.Decimal,
) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProduct(productID, productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setDiscount(discount),
	); err != nil {
		return nil, err
	}

	item.recalculateSubtotal()
	return item, nil
}

// RestoreLineItem reconstructs a LineItem from persistent storage.
// The subtotal is recomputed from the restored pricing fields rather than
// trusted from storage, so a stale stored value can never survive a load.
func RestoreLineItem(
	id int64,
	orderID int64,
	productID int64,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	discount decimal.Decimal,
) (*LineItem, error) {
	item, err := NewLineItem(productID, productName, quantity, unitPrice, discount)
	if err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	return item, nil
}

// Validate ensures the LineItem instance was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the line item's identifier, zero until persisted.
func (li *LineItem) ID() int64 {
	return li.id
}

// OrderID returns the owning order's identifier.
func (li *LineItem) OrderID() int64 {
	return li.orderID
}

// ProductID returns the referenced product's identifier.
func (li *LineItem) ProductID() int64 {
	return li.productID
}

// ProductName returns the product name snapshot.
func (li *LineItem) ProductName() string {
	return li.productName
}

// Quantity returns the number of units ordered.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price per unit.
func (li *LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Discount returns the discount percentage.
func (li *LineItem) Discount() decimal.Decimal {
	return li.discount
}

// Subtotal returns the derived discounted line amount.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.subtotal
}

// GrossAmount returns unitPrice * quantity before any discount.
// Order-level totals sum this value, not the discounted subtotal.
func (li *LineItem) GrossAmount() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}

// ChangeProduct replaces the product reference and name snapshot.
func (li *LineItem) ChangeProduct(productID int64, productName string) error {
	return li.setProduct(productID, productName)
}

// ChangeQuantity updates the ordered quantity and recomputes the subtotal.
func (li *LineItem) ChangeQuantity(quantity int) error {
	if err := li.setQuantity(quantity); err != nil {
		return err
	}
	li.recalculateSubtotal()
	return nil
}

// ChangeUnitPrice updates the unit price and recomputes the subtotal.
func (li *LineItem) ChangeUnitPrice(unitPrice decimal.Decimal) error {
	if err := li.setUnitPrice(unitPrice); err != nil {
		return err
	}
	li.recalculateSubtotal()
	return nil
}

// ChangeDiscount updates the discount percentage and recomputes the subtotal.
func (li *LineItem) ChangeDiscount(discount decimal.Decimal) error {
	if err := li.setDiscount(discount); err != nil {
		return err
	}
	li.recalculateSubtotal()
	return nil
}

// recalculateSubtotal derives the discounted line amount from the current
// quantity, unit price, and discount, rounded to 2 fractional digits.
func (li *LineItem) recalculateSubtotal() {
	gross := li.GrossAmount()
	if li.discount.IsPositive() {
		discountAmount := gross.Mul(li.discount.Div(decimal.NewFromInt(100)))
		li.subtotal = gross.Sub(discountAmount).Round(amountScale)
		return
	}
	li.subtotal = gross.Round(amountScale)
}

func (li *LineItem) setProduct(productID int64, productName string) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product id is invalid",
			fmt.Errorf("%d is not greater than 0", productID),
		)
	}
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if len(productName) > maxProductNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"product name is invalid",
			fmt.Errorf("length %d exceeds %d characters", len(productName), maxProductNameLength),
		)
	}

	li.productID = productID
	li.productName = productName
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}
	li.unitPrice = unitPrice
	return nil
}

func (li *LineItem) setDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount is invalid",
			fmt.Errorf("%s is negative", discount),
		)
	}
	li.discount = discount
	return nil
}
