package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"purchasing/internal/pkg/guard"
)

var (
	ErrUpdateLineItemCommandIsNotConstructed = errors.New(
		"UpdateLineItemCommand must be created via NewUpdateLineItemCommand constructor",
	)
	ErrLineItemIDIsInvalid = errors.New("line item ID must be a positive number")
	ErrProductIDIsInvalid  = errors.New("product ID must be a positive number")
	ErrProductNameIsEmpty  = errors.New("product name is required")
	ErrQuantityIsInvalid   = errors.New("quantity must be at least 1")
	ErrUnitPriceIsInvalid  = errors.New("unit price must be greater than zero")
	ErrDiscountIsInvalid   = errors.New("discount must not be negative")
)

// UpdateLineItemCommand represents a request to overwrite the attributes of
// an existing line item on a Pending purchase order.
type UpdateLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	lineItemID  int64
	productID   int64
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	discount    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateLineItemCommand creates a command to update a line item.
func NewUpdateLineItemCommand(
	orderID, lineItemID, productID int64,
	productName string,
	quantity int,
	unitPrice, discount decimal.Decimal,
) (UpdateLineItemCommand, error) {
	cmd := UpdateLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItemID(lineItemID),
		cmd.setProductID(productID),
		cmd.setProductName(productName),
		cmd.setQuantity(quantity),
		cmd.setUnitPrice(unitPrice),
		cmd.setDiscount(discount),
	); err != nil {
		return UpdateLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLineItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order that owns the line item.
func (c UpdateLineItemCommand) OrderID() int64 {
	return c.orderID
}

// LineItemID returns the identifier of the line item to update.
func (c UpdateLineItemCommand) LineItemID() int64 {
	return c.lineItemID
}

// ProductID returns the new product identifier.
func (c UpdateLineItemCommand) ProductID() int64 {
	return c.productID
}

// ProductName returns the new product name.
func (c UpdateLineItemCommand) ProductName() string {
	return c.productName
}

// Quantity returns the new quantity.
func (c UpdateLineItemCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the new unit price.
func (c UpdateLineItemCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

// Discount returns the new discount percentage.
func (c UpdateLineItemCommand) Discount() decimal.Decimal {
	return c.discount
}

func (c *UpdateLineItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateLineItemCommand) setLineItemID(lineItemID int64) error {
	if lineItemID <= 0 {
		return ErrLineItemIDIsInvalid
	}
	c.lineItemID = lineItemID
	return nil
}

func (c *UpdateLineItemCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}
	c.productID = productID
	return nil
}

func (c *UpdateLineItemCommand) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsEmpty
	}
	c.productName = productName
	return nil
}

func (c *UpdateLineItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *UpdateLineItemCommand) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return ErrUnitPriceIsInvalid
	}
	c.unitPrice = unitPrice
	return nil
}

func (c *UpdateLineItemCommand) setDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return ErrDiscountIsInvalid
	}
	c.discount = discount
	return nil
}
