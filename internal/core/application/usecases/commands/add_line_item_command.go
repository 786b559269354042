package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/guard"
)

var (
	ErrAddLineItemCommandIsNotConstructed = errors.New(
		"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
	)
	ErrLineItemIsRequired = errors.New("line item is required")
)

// AddLineItemCommand represents a request to attach a new line item to an
// existing purchase order. Only Pending orders accept new lines.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	lineItem *order.LineItem

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a command to add a line item to an order.
// The line item must be a constructed domain object; its field constraints
// were already validated by order.NewLineItem.
func NewAddLineItemCommand(orderID int64, lineItem *order.LineItem) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItem(lineItem),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddLineItemCommand) OrderID() int64 {
	return c.orderID
}

// LineItem returns the line item to attach.
func (c AddLineItemCommand) LineItem() *order.LineItem {
	return c.lineItem
}

func (c *AddLineItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}
	c.orderID = orderID
	return nil
}

func (c *AddLineItemCommand) setLineItem(lineItem *order.LineItem) error {
	if lineItem == nil {
		return ErrLineItemIsRequired
	}
	if err := lineItem.Validate(); err != nil {
		return err
	}
	c.lineItem = lineItem
	return nil
}
