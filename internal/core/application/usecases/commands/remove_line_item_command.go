package commands

import (
	"errors"

	"purchasing/internal/pkg/guard"
)

var ErrRemoveLineItemCommandIsNotConstructed = errors.New(
	"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
)

// RemoveLineItemCommand represents a request to detach a line item from a
// Pending purchase order.
type RemoveLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	lineItemID int64

	guard guard.ConstructorGuard
}

// NewRemoveLineItemCommand creates a command to remove a line item.
func NewRemoveLineItemCommand(orderID, lineItemID int64) (RemoveLineItemCommand, error) {
	cmd := RemoveLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItemID(lineItemID),
	); err != nil {
		return RemoveLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order that owns the line item.
func (c RemoveLineItemCommand) OrderID() int64 {
	return c.orderID
}

// LineItemID returns the identifier of the line item to remove.
func (c RemoveLineItemCommand) LineItemID() int64 {
	return c.lineItemID
}

func (c *RemoveLineItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}
	c.orderID = orderID
	return nil
}

func (c *RemoveLineItemCommand) setLineItemID(lineItemID int64) error {
	if lineItemID <= 0 {
		return ErrLineItemIDIsInvalid
	}
	c.lineItemID = lineItemID
	return nil
}
