package commands

import (
	"errors"
	"time"

	"purchasing/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrOrderIDIsInvalid   = errors.New("order id must be greater than 0")
	ErrIssuedAtIsRequired = errors.New("issue timestamp is required")
)

// UpdateOrderCommand represents a request to overwrite the header fields of
// an existing purchase order: supplier, invoice number, issue and delivery
// timestamps, and notes. Status and line items are never mutated by this
// command; they change only through ChangeOrderStatusCommand and the
// line-item commands.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	supplierID    int64
	invoiceNumber string
	issuedAt      time.Time
	deliveredAt   *time.Time
	notes         string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order's header.
func NewUpdateOrderCommand(
	orderID int64,
	supplierID int64,
	invoiceNumber string,
	issuedAt time.Time,
	deliveredAt *time.Time,
	notes string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		deliveredAt: deliveredAt,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSupplierID(supplierID),
		cmd.setInvoiceNumber(invoiceNumber),
		cmd.setIssuedAt(issuedAt),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// SupplierID returns the new supplier reference.
func (c UpdateOrderCommand) SupplierID() int64 {
	return c.supplierID
}

// InvoiceNumber returns the new invoice number.
func (c UpdateOrderCommand) InvoiceNumber() string {
	return c.invoiceNumber
}

// IssuedAt returns the new issue timestamp.
func (c UpdateOrderCommand) IssuedAt() time.Time {
	return c.issuedAt
}

// DeliveredAt returns the new delivery timestamp, nil to clear it.
func (c UpdateOrderCommand) DeliveredAt() *time.Time {
	return c.deliveredAt
}

// Notes returns the new annotation.
func (c UpdateOrderCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setSupplierID(supplierID int64) error {
	if supplierID <= 0 {
		return ErrSupplierIDIsInvalid
	}
	c.supplierID = supplierID
	return nil
}

func (c *UpdateOrderCommand) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return ErrInvoiceNumberIsRequired
	}
	c.invoiceNumber = invoiceNumber
	return nil
}

func (c *UpdateOrderCommand) setIssuedAt(issuedAt time.Time) error {
	if issuedAt.IsZero() {
		return ErrIssuedAtIsRequired
	}
	c.issuedAt = issuedAt
	return nil
}
