package commands

import (
	"errors"
	"time"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrSupplierIDIsInvalid     = errors.New("supplier id must be greater than 0")
	ErrInvoiceNumberIsRequired = errors.New("invoice number is required")
	ErrTaxIsInvalid            = errors.New("tax must not be negative")
)

// CreateOrderCommand represents a request to register a new purchase order.
// Carries the header fields and any initial line items; derived totals are
// computed by the aggregate, never supplied by the caller.
//
// Example:
//
//	line, _ := order.NewLineItem(9, "Hydraulic Pump", 2, price, decimal.Zero)
//	cmd, err := NewCreateOrderCommand(5, "FAC-2024-001", time.Time{}, nil, tax, "", []*order.LineItem{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	supplierID    int64
	invoiceNumber string
	issuedAt      time.Time
	deliveredAt   *time.Time
	tax           decimal.Decimal
	notes         string
	lineItems     []*order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// A zero issuedAt means the issue timestamp defaults to creation time.
// Field-level constraints beyond the basics checked here are enforced by the
// order aggregate when the command is handled.
func NewCreateOrderCommand(
	supplierID int64,
	invoiceNumber string,
	issuedAt time.Time,
	deliveredAt *time.Time,
	tax decimal.Decimal,
	notes string,
	lineItems []*order.LineItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		issuedAt:    issuedAt,
		deliveredAt: deliveredAt,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSupplierID(supplierID),
		cmd.setInvoiceNumber(invoiceNumber),
		cmd.setTax(tax),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// SupplierID returns the referenced supplier's identifier.
func (c CreateOrderCommand) SupplierID() int64 {
	return c.supplierID
}

// InvoiceNumber returns the invoice number for the new order.
func (c CreateOrderCommand) InvoiceNumber() string {
	return c.invoiceNumber
}

// IssuedAt returns the issue timestamp, zero when defaulting is requested.
func (c CreateOrderCommand) IssuedAt() time.Time {
	return c.issuedAt
}

// DeliveredAt returns the optional delivery timestamp.
func (c CreateOrderCommand) DeliveredAt() *time.Time {
	return c.deliveredAt
}

// Tax returns the tax amount.
func (c CreateOrderCommand) Tax() decimal.Decimal {
	return c.tax
}

// Notes returns the optional annotation.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// LineItems returns the initial line items, possibly empty.
func (c CreateOrderCommand) LineItems() []*order.LineItem {
	return c.lineItems
}

func (c *CreateOrderCommand) setSupplierID(supplierID int64) error {
	if supplierID <= 0 {
		return ErrSupplierIDIsInvalid
	}
	c.supplierID = supplierID
	return nil
}

func (c *CreateOrderCommand) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return ErrInvoiceNumberIsRequired
	}
	c.invoiceNumber = invoiceNumber
	return nil
}

func (c *CreateOrderCommand) setTax(tax decimal.Decimal) error {
	if tax.IsNegative() {
		return ErrTaxIsInvalid
	}
	c.tax = tax
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []*order.LineItem) error {
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	c.lineItems = lineItems
	return nil
}
