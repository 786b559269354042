package order

import (
	"errors"
	"fmt"
	"time"

	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// maxInvoiceNumberLength is the maximum length of the invoice number.
	maxInvoiceNumberLength = 50
	// maxNotesLength is the maximum length of the free-form notes field.
	maxNotesLength = 500
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a purchase order in the system. It is the aggregate root
// that owns the order header and its ordered collection of line items as one
// consistency unit.
//
// Order follows these invariants:
//   - Must reference a supplier and carry a non-empty invoice number
//   - Tax is never negative
//   - The subtotal is the sum of gross (pre-discount) line value and the
//     total is subtotal plus tax, recomputed on every line-item mutation
//   - Status transitions follow the Status state machine
//   - Line items are owned exclusively by the order; a line holds only a
//     numeric back-reference to its parent
//
// Whether a structural mutation is currently legal depends on the order
// status; that gate is enforced by the lifecycle layer, not the aggregate.
type Order struct {
	// id is the persistence-assigned identifier, zero until stored
	id int64

	// supplierID references the supplier aggregate, never embedded
	supplierID int64

	// invoiceNumber is globally unique across all orders
	invoiceNumber string

	// issuedAt is the invoice issue timestamp
	issuedAt time.Time

	// deliveredAt is the expected or actual delivery timestamp, if known
	deliveredAt *time.Time

	// subtotal, tax, total are the derived money amounts
	subtotal decimal.Decimal
	tax      decimal.Decimal
	total    decimal.Decimal

	// status is the current lifecycle state
	status Status

	// notes is an optional free-form annotation
	notes string

	// createdAt is immutable after creation; updatedAt is bumped on every mutation
	createdAt time.Time
	updatedAt time.Time

	// lineItems is the ordered collection owned by this order
	lineItems []*LineItem

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with validation. The order starts in Pending
// status with zero-valued derived totals; the issue timestamp defaults to the
// creation time when zero.
//
// Parameters:
//   - supplierID: referenced supplier id (must be positive)
//   - invoiceNumber: globally unique invoice number (required, max 50 chars)
//   - issuedAt: invoice issue timestamp (zero value defaults to now)
//   - deliveredAt: optional delivery timestamp
//   - tax: tax amount (must not be negative)
//   - notes: optional annotation (max 500 chars)
func NewOrder(
	supplierID int64,
	invoiceNumber string,
	issuedAt time.Time,
	deliveredAt *time.Time,
	tax decimal.Decimal,
	notes string,
) (*Order, error) {
	now := time.Now().UTC()
	if issuedAt.IsZero() {
		issuedAt = now
	}

	o := &Order{
		issuedAt:    issuedAt,
		deliveredAt: deliveredAt,
		status:      Pending,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setSupplierID(supplierID),
		o.setInvoiceNumber(invoiceNumber),
		o.setTax(tax),
		o.setNotes(notes),
	); err != nil {
		return nil, err
	}

	o.recomputeTotals()
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its full line-item collection. Derived totals are recomputed
// from the restored lines and tax rather than trusted from storage, so a
// stale persisted total can never survive a load.
func RestoreOrder(
	id int64,
	supplierID int64,
	invoiceNumber string,
	issuedAt time.Time,
	deliveredAt *time.Time,
	tax decimal.Decimal,
	status Status,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
	lineItems []*LineItem,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if issuedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("issue timestamp")
	}

	o := &Order{
		id:          id,
		issuedAt:    issuedAt,
		deliveredAt: deliveredAt,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setSupplierID(supplierID),
		o.setInvoiceNumber(invoiceNumber),
		o.setTax(tax),
		o.setNotes(notes),
	); err != nil {
		return nil, err
	}

	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return nil, err
		}
		li.orderID = id
	}
	o.lineItems = lineItems

	o.recomputeTotals()
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier, zero until persisted.
func (o *Order) ID() int64 {
	return o.id
}

// SupplierID returns the referenced supplier's identifier.
func (o *Order) SupplierID() int64 {
	return o.supplierID
}

// InvoiceNumber returns the order's invoice number.
func (o *Order) InvoiceNumber() string {
	return o.invoiceNumber
}

// IssuedAt returns the invoice issue timestamp.
func (o *Order) IssuedAt() time.Time {
	return o.issuedAt
}

// DeliveredAt returns the delivery timestamp, or nil if not set.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Subtotal returns the derived order subtotal. It sums gross (pre-discount)
// line value; per-line discounts only affect each line's own subtotal.
func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

// Tax returns the tax amount.
func (o *Order) Tax() decimal.Decimal {
	return o.tax
}

// Total returns the derived order total, subtotal plus tax.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the optional annotation.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// LineItems returns the order's line items in insertion order.
// The returned slice is a copy; the line items themselves are shared.
func (o *Order) LineItems() []*LineItem {
	items := make([]*LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// LineItem returns the owned line item with the given id, or an
// ObjectNotFoundError when no such line belongs to this order.
func (o *Order) LineItem(lineItemID int64) (*LineItem, error) {
	for _, li := range o.lineItems {
		if li.id == lineItemID {
			return li, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("line item", lineItemID)
}

// AddLineItem attaches a line item to the order and recomputes the derived
// totals. The aggregate does not gate on status here; the lifecycle layer
// checks that the order is Pending before calling.
func (o *Order) AddLineItem(item *LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	item.orderID = o.id
	o.lineItems = append(o.lineItems, item)
	o.recomputeTotals()
	o.touch()
	return nil
}

// RemoveLineItem detaches the line item with the given id and recomputes the
// derived totals. Returns an ObjectNotFoundError when the line does not
// belong to this order.
func (o *Order) RemoveLineItem(lineItemID int64) error {
	for i, li := range o.lineItems {
		if li.id == lineItemID {
			o.lineItems = append(o.lineItems[:i], o.lineItems[i+1:]...)
			o.recomputeTotals()
			o.touch()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("line item", lineItemID)
}

// RecomputeTotals rederives subtotal and total from the current line items
// and tax. The operation is pure over the aggregate state and idempotent; it
// runs automatically after every line mutation and is exposed so callers can
// guard against stale totals before persisting.
func (o *Order) RecomputeTotals() {
	o.recomputeTotals()
	o.touch()
}

// UpdateHeader overwrites the mutable header fields. Status and line items
// are never touched by this operation; they change only through
// ChangeStatus and the line-item methods. Totals are recomputed to guard
// against stale values from a prior in-memory state.
func (o *Order) UpdateHeader(
	supplierID int64,
	invoiceNumber string,
	issuedAt time.Time,
	deliveredAt *time.Time,
	notes string,
) error {
	if issuedAt.IsZero() {
		return errs.NewValueIsRequiredError("issue timestamp")
	}

	if err := errors.Join(
		o.setSupplierID(supplierID),
		o.setInvoiceNumber(invoiceNumber),
		o.setNotes(notes),
	); err != nil {
		return err
	}

	o.issuedAt = issuedAt
	o.deliveredAt = deliveredAt
	o.recomputeTotals()
	o.touch()
	return nil
}

// ChangeTax replaces the tax amount and recomputes the total.
func (o *Order) ChangeTax(tax decimal.Decimal) error {
	if err := o.setTax(tax); err != nil {
		return err
	}
	o.recomputeTotals()
	o.touch()
	return nil
}

// ChangeStatus transitions the order to the target status.
// Returns an InvalidStateTransitionError when the transition is not listed
// in the state machine table.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// IsPending reports whether structural mutation and deletion are currently legal.
func (o *Order) IsPending() bool {
	return o.status == Pending
}

// recomputeTotals sums gross line value into the subtotal and adds tax into
// the total. The subtotal deliberately ignores per-line discounts, matching
// the established invoicing behavior of the service.
func (o *Order) recomputeTotals() {
	subtotal := decimal.Zero
	for _, li := range o.lineItems {
		subtotal = subtotal.Add(li.GrossAmount())
	}

	o.subtotal = subtotal.Round(amountScale)
	o.total = o.subtotal.Add(o.tax).Round(amountScale)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setSupplierID(supplierID int64) error {
	if supplierID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"supplier id is invalid",
			fmt.Errorf("%d is not greater than 0", supplierID),
		)
	}
	o.supplierID = supplierID
	return nil
}

func (o *Order) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	if len(invoiceNumber) > maxInvoiceNumberLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"invoice number is invalid",
			fmt.Errorf("length %d exceeds %d characters", len(invoiceNumber), maxInvoiceNumberLength),
		)
	}
	o.invoiceNumber = invoiceNumber
	return nil
}

func (o *Order) setTax(tax decimal.Decimal) error {
	if tax.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"tax is invalid",
			fmt.Errorf("%s is negative", tax),
		)
	}
	o.tax = tax
	return nil
}

func (o *Order) setNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"notes is invalid",
			fmt.Errorf("length %d exceeds %d characters", len(notes), maxNotesLength),
		)
	}
	o.notes = notes
	return nil
}
