// Package order provides domain entities and business logic for purchase
// order management in the purchasing service. It implements the Order
// aggregate root with line-item ownership, derived total computation, and
// lifecycle state transitions.
//
// The package includes:
//   - Order: the aggregate root owning the header and its line items
//   - LineItem: one product line with quantity, unit price, discount, and a
//     derived subtotal
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference a supplier and carry a unique, non-empty invoice number
//   - Order status follows a defined workflow:
//     PENDING -> IN_PROGRESS -> COMPLETED, with CANCELLED reachable from
//     PENDING or IN_PROGRESS; COMPLETED and CANCELLED are terminal
//   - A line item's subtotal is recomputed whenever quantity, unit price, or
//     discount changes; it is never independently settable
//   - Order totals are recomputed on every line-item mutation; the order
//     subtotal sums gross (pre-discount) line value and the total adds tax
//
// All currency math uses shopspring/decimal. The package follows
// Domain-Driven Design principles, providing rich domain behavior,
// encapsulation, and validation to ensure business rules are enforced.
package order
