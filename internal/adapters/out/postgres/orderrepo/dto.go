// Package orderrepo provides data transfer objects and mapping functions for
// purchase order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"purchasing/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Indexed by supplier and status to match the read-side query
// patterns; the invoice number carries a unique index so the database is the
// final arbiter of invoice uniqueness.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	SupplierID    int64  `gorm:"index"`
	InvoiceNumber string `gorm:"type:varchar(50);uniqueIndex"`
	IssuedAt      time.Time
	DeliveredAt   *time.Time
	Subtotal      decimal.Decimal `gorm:"type:numeric(14,2)"`
	Tax           decimal.Decimal `gorm:"type:numeric(14,2)"`
	Total         decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status        string          `gorm:"type:varchar(20);index"`
	Notes         string          `gorm:"type:varchar(500)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LineItems     []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents a single order line in the database.
type LineItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	ProductID   int64
	ProductName string `gorm:"type:varchar(200)"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2)"`
	Discount    decimal.Decimal `gorm:"type:numeric(5,2)"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for order lines.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order aggregate to its database representation,
// including all owned line items.
func fromDomain(aggregate *order.Order) OrderDTO {
	lineItems := aggregate.LineItems()
	dtos := make([]LineItemDTO, 0, len(lineItems))
	for _, li := range lineItems {
		dtos = append(dtos, LineItemDTO{
			ID:          li.ID(),
			OrderID:     li.OrderID(),
			ProductID:   li.ProductID(),
			ProductName: li.ProductName(),
			Quantity:    li.Quantity(),
			UnitPrice:   li.UnitPrice(),
			Discount:    li.Discount(),
			Subtotal:    li.Subtotal(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID(),
		SupplierID:    aggregate.SupplierID(),
		InvoiceNumber: aggregate.InvoiceNumber(),
		IssuedAt:      aggregate.IssuedAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		Subtotal:      aggregate.Subtotal(),
		Tax:           aggregate.Tax(),
		Total:         aggregate.Total(),
		Status:        aggregate.Status().String(),
		Notes:         aggregate.Notes(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		LineItems:     dtos,
	}
}

// toDomain converts a database DTO to an order aggregate. Derived amounts
// are recomputed by RestoreOrder rather than trusted from storage.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromName(dto.Status)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		item, liErr := order.RestoreLineItem(
			li.ID,
			li.OrderID,
			li.ProductID,
			li.ProductName,
			li.Quantity,
			li.UnitPrice,
			li.Discount,
		)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.SupplierID,
		dto.InvoiceNumber,
		dto.IssuedAt,
		dto.DeliveredAt,
		dto.Tax,
		status,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
		lineItems,
	)
}
