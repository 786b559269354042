package http

import (
	"time"

	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the payload for registering a new purchase order.
// A missing issuedAt defaults to the creation time.
type CreateOrderRequest struct {
	SupplierID    int64             `json:"supplierId"`
	InvoiceNumber string            `json:"invoiceNumber"`
	IssuedAt      *time.Time        `json:"issuedAt"`
	DeliveredAt   *time.Time        `json:"deliveredAt"`
	Tax           decimal.Decimal   `json:"tax"`
	Notes         string            `json:"notes"`
	LineItems     []LineItemRequest `json:"lineItems"`
}

// UpdateOrderRequest is the payload for overwriting an order's header.
type UpdateOrderRequest struct {
	SupplierID    int64      `json:"supplierId"`
	InvoiceNumber string     `json:"invoiceNumber"`
	IssuedAt      time.Time  `json:"issuedAt"`
	DeliveredAt   *time.Time `json:"deliveredAt"`
	Notes         string     `json:"notes"`
}

// LineItemRequest is the payload for creating or updating one order line.
type LineItemRequest struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
}

// ChangeStatusRequest carries the target lifecycle status by wire name.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the wire representation of a purchase order.
type OrderResponse struct {
	ID            int64              `json:"id"`
	SupplierID    int64              `json:"supplierId"`
	InvoiceNumber string             `json:"invoiceNumber"`
	IssuedAt      time.Time          `json:"issuedAt"`
	DeliveredAt   *time.Time         `json:"deliveredAt,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	LineItems     []LineItemResponse `json:"lineItems"`
}

// LineItemResponse is the wire representation of one order line.
type LineItemResponse struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"orderId"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ErrorResponse is the error payload returned by every endpoint.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// TotalResponse carries an aggregated amount.
type TotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

// SummaryResponse combines the per-status order counts with the purchase
// total of the current calendar month.
type SummaryResponse struct {
	CountsByStatus    map[string]int64 `json:"countsByStatus"`
	CurrentMonthTotal decimal.Decimal  `json:"currentMonthTotal"`
}

// ExistsResponse carries the result of an invoice existence check.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// AllowedResponse carries the result of a transition feasibility check.
type AllowedResponse struct {
	Allowed bool `json:"allowed"`
}

func orderResponseFromDomain(aggregate *order.Order) OrderResponse {
	lineItems := aggregate.LineItems()
	lines := make([]LineItemResponse, 0, len(lineItems))
	for _, li := range lineItems {
		lines = append(lines, lineItemResponseFromDomain(li))
	}

	return OrderResponse{
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
		LineItems:     lines,
	}
}

func lineItemResponseFromDomain(li *order.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          li.ID(),
		OrderID:     li.OrderID(),
		ProductID:   li.ProductID(),
		ProductName: li.ProductName(),
		Quantity:    li.Quantity(),
		UnitPrice:   li.UnitPrice(),
		Discount:    li.Discount(),
		Subtotal:    li.Subtotal(),
	}
}

func orderResponseFromQuery(resp queries.OrderResponse) OrderResponse {
	lines := make([]LineItemResponse, 0, len(resp.LineItems))
	for _, li := range resp.LineItems {
		lines = append(lines, LineItemResponse{
			ID:          li.ID,
			OrderID:     li.OrderID,
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Discount:    li.Discount,
			Subtotal:    li.Subtotal,
		})
	}

	return OrderResponse{
		ID:            resp.ID,
		SupplierID:    resp.SupplierID,
		InvoiceNumber: resp.InvoiceNumber,
		IssuedAt:      resp.IssuedAt,
		DeliveredAt:   resp.DeliveredAt,
		Subtotal:      resp.Subtotal,
		Tax:           resp.Tax,
		Total:         resp.Total,
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
		LineItems:     lines,
	}
}

func orderListResponseFromQuery(resps []queries.OrderResponse) []OrderResponse {
	out := make([]OrderResponse, 0, len(resps))
	for _, resp := range resps {
		out = append(out, orderResponseFromQuery(resp))
	}
	return out
}
