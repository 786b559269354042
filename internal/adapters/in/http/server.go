// Package http exposes the purchase order lifecycle over a REST API built
// on echo. Handlers translate between wire DTOs and the application's
// commands and queries; every error is returned as the standard error
// payload.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	addLineItemHandler       commands.AddLineItemCommandHandler
	updateLineItemHandler    commands.UpdateLineItemCommandHandler
	removeLineItemHandler    commands.RemoveLineItemCommandHandler

	getOrderHandler            queries.GetOrderQueryHandler
	listOrdersHandler          queries.ListOrdersQueryHandler
	countOrdersByStatusHandler queries.CountOrdersByStatusQueryHandler
	sumBySupplierHandler       queries.SumPurchasesBySupplierQueryHandler
	sumByDateRangeHandler      queries.SumPurchasesByDateRangeQueryHandler
	invoiceNumberExistsHandler queries.InvoiceNumberExistsQueryHandler
	canChangeStatusHandler     queries.CanChangeStatusQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	addLineItemHandler commands.AddLineItemCommandHandler,
	updateLineItemHandler commands.UpdateLineItemCommandHandler,
	removeLineItemHandler commands.RemoveLineItemCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	countOrdersByStatusHandler queries.CountOrdersByStatusQueryHandler,
	sumBySupplierHandler queries.SumPurchasesBySupplierQueryHandler,
	sumByDateRangeHandler queries.SumPurchasesByDateRangeQueryHandler,
	invoiceNumberExistsHandler queries.InvoiceNumberExistsQueryHandler,
	canChangeStatusHandler queries.CanChangeStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		addLineItemHandler:         addLineItemHandler,
		updateLineItemHandler:      updateLineItemHandler,
		removeLineItemHandler:      removeLineItemHandler,
		getOrderHandler:            getOrderHandler,
		listOrdersHandler:          listOrdersHandler,
		countOrdersByStatusHandler: countOrdersByStatusHandler,
		sumBySupplierHandler:       sumBySupplierHandler,
		sumByDateRangeHandler:      sumByDateRangeHandler,
		invoiceNumberExistsHandler: invoiceNumberExistsHandler,
		canChangeStatusHandler:     canChangeStatusHandler,
	}
}

// RegisterRoutes binds every endpoint under /api/v1/purchase-orders.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/purchase-orders")

	g.POST("", s.CreateOrder)
	g.GET("", s.ListOrders)
	g.GET("/pending", s.listByStatus(order.Pending))
	g.GET("/in-progress", s.listByStatus(order.InProgress))
	g.GET("/completed", s.listByStatus(order.Completed))
	g.GET("/cancelled", s.listByStatus(order.Cancelled))
	g.GET("/statistics/summary", s.Summary)
	g.GET("/statistics/count-by-status", s.CountOrdersByStatus)
	g.GET("/statistics/total-by-supplier/:supplierId", s.SumPurchasesBySupplier)
	g.GET("/statistics/total-by-date-range", s.SumPurchasesByDateRange)
	g.GET("/validate/invoice-number", s.InvoiceNumberExists)
	g.GET("/:id", s.GetOrder)
	g.PUT("/:id", s.UpdateOrder)
	g.DELETE("/:id", s.DeleteOrder)
	g.PATCH("/:id/status", s.ChangeOrderStatus)
	g.GET("/:id/validate/status-change", s.CanChangeStatus)
	g.POST("/:id/line-items", s.AddLineItem)
	g.PUT("/:id/line-items/:lineItemId", s.UpdateLineItem)
	g.DELETE("/:id/line-items/:lineItemId", s.RemoveLineItem)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body", nil)
	}

	lineItems, fieldErrors := lineItemsFromRequests(req.LineItems)
	if len(fieldErrors) > 0 {
		return writeBadRequest(ctx, "invalid line items", fieldErrors)
	}

	issuedAt := time.Time{}
	if req.IssuedAt != nil {
		issuedAt = *req.IssuedAt
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.SupplierID, req.InvoiceNumber, issuedAt, req.DeliveredAt, req.Tax, req.Notes, lineItems,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	stored, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(stored))
}

// GetOrder handles GET /api/v1/purchase-orders/{id}.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", nil)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(resp))
}

// ListOrders handles GET /api/v1/purchase-orders. Optional query parameters:
// status, supplierId, from, to, invoice.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery()
	var err error

	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := order.StatusFromName(raw)
		if statusErr != nil {
			return writeBadRequest(ctx, "invalid status filter", nil)
		}
		if query, err = query.WithStatus(status); err != nil {
			return writeBadRequest(ctx, err.Error(), nil)
		}
	}

	if raw := ctx.QueryParam("supplierId"); raw != "" {
		supplierID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return writeBadRequest(ctx, "invalid supplierId filter", nil)
		}
		if query, err = query.WithSupplierID(supplierID); err != nil {
			return writeBadRequest(ctx, err.Error(), nil)
		}
	}

	rawFrom, rawTo := ctx.QueryParam("from"), ctx.QueryParam("to")
	if rawFrom != "" || rawTo != "" {
		from, to, rangeErr := parseDateRange(rawFrom, rawTo)
		if rangeErr != nil {
			return writeBadRequest(ctx, rangeErr.Error(), nil)
		}
		if query, err = query.WithIssuedBetween(from, to); err != nil {
			return writeBadRequest(ctx, err.Error(), nil)
		}
	}

	if fragment := ctx.QueryParam("invoice"); fragment != "" {
		query = query.WithInvoiceFragment(fragment)
	}

	resp, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderListResponseFromQuery(resp))
}

func (s *Server) listByStatus(status order.Status) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		query, err := queries.NewListOrdersQuery().WithStatus(status)
		if err != nil {
			return writeError(ctx, err)
		}

		resp, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return writeError(ctx, err)
		}

		return ctx.JSON(http.StatusOK, orderListResponseFromQuery(resp))
	}
}

// UpdateOrder handles PUT /api/v1/purchase-orders/{id}. Only header fields
// are overwritten; status and line items are managed by their own endpoints.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", nil)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body", nil)
	}

	cmd, err := commands.NewUpdateOrderCommand(
		id, req.SupplierID, req.InvoiceNumber, req.IssuedAt, req.DeliveredAt, req.Notes,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	stored, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(stored))
}

// DeleteOrder handles DELETE /api/v1/purchase-orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", nil)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/purchase-orders/{id}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", nil)
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body", nil)
	}

	target, err := order.StatusFromName(req.Status)
	if err != nil {
		return writeBadRequest(ctx, "invalid target status", nil)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	stored, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(stored))
}

// AddLineItem handles POST /api/v1/purchase-orders/{id}/line-items.
func (s *Server) AddLineItem(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", nil)
	}

	var req LineItemRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body", nil)
	}

	lineItem, err := order.NewLineItem(
		req.ProductID, req.ProductName, req.Quantity, req.UnitPrice, req.Discount,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	cmd, err := commands.NewAddLineItemCommand(id, lineItem)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	stored, err := s.addLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, lineItemResponseFromDomain(stored))
}

// UpdateLineItem handles PUT /api/v1/purchase-orders/{id}/line-items/{lineItemId}.
func (s *Server) UpdateLineItem(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", nil)
	}
	lineItemID, err := pathID(ctx, "lineItemId")
	if err != nil {
		return writeBadRequest(ctx, "invalid line item id", nil)
	}

	var req LineItemRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body", nil)
	}

	cmd, err := commands.NewUpdateLineItemCommand(
		id, lineItemID, req.ProductID, req.ProductName, req.Quantity, req.UnitPrice, req.Discount,
	)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	stored, err := s.updateLineItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lineItemResponseFromDomain(stored))
}

// RemoveLineItem handles DELETE /api/v1/purchase-orders/{id}/line-items/{lineItemId}.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", nil)
	}
	lineItemID, err := pathID(ctx, "lineItemId")
	if err != nil {
		return writeBadRequest(ctx, "invalid line item id", nil)
	}

	cmd, err := commands.NewRemoveLineItemCommand(id, lineItemID)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	if err = s.removeLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CountOrdersByStatus handles GET /api/v1/purchase-orders/statistics/count-by-status.
func (s *Server) CountOrdersByStatus(ctx echo.Context) error {
	counts, err := s.countOrdersByStatusHandler.Handle(
		ctx.Request().Context(), queries.NewCountOrdersByStatusQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, counts)
}

// Summary handles GET /api/v1/purchase-orders/statistics/summary. Combines
// the per-status counts with the purchase total of the current calendar
// month in one payload.
func (s *Server) Summary(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	counts, err := s.countOrdersByStatusHandler.Handle(reqCtx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	query, err := queries.NewSumPurchasesByDateRangeQuery(monthStart, monthEnd)
	if err != nil {
		return writeError(ctx, err)
	}

	total, err := s.sumByDateRangeHandler.Handle(reqCtx, query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SummaryResponse{
		CountsByStatus:    counts,
		CurrentMonthTotal: total,
	})
}

// SumPurchasesBySupplier handles
// GET /api/v1/purchase-orders/statistics/total-by-supplier/{supplierId}.
func (s *Server) SumPurchasesBySupplier(ctx echo.Context) error {
	supplierID, err := pathID(ctx, "supplierId")
	if err != nil {
		return writeBadRequest(ctx, "invalid supplier id", nil)
	}

	query, err := queries.NewSumPurchasesBySupplierQuery(supplierID)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	total, err := s.sumBySupplierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TotalResponse{Total: total})
}

// SumPurchasesByDateRange handles
// GET /api/v1/purchase-orders/statistics/total-by-date-range?from=...&to=...
func (s *Server) SumPurchasesByDateRange(ctx echo.Context) error {
	from, to, err := parseDateRange(ctx.QueryParam("from"), ctx.QueryParam("to"))
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	query, err := queries.NewSumPurchasesByDateRangeQuery(from, to)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	total, err := s.sumByDateRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TotalResponse{Total: total})
}

// InvoiceNumberExists handles
// GET /api/v1/purchase-orders/validate/invoice-number?value=...
func (s *Server) InvoiceNumberExists(ctx echo.Context) error {
	query, err := queries.NewInvoiceNumberExistsQuery(ctx.QueryParam("value"))
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	exists, err := s.invoiceNumberExistsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ExistsResponse{Exists: exists})
}

// CanChangeStatus handles
// GET /api/v1/purchase-orders/{id}/validate/status-change?target=...
func (s *Server) CanChangeStatus(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeBadRequest(ctx, "invalid order id", nil)
	}

	target, err := order.StatusFromName(ctx.QueryParam("target"))
	if err != nil {
		return writeBadRequest(ctx, "invalid target status", nil)
	}

	query, err := queries.NewCanChangeStatusQuery(id, target)
	if err != nil {
		return writeBadRequest(ctx, err.Error(), nil)
	}

	allowed, err := s.canChangeStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AllowedResponse{Allowed: allowed})
}

func pathID(ctx echo.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}

// parseDateRange accepts RFC 3339 timestamps or plain dates. A date-only
// upper bound is stretched to the end of that day so the range stays
// inclusive.
func parseDateRange(rawFrom, rawTo string) (time.Time, time.Time, error) {
	if rawFrom == "" || rawTo == "" {
		return time.Time{}, time.Time{}, errors.New("both from and to parameters are required")
	}

	from, err := parseTimeParam(rawFrom, false)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid from parameter")
	}
	to, err := parseTimeParam(rawTo, true)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid to parameter")
	}

	return from, to, nil
}

func parseTimeParam(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func lineItemsFromRequests(reqs []LineItemRequest) ([]*order.LineItem, map[string]string) {
	lineItems := make([]*order.LineItem, 0, len(reqs))
	fieldErrors := make(map[string]string)

	for i, req := range reqs {
		li, err := order.NewLineItem(
			req.ProductID, req.ProductName, req.Quantity, req.UnitPrice, req.Discount,
		)
		if err != nil {
			fieldErrors["lineItems["+strconv.Itoa(i)+"]"] = err.Error()
			continue
		}
		lineItems = append(lineItems, li)
	}

	return lineItems, fieldErrors
}
