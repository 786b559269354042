package cmd

import (
	"purchasing/internal/adapters/out/postgres"
	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	return commands.NewAddLineItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLineItemCommandHandler() commands.UpdateLineItemCommandHandler {
	return commands.NewUpdateLineItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	return commands.NewRemoveLineItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSumPurchasesBySupplierQueryHandler() queries.SumPurchasesBySupplierQueryHandler {
	return queries.NewSumPurchasesBySupplierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSumPurchasesByDateRangeQueryHandler() queries.SumPurchasesByDateRangeQueryHandler {
	return queries.NewSumPurchasesByDateRangeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateInvoiceNumberExistsQueryHandler() queries.InvoiceNumberExistsQueryHandler {
	return queries.NewInvoiceNumberExistsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCanChangeStatusQueryHandler() queries.CanChangeStatusQueryHandler {
	return queries.NewCanChangeStatusQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
