package cmd

import (
	"log/slog"

	httpadapter "myfood/internal/adapters/in/http"
	"myfood/internal/adapters/out/postgres"
	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/application/usecases/queries"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/services"
	"myfood/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	publisher  ports.OrderEventPublisher
	locker     ports.ConfirmationLocker
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases. locker may be nil; publisher must not be.
func NewCompositionRoot(
	gormDB *gorm.DB,
	clock kernel.Clock,
	publisher ports.OrderEventPublisher,
	locker ports.ConfirmationLocker,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
		publisher:  publisher,
		locker:     locker,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workflowUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.workflowUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.workflowUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateMarkOrderAsMadeCommandHandler() commands.MarkOrderAsMadeCommandHandler {
	return commands.NewMarkOrderAsMadeCommandHandler(c.orderUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(
		c.workflowUoWFactory(),
		services.NewSlotBooker(),
		c.clock,
		c.locker,
		c.publisher,
	)
}

func (c *CompositionRoot) CreateSeedDemoDataCommandHandler() commands.SeedDemoDataCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedDemoDataCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenOrdersQueryHandler() queries.GetKitchenOrdersQueryHandler {
	return queries.NewGetKitchenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVisibleMenusQueryHandler() queries.GetVisibleMenusQueryHandler {
	return queries.NewGetVisibleMenusQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every HTTP operation to its handler.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()
	markAsMade := c.CreateMarkOrderAsMadeCommandHandler()
	confirmOrder := c.CreateConfirmOrderCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:      &createOrder,
		UpdateOrder:      &updateOrder,
		DeleteOrder:      &deleteOrder,
		MarkOrderAsMade:  &markAsMade,
		ConfirmOrder:     &confirmOrder,
		GetAllOrders:     c.CreateGetAllOrdersQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetKitchenOrders: c.CreateGetKitchenOrdersQueryHandler(),
		GetUserOrders:    c.CreateGetUserOrdersQueryHandler(),
		GetVisibleMenus:  c.CreateGetVisibleMenusQueryHandler(),
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
