package cmd

import (
	"foodordering/internal/adapters/out/postgres"
	"foodordering/internal/adapters/out/postgres/customerrepo"
	"foodordering/internal/adapters/out/postgres/restaurantrepo"
	"foodordering/internal/core/application/usecases/commands"
	"foodordering/internal/core/application/usecases/queries"
	"foodordering/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		customerrepo.NewGormCustomerRepository(c.gormDB),
		restaurantrepo.NewGormRestaurantRepository(c.gormDB),
		f,
		c.config.KafkaPaymentRequestTopic,
		c.logger,
	)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.ApprovalUoWFactory = FuncApprovalUoWFactory(func() commands.ApprovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(
		restaurantrepo.NewGormApprovalRestaurantRepository(c.gormDB),
		f,
		c.config.KafkaRestaurantApprovalRespTopic,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.MessagePublisher) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher, c.logger)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncApprovalUoWFactory func() commands.ApprovalUoW

func (f FuncApprovalUoWFactory) Create() commands.ApprovalUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
