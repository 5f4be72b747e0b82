package cmd

import (
	"log/slog"
	"os"

	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	ledger     services.InventoryLedger
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewLogNotifier(logger),
		ledger:     services.NewInventoryLedger(configs.AllowOversell),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCreationUoWFactory = FuncOrderCreationUoWFactory(func() commands.OrderCreationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.ledger, c.notifier)
}

func (c *CompositionRoot) CreateAddRepresentativeCommandHandler() commands.AddRepresentativeCommandHandler {
	var f commands.RepUoWFactory = FuncRepUoWFactory(func() commands.RepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddRepresentativeCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRepExclusionCommandHandler() commands.SetRepExclusionCommandHandler {
	var f commands.RepUoWFactory = FuncRepUoWFactory(func() commands.RepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRepExclusionCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRepActivationCommandHandler() commands.SetRepActivationCommandHandler {
	var f commands.RepUoWFactory = FuncRepUoWFactory(func() commands.RepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRepActivationCommandHandler(f)
}

func (c *CompositionRoot) CreateSkipRotationCommandHandler() commands.SkipRotationCommandHandler {
	var f commands.RotationUoWFactory = FuncRotationUoWFactory(func() commands.RotationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSkipRotationCommandHandler(f)
}

func (c *CompositionRoot) CreateResetRotationCommandHandler() commands.ResetRotationCommandHandler {
	var f commands.RotationUoWFactory = FuncRotationUoWFactory(func() commands.RotationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetRotationCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRotationStateQueryHandler() queries.GetRotationStateQueryHandler {
	return queries.NewGetRotationStateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory.Create().ProductRepository(), c.notifier, c.logger)
}

type FuncOrderCreationUoWFactory func() commands.OrderCreationUoW

func (f FuncOrderCreationUoWFactory) Create() commands.OrderCreationUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncRepUoWFactory func() commands.RepUoW

func (f FuncRepUoWFactory) Create() commands.RepUoW {
	return f()
}

type FuncRotationUoWFactory func() commands.RotationUoW

func (f FuncRotationUoWFactory) Create() commands.RotationUoW {
	return f()
}
