package cmd

import (
	"context"
	"errors"
	"fmt"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/fanout"
	"restaurant/internal/adapters/out/kafka"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/rabbitmq"
	redisbridge "restaurant/internal/adapters/out/redis"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"
	"restaurant/internal/notifier"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     logrus.FieldLogger

	hub    *notifier.Notifier
	relays []fanout.Relay
	// closers run in reverse order on Close.
	closers []func() error
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger logrus.FieldLogger) *CompositionRoot {
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		hub:        notifier.New(notifier.DefaultBufferSize, logger),
	}
}

// ConnectRelays opens the outbound event relays enabled in the config. The
// Redis bridge also starts forwarding events from other instances to the
// local hub.
func (c *CompositionRoot) ConnectRelays(ctx context.Context) error {
	if len(c.cfg.KafkaBrokers) > 0 {
		p := kafka.NewPublisher(c.cfg.KafkaBrokers, c.cfg.KafkaTopic)
		c.relays = append(c.relays, p)
		c.closers = append(c.closers, p.Close)
		c.logger.WithField("topic", c.cfg.KafkaTopic).Info("kafka relay enabled")
	}

	if c.cfg.RabbitMQURL != "" {
		p, err := rabbitmq.Dial(c.cfg.RabbitMQURL, c.cfg.RabbitMQExchange)
		if err != nil {
			return err
		}
		c.relays = append(c.relays, p)
		c.closers = append(c.closers, p.Close)
		c.logger.Info("rabbitmq relay enabled")
	}

	if c.cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     c.cfg.RedisAddr,
			Password: c.cfg.RedisPassword,
		})
		c.closers = append(c.closers, client.Close)

		bridge := redisbridge.NewBridge(client, c.cfg.RedisChannel, uuid.NewString(), c.hub, c.logger)
		if err := bridge.Start(ctx); err != nil {
			return fmt.Errorf("start redis bridge: %w", err)
		}
		c.relays = append(c.relays, bridge)
		c.closers = append(c.closers, bridge.Close)
	}

	return nil
}

// Close releases every relay connection.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) Hub() *notifier.Notifier {
	return c.hub
}

func (c *CompositionRoot) Ping(ctx context.Context) error {
	return postgres.Ping(ctx, c.gormDB)
}

func (c *CompositionRoot) CreateEventPublisher() *fanout.Publisher {
	return fanout.NewPublisher(c.hub, c.logger, c.relays...)
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoW() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateMarkItemReadyCommandHandler() commands.MarkItemReadyCommandHandler {
	return commands.NewMarkItemReadyCommandHandler(c.uow(), c.CreateEventPublisher())
}

func (c *CompositionRoot) CreateStartItemPreparationCommandHandler() commands.StartItemPreparationCommandHandler {
	return commands.NewStartItemPreparationCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateMarkOrderServedCommandHandler() commands.MarkOrderServedCommandHandler {
	return commands.NewMarkOrderServedCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	return commands.NewCloseOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTableCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoW())
}

func (c *CompositionRoot) CreateSetMenuItemAvailabilityCommandHandler() commands.SetMenuItemAvailabilityCommandHandler {
	return commands.NewSetMenuItemAvailabilityCommandHandler(c.menuUoW())
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() commands.CreateStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingTasksQueryHandler() queries.GetPendingTasksQueryHandler {
	return queries.NewGetPendingTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTablesQueryHandler() queries.ListTablesQueryHandler {
	return queries.NewListTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStaffQueryHandler() queries.ListStaffQueryHandler {
	return queries.NewListStaffQueryHandler(c.gormDB)
}

// CreateHTTPHandlers wires every use case the API exposes. Relays must be
// connected first so the event publisher sees them.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		MarkItemReady:        c.CreateMarkItemReadyCommandHandler(),
		StartItemPreparation: c.CreateStartItemPreparationCommandHandler(),
		MarkOrderServed:      c.CreateMarkOrderServedCommandHandler(),
		CloseOrder:           c.CreateCloseOrderCommandHandler(),
		CreateTable:          c.CreateCreateTableCommandHandler(),
		CreateMenuItem:       c.CreateCreateMenuItemCommandHandler(),
		SetAvailability:      c.CreateSetMenuItemAvailabilityCommandHandler(),
		CreateStaff:          c.CreateCreateStaffCommandHandler(),

		GetOrder:      c.CreateGetOrderQueryHandler(),
		GetTasks:      c.CreateGetPendingTasksQueryHandler(),
		ListTables:    c.CreateListTablesQueryHandler(),
		ListMenuItems: c.CreateListMenuItemsQueryHandler(),
		ListStaff:     c.CreateListStaffQueryHandler(),
	}
}

func (c *CompositionRoot) CreateServer(version string) *httpin.Server {
	return httpin.NewServer(c.CreateHTTPHandlers(), c.hub, c.Ping, version, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.cfg.Schedules(), c.hub, c.CreateGetPendingTasksQueryHandler(), c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
