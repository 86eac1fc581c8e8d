package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// UnitOfWorkIntegrationTestSuite runs the store against a real PostgreSQL
// server, where row locks are actually taken.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(postgres_adapter.DriverPostgres, dsn, logger.Silent)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, tables, menu_items, staff").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seed() (*table.Table, *order.Order) {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	tb, o := seedOrder(suite.T(), uow)
	suite.Require().NoError(uow.Commit(ctx))
	return tb, o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPing() {
	suite.Require().NoError(postgres_adapter.Ping(suite.T().Context(), suite.db))
}

// TestGetForUpdate_SerialisesWriters holds the order lock in one transaction
// and checks that a second locker only proceeds after the first commits, and
// then sees its writes.
func (suite *UnitOfWorkIntegrationTestSuite) TestGetForUpdate_SerialisesWriters() {
	ctx := suite.T().Context()
	_, o := suite.seed()

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	locked, err := holder.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)

	type result struct {
		o   *order.Order
		err error
	}
	waiter := make(chan result, 1)
	go func() {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			waiter <- result{err: err}
			return
		}
		defer func() { _ = uow.Rollback(ctx) }()
		got, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
		waiter <- result{o: got, err: err}
	}()

	select {
	case <-waiter:
		suite.FailNow("second locker must wait for the first transaction")
	case <-time.After(300 * time.Millisecond):
	}

	_, _, err = locked.MarkItemReady(locked.Items()[0].ID())
	suite.Require().NoError(err)
	suite.Require().NoError(holder.OrderRepository().Update(ctx, locked))
	suite.Require().NoError(holder.Commit(ctx))

	select {
	case res := <-waiter:
		suite.Require().NoError(res.err)
		suite.Equal(1, res.o.Version())
		suite.Equal(order.Ready, res.o.Items()[0].Status())
	case <-time.After(10 * time.Second):
		suite.FailNow("second locker never acquired the lock")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTableRowLock() {
	ctx := suite.T().Context()
	tb, _ := suite.seed()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	locked, err := first.TableRepository().GetForUpdate(ctx, tb.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.Occupy())
	suite.Require().NoError(first.TableRepository().Update(ctx, locked))

	done := make(chan error, 1)
	go func() {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			done <- err
			return
		}
		defer func() { _ = uow.Rollback(ctx) }()
		other, err := uow.TableRepository().GetForUpdate(ctx, tb.ID())
		if err != nil {
			done <- err
			return
		}
		done <- other.Occupy()
	}()

	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(first.Commit(ctx))

	select {
	case err := <-done:
		suite.Require().ErrorIs(err, errs.ErrConflict)
	case <-time.After(10 * time.Second):
		suite.FailNow("second transaction never finished")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStaleVersionIsConcurrentUpdate() {
	ctx := suite.T().Context()
	_, o := suite.seed()
	repo := suite.factory.Create().OrderRepository()

	a, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	b, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Update(ctx, a))
	suite.Require().ErrorIs(repo.Update(ctx, b), errs.ErrConcurrentUpdate)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
