package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "myfood/internal/adapters/out/postgres"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/domain/model/slot"
	"myfood/internal/core/domain/model/user"
	"myfood/internal/core/domain/services"
	"myfood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(postgres_adapter.Models()...))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, menus, dishes, slots, users RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.SlotRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.MenuRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConfirmWorkflowCommits() {
	ctx := context.Background()
	s := suite.seedSlot(2)
	o := suite.seedOrder()

	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	loadedOrder, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	loadedSlot, err := uow.SlotRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)

	at := time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)
	suite.Require().NoError(services.NewSlotBooker().Book(loadedOrder, loadedSlot, at))
	suite.Require().NoError(uow.SlotRepository().Reserve(ctx, loadedSlot))
	suite.Require().NoError(uow.OrderRepository().Confirm(ctx, loadedOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Len(uow.TrackedAggregates(), 2)

	reader := suite.factory.Create()
	storedSlot, err := reader.SlotRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(1, storedSlot.Actual())

	storedOrder, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(storedOrder.Slot())
	suite.True(s.ID().IsEqual(*storedOrder.Slot()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsReservation() {
	ctx := context.Background()
	s := suite.seedSlot(1)
	o := suite.seedOrder()

	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))

	loadedSlot, err := uow.SlotRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.SlotRepository().Reserve(ctx, loadedSlot))
	suite.Require().NoError(uow.Rollback(ctx))
	suite.Empty(uow.TrackedAggregates())

	reader := suite.factory.Create()
	storedSlot, err := reader.SlotRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(0, storedSlot.Actual())

	storedOrder, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(storedOrder.IsConfirmed())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UncommittedChangesAreIsolated() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	u, err := user.NewUser("Carmen")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, u))

	_, err = suite.factory.Create().UserRepository().Get(ctx, u.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().UserRepository().Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal("Carmen", stored.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	o, err := order.NewOrder(nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.ID().IsEqual(stored.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) seedSlot(limit int) *slot.Slot {
	s, err := slot.NewSlot(limit)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().SlotRepository().Add(context.Background(), s))
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOrder() *order.Order {
	o, err := order.NewOrder(nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

