package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "purchasing/internal/adapters/out/postgres"
	"purchasing/internal/adapters/out/postgres/orderrepo"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the
// GORM-based Unit of Work against a real PostgreSQL database.
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
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_line_items").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newTestOrder(invoiceNumber string) *order.Order {
	tax, err := decimal.NewFromString("10.00")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		42, invoiceNumber,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), nil,
		tax, "",
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	stored, err := uow.OrderRepository().Add(ctx, suite.newTestOrder("FAC-2024-001"))
	suite.Require().NoError(err)
	suite.Positive(stored.ID())

	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	_, err := uow.OrderRepository().Add(ctx, suite.newTestOrder("FAC-2024-001"))
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Zero(suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	_, err := uow.OrderRepository().Add(ctx, suite.newTestOrder("FAC-2024-001"))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepository_WithoutTransaction_ExecutesDirectly() {
	ctx := context.Background()
	uow := suite.factory.Create()

	stored, err := uow.OrderRepository().Add(ctx, suite.newTestOrder("FAC-2024-001"))
	suite.Require().NoError(err)
	suite.Positive(stored.ID())
	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterFailedOperation() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	_, err := uow.OrderRepository().Get(ctx, 9999)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetForUpdate_SerializesConcurrentTransactions() {
	ctx := context.Background()

	stored, err := suite.factory.Create().OrderRepository().Add(ctx, suite.newTestOrder("FAC-2024-001"))
	suite.Require().NoError(err)

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	_, err = first.OrderRepository().GetForUpdate(ctx, stored.ID())
	suite.Require().NoError(err)

	// A second transaction loading the same order for update blocks on the
	// row lock until the first transaction finishes.
	acquired := make(chan error, 1)
	go func() {
		second := suite.factory.Create()
		if err := second.Begin(ctx); err != nil {
			acquired <- err
			return
		}
		defer func() { _ = second.Rollback(ctx) }()

		_, err := second.OrderRepository().GetForUpdate(ctx, stored.ID())
		acquired <- err
	}()

	select {
	case <-acquired:
		suite.Fail("second transaction acquired the row lock while the first still held it")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(first.Rollback(ctx))

	select {
	case err := <-acquired:
		suite.Require().NoError(err)
	case <-time.After(5 * time.Second):
		suite.Fail("second transaction never acquired the row lock")
	}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
