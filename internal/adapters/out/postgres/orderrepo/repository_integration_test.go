package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using a PostgreSQL container to verify persistence
// behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_AssignsID() {
	ctx := context.Background()

	newOrder := suite.newOrder("Books", suite.pickupAt(10))

	saved, err := suite.repository.Add(ctx, newOrder)
	suite.Require().NoError(err)

	suite.Positive(saved.ID())
	suite.Equal(order.Withdrawn, saved.Status())
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	startDate := suite.pickupAt(14)
	saved, err := suite.repository.Add(ctx, suite.newOrder("Headphones", startDate))
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, saved.ID())
	suite.Require().NoError(err)

	suite.Equal(saved.ID(), retrieved.ID())
	suite.Equal(int64(5), retrieved.RecipientID())
	suite.Equal(int64(7), retrieved.CourierID())
	suite.Equal(int64(3), retrieved.SignatureID())
	suite.Equal("Headphones", retrieved.Product())
	suite.True(startDate.Equal(retrieved.StartDate()))
	suite.Nil(retrieved.EndDate())
	suite.Nil(retrieved.CanceledAt())
	suite.Equal(order.Withdrawn, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 9999)

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FinishedOrder_PersistsEndDateAndStatus() {
	ctx := context.Background()

	saved, err := suite.repository.Add(ctx, suite.newOrder("Books", suite.pickupAt(9)))
	suite.Require().NoError(err)

	suite.Require().NoError(saved.Finish(suite.pickupAt(16)))
	suite.Require().NoError(suite.repository.Update(ctx, saved))

	retrieved, err := suite.repository.Get(ctx, saved.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Delivered, retrieved.Status())
	suite.Require().NotNil(retrieved.EndDate())
	suite.True(suite.pickupAt(16).Equal(*retrieved.EndDate()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	ghost, err := order.RestoreOrder(
		4242, 5, 7, 3, "Books", suite.pickupAt(10), nil, nil, order.Withdrawn,
	)
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Update(ctx, ghost), errs.ErrNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestHasDuplicate_MatchingOrder_ReturnsTrue() {
	ctx := context.Background()

	_, err := suite.repository.Add(ctx, suite.newOrder("Books", suite.pickupAt(10)))
	suite.Require().NoError(err)

	duplicate, err := suite.repository.HasDuplicate(ctx, 5, 7, "Books")
	suite.Require().NoError(err)
	suite.True(duplicate)

	other, err := suite.repository.HasDuplicate(ctx, 5, 7, "Headphones")
	suite.Require().NoError(err)
	suite.False(other)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountByDay_CountsOnlySameCalendarDay() {
	ctx := context.Background()

	day := suite.pickupAt(10)

	for i := range 3 {
		o, err := order.NewOrder(5, 7, 3, "Product "+string(rune('A'+i)), day.Add(time.Duration(i)*time.Hour))
		suite.Require().NoError(err)
		_, err = suite.repository.Add(ctx, o)
		suite.Require().NoError(err)
	}

	nextDayOrder, err := order.NewOrder(5, 7, 3, "Next day", day.AddDate(0, 0, 1))
	suite.Require().NoError(err)
	_, err = suite.repository.Add(ctx, nextDayOrder)
	suite.Require().NoError(err)

	count, err := suite.repository.CountByDay(ctx, day)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_ExistingOrder_RemovesRow() {
	ctx := context.Background()

	saved, err := suite.repository.Add(ctx, suite.newOrder("Books", suite.pickupAt(10)))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, saved.ID()))
	suite.assertOrderCount(0)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, saved.ID()), errs.ErrNotFound)
}

// newOrder creates an unsaved order addressed to the fixture recipient,
// courier, and signature.
func (suite *OrderRepositoryIntegrationTestSuite) newOrder(product string, startDate time.Time) *order.Order {
	newOrder, err := order.NewOrder(5, 7, 3, product, startDate)
	suite.Require().NoError(err)
	return newOrder
}

// pickupAt returns a fixed date with the given pickup hour in UTC.
func (suite *OrderRepositoryIntegrationTestSuite) pickupAt(hour int) time.Time {
	return time.Date(2025, 3, 10, hour, 0, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
