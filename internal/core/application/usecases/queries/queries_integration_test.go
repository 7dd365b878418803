package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fastfeet/internal/adapters/out/postgres/courierrepo"
	"fastfeet/internal/adapters/out/postgres/filerepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/problemrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite exercises the read-side handlers against a
// PostgreSQL container: filters, joins, pagination, and the open and
// delivered views.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&filerepo.FileDTO{},
		&courierrepo.CourierDTO{},
		&recipientrepo.RecipientDTO{},
		&orderrepo.OrderDTO{},
		&problemrepo.ProblemDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, couriers, recipients, files, orders_problems",
	).Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedCourier inserts a courier row and returns its id.
func (suite *QueriesIntegrationTestSuite) seedCourier(name, email string, avatarID int64) int64 {
	dto := courierrepo.CourierDTO{Name: name, Email: email, AvatarID: avatarID}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

// seedRecipient inserts a recipient row and returns its id.
func (suite *QueriesIntegrationTestSuite) seedRecipient(name string) int64 {
	dto := recipientrepo.RecipientDTO{
		Name:       name,
		Street:     "Baker Street",
		Number:     "221B",
		State:      "London",
		City:       "London",
		PostalCode: "NW1 6XE",
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

// seedOrder inserts an order row and returns its id. A non-nil endDate
// marks it delivered; a non-nil canceledAt marks it canceled.
func (suite *QueriesIntegrationTestSuite) seedOrder(
	recipientID, courierID int64, product string, endDate, canceledAt *time.Time,
) int64 {
	status := "withdrawn"
	if endDate != nil {
		status = "delivered"
	}
	if canceledAt != nil {
		status = "canceled"
	}

	dto := orderrepo.OrderDTO{
		RecipientID: recipientID,
		CourierID:   courierID,
		SignatureID: 1,
		Product:     product,
		StartDate:   time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		EndDate:     endDate,
		CanceledAt:  canceledAt,
		Status:      status,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *QueriesIntegrationTestSuite) seedProblem(orderID int64, description string) {
	dto := problemrepo.ProblemDTO{OrderID: orderID, Description: description}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_ProductFilterIsCaseInsensitive() {
	ctx := context.Background()
	courierID := suite.seedCourier("John Doe", "john@fastfeet.com", 0)
	recipientID := suite.seedRecipient("Jane Doe")

	suite.seedOrder(recipientID, courierID, "MacBook Pro", nil, nil)
	suite.seedOrder(recipientID, courierID, "macbook case", nil, nil)
	suite.seedOrder(recipientID, courierID, "Headphones", nil, nil)

	query, err := queries.NewListOrdersQuery(1, "macbook", false)
	suite.Require().NoError(err)

	rows, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(rows, 2)
	suite.Equal("MacBook Pro", rows[0].Product)
	suite.Equal("macbook case", rows[1].Product)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_OnlyOpenExcludesDeliveredAndCanceled() {
	ctx := context.Background()
	courierID := suite.seedCourier("John Doe", "john@fastfeet.com", 0)
	recipientID := suite.seedRecipient("Jane Doe")

	delivered := time.Date(2025, 3, 11, 15, 0, 0, 0, time.UTC)
	canceled := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	openID := suite.seedOrder(recipientID, courierID, "Books", nil, nil)
	suite.seedOrder(recipientID, courierID, "Headphones", &delivered, nil)
	suite.seedOrder(recipientID, courierID, "Monitor", nil, &canceled)

	query, err := queries.NewListOrdersQuery(1, "", true)
	suite.Require().NoError(err)

	rows, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(rows, 1)
	suite.Equal(openID, rows[0].ID)
	suite.Equal("Books", rows[0].Product)
	suite.Nil(rows[0].EndDate)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_JoinsCourierAndRecipient() {
	ctx := context.Background()
	courierID := suite.seedCourier("John Doe", "john@fastfeet.com", 0)
	recipientID := suite.seedRecipient("Jane Doe")

	suite.seedOrder(recipientID, courierID, "Books", nil, nil)

	query, err := queries.NewListOrdersQuery(1, "", false)
	suite.Require().NoError(err)

	rows, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(rows, 1)
	suite.Equal("John Doe", rows[0].Courier.Name)
	suite.Equal("john@fastfeet.com", rows[0].Courier.Email)
	suite.Equal("Jane Doe", rows[0].Recipient.Name)
	suite.Equal("Baker Street", rows[0].Recipient.Street)
	suite.Equal("NW1 6XE", rows[0].Recipient.PostalCode)
	suite.Equal("withdrawn", rows[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Pagination() {
	ctx := context.Background()
	courierID := suite.seedCourier("John Doe", "john@fastfeet.com", 0)
	recipientID := suite.seedRecipient("Jane Doe")

	for i := range queries.PageSize + 1 {
		suite.seedOrder(recipientID, courierID, fmt.Sprintf("Product %02d", i), nil, nil)
	}

	handler := queries.NewListOrdersQueryHandler(suite.db)

	first, err := queries.NewListOrdersQuery(1, "", false)
	suite.Require().NoError(err)
	page1, err := handler.Handle(ctx, first)
	suite.Require().NoError(err)
	suite.Len(page1, queries.PageSize)

	second, err := queries.NewListOrdersQuery(2, "", false)
	suite.Require().NoError(err)
	page2, err := handler.Handle(ctx, second)
	suite.Require().NoError(err)
	suite.Require().Len(page2, 1)
	suite.Equal("Product 08", page2[0].Product)
}

func (suite *QueriesIntegrationTestSuite) TestListCouriers_NameFilterAndAvatarURL() {
	ctx := context.Background()

	avatar := filerepo.FileDTO{
		Name: "avatar.png",
		Path: "abc-avatar.png",
		URL:  "http://localhost:3333/uploads/abc-avatar.png",
	}
	suite.Require().NoError(suite.db.Create(&avatar).Error)

	suite.seedCourier("John Doe", "john@fastfeet.com", avatar.ID)
	suite.seedCourier("Jane Roe", "jane@fastfeet.com", 0)

	query, err := queries.NewListCouriersQuery(1, "john")
	suite.Require().NoError(err)

	rows, err := queries.NewListCouriersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(rows, 1)
	suite.Equal("John Doe", rows[0].Name)
	suite.Equal(avatar.URL, rows[0].AvatarURL)

	all, err := queries.NewListCouriersQuery(1, "")
	suite.Require().NoError(err)
	rows, err = queries.NewListCouriersQueryHandler(suite.db).Handle(ctx, all)
	suite.Require().NoError(err)

	suite.Require().Len(rows, 2)
	suite.Empty(rows[0].AvatarURL, "courier without avatar resolves to an empty URL")
}

func (suite *QueriesIntegrationTestSuite) TestListOrdersByCourier_SplitsDeliveredAndPending() {
	ctx := context.Background()
	courierID := suite.seedCourier("John Doe", "john@fastfeet.com", 0)
	otherID := suite.seedCourier("Jane Roe", "jane@fastfeet.com", 0)
	recipientID := suite.seedRecipient("Jane Doe")

	delivered := time.Date(2025, 3, 11, 15, 0, 0, 0, time.UTC)
	pendingID := suite.seedOrder(recipientID, courierID, "Books", nil, nil)
	deliveredID := suite.seedOrder(recipientID, courierID, "Headphones", &delivered, nil)
	suite.seedOrder(recipientID, otherID, "Monitor", nil, nil)

	handler := queries.NewListOrdersByCourierQueryHandler(suite.db)

	pending, err := queries.NewListOrdersByCourierQuery(courierID, 1, false)
	suite.Require().NoError(err)
	rows, err := handler.Handle(ctx, pending)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(pendingID, rows[0].ID)
	suite.Nil(rows[0].EndDate)

	deliveredQuery, err := queries.NewListOrdersByCourierQuery(courierID, 1, true)
	suite.Require().NoError(err)
	rows, err = handler.Handle(ctx, deliveredQuery)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(deliveredID, rows[0].ID)
	suite.Require().NotNil(rows[0].EndDate)
}

func (suite *QueriesIntegrationTestSuite) TestListOrdersByCourier_UnknownCourier_ReturnsNotFoundError() {
	ctx := context.Background()

	query, err := queries.NewListOrdersByCourierQuery(9999, 1, false)
	suite.Require().NoError(err)

	_, err = queries.NewListOrdersByCourierQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().ErrorIs(err, errs.ErrNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListProblems_ExcludesCanceledParents() {
	ctx := context.Background()
	courierID := suite.seedCourier("John Doe", "john@fastfeet.com", 0)
	recipientID := suite.seedRecipient("Jane Doe")

	canceled := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	openID := suite.seedOrder(recipientID, courierID, "Books", nil, nil)
	canceledID := suite.seedOrder(recipientID, courierID, "Monitor", nil, &canceled)

	suite.seedProblem(openID, "Recipient absent")
	suite.seedProblem(canceledID, "Package damaged")

	query, err := queries.NewListProblemsQuery(0, 1)
	suite.Require().NoError(err)

	rows, err := queries.NewListProblemsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(rows, 1)
	suite.Equal(openID, rows[0].OrderID)
	suite.Equal("Books", rows[0].Product)
	suite.Equal("Recipient absent", rows[0].Description)
}

func (suite *QueriesIntegrationTestSuite) TestListProblems_FiltersByOrder() {
	ctx := context.Background()
	courierID := suite.seedCourier("John Doe", "john@fastfeet.com", 0)
	recipientID := suite.seedRecipient("Jane Doe")

	firstID := suite.seedOrder(recipientID, courierID, "Books", nil, nil)
	secondID := suite.seedOrder(recipientID, courierID, "Headphones", nil, nil)

	suite.seedProblem(firstID, "Recipient absent")
	suite.seedProblem(secondID, "Wrong address")

	query, err := queries.NewListProblemsQuery(secondID, 1)
	suite.Require().NoError(err)

	rows, err := queries.NewListProblemsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(rows, 1)
	suite.Equal(secondID, rows[0].OrderID)
	suite.Equal("Wrong address", rows[0].Description)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
