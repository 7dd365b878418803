package taskrepo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fastfeet/internal/adapters/out/postgres/taskrepo"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TaskQueueIntegrationTestSuite provides integration tests for the task
// queue and store using a PostgreSQL container, covering FIFO claim order
// and at-most-once removal.
type TaskQueueIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	queue     *taskrepo.GormTaskQueue
	store     *taskrepo.GormTaskStore
}

func (suite *TaskQueueIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&taskrepo.TaskDTO{}))
}

func (suite *TaskQueueIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notification_tasks").Error)
	suite.queue = taskrepo.NewGormTaskQueue(suite.db)
	suite.store = taskrepo.NewGormTaskStore(suite.db)
}

func (suite *TaskQueueIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TaskQueueIntegrationTestSuite) TestClaimNext_EmptyQueue_ReturnsNil() {
	task, err := suite.store.ClaimNext(context.Background())

	suite.Require().NoError(err)
	suite.Nil(task)
}

func (suite *TaskQueueIntegrationTestSuite) TestClaimNext_ClaimsInEnqueueOrder() {
	ctx := context.Background()

	type payload struct {
		Product string `json:"product"`
	}

	suite.Require().NoError(suite.queue.Enqueue(ctx, "mail.created", payload{Product: "Books"}))
	suite.Require().NoError(suite.queue.Enqueue(ctx, "mail.finished", payload{Product: "Headphones"}))

	first, err := suite.store.ClaimNext(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(first)
	suite.Equal("mail.created", first.Key)

	var decoded payload
	suite.Require().NoError(json.Unmarshal(first.Payload, &decoded))
	suite.Equal("Books", decoded.Product)

	second, err := suite.store.ClaimNext(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(second)
	suite.Equal("mail.finished", second.Key)
}

func (suite *TaskQueueIntegrationTestSuite) TestClaimNext_RemovesClaimedTask() {
	ctx := context.Background()

	suite.Require().NoError(suite.queue.Enqueue(ctx, "mail.created", map[string]string{"k": "v"}))

	task, err := suite.store.ClaimNext(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(task)

	var count int64
	suite.Require().NoError(suite.db.Model(&taskrepo.TaskDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)

	again, err := suite.store.ClaimNext(ctx)
	suite.Require().NoError(err)
	suite.Nil(again)
}

func (suite *TaskQueueIntegrationTestSuite) TestEnqueue_WithinTransaction_RollbackDiscardsTask() {
	ctx := context.Background()

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)

	txQueue := taskrepo.NewGormTaskQueue(tx)
	suite.Require().NoError(txQueue.Enqueue(ctx, "mail.created", map[string]string{"k": "v"}))
	suite.Require().NoError(tx.Rollback().Error)

	task, err := suite.store.ClaimNext(ctx)
	suite.Require().NoError(err)
	suite.Nil(task)
}

func TestTaskQueueIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TaskQueueIntegrationTestSuite))
}
