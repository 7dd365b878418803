package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/core/domain/model/file"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/problem"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) HasDuplicate(
	ctx context.Context, recipientID, courierID int64, product string,
) (bool, error) {
	args := m.Called(ctx, recipientID, courierID, product)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) CountByDay(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) (*courier.Courier, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id int64) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) ExistsWithEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourierRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Add(ctx context.Context, r *recipient.Recipient) (*recipient.Recipient, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

func (m *MockRecipientRepository) Get(ctx context.Context, id int64) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

func (m *MockRecipientRepository) Exists(
	ctx context.Context, name string, address recipient.Address,
) (bool, error) {
	args := m.Called(ctx, name, address)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ExistsWithEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockFileRepository struct{ mock.Mock }

func (m *MockFileRepository) Add(ctx context.Context, f *file.File) (*file.File, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*file.File), args.Error(1)
}

func (m *MockFileRepository) Get(ctx context.Context, id int64) (*file.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*file.File), args.Error(1)
}

type MockProblemRepository struct{ mock.Mock }

func (m *MockProblemRepository) Add(ctx context.Context, p *problem.Problem) (*problem.Problem, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*problem.Problem), args.Error(1)
}

func (m *MockProblemRepository) Exists(ctx context.Context, orderID int64, description string) (bool, error) {
	args := m.Called(ctx, orderID, description)
	return args.Bool(0), args.Error(1)
}

type MockTaskQueue struct{ mock.Mock }

func (m *MockTaskQueue) Enqueue(ctx context.Context, key string, payload any) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

// MockOrderUoW satisfies commands.OrderUoW with the full repository set
// the order workflow resolves.
type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockOrderUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

func (m *MockOrderUoW) FileRepository() ports.FileRepository {
	args := m.Called()
	return args.Get(0).(ports.FileRepository)
}

func (m *MockOrderUoW) Tasks() ports.TaskQueue {
	args := m.Called()
	return args.Get(0).(ports.TaskQueue)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCourierUoW struct{ mock.Mock }

func (m *MockCourierUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCourierUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCourierUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCourierUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockCourierUoW) FileRepository() ports.FileRepository {
	args := m.Called()
	return args.Get(0).(ports.FileRepository)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockRecipientUoW struct{ mock.Mock }

func (m *MockRecipientUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

func (m *MockRecipientUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockRecipientUoW) FileRepository() ports.FileRepository {
	args := m.Called()
	return args.Get(0).(ports.FileRepository)
}

type MockRecipientUoWFactory struct{ mock.Mock }

func (m *MockRecipientUoWFactory) Create() commands.RecipientUoW {
	args := m.Called()
	return args.Get(0).(commands.RecipientUoW)
}

type MockProblemUoW struct{ mock.Mock }

func (m *MockProblemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) ProblemRepository() ports.ProblemRepository {
	args := m.Called()
	return args.Get(0).(ports.ProblemRepository)
}

func (m *MockProblemUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockProblemUoWFactory struct{ mock.Mock }

func (m *MockProblemUoWFactory) Create() commands.ProblemUoW {
	args := m.Called()
	return args.Get(0).(commands.ProblemUoW)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

// Test fixtures shared across the workflow handler tests.

func testCourier() *courier.Courier {
	c, err := courier.RestoreCourier(7, "John Doe", "john@fastfeet.com", 3)
	if err != nil {
		panic(err)
	}
	return c
}

func testRecipient() *recipient.Recipient {
	addr, err := recipient.NewAddress("Baker Street", "221B", "", "London", "London", "NW1 6XE")
	if err != nil {
		panic(err)
	}
	r, restoreErr := recipient.RestoreRecipient(5, "Jane Doe", 0, addr)
	if restoreErr != nil {
		panic(restoreErr)
	}
	return r
}

func testFile() *file.File {
	f, err := file.RestoreFile(3, "signature.png", "abc-signature.png", "http://localhost:3333/uploads/abc-signature.png")
	if err != nil {
		panic(err)
	}
	return f
}

func testWithdrawnOrder(id int64, startDate time.Time) *order.Order {
	o, err := order.RestoreOrder(id, 5, 7, 3, "Books", startDate, nil, nil, order.Withdrawn)
	if err != nil {
		panic(err)
	}
	return o
}
