package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/rep"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRepRepository struct{ mock.Mock }

func (m *MockRepRepository) Add(ctx context.Context, r *rep.Representative) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepRepository) Update(ctx context.Context, r *rep.Representative) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepRepository) Get(ctx context.Context, id kernel.UUID) (*rep.Representative, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rep.Representative), args.Error(1)
}

func (m *MockRepRepository) GetAllActiveOrdered(ctx context.Context) ([]*rep.Representative, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rep.Representative), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustStock(
	ctx context.Context,
	id kernel.UUID,
	delta int,
	allowNegative bool,
) error {
	args := m.Called(ctx, id, delta, allowNegative)
	return args.Error(0)
}

func (m *MockProductRepository) GetAllOversold(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockCursorRepository struct{ mock.Mock }

func (m *MockCursorRepository) Get(ctx context.Context) (*rep.RotationCursor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rep.RotationCursor), args.Error(1)
}

func (m *MockCursorRepository) Update(ctx context.Context, c *rep.RotationCursor) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyRep(ctx context.Context, repID kernel.UUID, message string) {
	m.Called(ctx, repID, message)
}

func (m *MockNotifier) NotifyAdmins(ctx context.Context, message string) {
	m.Called(ctx, message)
}

type MockOrderCreationUoW struct{ mock.Mock }

func (m *MockOrderCreationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderCreationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderCreationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderCreationUoW) RepRepository() ports.RepRepository {
	args := m.Called()
	return args.Get(0).(ports.RepRepository)
}

func (m *MockOrderCreationUoW) RotationCursorRepository() ports.RotationCursorRepository {
	args := m.Called()
	return args.Get(0).(ports.RotationCursorRepository)
}

func (m *MockOrderCreationUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderCreationUoWFactory struct{ mock.Mock }

func (m *MockOrderCreationUoWFactory) Create() commands.OrderCreationUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCreationUoW)
}

type MockTransitionUoW struct{ mock.Mock }

func (m *MockTransitionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockTransitionUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockRotationUoW struct{ mock.Mock }

func (m *MockRotationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRotationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRotationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRotationUoW) RepRepository() ports.RepRepository {
	args := m.Called()
	return args.Get(0).(ports.RepRepository)
}

func (m *MockRotationUoW) RotationCursorRepository() ports.RotationCursorRepository {
	args := m.Called()
	return args.Get(0).(ports.RotationCursorRepository)
}

type MockRotationUoWFactory struct{ mock.Mock }

func (m *MockRotationUoWFactory) Create() commands.RotationUoW {
	args := m.Called()
	return args.Get(0).(commands.RotationUoW)
}

type MockRepUoW struct{ mock.Mock }

func (m *MockRepUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepUoW) RepRepository() ports.RepRepository {
	args := m.Called()
	return args.Get(0).(ports.RepRepository)
}

type MockRepUoWFactory struct{ mock.Mock }

func (m *MockRepUoWFactory) Create() commands.RepUoW {
	args := m.Called()
	return args.Get(0).(commands.RepUoW)
}
