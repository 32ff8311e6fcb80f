package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"digikart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
	committed  bool
	rolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	m.committed = true
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	m.rolledBack = true
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

func TestOrderService_CreateOrder_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	note := "gift wrap please"
	req := &model.OrderRequest{
		CustomerEmail: "jane@example.com",
		CustomerNote:  &note,
		Items: []model.OrderItem{
			{ProductID: "P001", ProductName: "Product 1", Price: 10.00, Quantity: 2},
			{ProductID: "P002", ProductName: "Product 2", Price: 5.50, Quantity: 1,
				SelectedOptions: model.Options{"style": "Oil Painting"}},
		},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	// Set up expectations
	mockProductRepo.On("ValidateProductsExist", ctx, []string{"P001", "P002"}).Return(nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	// Execute
	order, err := service.CreateOrder(ctx, req)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, "jane@example.com", order.CustomerEmail)
	require.NotNil(t, order.CustomerNote)
	assert.Equal(t, note, *order.CustomerNote)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)

	// Total is computed server-side from unit price times quantity
	assert.InDelta(t, 25.50, order.TotalAmount, 1e-9)

	for _, item := range order.Items {
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.Equal(t, order.ID, item.OrderID)
	}

	mockProductRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestOrderService_CreateOrder_TrimsEmail(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.OrderRequest{
		CustomerEmail: "  jane@example.com  ",
		Items: []model.OrderItem{
			{ProductID: "P001", ProductName: "Product 1", Price: 10.00, Quantity: 1},
		},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("ValidateProductsExist", ctx, []string{"P001"}).Return(nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	order, err := service.CreateOrder(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", order.CustomerEmail)
}

func TestOrderService_CreateOrder_ProductNotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.OrderRequest{
		CustomerEmail: "jane@example.com",
		Items: []model.OrderItem{
			{ProductID: "P999", ProductName: "Ghost", Price: 1.00, Quantity: 1},
		},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("ValidateProductsExist", ctx, []string{"P999"}).
		Return(model.ErrProductNotFound)

	order, err := service.CreateOrder(ctx, req)

	require.Error(t, err)
	assert.Equal(t, model.ErrProductNotFound, err)
	assert.Nil(t, order)

	mockProductRepo.AssertExpectations(t)
	mockOrderRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_CreateOrder_ValidationErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	tests := []struct {
		name        string
		req         *model.OrderRequest
		expectedErr error
	}{
		{
			name:        "Nil request",
			req:         nil,
			expectedErr: nil, // Will error with "order request is nil"
		},
		{
			name: "Missing email",
			req: &model.OrderRequest{
				CustomerEmail: "   ",
				Items: []model.OrderItem{
					{ProductID: "P001", Quantity: 1},
				},
			},
			expectedErr: model.ErrEmailRequired,
		},
		{
			name: "Empty items",
			req: &model.OrderRequest{
				CustomerEmail: "jane@example.com",
				Items:         []model.OrderItem{},
			},
			expectedErr: model.ErrEmptyOrder,
		},
		{
			name: "Empty product ID",
			req: &model.OrderRequest{
				CustomerEmail: "jane@example.com",
				Items: []model.OrderItem{
					{ProductID: "", Quantity: 1},
				},
			},
			expectedErr: nil, // Will error with "product ID is required"
		},
		{
			name: "Zero quantity",
			req: &model.OrderRequest{
				CustomerEmail: "jane@example.com",
				Items: []model.OrderItem{
					{ProductID: "P001", Quantity: 0},
				},
			},
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name: "Negative quantity",
			req: &model.OrderRequest{
				CustomerEmail: "jane@example.com",
				Items: []model.OrderItem{
					{ProductID: "P001", Quantity: -5},
				},
			},
			expectedErr: model.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := service.CreateOrder(ctx, tt.req)

			require.Error(t, err)
			assert.Nil(t, order)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
			}

			mockProductRepo.AssertNotCalled(t, "ValidateProductsExist")
			mockOrderRepo.AssertNotCalled(t, "BeginTx")
		})
	}
}

func TestOrderService_CreateOrder_TransactionRollback(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.OrderRequest{
		CustomerEmail: "jane@example.com",
		Items: []model.OrderItem{
			{ProductID: "P001", ProductName: "Product 1", Price: 10.00, Quantity: 1},
		},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("ValidateProductsExist", ctx, []string{"P001"}).Return(nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).
		Return(errors.New("database error"))
	mockTx.On("Rollback", ctx).Return(nil)

	order, err := service.CreateOrder(ctx, req)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)

	mockProductRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestOrderService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	newest := model.Order{
		ID:            uuid.New(),
		CustomerEmail: "b@example.com",
		TotalAmount:   45.00,
		Status:        model.OrderStatusPending,
		CreatedAt:     time.Now(),
	}
	oldest := model.Order{
		ID:            uuid.New(),
		CustomerEmail: "a@example.com",
		TotalAmount:   25.50,
		Status:        model.OrderStatusPending,
		CreatedAt:     time.Now().Add(-time.Hour),
	}

	tests := []struct {
		name        string
		mockReturn  []model.Order
		mockError   error
		expectError bool
	}{
		{
			name:        "Success newest first",
			mockReturn:  []model.Order{newest, oldest},
			mockError:   nil,
			expectError: false,
		},
		{
			name:        "Repository error",
			mockReturn:  nil,
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockProductRepo := new(MockProductRepository)

			service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

			mockOrderRepo.On("GetAll", ctx).Return(tt.mockReturn, tt.mockError)

			orders, err := service.List(ctx)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, orders)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, orders)
			}

			mockOrderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()
	order := &model.Order{
		ID:            orderID,
		CustomerEmail: "jane@example.com",
		TotalAmount:   25.50,
		Status:        model.OrderStatusPending,
		CreatedAt:     time.Now(),
		Items: []model.OrderItem{
			{ID: uuid.New(), OrderID: orderID, ProductID: "P001", Quantity: 2},
		},
	}

	tests := []struct {
		name        string
		orderID     uuid.UUID
		mockOrder   *model.Order
		mockError   error
		expectNil   bool
		expectError bool
	}{
		{
			name:        "Success",
			orderID:     orderID,
			mockOrder:   order,
			mockError:   nil,
			expectNil:   false,
			expectError: false,
		},
		{
			name:        "Order not found",
			orderID:     uuid.New(),
			mockOrder:   nil,
			mockError:   nil,
			expectNil:   true,
			expectError: false,
		},
		{
			name:        "Repository error",
			orderID:     orderID,
			mockOrder:   nil,
			mockError:   errors.New("database error"),
			expectNil:   false,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockProductRepo := new(MockProductRepository)

			service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

			mockOrderRepo.On("GetByID", ctx, tt.orderID).Return(tt.mockOrder, tt.mockError)

			got, err := service.GetByID(ctx, tt.orderID)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			if tt.expectNil {
				assert.Nil(t, got)
			} else if !tt.expectError {
				require.NotNil(t, got)
				assert.Equal(t, tt.orderID, got.ID)
				assert.Len(t, got.Items, 1)
			}

			mockOrderRepo.AssertExpectations(t)
		})
	}
}
