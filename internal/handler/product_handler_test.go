package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"digikart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: "P001", Name: "Product 1", Price: 10.00, Category: model.CategoryDesign, CreatedAt: time.Now()},
		{ID: "P002", Name: "Product 2", Price: 20.00, Category: model.CategoryCourse, CreatedAt: time.Now()},
	}

	tests := []struct {
		name           string
		method         string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			mockReturn:     testProducts,
			mockError:      nil,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			mockReturn:     nil,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			mockReturn:     nil,
			mockError:      nil,
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			h := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetAll", mock.Anything).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/products", nil)
			rec := httptest.NewRecorder()

			h.GetAll(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var products []model.Product
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
				assert.Len(t, products, 2)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{
		ID:        "P001",
		Name:      "Product 1",
		Price:     10.00,
		Category:  model.CategoryDesign,
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		method         string
		path           string
		productID      string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			path:           "/api/products/P001",
			productID:      "P001",
			mockReturn:     testProduct,
			mockError:      nil,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Product not found",
			method:         http.MethodGet,
			path:           "/api/products/P999",
			productID:      "P999",
			mockReturn:     nil,
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
			expectService:  true,
		},
		{
			name:           "Missing product ID",
			method:         http.MethodGet,
			path:           "/api/products/",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Nested path rejected",
			method:         http.MethodGet,
			path:           "/api/products/P001/extra",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			path:           "/api/products/P001",
			productID:      "P001",
			mockReturn:     nil,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
			expectService:  true,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodDelete,
			path:           "/api/products/P001",
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			h := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, tt.productID).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			h.GetByID(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var product model.Product
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&product))
				assert.Equal(t, "P001", product.ID)
			} else if tt.expectedCode != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Code)
			}

			mockService.AssertExpectations(t)
		})
	}
}
