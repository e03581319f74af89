package handler

import (
	"context"
	"net/http"
	"testing"

	"inventory-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSodaService is a mock implementation of the SodaService interface
type MockSodaService struct {
	mock.Mock
}

func (m *MockSodaService) List(ctx context.Context) ([]models.Soda, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Soda), args.Error(1)
}

func (m *MockSodaService) Get(ctx context.Context, id int64) (*models.Soda, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Soda), args.Error(1)
}

func (m *MockSodaService) Create(ctx context.Context, in models.SodaInput) (*models.Soda, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(*models.Soda), args.Error(1)
}

func (m *MockSodaService) Update(ctx context.Context, id int64, in models.SodaInput) (*models.Soda, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(*models.Soda), args.Error(1)
}

func (m *MockSodaService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSodaService) Retailers(ctx context.Context, id int64) ([]models.Retailer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]models.Retailer), args.Error(1)
}

func setupSodaRouter(svc SodaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewSodaHandler(svc).Register(r)
	return r
}

func TestSodaHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		input          *models.SodaInput
		mockSoda       *models.Soda
		mockError      error
		expectedStatus int
		expectedBody   any
	}{
		{
			name:           "created",
			body:           map[string]any{"name": "Coke Zero", "abbreviation": "cz", "low_calorie": true},
			input:          &models.SodaInput{Name: "Coke Zero", Abbreviation: "cz", LowCalorie: true},
			mockSoda:       &models.Soda{ID: 3, Name: "Coke Zero", Abbreviation: "CZ", LowCalorie: true},
			expectedStatus: http.StatusCreated,
			expectedBody:   map[string]any{"id": float64(3), "name": "Coke Zero", "abbreviation": "CZ", "low_calorie": true},
		},
		{
			name:           "abbreviation too long",
			body:           map[string]any{"name": "Coca-Cola Classic", "abbreviation": "CCC"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           map[string]any{"abbreviation": "CC"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate abbreviation",
			body:           map[string]any{"name": "Cherry Coke", "abbreviation": "CC"},
			input:          &models.SodaInput{Name: "Cherry Coke", Abbreviation: "CC"},
			mockError:      &models.ConflictError{Entity: "soda", Field: "abbreviation"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"error": "soda with this abbreviation already exists"},
		},
		{
			name:           "rejected by service validation",
			body:           map[string]any{"name": "Cherry Coke", "abbreviation": " "},
			input:          &models.SodaInput{Name: "Cherry Coke", Abbreviation: " "},
			mockError:      models.ErrInvalidInput,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"error": "invalid input"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockSodaService)
			router := setupSodaRouter(mockSvc)

			if tt.input != nil {
				mockSvc.On("Create", mock.Anything, *tt.input).Return(tt.mockSoda, tt.mockError)
			}

			// Execute
			w := perform(router, http.MethodPost, "/sodas", tt.body)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			body := decodeBody(t, w)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, body)
			} else {
				assert.Contains(t, body, "error")
			}

			if tt.input != nil {
				mockSvc.AssertExpectations(t)
			} else {
				mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSodaHandler_List(t *testing.T) {
	mockSvc := new(MockSodaService)
	router := setupSodaRouter(mockSvc)

	mockSvc.On("List", mock.Anything).Return([]models.Soda{
		{ID: 1, Name: "Coca-Cola Classic", Abbreviation: "CC"},
		{ID: 2, Name: "Coke Zero", Abbreviation: "CZ", LowCalorie: true},
	}, nil)

	w := perform(router, http.MethodGet, "/sodas", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w), 2)
	mockSvc.AssertExpectations(t)
}

func TestSodaHandler_GetUpdateDelete(t *testing.T) {
	mockSvc := new(MockSodaService)
	router := setupSodaRouter(mockSvc)

	mockSvc.On("Get", mock.Anything, int64(1)).Return(&models.Soda{ID: 1, Name: "Coca-Cola Classic", Abbreviation: "CC"}, nil)
	mockSvc.On("Get", mock.Anything, int64(9)).Return((*models.Soda)(nil), models.ErrNotFound)
	mockSvc.On("Update", mock.Anything, int64(1), models.SodaInput{Name: "Coca-Cola", Abbreviation: "CC"}).
		Return(&models.Soda{ID: 1, Name: "Coca-Cola", Abbreviation: "CC"}, nil)
	mockSvc.On("Delete", mock.Anything, int64(1)).Return(nil)
	mockSvc.On("Delete", mock.Anything, int64(9)).Return(models.ErrNotFound)

	w := perform(router, http.MethodGet, "/sodas/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodGet, "/sodas/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"error": "not found"}, decodeBody(t, w))

	w = perform(router, http.MethodPut, "/sodas/1", map[string]any{"name": "Coca-Cola", "abbreviation": "CC"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Coca-Cola", decodeBody(t, w).(map[string]any)["name"])

	w = perform(router, http.MethodDelete, "/sodas/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(router, http.MethodDelete, "/sodas/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockSvc.AssertExpectations(t)
}

func TestSodaHandler_Retailers(t *testing.T) {
	mockSvc := new(MockSodaService)
	router := setupSodaRouter(mockSvc)

	mockSvc.On("Retailers", mock.Anything, int64(2)).Return([]models.Retailer{{ID: 1}, {ID: 4}}, nil)
	mockSvc.On("Retailers", mock.Anything, int64(9)).Return([]models.Retailer(nil), models.ErrNotFound)

	w := perform(router, http.MethodGet, "/sodas/2/retailers", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w), 2)

	w = perform(router, http.MethodGet, "/sodas/9/retailers", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockSvc.AssertExpectations(t)
}
