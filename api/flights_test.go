package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogUseCase is a mock implementation of catalog.CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogUseCase) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewFlightHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/flights", nil)

	flights := []domain.Flight{
		{ID: "F1", FlightNumber: "SU100", DepartureCity: "Moscow", ArrivalCity: "Kazan", TotalSeats: 100, AvailableSeats: 50, PriceCents: 5000},
	}
	mockService.On("ListFlights", c.Request.Context()).Return(flights, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []domain.Flight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "SU100", got[0].FlightNumber)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_listError(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewFlightHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/flights", nil)

	mockService.On("ListFlights", c.Request.Context()).Return([]domain.Flight(nil), errors.New("db down"))

	handler.list(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewFlightHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "F1"}}
	c.Request = httptest.NewRequest("GET", "/api/v1/flights/F1", nil)

	flight := &domain.Flight{ID: "F1", FlightNumber: "SU100", TotalSeats: 100, AvailableSeats: 50, PriceCents: 5000}
	mockService.On("GetFlight", c.Request.Context(), "F1").Return(flight, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_getNotFound(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewFlightHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "F404"}}
	c.Request = httptest.NewRequest("GET", "/api/v1/flights/F404", nil)

	mockService.On("GetFlight", c.Request.Context(), "F404").Return(nil, domain.ErrResourceNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
