package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerrors "relate/internal/domain/errors"
	mockUsecase "relate/internal/mocks/usecase"
	"relate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSalesHandler_Latest_NoRecordsIsNullBody(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockSalesUsecase(t)
	h := NewSalesHandler(uc, discardLogger())
	e.GET("/api/sales/:businessId/latest", h.Latest)

	businessID := uuid.New()

	uc.On("Latest", mock.Anything, businessID).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/"+businessID.String()+"/latest", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestSalesHandler_Latest_MalformedBusinessID(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockSalesUsecase(t)
	h := NewSalesHandler(uc, discardLogger())
	e.GET("/api/sales/:businessId/latest", h.Latest)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/not-a-uuid/latest", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	uc.AssertNotCalled(t, "Latest", mock.Anything, mock.Anything)
}

func TestSalesHandler_Record_Success(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockSalesUsecase(t)
	h := NewSalesHandler(uc, discardLogger())
	e.POST("/api/sales", h.Record)

	businessID := uuid.New()
	output := &usecase.SalesOutput{
		ID:            1,
		BusinessID:    businessID,
		Date:          time.Now(),
		Revenue:       125000,
		Conversions:   42,
		AvgOrderValue: 2976,
	}

	uc.On("Record", mock.Anything, mock.AnythingOfType("*usecase.RecordSalesInput")).
		Return(output, nil)

	body := `{"businessId":"` + businessID.String() + `","revenue":125000,"conversions":42,"avgOrderValue":2976}`
	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"revenue":125000`)
}

func TestSalesHandler_Record_MissingMetricsRejected(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockSalesUsecase(t)
	h := NewSalesHandler(uc, discardLogger())
	e.POST("/api/sales", h.Record)

	// Omitting the metric fields must be a validation failure, not a
	// zero-valued insert.
	body := `{"businessId":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "Revenue")
	uc.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestSalesHandler_Record_ExplicitZeroMetricsAccepted(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockSalesUsecase(t)
	h := NewSalesHandler(uc, discardLogger())
	e.POST("/api/sales", h.Record)

	businessID := uuid.New()

	uc.On("Record", mock.Anything, mock.AnythingOfType("*usecase.RecordSalesInput")).
		Return(&usecase.SalesOutput{ID: 1, BusinessID: businessID, Date: time.Now()}, nil)

	body := `{"businessId":"` + businessID.String() + `","revenue":0,"conversions":0,"avgOrderValue":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSalesHandler_List_StoreFaultIsOpaque500(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockSalesUsecase(t)
	h := NewSalesHandler(uc, discardLogger())
	e.GET("/api/sales/:businessId", h.List)

	businessID := uuid.New()

	uc.On("ListByBusiness", mock.Anything, businessID).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to list sales records"))

	req := httptest.NewRequest(http.MethodGet, "/api/sales/"+businessID.String(), nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATABASE_ERROR")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
