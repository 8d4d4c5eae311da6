package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mockUsecase "relate/internal/mocks/usecase"
	"relate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFeedbackHandler_Submit_Success(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockFeedbackUsecase(t)
	h := NewFeedbackHandler(uc, discardLogger())
	e.POST("/api/feedback", h.Submit)

	userID := uuid.New()
	output := &usecase.FeedbackOutput{
		ID:        1,
		UserID:    userID,
		Subject:   "Late delivery",
		Type:      "complaint",
		Message:   "Order arrived two days late",
		Email:     "alice@example.com",
		Status:    "pending",
		CreatedAt: time.Now(),
	}

	uc.On("Submit", mock.Anything, mock.AnythingOfType("*usecase.SubmitFeedbackInput")).
		Return(output, nil)

	body := `{"userId":"` + userID.String() + `","subject":"Late delivery","type":"complaint","message":"Order arrived two days late","email":"alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestFeedbackHandler_Submit_RejectsUnknownType(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockFeedbackUsecase(t)
	h := NewFeedbackHandler(uc, discardLogger())
	e.POST("/api/feedback", h.Submit)

	body := `{"userId":"` + uuid.New().String() + `","subject":"s","type":"praise","message":"m","email":"alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestFeedbackHandler_History_Success(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockFeedbackUsecase(t)
	h := NewFeedbackHandler(uc, discardLogger())
	e.GET("/api/feedback/:userId", h.History)

	userID := uuid.New()
	items := []*usecase.FeedbackOutput{
		{ID: 2, UserID: userID, Subject: "Second", Type: "suggestion", Status: "pending"},
		{ID: 1, UserID: userID, Subject: "First", Type: "complaint", Status: "pending"},
	}

	uc.On("History", mock.Anything, userID).
		Return(items, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feedback/"+userID.String(), nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subject":"Second"`)
	assert.Contains(t, rec.Body.String(), `"subject":"First"`)
}
