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

func TestMessageHandler_Send_Success(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, discardLogger())
	e.POST("/api/messages", h.Send)

	userID := uuid.New()
	output := &usecase.MessageOutput{
		ID:        1,
		UserID:    userID,
		Text:      "My order never arrived",
		Sender:    "user",
		CreatedAt: time.Now(),
	}

	uc.On("Send", mock.Anything, mock.AnythingOfType("*usecase.SendMessageInput")).
		Return(output, nil)

	body := `{"userId":"` + userID.String() + `","text":"My order never arrived","sender":"user"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sender":"user"`)
}

func TestMessageHandler_Send_RejectsUnknownSender(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, discardLogger())
	e.POST("/api/messages", h.Send)

	body := `{"userId":"` + uuid.New().String() + `","text":"hi","sender":"robot"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	uc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestMessageHandler_History_EmptyIsEmptyArray(t *testing.T) {
	e := newTestEcho(t)
	uc := mockUsecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, discardLogger())
	e.GET("/api/messages/:userId", h.History)

	userID := uuid.New()

	uc.On("History", mock.Anything, userID).
		Return([]*usecase.MessageOutput{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/messages/"+userID.String(), nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
