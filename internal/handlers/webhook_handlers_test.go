package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/quotienthq/quotient-api/internal/db"
	"github.com/quotienthq/quotient-api/internal/handlers"
	"github.com/quotienthq/quotient-api/internal/logger"
	"github.com/quotienthq/quotient-api/internal/mocks"
	"github.com/quotienthq/quotient-api/internal/processor"
	"github.com/quotienthq/quotient-api/internal/webhook"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

// stubVerifier accepts or rejects every payload.
type stubVerifier struct {
	event processor.Event
	err   error
}

func (v *stubVerifier) ConstructEvent(payload []byte, _ string) (processor.Event, error) {
	if v.err != nil {
		return processor.Event{}, v.err
	}
	event := v.event
	event.Raw = payload
	return event, nil
}

func postWebhook(t *testing.T, handler *handlers.WebhookHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST("/webhooks/stripe", handler.HandleEvent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(body))
	req.Header.Set("Stripe-Signature", "t=1,v1=sig")
	router.ServeHTTP(w, req)
	return w
}

func TestHandleEvent_InvalidSignatureReturns400(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	eventRouter := webhook.NewRouter(mockQuerier, nil)
	handler := handlers.NewWebhookHandler(&stubVerifier{err: errors.New("bad signature")}, eventRouter)

	w := postWebhook(t, handler, []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleEvent_DuplicateStillReturns200(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	eventRouter := webhook.NewRouter(mockQuerier, nil)
	handler := handlers.NewWebhookHandler(
		&stubVerifier{event: processor.Event{ID: "evt_1", Type: "customer.created"}},
		eventRouter,
	)

	mockQuerier.EXPECT().
		CreateWebhookEvent(gomock.Any(), gomock.Any()).
		Return(db.WebhookEvent{}, pgx.ErrNoRows)

	w := postWebhook(t, handler, []byte(`{"id":"evt_1"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(webhook.ResultDuplicate))
}

func TestHandleEvent_LogWriteFailureReturns500(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	eventRouter := webhook.NewRouter(mockQuerier, nil)
	handler := handlers.NewWebhookHandler(
		&stubVerifier{event: processor.Event{ID: "evt_2", Type: "customer.created"}},
		eventRouter,
	)

	mockQuerier.EXPECT().
		CreateWebhookEvent(gomock.Any(), gomock.Any()).
		Return(db.WebhookEvent{}, errors.New("connection refused"))

	w := postWebhook(t, handler, []byte(`{"id":"evt_2"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
