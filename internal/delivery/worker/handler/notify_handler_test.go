package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "opinalocal/internal/delivery/context"
	"opinalocal/internal/domain/service"
	mockusecase "opinalocal/internal/mocks/usecase"
	"opinalocal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestNotifyHandler(t *testing.T) (*NotifyHandler, *mockusecase.MockNotifyUsecase) {
	t.Helper()

	notifyUc := mockusecase.NewMockNotifyUsecase(t)
	handler := &NotifyHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		notifyUc:       notifyUc,
	}

	return handler, notifyUc
}

func newPushContext(t *testing.T, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func encodePushMessage(t *testing.T, event *service.NotificationEvent, attributes map[string]string) []byte {
	t.Helper()

	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.Attributes = attributes
	pushMsg.Message.MessageID = "message-1"
	pushMsg.Subscription = "projects/test/subscriptions/notify"

	body, err := json.Marshal(pushMsg)
	assert.NoError(t, err)

	return body
}

func TestNotifyHandler_HandlePush_Success(t *testing.T) {
	handler, notifyUc := newTestNotifyHandler(t)

	event := &service.NotificationEvent{
		Kind:      service.EventCommentCreated,
		ActorID:   "4f6d9f45-9f0a-4f7d-bd5b-0f2c8fd1a111",
		ActorName: "Ana",
		ReviewID:  "f2cc3a31-51f2-4a88-9f39-3fb1f0e22222",
	}

	var received *service.NotificationEvent
	notifyUc.EXPECT().
		ProcessEvent(mock.Anything, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(_ context.Context, event *service.NotificationEvent) {
			received = event
		}).
		Return(nil)

	c, rec := newPushContext(t, encodePushMessage(t, event, nil))

	err := handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, received)
	assert.Equal(t, service.EventCommentCreated, received.Kind)
	assert.Equal(t, "Ana", received.ActorName)
}

func TestNotifyHandler_HandlePush_RetryableFailureReturns503(t *testing.T) {
	handler, notifyUc := newTestNotifyHandler(t)

	notifyUc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(errors.Wrap(usecase.ErrRetryable, "database unavailable"))

	event := &service.NotificationEvent{Kind: service.EventReviewCreated}
	c, rec := newPushContext(t, encodePushMessage(t, event, nil))

	err := handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNotifyHandler_HandlePush_PermanentFailureAcks(t *testing.T) {
	handler, notifyUc := newTestNotifyHandler(t)

	notifyUc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Return(errors.New("unknown event kind"))

	event := &service.NotificationEvent{Kind: "mystery.kind"}
	c, rec := newPushContext(t, encodePushMessage(t, event, nil))

	err := handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotifyHandler_HandlePush_InvalidBase64(t *testing.T) {
	handler, notifyUc := newTestNotifyHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "not-base64!!!"
	body, err := json.Marshal(pushMsg)
	assert.NoError(t, err)

	c, rec := newPushContext(t, body)

	err = handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	notifyUc.AssertNotCalled(t, "ProcessEvent", mock.Anything, mock.Anything)
}

func TestNotifyHandler_HandlePush_MalformedEventJSON(t *testing.T) {
	handler, notifyUc := newTestNotifyHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString([]byte("{not json"))
	body, err := json.Marshal(pushMsg)
	assert.NoError(t, err)

	c, rec := newPushContext(t, body)

	err = handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	notifyUc.AssertNotCalled(t, "ProcessEvent", mock.Anything, mock.Anything)
}

func TestNotifyHandler_HandlePush_RequestIDFromAttributes(t *testing.T) {
	handler, notifyUc := newTestNotifyHandler(t)

	var receivedCtx context.Context
	notifyUc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *service.NotificationEvent) {
			receivedCtx = ctx
		}).
		Return(nil)

	event := &service.NotificationEvent{Kind: service.EventReviewCreated, RequestID: "event-request-id"}
	attributes := map[string]string{"request_id": "attribute-request-id"}
	c, rec := newPushContext(t, encodePushMessage(t, event, attributes))

	err := handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attribute-request-id", deliverycontext.GetRequestIDFromContext(receivedCtx))
}

func TestNotifyHandler_HandlePush_RequestIDFromEvent(t *testing.T) {
	handler, notifyUc := newTestNotifyHandler(t)

	var receivedCtx context.Context
	notifyUc.EXPECT().
		ProcessEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *service.NotificationEvent) {
			receivedCtx = ctx
		}).
		Return(nil)

	event := &service.NotificationEvent{Kind: service.EventReviewCreated, RequestID: "event-request-id"}
	c, rec := newPushContext(t, encodePushMessage(t, event, nil))

	err := handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "event-request-id", deliverycontext.GetRequestIDFromContext(receivedCtx))
}

func TestNotifyHandler_HandlePush_MissingAuthHeaderWhenVerifying(t *testing.T) {
	notifyUc := mockusecase.NewMockNotifyUsecase(t)
	handler := &NotifyHandler{
		verifyPushAuth: true,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		notifyUc:       notifyUc,
	}

	event := &service.NotificationEvent{Kind: service.EventReviewCreated}
	c, rec := newPushContext(t, encodePushMessage(t, event, nil))

	err := handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	notifyUc.AssertNotCalled(t, "ProcessEvent", mock.Anything, mock.Anything)
}
