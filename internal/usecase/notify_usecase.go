package usecase

import (
	"context"
	"errors"

	"opinalocal/internal/domain/service"
)

// ErrRetryable marks a processing failure as transient. The worker's HTTP
// handler answers the queue with a retry status when the returned error
// wraps this sentinel, and acknowledges the message otherwise.
var ErrRetryable = errors.New("retryable notification failure")

// NotifyUsecase defines the worker-side interface that turns a queued
// notification event into push and email deliveries.
type NotifyUsecase interface {
	// ProcessEvent resolves the event's recipients, re-checks each
	// recipient's preference for the event kind, and delivers through the
	// configured channels. A returned error marked retryable asks the
	// queue to redeliver; any other error acknowledges the message.
	ProcessEvent(ctx context.Context, event *service.NotificationEvent) error
}
