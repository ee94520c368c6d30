package service

import (
	"context"
)

// Notification event kinds carried on the queue. The worker switches on the
// kind to pick recipients, templates, and preference gates.
const (
	EventReviewCreated    = "review.created"
	EventCommentCreated   = "comment.created"
	EventCategoryApproved = "category.approved"
)

// NotificationEvent represents an event to be processed by the notify worker.
// Events are published after the originating transaction commits; the worker
// resolves recipients and re-checks their preferences at delivery time.
type NotificationEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	Kind         string `json:"kind"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	Restaurant   string `json:"restaurant,omitempty"`
	ReviewID     string `json:"review_id,omitempty"`
	CommentID    string `json:"comment_id,omitempty"`
	CategoryID   string `json:"category_id,omitempty"`
	Category     string `json:"category,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
