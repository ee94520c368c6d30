package impl

import (
	"context"
	"log/slog"

	deliverycontext "opinalocal/internal/delivery/context"
	"opinalocal/internal/domain/service"
)

// publishEvent sends a notification event after the originating transaction
// has committed. Delivery is best effort: a publish failure is logged and
// swallowed so it never surfaces to the API caller.
func publishEvent(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, event *service.NotificationEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	log := deliverycontext.GetLoggerOrDefault(ctx, logger)
	if err := publisher.PublishNotificationEvent(ctx, event); err != nil {
		log.Error("Failed to publish notification event",
			slog.String("kind", event.Kind),
			slog.Any("error", err))

		return
	}

	log.Debug("Notification event published", slog.String("kind", event.Kind))
}
