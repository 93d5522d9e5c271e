package mailer

import (
	"context"
	"log/slog"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

// AsyncDispatcher fans notifications out to the sender on background
// goroutines, so command handlers return without waiting for SMTP. Delivery
// failures are logged with the notification id and dropped.
type AsyncDispatcher struct {
	sender ports.NotificationSender
	logger *slog.Logger
}

// NewAsyncDispatcher creates a dispatcher that sends through the given sender.
func NewAsyncDispatcher(sender ports.NotificationSender, logger *slog.Logger) *AsyncDispatcher {
	return &AsyncDispatcher{
		sender: sender,
		logger: logger.With("component", "notification_dispatcher"),
	}
}

// Dispatch sends each notification on its own goroutine and returns
// immediately. The send outlives the request: cancellation of the incoming
// context must not abort an email whose order is already committed.
func (d *AsyncDispatcher) Dispatch(ctx context.Context, notifications []order.Notification) {
	for _, notification := range notifications {
		sendCtx := context.WithoutCancel(ctx)
		go func(n order.Notification) {
			if err := d.sender.Send(sendCtx, n); err != nil {
				d.logger.ErrorContext(sendCtx, "Notification delivery failed",
					"notification_id", n.ID,
					"kind", n.Kind.String(),
					"order", n.DisplayID,
					"error", err,
				)
				return
			}

			d.logger.InfoContext(sendCtx, "Notification delivered",
				"notification_id", n.ID,
				"kind", n.Kind.String(),
				"order", n.DisplayID,
			)
		}(notification)
	}
}
