package ports

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// NotificationSender delivers one customer notification, typically as an
// email. Implementations may block; callers are expected to invoke Send off
// the request path, since notifications are best-effort and must never fail
// the state change that triggered them.
type NotificationSender interface {
	Send(ctx context.Context, notification order.Notification) error
}
