package commands

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// NotificationDispatcher delivers the notification events an aggregate
// recorded during a command, after the transaction has committed.
//
// Dispatch is fire-and-forget: it returns immediately, delivery runs in the
// background, and failures are logged rather than surfaced, so a broken mail
// server can never fail or roll back a committed state change.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notifications []order.Notification)
}
