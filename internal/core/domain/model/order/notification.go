package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationKind identifies which customer email a lifecycle event asks for.
type NotificationKind int

const (
	NotificationUnknown NotificationKind = iota

	// NotificationOrderPlaced is the confirmation sent right after creation.
	NotificationOrderPlaced

	// NotificationOrderAccepted is sent when an admin accepts the order.
	NotificationOrderAccepted

	// NotificationOrderCompleted is sent when the order is fulfilled.
	NotificationOrderCompleted

	// NotificationOrderCancelled is sent when the order is called off.
	NotificationOrderCancelled
)

// String returns a human-readable name used in logs and email subjects.
func (k NotificationKind) String() string {
	switch k {
	case NotificationOrderPlaced:
		return "order placed"
	case NotificationOrderAccepted:
		return "order accepted"
	case NotificationOrderCompleted:
		return "order completed"
	case NotificationOrderCancelled:
		return "order cancelled"
	default:
		return "unknown"
	}
}

// Notification is a request to email the customer about a lifecycle event.
// It carries a snapshot of the order taken at the moment the event was
// recorded, so dispatch does not depend on the aggregate afterwards.
//
// Notifications are best-effort: the aggregate records them, the application
// layer drains them with PopNotifications after a successful commit, and a
// dispatcher delivers them without blocking or failing the triggering
// operation.
type Notification struct {
	// ID correlates dispatch attempts in logs.
	ID uuid.UUID

	Kind       NotificationKind
	OrderID    int64
	DisplayID  string
	Customer   string
	Email      string
	Total      decimal.Decimal
	OccurredAt time.Time
}

func newNotification(kind NotificationKind, o *Order, now time.Time) Notification {
	return Notification{
		ID:         uuid.New(),
		Kind:       kind,
		OrderID:    o.id,
		DisplayID:  o.DisplayID(),
		Customer:   o.customer,
		Email:      o.email,
		Total:      o.total,
		OccurredAt: now,
	}
}
