// Package mailer delivers customer notifications over SMTP. Sending is
// best-effort: a failed email is logged and dropped, it never fails or
// retries the state change that produced it.
package mailer

import (
	"context"
	"fmt"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

// GomailNotificationSender sends lifecycle emails through an SMTP relay.
type GomailNotificationSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailNotificationSender creates an SMTP-backed notification sender.
func NewGomailNotificationSender(host string, port int, username, password, from string) *GomailNotificationSender {
	return &GomailNotificationSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send composes and delivers one notification email. Returns
// NotificationError wrapping the SMTP failure, if any.
func (s *GomailNotificationSender) Send(_ context.Context, notification order.Notification) error {
	message := gomail.NewMessage()
	message.SetHeader("From", s.from)
	message.SetHeader("To", notification.Email)
	message.SetHeader("Subject", subject(notification))
	message.SetBody("text/plain", body(notification))

	if err := s.dialer.DialAndSend(message); err != nil {
		return errs.NewNotificationError(notification.Kind.String(), err)
	}

	return nil
}

func subject(n order.Notification) string {
	switch n.Kind {
	case order.NotificationOrderPlaced:
		return fmt.Sprintf("We received your order %s", n.DisplayID)
	case order.NotificationOrderAccepted:
		return fmt.Sprintf("Your order %s is being prepared", n.DisplayID)
	case order.NotificationOrderCompleted:
		return fmt.Sprintf("Your order %s is ready", n.DisplayID)
	case order.NotificationOrderCancelled:
		return fmt.Sprintf("Your order %s has been cancelled", n.DisplayID)
	default:
		return fmt.Sprintf("Update on your order %s", n.DisplayID)
	}
}

func body(n order.Notification) string {
	greeting := "Hello"
	if n.Customer != "" {
		greeting = fmt.Sprintf("Hello %s", n.Customer)
	}

	return fmt.Sprintf(
		"%s,\n\n%s: %s.\nOrder total: %s.\n\nThank you for ordering with us.\n",
		greeting, n.DisplayID, n.Kind, n.Total.StringFixed(2),
	)
}
