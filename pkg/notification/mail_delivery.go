package notification

import (
	"context"
	"fmt"
	"frescoguard/entities"
	"frescoguard/internal/utils/mailing"
)

type (
	RecipientFinder interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	// MailSender matches mailing.SendMail.
	MailSender func(toEmail string, subject string, body string) error

	mailDeliverer struct {
		users  RecipientFinder
		send   MailSender
		appURL string
	}
)

func NewMailDeliverer(users RecipientFinder, send MailSender, appURL string) Deliverer {
	return &mailDeliverer{
		users:  users,
		send:   send,
		appURL: appURL,
	}
}

// Deliver skips users who turned notifications off.
func (d *mailDeliverer) Deliver(ctx context.Context, n *entities.Notification) error {
	user, err := d.users.GetUserByID(ctx, n.UserID.String())
	if err != nil {
		return fmt.Errorf("load recipient: %w", err)
	}
	if !user.NotificationsEnabled || user.Email == "" {
		return nil
	}
	return d.send(user.Email, n.Title, mailing.ReminderBody(n.Title, n.Message, d.appURL))
}
