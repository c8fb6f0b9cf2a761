package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pacame2411/TableBooker/internal/domain"
	"github.com/mailersend/mailersend-go"
	"github.com/wb-go/wbf/logger"
)

const sendTimeout = 5 * time.Second

// Mailer sends the one-time reservation reminder email through MailerSend.
type Mailer struct {
	client    *mailersend.Mailersend
	fromName  string
	fromEmail string
	logger    logger.Logger
}

func NewMailer(apiKey, fromName, fromEmail string, logger logger.Logger) *Mailer {
	if apiKey == "" {
		logger.Warn("mailersend api key is empty, reminder emails disabled")
		return &Mailer{client: nil, logger: logger}
	}

	return &Mailer{
		client:    mailersend.NewMailersend(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		logger:    logger,
	}
}

func (m *Mailer) SendReminder(ctx context.Context, r *domain.Reservation) error {
	if m.client == nil {
		m.logger.Debug("reminder skipped (mailer disabled)",
			logger.String("reservation_id", r.ID),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if r.Email == "" {
		return errors.New("reservation has no email")
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	text := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder of your reservation on %s at %s for %d guests.\n\nSee you soon!",
		r.CustomerName, r.Date.Format(domain.DateLayout), r.Time, r.Guests,
	)

	message := m.client.Email.NewMessage()
	message.SetFrom(mailersend.From{Name: m.fromName, Email: m.fromEmail})
	message.SetRecipients([]mailersend.Recipient{{Name: r.CustomerName, Email: r.Email}})
	message.SetSubject("Your table reservation reminder")
	message.SetText(text)

	if _, err := m.client.Email.Send(sendCtx, message); err != nil {
		return fmt.Errorf("send reminder email: %w", err)
	}

	return nil
}
