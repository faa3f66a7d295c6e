package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/okorolev/auth-server/internal/config"
	"github.com/okorolev/auth-server/internal/model"
)

var _ model.Mailer = (*SMTP)(nil)

// SMTP delivers HTML notifications through an SMTP relay. Authentication is
// applied only when a username is configured, so a local MailHog needs no
// credentials.
type SMTP struct {
	client *mail.Client
	from   string
}

// NewSMTP creates an SMTP mailer from the mail transport configuration.
func NewSMTP(cfg config.SMTP) (*SMTP, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTP{client: client, from: cfg.From}, nil
}

// Send delivers a single HTML message. Errors surface to the caller; no
// retries happen at this layer.
func (s *SMTP) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("failed to set mail sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set mail recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
