package services

import (
	"context"
	"fmt"

	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
	"github.com/median-app/median-backend/internal/platform/config"
	"github.com/wneessen/go-mail"
)

// mailService delivers plain-text mail over SMTP. Failures surface to the
// caller untouched; the core never retries delivery.
type mailService struct {
	client *mail.Client
	from   string
}

// NewMailService creates an SMTP-backed mail service from configuration.
func NewMailService(cfg *config.Config) (portssvc.MailSvcFacade, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &mailService{client: client, from: cfg.MailFrom}, nil
}

func (s *mailService) SendMail(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", s.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to deliver mail to %s: %w", to, err)
	}
	return nil
}
