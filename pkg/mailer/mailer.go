package mailer

import (
	"context"
	"fmt"

	"retail-backend/pkg/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Mailer delivers plain text notifications.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New returns an SMTP mailer when a host is configured, otherwise a mailer
// that only writes messages to the log.
func New(config utils.EmailConfig, log *zap.Logger) (Mailer, error) {
	if config.Host == "" {
		return NewLogMailer(log), nil
	}
	return NewSMTPMailer(config, log)
}

type logMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) Mailer {
	return &logMailer{log: log.With(zap.String("mailer", "log"))}
}

func (m *logMailer) Send(ctx context.Context, to, subject, body string) error {
	m.log.Info("Email (not delivered, SMTP disabled)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

type smtpMailer struct {
	from string
	log  *zap.Logger
	send func(ctx context.Context, msgs ...*mail.Msg) error
}

// NewSMTPMailer dials config.Host per message. STARTTLS is used when the
// server offers it; PLAIN auth is enabled when a user is configured.
func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) (Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(config.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if config.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(config.User),
			mail.WithPassword(config.Password),
		)
	}

	client, err := mail.NewClient(config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &smtpMailer{
		from: config.From,
		log:  log.With(zap.String("mailer", "smtp")),
		send: client.DialAndSendWithContext,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	msg, err := newMessage(m.from, to, subject, body)
	if err != nil {
		m.log.Warn("Invalid email address", zap.Error(err), zap.String("to", to))
		return err
	}

	if err := m.send(ctx, msg); err != nil {
		m.log.Error("Failed to send email", zap.Error(err), zap.String("to", to))
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.log.Debug("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func newMessage(from, to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("sender %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
