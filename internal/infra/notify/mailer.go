package notify

import (
	"context"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

// SMTPMailer renders an event and sends it over SMTP.
// Port 465 uses implicit TLS; any other port upgrades with STARTTLS when offered.
type SMTPMailer struct {
	cfg      config.SMTPConfig
	renderer *Renderer
	options  []mail.Option
}

func NewSMTPMailer(cfg config.SMTPConfig, renderer *Renderer) *SMTPMailer {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(30 * time.Second),
	}
	if cfg.SMTPImplicitTLS() {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	return &SMTPMailer{
		cfg:      cfg,
		renderer: renderer,
		options:  opts,
	}
}

// Compose builds the message without sending it.
func (m *SMTPMailer) Compose(ev Event) (*mail.Msg, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	subject, body, err := m.renderer.Render(ev)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.FromAddress()); err != nil {
		return nil, errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(ev.Email); err != nil {
		return nil, errs.Wrapf(err, "invalid recipient address %q", ev.Email)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}

func (m *SMTPMailer) Send(ctx context.Context, ev Event) error {
	msg, err := m.Compose(ev)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host, m.options...)
	if err != nil {
		return errs.Wrap(err, "create smtp client")
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrapf(err, "send %s email", ev.Kind)
	}
	return nil
}
