package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewRenderer,
		NewSMTPMailer,
		NewNotificationSender,
		NewDispatcher,
		func(d *notify.Dispatcher) shared.Notifier { return d },
		// The mail routes always speak SMTP directly so they can report the outcome
		func(m *notify.SMTPMailer) commands.MailSender { return m },
	),
)

func NewRenderer(cfg config.Config) (*notify.Renderer, error) {
	return notify.NewRenderer(cfg.SMTP.TimeZone)
}

func NewSMTPMailer(cfg config.Config, renderer *notify.Renderer) *notify.SMTPMailer {
	return notify.NewSMTPMailer(cfg.SMTP, renderer)
}

// NewNotificationSender picks where booking notifications go: straight to SMTP,
// onto a broker for cmd/mailer, or nowhere.
func NewNotificationSender(lc fx.Lifecycle, cfg config.Config, mailer *notify.SMTPMailer) notify.Sender {
	transport := strings.ToLower(cfg.Notify.Transport)
	slog.Info("notification transport selected", "transport", transport)

	switch transport {
	case config.TransportSMTP:
		return mailer
	case config.TransportAMQP:
		p := notify.NewAMQPPublisher(cfg.AMQP)
		lc.Append(fx.Hook{OnStop: func(_ context.Context) error { return p.Close() }})
		return p
	case config.TransportKafka:
		p := notify.NewKafkaPublisher(cfg.Kafka)
		lc.Append(fx.Hook{OnStop: func(_ context.Context) error { return p.Close() }})
		return p
	default:
		return notify.NewNopSender()
	}
}

func NewDispatcher(lc fx.Lifecycle, sender notify.Sender, cfg config.Config, clk clock.Clock) *notify.Dispatcher {
	d := notify.NewDispatcher(sender, cfg.Notify, clk)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return d.Close(ctx)
		},
	})
	return d
}
