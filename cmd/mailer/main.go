// Command mailer consumes booking notifications from the configured broker and
// delivers them over SMTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/config"
)

type consumer interface {
	Run(ctx context.Context, handle func(context.Context, notify.Event) error) error
}

func main() {
	if err := run(); err != nil {
		slog.Error("mailer stopped with error", "error", err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := middleware.NewLogger(cfg.Log)
	defer func() { _ = logger.Close() }()

	renderer, err := notify.NewRenderer(cfg.SMTP.TimeZone)
	if err != nil {
		return err
	}
	mailer := notify.NewSMTPMailer(cfg.SMTP, renderer)

	var src consumer
	switch strings.ToLower(cfg.Notify.Transport) {
	case config.TransportAMQP:
		src = notify.NewAMQPConsumer(cfg.AMQP)
	case config.TransportKafka:
		kc := notify.NewKafkaConsumer(cfg.Kafka)
		defer func() { _ = kc.Close() }()
		src = kc
	default:
		return errors.New("mailer needs NOTIFY_TRANSPORT=amqp or kafka, got " + cfg.Notify.Transport)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("mailer started", "transport", cfg.Notify.Transport, "smtp_host", cfg.SMTP.Host)

	err = src.Run(ctx, func(ctx context.Context, ev notify.Event) error {
		sendCtx, cancel := context.WithTimeout(ctx, cfg.Notify.SendTimeout)
		defer cancel()
		if err := mailer.Send(sendCtx, ev); err != nil {
			return err
		}
		slog.Info("notification mailed", "event_id", ev.ID.String(), "kind", string(ev.Kind))
		return nil
	})
	if errors.Is(err, context.Canceled) {
		slog.Info("mailer stopped")
		return nil
	}
	return err
}
