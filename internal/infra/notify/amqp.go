package notify

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes events to a durable RabbitMQ queue through the default exchange.
// The connection is opened lazily and re-dialled after a failure.
type AMQPPublisher struct {
	cfg config.AMQPConfig

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(cfg config.AMQPConfig) *AMQPPublisher {
	return &AMQPPublisher{cfg: cfg}
}

func (p *AMQPPublisher) Send(ctx context.Context, ev Event) error {
	body, err := EncodeEvent(ev)
	if err != nil {
		return errs.Wrap(err, "encode notification event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel(ctx)
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		"",          // default exchange
		p.cfg.Queue, // routing key = queue name
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.ID.String(),
			Type:         string(ev.Kind),
			Timestamp:    ev.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		p.reset()
		return errs.Wrap(err, "publish notification")
	}
	return nil
}

// channel must be called with p.mu held. A fresh dial is bounded by ctx.
func (p *AMQPPublisher) channel(ctx context.Context) (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "dial amqp broker")
	}
	conn, err := amqp.DialConfig(p.cfg.URL, amqp.Config{
		Heartbeat: amqpHeartbeat,
		Locale:    "en_US",
		Dial:      contextDial(ctx, dialTimeout(ctx)),
	})
	if err != nil {
		return nil, errs.Wrap(err, "dial amqp broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open amqp channel")
	}
	if err := declareQueue(ch, p.cfg.Queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

const (
	amqpDialTimeout = 30 * time.Second
	amqpHeartbeat   = 10 * time.Second
)

// dialTimeout shrinks the default to whatever is left of ctx's deadline.
func dialTimeout(ctx context.Context) time.Duration {
	timeout := amqpDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	return timeout
}

// contextDial mirrors amqp.DefaultDial but also stops when ctx ends. The deadline
// covers the AMQP handshake and is cleared by the library once it completes.
func contextDial(ctx context.Context, timeout time.Duration) func(network, addr string) (net.Conn, error) {
	return func(network, addr string) (net.Conn, error) {
		d := net.Dialer{Timeout: timeout}
		conn, err := d.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return conn, nil
	}
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

func declareQueue(ch *amqp.Channel, name string) error {
	// Durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return errs.Wrapf(err, "declare queue %q", name)
	}
	return nil
}

// AMQPConsumer feeds queued events to a handler, reconnecting with backoff until ctx ends.
type AMQPConsumer struct {
	cfg      config.AMQPConfig
	prefetch int
}

func NewAMQPConsumer(cfg config.AMQPConfig) *AMQPConsumer {
	return &AMQPConsumer{cfg: cfg, prefetch: 16}
}

func (c *AMQPConsumer) Run(ctx context.Context, handle func(context.Context, Event) error) error {
	backoff := time.Second
	for {
		err := c.consume(ctx, handle)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slog.Warn("amqp consumer stopped, reconnecting",
			"error", errorString(err),
			"wait", backoff.String())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func (c *AMQPConsumer) consume(ctx context.Context, handle func(context.Context, Event) error) error {
	conn, err := amqp.DialConfig(c.cfg.URL, amqp.Config{
		Heartbeat: amqpHeartbeat,
		Locale:    "en_US",
		Dial:      contextDial(ctx, amqpDialTimeout),
	})
	if err != nil {
		return errs.Wrap(err, "dial amqp broker")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open amqp channel")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return errs.Wrap(err, "set qos")
	}
	if err := declareQueue(ch, c.cfg.Queue); err != nil {
		return err
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "start consuming")
	}
	slog.Info("amqp consumer started", "queue", c.cfg.Queue)

	for d := range deliveries {
		ev, err := DecodeEvent(d.Body)
		if err != nil {
			slog.Error("dropping malformed notification", "error", err.Error())
			_ = d.Nack(false, false)
			continue
		}
		if err := handle(ctx, ev); err != nil {
			slog.Error("notification handling failed",
				"event_id", ev.ID.String(),
				"error", err.Error())
			// Requeue once; a redelivered message that fails again is dropped.
			_ = d.Nack(false, !d.Redelivered)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("delivery channel closed")
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
