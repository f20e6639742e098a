package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes events keyed by recipient, so one guest's emails stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			Logger:                 kafka.LoggerFunc(func(string, ...any) {}),
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
				slog.Error("kafka writer error", "detail", msg, "args", args)
			}),
		},
	}
}

func (p *KafkaPublisher) Send(ctx context.Context, ev Event) error {
	body, err := EncodeEvent(ev)
	if err != nil {
		return errs.Wrap(err, "encode notification event")
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Email),
		Value: body,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(ev.Kind)},
		},
	})
	if err != nil {
		return errs.Wrap(err, "write notification to kafka")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// KafkaConsumer reads events as part of a consumer group and commits each offset after handling.
type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(cfg config.KafkaConfig) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     cfg.Brokers,
			Topic:       cfg.Topic,
			GroupID:     cfg.GroupID,
			MinBytes:    1,
			MaxBytes:    1 << 20,
			MaxWait:     time.Second,
			StartOffset: kafka.FirstOffset,
			Logger:      kafka.LoggerFunc(func(string, ...any) {}),
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
				slog.Error("kafka reader error", "detail", msg, "args", args)
			}),
		}),
	}
}

// Run blocks until ctx ends. A failed event is logged and committed; retries
// already happened on the sending side of the mailer.
func (c *KafkaConsumer) Run(ctx context.Context, handle func(context.Context, Event) error) error {
	slog.Info("kafka consumer started", "topic", c.reader.Config().Topic, "group", c.reader.Config().GroupID)
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			slog.Warn("kafka fetch failed", "error", err.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		ev, err := DecodeEvent(msg.Value)
		if err != nil {
			slog.Error("dropping malformed notification",
				"offset", msg.Offset,
				"error", err.Error())
		} else if err := handle(ctx, ev); err != nil {
			slog.Error("notification handling failed",
				"event_id", ev.ID.String(),
				"error", err.Error())
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			slog.Warn("kafka commit failed", "offset", msg.Offset, "error", err.Error())
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
