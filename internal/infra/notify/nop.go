package notify

import (
	"context"
	"log/slog"
)

// NopSender logs instead of delivering; used when NOTIFY_TRANSPORT=none.
type NopSender struct{}

func NewNopSender() *NopSender {
	return &NopSender{}
}

func (NopSender) Send(_ context.Context, ev Event) error {
	slog.Debug("notification transport disabled",
		"event_id", ev.ID.String(),
		"kind", string(ev.Kind))
	return nil
}
