//go:build unit

package notify_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func newMailer(t *testing.T) *notify.SMTPMailer {
	t.Helper()
	r, err := notify.NewRenderer("UTC")
	require.NoError(t, err)
	return notify.NewSMTPMailer(config.SMTPConfig{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "bookings@example.com",
		FromName: "Scaler Hotel",
		TimeZone: "UTC",
	}, r)
}

func TestSMTPMailer_Compose(t *testing.T) {
	msg, err := newMailer(t).Compose(sampleEvent())
	require.NoError(t, err)

	to := msg.GetToString()
	assert.Equal(t, []string{"<guest@example.com>"}, to)
	assert.Equal(t, []string{"Your booking is confirmed"}, msg.GetGenHeader(mail.HeaderSubject))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Scaler Hotel")
}

func TestSMTPMailer_ComposeRejects(t *testing.T) {
	m := newMailer(t)

	ev := sampleEvent()
	ev.Email = ""
	_, err := m.Compose(ev)
	assert.ErrorIs(t, err, notify.ErrMissingEmail)

	ev = sampleEvent()
	ev.Email = "not an address"
	_, err = m.Compose(ev)
	assert.Error(t, err)
}

func TestSMTPMailer_SendFailsWithoutServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := newMailer(t).Send(ctx, sampleEvent())
	assert.Error(t, err)
}
