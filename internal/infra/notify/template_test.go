//go:build unit

package notify_test

import (
	"testing"

	"hotel-booking/internal/infra/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Confirmed(t *testing.T) {
	r, err := notify.NewRenderer("Asia/Kolkata")
	require.NoError(t, err)

	subject, body, err := r.Render(sampleEvent())

	require.NoError(t, err)
	assert.Equal(t, "Your booking is confirmed", subject)
	assert.Contains(t, body, "Booking Confirmed")
	assert.Contains(t, body, "101 (Deluxe)")
	// 10:00 UTC is 15:30 in Kolkata
	assert.Contains(t, body, "10/03/2030 15:30")
	assert.Contains(t, body, "10/03/2030 18:30")
	assert.Contains(t, body, "₹1500")
}

func TestRenderer_CancelledWithRefund(t *testing.T) {
	r, err := notify.NewRenderer("UTC")
	require.NoError(t, err)

	ev := sampleEvent()
	ev.Kind = notify.KindBookingCancelled
	percent, amount := 50, int64(750)
	ev.RefundPercent, ev.RefundAmount = &percent, &amount

	subject, body, err := r.Render(ev)

	require.NoError(t, err)
	assert.Equal(t, "Your booking has been cancelled", subject)
	assert.Contains(t, body, "10/03/2030 10:00")
	assert.Contains(t, body, "₹750 (50%)")
	assert.Contains(t, body, "Refund Policy")
}

func TestRenderer_MissingDetailsShowPlaceholder(t *testing.T) {
	r, err := notify.NewRenderer("UTC")
	require.NoError(t, err)

	ev := sampleEvent()
	ev.Kind = notify.KindBookingCancelled
	ev.Booking = notify.BookingDetails{}

	_, body, err := r.Render(ev)

	require.NoError(t, err)
	assert.NotContains(t, body, "₹")
	assert.Contains(t, body, "- (-%)")
}

func TestRenderer_Errors(t *testing.T) {
	_, err := notify.NewRenderer("Mars/Olympus")
	assert.Error(t, err)

	r, err := notify.NewRenderer("UTC")
	require.NoError(t, err)
	ev := sampleEvent()
	ev.Kind = "booking.moved"
	_, _, err = r.Render(ev)
	assert.ErrorIs(t, err, notify.ErrUnknownKind)
}
