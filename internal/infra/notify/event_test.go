//go:build unit

package notify_test

import (
	"testing"
	"time"

	"hotel-booking/internal/infra/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() notify.Event {
	number, roomType, price := 101, "Deluxe", int64(1500)
	start := time.Date(2030, time.March, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	return notify.Event{
		ID:    uuid.New(),
		Kind:  notify.KindBookingConfirmed,
		Email: "guest@example.com",
		Booking: notify.BookingDetails{
			RoomNumber: &number,
			RoomType:   &roomType,
			StartTime:  &start,
			EndTime:    &end,
			Price:      &price,
		},
		OccurredAt: testNow,
	}
}

func TestEvent_EncodeDecode(t *testing.T) {
	ev := sampleEvent()

	body, err := notify.EncodeEvent(ev)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"kind":"booking.confirmed"`)
	assert.NotContains(t, string(body), "refund_percent")

	decoded, err := notify.DecodeEvent(body)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, decoded.ID)
	assert.Equal(t, *ev.Booking.Price, *decoded.Booking.Price)
	assert.True(t, ev.Booking.StartTime.Equal(*decoded.Booking.StartTime))
}

func TestDecodeEvent_Rejects(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		target error
	}{
		{name: "malformed json", body: `{"kind":`},
		{name: "unknown kind", body: `{"kind":"booking.moved","email":"a@b.c"}`, target: notify.ErrUnknownKind},
		{name: "missing email", body: `{"kind":"booking.cancelled","email":" "}`, target: notify.ErrMissingEmail},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := notify.DecodeEvent([]byte(tc.body))
			require.Error(t, err)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}
}
