//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)

func slot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	ts, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return ts
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("start before end is accepted and normalised to UTC", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)
		ts, err := booking.NewTimeSlot(base.In(ist), base.Add(time.Hour).In(ist))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, ts.Start().Location())
		assert.True(t, ts.Start().Equal(base))
	})

	t.Run("equal bounds are rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("reversed bounds are rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("span beyond the duration range is rejected", func(t *testing.T) {
		start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := booking.NewTimeSlot(start, time.Date(9000, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, booking.ErrTimeSlotTooLong)
	})

	t.Run("long but representable span is kept", func(t *testing.T) {
		ts, err := booking.NewTimeSlot(base, base.AddDate(200, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, int64(ts.Duration()/time.Hour), ts.BillableHours())
	})
}

func TestTimeSlot_Overlaps(t *testing.T) {
	existing := slot(t, base, base.Add(3*time.Hour)) // 10:00-13:00

	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{name: "identical range", start: base, end: base.Add(3 * time.Hour), expected: true},
		{name: "overlaps the tail", start: base.Add(2 * time.Hour), end: base.Add(4 * time.Hour), expected: true},
		{name: "overlaps the head", start: base.Add(-time.Hour), end: base.Add(time.Minute), expected: true},
		{name: "contained", start: base.Add(time.Hour), end: base.Add(2 * time.Hour), expected: true},
		{name: "containing", start: base.Add(-time.Hour), end: base.Add(5 * time.Hour), expected: true},
		{name: "ends exactly at start", start: base.Add(-2 * time.Hour), end: base, expected: false},
		{name: "starts exactly at end", start: base.Add(3 * time.Hour), end: base.Add(4 * time.Hour), expected: false},
		{name: "disjoint later", start: base.Add(5 * time.Hour), end: base.Add(6 * time.Hour), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			other := slot(t, tc.start, tc.end)
			assert.Equal(t, tc.expected, existing.Overlaps(other))
			assert.Equal(t, tc.expected, other.Overlaps(existing), "overlap must be symmetric")
		})
	}
}

func TestTimeSlot_BillableHours(t *testing.T) {
	testCases := []struct {
		name     string
		duration time.Duration
		expected int64
	}{
		{name: "exact hour", duration: time.Hour, expected: 1},
		{name: "90 minutes rounds up", duration: 90 * time.Minute, expected: 2},
		{name: "one second", duration: time.Second, expected: 1},
		{name: "three hours", duration: 3 * time.Hour, expected: 3},
		{name: "three hours and a nanosecond", duration: 3*time.Hour + time.Nanosecond, expected: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := slot(t, base, base.Add(tc.duration))
			assert.Equal(t, tc.expected, ts.BillableHours())
		})
	}
}

func TestMoney_Percent(t *testing.T) {
	assert.Equal(t, int64(1500), booking.NewMoney(1500).Percent(100).Amount())
	assert.Equal(t, int64(750), booking.NewMoney(1500).Percent(50).Amount())
	assert.Equal(t, int64(751), booking.NewMoney(1501).Percent(50).Amount(), "half rounds up")
	assert.Equal(t, int64(0), booking.NewMoney(1500).Percent(0).Amount())
	assert.Equal(t, int64(0), booking.NewMoney(0).Percent(100).Amount())
}

func TestNewEmail(t *testing.T) {
	e, err := booking.NewEmail("  guest@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", e.String())

	_, err = booking.NewEmail("   ")
	assert.ErrorIs(t, err, booking.ErrEmptyEmail)
}

func TestHourlyPriceCalculator(t *testing.T) {
	calc := booking.NewHourlyPriceCalculator()

	price, err := calc.Calculate(500, slot(t, base, base.Add(90*time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), price.Amount())

	price, err = calc.Calculate(500, slot(t, base, base.Add(3*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, int64(1500), price.Amount())

	_, err = calc.Calculate(9_000_000_000_000, slot(t, base, base.AddDate(200, 0, 0)))
	assert.ErrorIs(t, err, booking.ErrPriceOutOfRange)
}
