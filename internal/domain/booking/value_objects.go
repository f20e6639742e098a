package booking

import (
	"strings"
	"time"
)

// TimeSlot is a half-open interval [start, end) normalised to UTC.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	// Sub saturates past ~292 years, which would understate the hours billed
	if !start.Add(end.Sub(start)).Equal(end) {
		return TimeSlot{}, ErrTimeSlotTooLong
	}

	return TimeSlot{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps treats touching slots (one ends exactly when the other starts) as free.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// BillableHours rounds any partial hour up.
func (ts TimeSlot) BillableHours() int64 {
	d := ts.Duration()
	if d <= 0 {
		return 0
	}
	hours := int64(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

// Money is a whole-number amount in the hotel's currency.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func (m Money) Amount() int64 {
	return m.amount
}

// Percent returns pct% of m, rounding half up.
func (m Money) Percent(pct int) Money {
	if pct <= 0 || m.amount <= 0 {
		return Money{}
	}
	return Money{amount: (m.amount*int64(pct) + 50) / 100}
}

type Email struct {
	value string
}

// NewEmail only checks presence; format is not validated.
func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Email{}, ErrEmptyEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}
