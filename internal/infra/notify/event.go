package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventKind string

const (
	KindBookingConfirmed EventKind = "booking.confirmed"
	KindBookingCancelled EventKind = "booking.cancelled"
)

var (
	ErrUnknownKind  = errors.New("unknown notification kind")
	ErrMissingEmail = errors.New("notification has no recipient")
)

// BookingDetails is what an email shows about a booking. Every field is optional
// and rendered as "-" when absent.
type BookingDetails struct {
	RoomNumber *int       `json:"room_number,omitempty"`
	RoomType   *string    `json:"room_type,omitempty"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Price      *int64     `json:"price,omitempty"`
}

// Event is the unit of delivery, both for direct SMTP sends and for broker payloads.
type Event struct {
	ID            uuid.UUID      `json:"id"`
	Kind          EventKind      `json:"kind"`
	Email         string         `json:"email"`
	Booking       BookingDetails `json:"booking"`
	RefundPercent *int           `json:"refund_percent,omitempty"`
	RefundAmount  *int64         `json:"refund_amount,omitempty"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// Sender delivers one event. Implementations honour ctx cancellation.
type Sender interface {
	Send(ctx context.Context, ev Event) error
}

func (e Event) Validate() error {
	switch e.Kind {
	case KindBookingConfirmed, KindBookingCancelled:
	default:
		return errs.Wrapf(ErrUnknownKind, "kind %q", e.Kind)
	}
	if strings.TrimSpace(e.Email) == "" {
		return ErrMissingEmail
	}
	return nil
}

func EncodeEvent(ev Event) ([]byte, error) {
	return json.Marshal(ev)
}

func DecodeEvent(body []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return Event{}, errs.Wrap(err, "decode notification event")
	}
	if err := ev.Validate(); err != nil {
		return Event{}, err
	}
	return ev, nil
}

func detailsFromNotice(n shared.BookingNotice) BookingDetails {
	d := BookingDetails{
		StartTime: &n.StartTime,
		EndTime:   &n.EndTime,
		Price:     &n.Price,
	}
	if n.RoomNumber > 0 {
		d.RoomNumber = &n.RoomNumber
	}
	if n.RoomType != "" {
		d.RoomType = &n.RoomType
	}
	return d
}
