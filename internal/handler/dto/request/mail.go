package request

import (
	"time"

	"hotel-booking/internal/usecase/commands"
)

type MailBookingDetails struct {
	RoomNumber *int    `json:"room_number"`
	RoomType   *string `json:"room_type"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	Price      *int64  `json:"price"`
}

type MailConfirmationRequest struct {
	Email   string              `json:"email"`
	Booking *MailBookingDetails `json:"booking"`
}

type MailCancellationRequest struct {
	Email         string              `json:"email"`
	Booking       *MailBookingDetails `json:"booking"`
	RefundPercent *int                `json:"refund_percent"`
	RefundAmount  *int64              `json:"refund_amount"`
}

func (r MailConfirmationRequest) ToInput() commands.MailInput {
	return detailsToInput(r.Email, r.Booking)
}

func (r MailCancellationRequest) ToInput() commands.MailInput {
	in := detailsToInput(r.Email, r.Booking)
	in.RefundPercent = r.RefundPercent
	in.RefundAmount = r.RefundAmount
	return in
}

// Unparsable times are dropped and render as "-" rather than failing the send.
func detailsToInput(email string, d *MailBookingDetails) commands.MailInput {
	in := commands.MailInput{Email: email}
	if d == nil {
		return in
	}
	in.RoomNumber = d.RoomNumber
	in.RoomType = d.RoomType
	in.Price = d.Price
	in.StartTime = lenientTime(d.StartTime)
	in.EndTime = lenientTime(d.EndTime)
	return in
}

func lenientTime(s *string) *time.Time {
	t, err := parseOptionalTimestamp(s)
	if err != nil {
		return nil
	}
	return t
}
