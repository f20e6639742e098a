package request

import (
	"strconv"
	"strings"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidDates      = errs.Sentinel("Invalid dates", errs.ErrInvalidInput)
	ErrInvalidRoomID     = errs.Sentinel("room_id must be a valid id", errs.ErrInvalidInput)
	ErrInvalidBookingID  = errs.Sentinel("Invalid booking id", errs.ErrInvalidInput)
	ErrInvalidRoomNumber = errs.Sentinel("room_number must be an integer", errs.ErrInvalidInput)
	ErrInvalidStartTime  = errs.Sentinel("start_time must be a valid timestamp", errs.ErrInvalidInput)
	ErrInvalidEndTime    = errs.Sentinel("end_time must be a valid timestamp", errs.ErrInvalidInput)
)

// Times arrive as strings so that an unparsable value is reported the same way as a missing one.
type CreateBookingRequest struct {
	UserEmail string `json:"user_email"`
	RoomID    string `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	roomID, err := uuid.Parse(strings.TrimSpace(r.RoomID))
	if err != nil || strings.TrimSpace(r.UserEmail) == "" {
		return commands.CreateBookingInput{}, commands.ErrMissingFields
	}
	start, err := ParseTimestamp(r.StartTime)
	if err != nil {
		return commands.CreateBookingInput{}, commands.ErrMissingFields
	}
	end, err := ParseTimestamp(r.EndTime)
	if err != nil {
		return commands.CreateBookingInput{}, commands.ErrMissingFields
	}

	return commands.CreateBookingInput{
		UserEmail: r.UserEmail,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// UpdateBookingRequest is a patch; absent (or null) fields keep their stored values.
type UpdateBookingRequest struct {
	UserEmail *string `json:"user_email"`
	RoomID    *string `json:"room_id"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Status    *string `json:"status"`
}

func (r UpdateBookingRequest) ToInput() (commands.UpdateBookingInput, error) {
	in := commands.UpdateBookingInput{
		UserEmail: r.UserEmail,
		Status:    r.Status,
	}

	if r.RoomID != nil && strings.TrimSpace(*r.RoomID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*r.RoomID))
		if err != nil {
			return commands.UpdateBookingInput{}, errs.Mark(err, ErrInvalidRoomID)
		}
		in.RoomID = &id
	}

	var err error
	if in.StartTime, err = parseOptionalTimestamp(r.StartTime); err != nil {
		return commands.UpdateBookingInput{}, errs.Mark(err, ErrInvalidDates)
	}
	if in.EndTime, err = parseOptionalTimestamp(r.EndTime); err != nil {
		return commands.UpdateBookingInput{}, errs.Mark(err, ErrInvalidDates)
	}
	return in, nil
}

// ListBookingsQuery holds the raw query string; every filter is optional.
type ListBookingsQuery struct {
	RoomNumber string `form:"room_number"`
	RoomType   string `form:"room_type"`
	StartTime  string `form:"start_time"`
	EndTime    string `form:"end_time"`
}

func (q ListBookingsQuery) ToInput() (queries.ListBookingsInput, error) {
	var in queries.ListBookingsInput

	if s := strings.TrimSpace(q.RoomNumber); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return queries.ListBookingsInput{}, errs.Mark(err, ErrInvalidRoomNumber)
		}
		in.RoomNumber = &n
	}
	if s := strings.TrimSpace(q.RoomType); s != "" {
		in.RoomType = &s
	}

	var err error
	if in.StartFrom, err = parseOptionalTimestamp(&q.StartTime); err != nil {
		return queries.ListBookingsInput{}, errs.Mark(err, ErrInvalidStartTime)
	}
	if in.EndUntil, err = parseOptionalTimestamp(&q.EndTime); err != nil {
		return queries.ListBookingsInput{}, errs.Mark(err, ErrInvalidEndTime)
	}
	return in, nil
}

func ParseBookingID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidBookingID)
	}
	return id, nil
}
