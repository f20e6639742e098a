package booking

import (
	"errors"
	"time"

	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot   = errors.New("start_time must be before end_time")
	ErrTimeSlotTooLong   = errors.New("booking is too long")
	ErrPriceOutOfRange   = errors.New("booking price is out of range")
	ErrEmptyEmail        = errors.New("user_email is required")
	ErrInvalidRoomRate   = errors.New("room price_per_hour must be positive")
	ErrBookingCancelled  = errors.New("booking is already cancelled")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrStatusNotSettable = errors.New("status can only be set to active; use cancel to cancel a booking")
)

// RoomSpec is the slice of room data a booking needs for pricing.
type RoomSpec struct {
	ID           uuid.UUID
	PricePerHour int64
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	RefundPolicy    RefundPolicy
}

type Booking struct {
	id        uuid.UUID
	userEmail Email
	roomID    uuid.UUID
	timeSlot  TimeSlot
	price     Money
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(services *Services, userEmail Email, room RoomSpec, slot TimeSlot) (*Booking, error) {
	if room.PricePerHour <= 0 {
		return nil, ErrInvalidRoomRate
	}

	price, err := services.PriceCalculator.Calculate(room.PricePerHour, slot)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	return &Booking{
		id:        uuid.New(),
		userEmail: userEmail,
		roomID:    room.ID,
		timeSlot:  slot,
		price:     price,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	userEmail Email,
	roomID uuid.UUID,
	timeSlot TimeSlot,
	price Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		userEmail: userEmail,
		roomID:    roomID,
		timeSlot:  timeSlot,
		price:     price,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Changes holds the effective (already merged) values for a modification.
type Changes struct {
	UserEmail Email
	Room      RoomSpec
	TimeSlot  TimeSlot
	Status    Status
}

// Modify replaces the mutable fields and always reprices from the given room rate.
func (b *Booking) Modify(services *Services, ch Changes) error {
	if err := b.CanModify(ch.Status); err != nil {
		return err
	}
	if ch.Room.PricePerHour <= 0 {
		return ErrInvalidRoomRate
	}
	price, err := services.PriceCalculator.Calculate(ch.Room.PricePerHour, ch.TimeSlot)
	if err != nil {
		return err
	}

	b.userEmail = ch.UserEmail
	b.roomID = ch.Room.ID
	b.timeSlot = ch.TimeSlot
	b.status = ch.Status
	b.price = price
	b.updatedAt = services.Clock.Now()
	return nil
}

// CanModify checks the lifecycle rules of a modification that leaves the booking in status.
func (b *Booking) CanModify(status Status) error {
	if b.IsCancelled() {
		return ErrBookingCancelled
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if status != StatusActive {
		return ErrStatusNotSettable
	}
	return nil
}

// Cancel is terminal. The refund is computed against the stored price and is not kept on the booking.
func (b *Booking) Cancel(services *Services) (Refund, error) {
	if b.IsCancelled() {
		return Refund{}, ErrBookingCancelled
	}

	now := services.Clock.Now()
	refund := services.RefundPolicy.Refund(now, b.timeSlot.Start(), b.price)
	b.status = StatusCancelled
	b.updatedAt = now
	return refund, nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserEmail() Email     { return b.userEmail }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) TimeSlot() TimeSlot   { return b.timeSlot }
func (b *Booking) Price() Money         { return b.price }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
