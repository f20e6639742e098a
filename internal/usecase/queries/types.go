package queries

import (
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID           uuid.UUID `json:"id"`
	RoomNumber   int       `json:"room_number"`
	Type         string    `json:"type"`
	PricePerHour int64     `json:"price_per_hour"`
	CreatedAt    time.Time `json:"created_at"`
}

// BookingView represents read-optimized booking data
type BookingView struct {
	ID        uuid.UUID `json:"id"`
	UserEmail string    `json:"user_email"`
	RoomID    uuid.UUID `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Price     int64     `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListItem is a booking enriched with its room; Room is nil when the room no longer resolves.
type BookingListItem struct {
	BookingView
	Room *RoomView `json:"room"`
}

type RoomFilter struct {
	RoomNumber *int
	Type       *string
}

func (f RoomFilter) IsEmpty() bool {
	return f.RoomNumber == nil && f.Type == nil
}

// BookingFilter bounds are inclusive; a nil RoomIDs means every room.
type BookingFilter struct {
	RoomIDs   []uuid.UUID
	StartFrom *time.Time
	EndUntil  *time.Time
}

type ListBookingsInput struct {
	RoomNumber *int
	RoomType   *string
	StartFrom  *time.Time
	EndUntil   *time.Time
}
