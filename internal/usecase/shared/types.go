package shared

import (
	"github.com/google/uuid"
)

// RoomSnapshot is the write-side view of a room used to price a booking.
type RoomSnapshot struct {
	ID           uuid.UUID
	Number       int
	Type         string
	PricePerHour int64
}
