package shared

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	// CountOverlapping counts active bookings of roomID intersecting slot, ignoring excludeID when set.
	CountOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) (int64, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *room.Room) (*room.Room, error)
}
