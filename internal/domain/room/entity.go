package room

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidNumber = errors.New("room_number must be a positive integer")
	ErrInvalidType   = errors.New("type must be one of 'Standard', 'Deluxe', 'Superior'")
	ErrInvalidRate   = errors.New("price_per_hour must be a positive integer")
)

// MaxNumber is the largest room number the store can hold.
const MaxNumber = math.MaxInt32

// Room is immutable once created.
type Room struct {
	id           uuid.UUID
	number       int
	roomType     Type
	pricePerHour int64
	createdAt    time.Time
}

func NewRoom(number int, roomType Type, pricePerHour int64) (*Room, error) {
	if number <= 0 || number > MaxNumber {
		return nil, ErrInvalidNumber
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	if pricePerHour <= 0 {
		return nil, ErrInvalidRate
	}

	return &Room{
		id:           uuid.New(),
		number:       number,
		roomType:     roomType,
		pricePerHour: pricePerHour,
	}, nil
}

func ReconstructRoom(id uuid.UUID, number int, roomType Type, pricePerHour int64, createdAt time.Time) *Room {
	return &Room{
		id:           id,
		number:       number,
		roomType:     roomType,
		pricePerHour: pricePerHour,
		createdAt:    createdAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() int          { return r.number }
func (r *Room) Type() Type           { return r.roomType }
func (r *Room) PricePerHour() int64  { return r.pricePerHour }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
