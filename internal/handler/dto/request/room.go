package request

import (
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/usecase/commands"
)

type CreateRoomRequest struct {
	RoomNumber   *int   `json:"room_number" binding:"required,gt=0,lte=2147483647"`
	Type         string `json:"type" binding:"required,room_type"`
	PricePerHour *int64 `json:"price_per_hour" binding:"required,gt=0"`
}

// CreateRoomMessages maps each field to the message returned when it fails binding.
var CreateRoomMessages = map[string]string{
	"room_number":    room.ErrInvalidNumber.Error(),
	"type":           room.ErrInvalidType.Error(),
	"price_per_hour": room.ErrInvalidRate.Error(),
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	in := commands.CreateRoomInput{Type: r.Type}
	if r.RoomNumber != nil {
		in.RoomNumber = *r.RoomNumber
	}
	if r.PricePerHour != nil {
		in.PricePerHour = *r.PricePerHour
	}
	return in
}
