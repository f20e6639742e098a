package response

import (
	"time"

	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
)

type RoomResponse struct {
	ID           string    `json:"id"`
	RoomNumber   int       `json:"room_number"`
	Type         string    `json:"type"`
	PricePerHour int64     `json:"price_per_hour"`
	CreatedAt    time.Time `json:"created_at"`
}

type RoomEnvelope struct {
	Room *RoomResponse `json:"room"`
}

type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:           v.ID.String(),
		RoomNumber:   v.RoomNumber,
		Type:         v.Type,
		PricePerHour: v.PricePerHour,
		CreatedAt:    v.CreatedAt.UTC(),
	}
}

func FromRoomResult(r *commands.RoomResult) *RoomResponse {
	return &RoomResponse{
		ID:           r.ID.String(),
		RoomNumber:   r.RoomNumber,
		Type:         r.Type,
		PricePerHour: r.PricePerHour,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

func FromRoomList(views []*queries.RoomView) *RoomListResponse {
	res := make([]*RoomResponse, len(views))
	for i, v := range views {
		res[i] = FromRoomView(v)
	}
	return &RoomListResponse{Rooms: res}
}
