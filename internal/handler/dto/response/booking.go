package response

import (
	"time"

	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	RoomID    string    `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Price     int64     `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingEnvelope struct {
	Booking *BookingResponse `json:"booking"`
}

type CancelBookingResponse struct {
	Booking       *BookingResponse `json:"booking"`
	RefundPercent int              `json:"refund_percent"`
	RefundAmount  int64            `json:"refund_amount"`
}

type BookingListItemResponse struct {
	BookingResponse
	Room *RoomResponse `json:"room"`
}

type BookingListResponse struct {
	Bookings []*BookingListItemResponse `json:"bookings"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		ID:        r.ID.String(),
		UserEmail: r.UserEmail,
		RoomID:    r.RoomID.String(),
		StartTime: r.StartTime.UTC(),
		EndTime:   r.EndTime.UTC(),
		Price:     r.Price,
		Status:    r.Status,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func FromCancelResult(r *commands.CancelBookingResult) *CancelBookingResponse {
	return &CancelBookingResponse{
		Booking:       FromBookingResult(&r.Booking),
		RefundPercent: r.RefundPercent,
		RefundAmount:  r.RefundAmount,
	}
}

func FromBookingList(items []*queries.BookingListItem) *BookingListResponse {
	res := make([]*BookingListItemResponse, len(items))
	for i, it := range items {
		res[i] = &BookingListItemResponse{
			BookingResponse: BookingResponse{
				ID:        it.ID.String(),
				UserEmail: it.UserEmail,
				RoomID:    it.RoomID.String(),
				StartTime: it.StartTime.UTC(),
				EndTime:   it.EndTime.UTC(),
				Price:     it.Price,
				Status:    it.Status,
				CreatedAt: it.CreatedAt.UTC(),
				UpdatedAt: it.UpdatedAt.UTC(),
			},
		}
		if it.Room != nil {
			res[i].Room = FromRoomView(it.Room)
		}
	}
	return &BookingListResponse{Bookings: res}
}
