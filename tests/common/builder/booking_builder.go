//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	reqdto "hotel-booking/internal/handler/dto/request"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingBuilder defaults to Room 101 (Deluxe, 500/h) booked 10:00-13:00 UTC,
// with the clock 72 hours before check-in.
type BookingBuilder struct {
	UserEmail    string
	RoomID       uuid.UUID
	RoomNumber   int
	RoomType     string
	PricePerHour int64
	Start        time.Time
	End          time.Time
	Status       booking.Status
	Now          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2030, time.March, 10, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		UserEmail:    "guest@example.com",
		RoomID:       uuid.New(),
		RoomNumber:   101,
		RoomType:     "Deluxe",
		PricePerHour: 500,
		Start:        start,
		End:          start.Add(3 * time.Hour),
		Status:       booking.StatusActive,
		Now:          start.Add(-72 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Services returns fresh domain services whose clock reads b.Now.
func (b *BookingBuilder) Services() *booking.Services {
	return &booking.Services{
		Clock:           clock.NewMockClock(b.Now),
		PriceCalculator: booking.NewHourlyPriceCalculator(),
		RefundPolicy:    booking.NewDefaultRefundPolicy(),
	}
}

func (b *BookingBuilder) Price() int64 {
	hours := int64(b.End.Sub(b.Start) / time.Hour)
	if b.End.Sub(b.Start)%time.Hour != 0 {
		hours++
	}
	return hours * b.PricePerHour
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	email, err := booking.NewEmail(b.UserEmail)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.Services(), email, booking.RoomSpec{ID: b.RoomID, PricePerHour: b.PricePerHour}, slot)
}

// BuildReconstructed skips validation, as loading from the store does.
func (b *BookingBuilder) BuildReconstructed(id uuid.UUID, status booking.Status) *booking.Booking {
	email, _ := booking.NewEmail(b.UserEmail)
	slot, _ := booking.NewTimeSlot(b.Start, b.End)
	return booking.ReconstructBooking(id, email, b.RoomID, slot, booking.NewMoney(b.Price()), status, b.Now, b.Now)
}

func (b *BookingBuilder) BuildRoomSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:           b.RoomID,
		Number:       b.RoomNumber,
		Type:         b.RoomType,
		PricePerHour: b.PricePerHour,
	}
}

func (b *BookingBuilder) BuildRow(id uuid.UUID) sqlc.Booking {
	return sqlc.Booking{
		ID:        id,
		UserEmail: b.UserEmail,
		RoomID:    b.RoomID,
		StartTime: pgconv.TimeToPgtype(b.Start),
		EndTime:   pgconv.TimeToPgtype(b.End),
		Price:     b.Price(),
		Status:    b.Status.String(),
		CreatedAt: pgconv.TimeToPgtype(b.Now),
		UpdatedAt: pgconv.TimeToPgtype(b.Now),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		UserEmail: b.UserEmail,
		RoomID:    b.RoomID.String(),
		StartTime: b.Start.Format(time.RFC3339),
		EndTime:   b.End.Format(time.RFC3339),
	}
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		UserEmail: b.UserEmail,
		RoomID:    b.RoomID,
		StartTime: b.Start,
		EndTime:   b.End,
	}
}

func (b *BookingBuilder) BuildResult(id uuid.UUID) *commands.BookingResult {
	return &commands.BookingResult{
		ID:        id,
		UserEmail: b.UserEmail,
		RoomID:    b.RoomID,
		StartTime: b.Start,
		EndTime:   b.End,
		Price:     b.Price(),
		Status:    b.Status.String(),
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *BookingBuilder) BuildView(id uuid.UUID) queries.BookingView {
	return queries.BookingView{
		ID:        id,
		UserEmail: b.UserEmail,
		RoomID:    b.RoomID,
		StartTime: b.Start,
		EndTime:   b.End,
		Price:     b.Price(),
		Status:    b.Status.String(),
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}
