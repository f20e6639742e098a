//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hotel-booking/internal/handler/dto/request"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID           uuid.UUID
	RoomNumber   int
	Type         string
	PricePerHour int64
	CreatedAt    time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:           uuid.New(),
		RoomNumber:   101,
		Type:         "Deluxe",
		PricePerHour: 500,
		CreatedAt:    time.Date(2030, time.January, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildRow() sqlc.Room {
	number, err := pgconv.IntToInt32(b.RoomNumber)
	if err != nil {
		panic(err)
	}
	return sqlc.Room{
		ID:           b.ID,
		RoomNumber:   number,
		Type:         b.Type,
		PricePerHour: b.PricePerHour,
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:           b.ID,
		RoomNumber:   b.RoomNumber,
		Type:         b.Type,
		PricePerHour: b.PricePerHour,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *RoomBuilder) BuildResult() *commands.RoomResult {
	return &commands.RoomResult{
		ID:           b.ID,
		RoomNumber:   b.RoomNumber,
		Type:         b.Type,
		PricePerHour: b.PricePerHour,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	number, price := b.RoomNumber, b.PricePerHour
	return reqdto.CreateRoomRequest{
		RoomNumber:   &number,
		Type:         b.Type,
		PricePerHour: &price,
	}
}
