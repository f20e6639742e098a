package converter

import (
	"hotel-booking/internal/domain/room"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func RoomToCreateParams(r *room.Room) (sqlc.CreateRoomParams, error) {
	number, err := pgconv.IntToInt32(r.Number())
	if err != nil {
		return sqlc.CreateRoomParams{}, err
	}
	return sqlc.CreateRoomParams{
		ID:           r.ID(),
		RoomNumber:   number,
		Type:         r.Type().String(),
		PricePerHour: r.PricePerHour(),
	}, nil
}

func RoomFromRow(row sqlc.Room) *room.Room {
	return room.ReconstructRoom(
		row.ID,
		int(row.RoomNumber),
		room.Type(row.Type),
		row.PricePerHour,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
