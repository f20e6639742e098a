package repository

import (
	"context"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (sqlc.Room, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{queries: queries}
}

// Create returns the stored room, carrying the database creation timestamp.
func (r *RoomRepository) Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (*room.Room, error) {
	params, err := converter.RoomToCreateParams(rm)
	if err != nil {
		return nil, infra.WrapRepoErr("room number does not fit the store", err, infra.KindCheckViolated)
	}
	row, err := r.queries.CreateRoom(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create room", err)
	}
	return converter.RoomFromRow(row), nil
}
