package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Room, error)
	ListRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomsParams) ([]sqlc.Room, error)
	ListRoomsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Room, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by id", err)
	}
	return toRoomView(row)
}

// Snapshot serves the write side, which only needs pricing data.
func (r *RoomReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	v, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.RoomSnapshot{
		ID:           v.ID,
		Number:       v.RoomNumber,
		Type:         v.Type,
		PricePerHour: v.PricePerHour,
	}, nil
}

func (r *RoomReadStore) List(ctx context.Context, filter queries.RoomFilter) ([]*queries.RoomView, error) {
	number, err := pgconv.IntPtrToPgInt4(filter.RoomNumber)
	if err != nil {
		// No stored room can carry a number outside int4
		return []*queries.RoomView{}, nil
	}
	rows, err := r.queries.ListRooms(ctx, r.db, sqlc.ListRoomsParams{
		RoomNumber: number,
		Type:       pgconv.StringPtrToPgtype(filter.Type),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return toRoomViews(rows)
}

func (r *RoomReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.RoomView, error) {
	if len(ids) == 0 {
		return []*queries.RoomView{}, nil
	}
	rows, err := r.queries.ListRoomsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms by ids", err)
	}
	return toRoomViews(rows)
}

var roomCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: pgtype.Timestamptz{},
			DstType: time.Time{},
			Fn: func(src interface{}) (interface{}, error) {
				return pgconv.TimeFromPgtype(src.(pgtype.Timestamptz)), nil
			},
		},
	},
}

func toRoomView(row sqlc.Room) (*queries.RoomView, error) {
	var v queries.RoomView
	if err := copier.CopyWithOption(&v, &row, roomCopyOption); err != nil {
		return nil, infra.WrapRepoErr("failed to map room row", err, infra.KindDBFailure)
	}
	return &v, nil
}

func toRoomViews(rows []sqlc.Room) ([]*queries.RoomView, error) {
	views := make([]*queries.RoomView, 0, len(rows))
	for _, row := range rows {
		v, err := toRoomView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
