package queries

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReadUnavailable = errs.Sentinel("Booking store is unavailable", errs.ErrUnavailable)

type RoomReadStore interface {
	List(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*RoomView, error)
}

type RoomQueries interface {
	List(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

// List returns every room ordered by room number.
func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.store.List(ctx, RoomFilter{})
	if err != nil {
		return nil, translateReadErr(err)
	}
	if rooms == nil {
		rooms = []*RoomView{}
	}
	return rooms, nil
}

func translateReadErr(err error) error {
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, ErrReadUnavailable)
	}
	return err
}
