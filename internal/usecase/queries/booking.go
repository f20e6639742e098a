package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
}

type BookingQueries interface {
	List(ctx context.Context, in ListBookingsInput) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	rooms    RoomReadStore
}

func NewBookingQueries(bookings BookingReadStore, rooms RoomReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, rooms: rooms}
}

func (q *bookingQueriesImpl) List(ctx context.Context, in ListBookingsInput) ([]*BookingListItem, error) {
	filter := BookingFilter{
		StartFrom: in.StartFrom,
		EndUntil:  in.EndUntil,
	}

	roomFilter := RoomFilter{RoomNumber: in.RoomNumber, Type: in.RoomType}
	var roomsByID map[uuid.UUID]*RoomView
	if !roomFilter.IsEmpty() {
		rooms, err := q.rooms.List(ctx, roomFilter)
		if err != nil {
			return nil, translateReadErr(err)
		}
		// A room filter that matches nothing must not widen to every booking
		if len(rooms) == 0 {
			return []*BookingListItem{}, nil
		}
		roomsByID = indexRooms(rooms)
		filter.RoomIDs = make([]uuid.UUID, 0, len(rooms))
		for _, r := range rooms {
			filter.RoomIDs = append(filter.RoomIDs, r.ID)
		}
	}

	bookings, err := q.bookings.List(ctx, filter)
	if err != nil {
		return nil, translateReadErr(err)
	}

	if roomsByID == nil && len(bookings) > 0 {
		rooms, err := q.rooms.FindByIDs(ctx, distinctRoomIDs(bookings))
		if err != nil {
			return nil, translateReadErr(err)
		}
		roomsByID = indexRooms(rooms)
	}

	items := make([]*BookingListItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, &BookingListItem{
			BookingView: *b,
			Room:        roomsByID[b.RoomID],
		})
	}
	return items, nil
}

func indexRooms(rooms []*RoomView) map[uuid.UUID]*RoomView {
	m := make(map[uuid.UUID]*RoomView, len(rooms))
	for _, r := range rooms {
		m[r.ID] = r
	}
	return m
}

func distinctRoomIDs(bookings []*BookingView) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(bookings))
	ids := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.RoomID]; ok {
			continue
		}
		seen[b.RoomID] = struct{}{}
		ids = append(ids, b.RoomID)
	}
	return ids
}
