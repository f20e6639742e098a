package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"
)

type BookingReadQueries interface {
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.Booking, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, r.db, sqlc.ListBookingsParams{
		RoomIds:   filter.RoomIDs,
		StartFrom: pgconv.TimePtrToPgtype(filter.StartFrom),
		EndUntil:  pgconv.TimePtrToPgtype(filter.EndUntil),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.BookingView{
			ID:        row.ID,
			UserEmail: row.UserEmail,
			RoomID:    row.RoomID,
			StartTime: pgconv.TimeFromPgtype(row.StartTime),
			EndTime:   pgconv.TimeFromPgtype(row.EndTime),
			Price:     row.Price,
			Status:    row.Status,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}
