package converter

import (
	"hotel-booking/internal/domain/booking"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:        b.ID(),
		UserEmail: b.UserEmail().String(),
		RoomID:    b.RoomID(),
		StartTime: pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndTime:   pgconv.TimeToPgtype(b.TimeSlot().End()),
		Price:     b.Price().Amount(),
		Status:    b.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:        b.ID(),
		UserEmail: b.UserEmail().String(),
		RoomID:    b.RoomID(),
		StartTime: pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndTime:   pgconv.TimeToPgtype(b.TimeSlot().End()),
		Price:     b.Price().Amount(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow rebuilds the aggregate; rows violating the table constraints are reported, not repaired.
func BookingFromRow(row sqlc.Booking) (*booking.Booking, error) {
	email, err := booking.NewEmail(row.UserEmail)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	return booking.ReconstructBooking(
		row.ID,
		email,
		row.RoomID,
		slot,
		booking.NewMoney(row.Price),
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
