package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingFields    = errs.Sentinel("Missing or invalid fields: user_email, room_id, start_time, end_time", errs.ErrInvalidInput)
	ErrRoomNotFound     = errs.Sentinel("Room not found", errs.ErrNotFound)
	ErrBookingNotFound  = errs.Sentinel("Booking not found", errs.ErrNotFound)
	ErrBookingConflict  = errs.Sentinel("Overlapping booking exists for this room and time range", errs.ErrConflict)
	ErrStoreUnavailable = errs.Sentinel("Booking store is unavailable", errs.ErrUnavailable)
)

type CreateBookingInput struct {
	UserEmail string
	RoomID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

// UpdateBookingInput is a patch: nil fields keep the stored value.
type UpdateBookingInput struct {
	UserEmail *string
	RoomID    *uuid.UUID
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
}

type BookingResult struct {
	ID        uuid.UUID
	UserEmail string
	RoomID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Price     int64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CancelBookingResult struct {
	Booking       BookingResult
	RefundPercent int
	RefundAmount  int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, in UpdateBookingInput) (*BookingResult, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*CancelBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	notifier shared.Notifier
}

func NewBookingUseCase(uow shared.UnitOfWork, services *booking.Services, notifier shared.Notifier) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		services: services,
		notifier: notifier,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error) {
	if strings.TrimSpace(in.UserEmail) == "" || in.RoomID == uuid.Nil || in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, ErrMissingFields
	}
	email, err := booking.NewEmail(in.UserEmail)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	slot, err := booking.NewTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	var created *booking.Booking
	var rm *shared.RoomSnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		rm, derr = tx.Reads().RoomByID(ctx, in.RoomID)
		if derr != nil {
			return translateRoomErr(derr)
		}

		if derr = ensureSlotFree(ctx, tx, rm.ID, slot, nil); derr != nil {
			return derr
		}

		b, derr := booking.NewBooking(uc.services, email, booking.RoomSpec{ID: rm.ID, PricePerHour: rm.PricePerHour}, slot)
		if derr != nil {
			return errs.Mark(derr, errs.ErrInvalidInput)
		}
		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return translateBookingWriteErr(derr)
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.BookingConfirmed(ctx, bookingNotice(created, rm))
	return toBookingResult(created), nil
}

func (uc *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id uuid.UUID, in UpdateBookingInput) (*BookingResult, error) {
	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return translateBookingReadErr(derr)
		}

		status := patch.CoalesceAs(in.Status, func(s string) booking.Status { return booking.Status(s) }, existing.Status())
		if derr = existing.CanModify(status); derr != nil {
			return markLifecycleErr(derr)
		}

		email, derr := booking.NewEmail(patch.Coalesce(in.UserEmail, existing.UserEmail().String()))
		if derr != nil {
			return errs.Mark(derr, errs.ErrInvalidInput)
		}
		slot, derr := booking.NewTimeSlot(
			patch.Coalesce(in.StartTime, existing.TimeSlot().Start()),
			patch.Coalesce(in.EndTime, existing.TimeSlot().End()),
		)
		if derr != nil {
			return errs.Mark(derr, errs.ErrInvalidInput)
		}

		roomID := patch.Coalesce(in.RoomID, existing.RoomID())
		rm, derr := tx.Reads().RoomByID(ctx, roomID)
		if derr != nil {
			return translateRoomErr(derr)
		}

		// Runs even when only the email or status changed
		if derr = ensureSlotFree(ctx, tx, rm.ID, slot, &id); derr != nil {
			return derr
		}

		derr = existing.Modify(uc.services, booking.Changes{
			UserEmail: email,
			Room:      booking.RoomSpec{ID: rm.ID, PricePerHour: rm.PricePerHour},
			TimeSlot:  slot,
			Status:    status,
		})
		if derr != nil {
			return markLifecycleErr(derr)
		}

		if derr = tx.Bookings().Update(ctx, tx.DB(), existing); derr != nil {
			return translateBookingWriteErr(derr)
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBookingResult(updated), nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) (*CancelBookingResult, error) {
	var cancelled *booking.Booking
	var refund booking.Refund
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return translateBookingReadErr(derr)
		}

		refund, derr = existing.Cancel(uc.services)
		if derr != nil {
			return markLifecycleErr(derr)
		}

		if derr = tx.Bookings().Update(ctx, tx.DB(), existing); derr != nil {
			return translateBookingWriteErr(derr)
		}
		cancelled = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifyCancelled(ctx, cancelled, refund)

	return &CancelBookingResult{
		Booking:       *toBookingResult(cancelled),
		RefundPercent: refund.Percent,
		RefundAmount:  refund.Amount.Amount(),
	}, nil
}

// Room details only decorate the email, so a failed lookup still sends it.
func (uc *bookingUseCaseImpl) notifyCancelled(ctx context.Context, b *booking.Booking, refund booking.Refund) {
	rm, err := uc.uow.CommandReads().RoomByID(ctx, b.RoomID())
	if err != nil {
		slog.Warn("room lookup for cancellation email failed",
			"booking_id", b.ID().String(),
			"error", err.Error())
		rm = nil
	}
	uc.notifier.BookingCancelled(ctx, shared.CancellationNotice{
		BookingNotice: bookingNotice(b, rm),
		RefundPercent: refund.Percent,
		RefundAmount:  refund.Amount.Amount(),
	})
}

func ensureSlotFree(ctx context.Context, tx shared.Tx, roomID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) error {
	n, err := tx.Bookings().CountOverlapping(ctx, tx.DB(), roomID, slot, excludeID)
	if err != nil {
		return translateBookingWriteErr(err)
	}
	if n > 0 {
		return ErrBookingConflict
	}
	return nil
}

func markLifecycleErr(err error) error {
	if errs.Is(err, booking.ErrBookingCancelled) {
		return errs.Mark(err, errs.ErrConflict)
	}
	return errs.Mark(err, errs.ErrInvalidInput)
}

func translateRoomErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrRoomNotFound)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return err
}

func translateBookingReadErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrBookingNotFound)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return err
}

// The exclusion constraint catches the writer that loses a concurrent race past the pre-check.
func translateBookingWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrBookingConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrRoomNotFound)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrBookingNotFound)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return err
}

func bookingNotice(b *booking.Booking, rm *shared.RoomSnapshot) shared.BookingNotice {
	n := shared.BookingNotice{
		Email:     b.UserEmail().String(),
		StartTime: b.TimeSlot().Start(),
		EndTime:   b.TimeSlot().End(),
		Price:     b.Price().Amount(),
	}
	if rm != nil {
		n.RoomNumber = rm.Number
		n.RoomType = rm.Type
	}
	return n
}

func toBookingResult(b *booking.Booking) *BookingResult {
	return &BookingResult{
		ID:        b.ID(),
		UserEmail: b.UserEmail().String(),
		RoomID:    b.RoomID(),
		StartTime: b.TimeSlot().Start(),
		EndTime:   b.TimeSlot().End(),
		Price:     b.Price().Amount(),
		Status:    b.Status().String(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}
