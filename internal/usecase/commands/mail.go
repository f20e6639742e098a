package commands

import (
	"context"
	"strings"
	"time"

	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingEmail           = errs.Sentinel("Missing email", errs.ErrInvalidInput)
	ErrConfirmationMailFailed = errs.Sentinel("Failed to send confirmation email.", errs.ErrUnavailable)
	ErrCancellationMailFailed = errs.Sentinel("Failed to send cancellation email.", errs.ErrUnavailable)
)

type MailSender interface {
	Send(ctx context.Context, ev notify.Event) error
}

// MailInput describes an ad-hoc booking email; every booking detail is optional.
type MailInput struct {
	Email         string
	RoomNumber    *int
	RoomType      *string
	StartTime     *time.Time
	EndTime       *time.Time
	Price         *int64
	RefundPercent *int
	RefundAmount  *int64
}

type MailCommands interface {
	SendBookingConfirmation(ctx context.Context, in MailInput) error
	SendBookingCancellation(ctx context.Context, in MailInput) error
}

type mailUseCaseImpl struct {
	sender MailSender
	clock  clock.Clock
}

func NewMailUseCase(sender MailSender, clk clock.Clock) MailCommands {
	return &mailUseCaseImpl{sender: sender, clock: clk}
}

// Unlike booking notifications these are sent synchronously so the caller learns the outcome.
func (uc *mailUseCaseImpl) SendBookingConfirmation(ctx context.Context, in MailInput) error {
	if strings.TrimSpace(in.Email) == "" {
		return ErrMissingEmail
	}
	ev := uc.event(notify.KindBookingConfirmed, in)
	if err := uc.sender.Send(ctx, ev); err != nil {
		return errs.Mark(err, ErrConfirmationMailFailed)
	}
	return nil
}

func (uc *mailUseCaseImpl) SendBookingCancellation(ctx context.Context, in MailInput) error {
	if strings.TrimSpace(in.Email) == "" {
		return ErrMissingEmail
	}
	ev := uc.event(notify.KindBookingCancelled, in)
	ev.RefundPercent = in.RefundPercent
	ev.RefundAmount = in.RefundAmount
	if err := uc.sender.Send(ctx, ev); err != nil {
		return errs.Mark(err, ErrCancellationMailFailed)
	}
	return nil
}

func (uc *mailUseCaseImpl) event(kind notify.EventKind, in MailInput) notify.Event {
	return notify.Event{
		ID:    uuid.New(),
		Kind:  kind,
		Email: strings.TrimSpace(in.Email),
		Booking: notify.BookingDetails{
			RoomNumber: in.RoomNumber,
			RoomType:   in.RoomType,
			StartTime:  in.StartTime,
			EndTime:    in.EndTime,
			Price:      in.Price,
		},
		OccurredAt: uc.clock.Now(),
	}
}
