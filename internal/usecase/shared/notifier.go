package shared

import (
	"context"
	"time"
)

// BookingNotice carries what a guest sees in a booking email.
type BookingNotice struct {
	Email      string
	RoomNumber int
	RoomType   string
	StartTime  time.Time
	EndTime    time.Time
	Price      int64
}

type CancellationNotice struct {
	BookingNotice
	RefundPercent int
	RefundAmount  int64
}

// Notifier delivers guest emails out of band. Implementations must not block
// the caller on delivery and must log, not return, delivery failures.
type Notifier interface {
	BookingConfirmed(ctx context.Context, n BookingNotice)
	BookingCancelled(ctx context.Context, n CancellationNotice)
}
