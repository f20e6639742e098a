//go:build unit

package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"
	notifymock "hotel-booking/tests/mock/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2030, time.March, 1, 12, 0, 0, 0, time.UTC)

func testNotifyConfig() config.NotifyConfig {
	return config.NotifyConfig{
		Transport:    config.TransportNone,
		MaxAttempts:  3,
		RetryBackoff: time.Millisecond,
		SendTimeout:  time.Second,
		MaxInFlight:  4,
	}
}

func notice() shared.BookingNotice {
	return shared.BookingNotice{
		Email:      "guest@example.com",
		RoomNumber: 101,
		RoomType:   "Deluxe",
		StartTime:  time.Date(2030, time.March, 10, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2030, time.March, 10, 13, 0, 0, 0, time.UTC),
		Price:      1500,
	}
}

func closeDispatcher(t *testing.T, d *notify.Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
}

func TestDispatcher_BookingConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifymock.NewMockSender(ctrl)
	d := notify.NewDispatcher(sender, testNotifyConfig(), clock.NewMockClock(testNow))

	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, ev notify.Event) error {
		assert.Equal(t, notify.KindBookingConfirmed, ev.Kind)
		assert.Equal(t, "guest@example.com", ev.Email)
		if assert.NotNil(t, ev.Booking.RoomNumber) {
			assert.Equal(t, 101, *ev.Booking.RoomNumber)
		}
		if assert.NotNil(t, ev.Booking.Price) {
			assert.Equal(t, int64(1500), *ev.Booking.Price)
		}
		assert.Nil(t, ev.RefundPercent)
		assert.Equal(t, testNow, ev.OccurredAt)
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	})

	d.BookingConfirmed(context.Background(), notice())
	closeDispatcher(t, d)
}

func TestDispatcher_RequestContextCancellationDoesNotAbortDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifymock.NewMockSender(ctrl)
	d := notify.NewDispatcher(sender, testNotifyConfig(), clock.NewMockClock(testNow))

	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, ev notify.Event) error {
		<-release
		return ctx.Err()
	})

	n := shared.CancellationNotice{BookingNotice: notice(), RefundPercent: 50, RefundAmount: 750}
	d.BookingCancelled(ctx, n)
	cancel()
	close(release)

	closeDispatcher(t, d)
}

func TestDispatcher_RetriesUntilSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifymock.NewMockSender(ctrl)
	d := notify.NewDispatcher(sender, testNotifyConfig(), clock.NewMockClock(testNow))

	gomock.InOrder(
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("421 try later")),
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("421 try later")),
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
	)

	d.BookingConfirmed(context.Background(), notice())
	closeDispatcher(t, d)
}

func TestDispatcher_GivesUpAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifymock.NewMockSender(ctrl)
	cfg := testNotifyConfig()
	cfg.MaxAttempts = 2
	d := notify.NewDispatcher(sender, cfg, clock.NewMockClock(testNow))

	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("down")).Times(2)

	d.BookingConfirmed(context.Background(), notice())
	closeDispatcher(t, d)
}

func TestDispatcher_SkipsNoticeWithoutRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifymock.NewMockSender(ctrl)
	d := notify.NewDispatcher(sender, testNotifyConfig(), clock.NewMockClock(testNow))

	n := notice()
	n.Email = ""
	d.BookingConfirmed(context.Background(), n)
	closeDispatcher(t, d)
}

func TestDispatcher_DropsWhenSaturated(t *testing.T) {
	cfg := testNotifyConfig()
	cfg.MaxInFlight = 1
	sender := &blockingSender{release: make(chan struct{}), started: make(chan struct{}, 4)}
	d := notify.NewDispatcher(sender, cfg, clock.NewMockClock(testNow))

	d.BookingConfirmed(context.Background(), notice())
	<-sender.started
	d.BookingConfirmed(context.Background(), notice())

	close(sender.release)
	closeDispatcher(t, d)
	assert.Equal(t, 1, sender.count())
}

func TestDispatcher_CloseRejectsNewWorkAndIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := notifymock.NewMockSender(ctrl)
	d := notify.NewDispatcher(sender, testNotifyConfig(), clock.NewMockClock(testNow))

	closeDispatcher(t, d)
	d.BookingConfirmed(context.Background(), notice())
	closeDispatcher(t, d)
}

func TestDispatcher_CloseHonoursDeadline(t *testing.T) {
	sender := &blockingSender{release: make(chan struct{}), started: make(chan struct{}, 1)}
	d := notify.NewDispatcher(sender, testNotifyConfig(), clock.NewMockClock(testNow))
	defer close(sender.release)

	d.BookingConfirmed(context.Background(), notice())
	<-sender.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)
}

type blockingSender struct {
	release chan struct{}
	started chan struct{}

	mu    sync.Mutex
	calls int
}

func (s *blockingSender) Send(ctx context.Context, ev notify.Event) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	s.started <- struct{}{}
	<-s.release
	return nil
}

func (s *blockingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
