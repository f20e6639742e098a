package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Dispatcher delivers notifications on background goroutines so a slow or failing
// transport never delays a booking response. Delivery failures are logged only.
type Dispatcher struct {
	sender Sender
	cfg    config.NotifyConfig
	clock  clock.Clock

	slots chan struct{}
	stop  chan struct{}

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, cfg config.NotifyConfig, clk clock.Clock) *Dispatcher {
	maxInFlight := cfg.MaxInFlight
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Dispatcher{
		sender: sender,
		cfg:    cfg,
		clock:  clk,
		slots:  make(chan struct{}, maxInFlight),
		stop:   make(chan struct{}),
	}
}

func (d *Dispatcher) BookingConfirmed(ctx context.Context, n shared.BookingNotice) {
	d.dispatch(ctx, Event{
		ID:         uuid.New(),
		Kind:       KindBookingConfirmed,
		Email:      n.Email,
		Booking:    detailsFromNotice(n),
		OccurredAt: d.clock.Now(),
	})
}

func (d *Dispatcher) BookingCancelled(ctx context.Context, n shared.CancellationNotice) {
	percent, amount := n.RefundPercent, n.RefundAmount
	d.dispatch(ctx, Event{
		ID:            uuid.New(),
		Kind:          KindBookingCancelled,
		Email:         n.Email,
		Booking:       detailsFromNotice(n.BookingNotice),
		RefundPercent: &percent,
		RefundAmount:  &amount,
		OccurredAt:    d.clock.Now(),
	})
}

func (d *Dispatcher) dispatch(ctx context.Context, ev Event) {
	logger := slog.With("event_id", ev.ID.String(), "kind", string(ev.Kind))

	if err := ev.Validate(); err != nil {
		logger.Warn("notification skipped", "error", err.Error())
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		logger.Warn("notification dropped: dispatcher closed")
		return
	}

	select {
	case d.slots <- struct{}{}:
	default:
		logger.Warn("notification dropped: too many deliveries in flight", "max_in_flight", cap(d.slots))
		return
	}

	d.wg.Add(1)
	// The request context ends with the response; delivery outlives it.
	deliveryCtx := context.WithoutCancel(ctx)
	go func() {
		defer d.wg.Done()
		defer func() { <-d.slots }()
		d.deliver(deliveryCtx, logger, ev)
	}()
}

func (d *Dispatcher) deliver(ctx context.Context, logger *slog.Logger, ev Event) {
	for attempt := 1; attempt <= d.cfg.MaxAttempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout())
		err := d.sender.Send(sendCtx, ev)
		cancel()
		if err == nil {
			logger.Info("notification delivered", "attempt", attempt)
			return
		}

		if attempt == d.cfg.MaxAttempts {
			logger.Error("notification delivery failed",
				"attempts", attempt,
				"error", err.Error())
			return
		}

		wait := d.cfg.RetryBackoff * time.Duration(attempt)
		logger.Warn("notification delivery failed, retrying",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-time.After(wait):
		case <-d.stop:
			logger.Warn("notification abandoned on shutdown", "attempt", attempt)
			return
		}
	}
}

func (d *Dispatcher) sendTimeout() time.Duration {
	if d.cfg.SendTimeout <= 0 {
		return 15 * time.Second
	}
	return d.cfg.SendTimeout
}

// Close stops accepting notifications and waits for in-flight deliveries or ctx.
// Pending retries are abandoned; an attempt already running is allowed to finish.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.stop)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
