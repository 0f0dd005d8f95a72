package hal

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultClockHz is the timer peripheral's input clock.
const DefaultClockHz = 30_000_000

// PeriodTicks converts an interrupt interval to the period register value.
func PeriodTicks(clockHz uint32, interval time.Duration) uint32 {
	ticks := uint64(clockHz) * uint64(interval) / uint64(time.Second)
	if ticks == 0 {
		return 0
	}
	return uint32(ticks - 1)
}

// PeriodInterval converts a period register value back to wall time.
func PeriodInterval(clockHz uint32, periodTicks uint32) time.Duration {
	if clockHz == 0 {
		return 0
	}
	return time.Duration((uint64(periodTicks) + 1) * uint64(time.Second) / uint64(clockHz))
}

// TickerTimer simulates the timer peripheral with a time.Ticker.
// An event that is still undelivered when the next one fires is dropped,
// the same way a late interrupt handler simply delays the next tick.
type TickerTimer struct {
	clockHz uint32
	events  chan struct{}
	pending atomic.Bool
	fired   atomic.Uint64
	acked   atomic.Uint64

	mu     sync.Mutex
	ticker *time.Ticker
	stop   chan struct{}
	done   chan struct{}
}

// NewTickerTimer creates a stopped timer running off clockHz.
func NewTickerTimer(clockHz uint32) *TickerTimer {
	if clockHz == 0 {
		clockHz = DefaultClockHz
	}
	return &TickerTimer{
		clockHz: clockHz,
		events:  make(chan struct{}, 1),
	}
}

// Configure (re)starts the timer with the given period.
func (t *TickerTimer) Configure(periodTicks uint32) {
	t.Stop()

	interval := PeriodInterval(t.clockHz, periodTicks)
	if interval <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.ticker = time.NewTicker(interval)
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.loop(t.ticker.C, t.stop, t.done)
}

func (t *TickerTimer) loop(c <-chan time.Time, stop, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case <-c:
			t.pending.Store(true)
			t.fired.Add(1)
			select {
			case t.events <- struct{}{}:
			default:
			}
		}
	}
}

// Acknowledge clears the pending flag.
func (t *TickerTimer) Acknowledge() {
	t.pending.Store(false)
	t.acked.Add(1)
}

// Events returns the interrupt channel.
func (t *TickerTimer) Events() <-chan struct{} {
	return t.events
}

// Pending reports whether an event is waiting for acknowledgement.
func (t *TickerTimer) Pending() bool {
	return t.pending.Load()
}

// Fired returns the number of events raised since creation.
func (t *TickerTimer) Fired() uint64 {
	return t.fired.Load()
}

// Acked returns the number of acknowledgements received.
func (t *TickerTimer) Acked() uint64 {
	return t.acked.Load()
}

// Stop halts the timer. It is safe to call on a stopped timer.
func (t *TickerTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ticker == nil {
		return
	}
	t.ticker.Stop()
	close(t.stop)
	<-t.done
	t.ticker = nil
}

// ManualTimer is a timer whose interrupts are raised by calling Fire.
// Useful for stepping the scheduler deterministically.
type ManualTimer struct {
	events  chan struct{}
	period  atomic.Uint32
	pending atomic.Bool
	acked   atomic.Uint64
}

// NewManualTimer creates a manual timer.
func NewManualTimer() *ManualTimer {
	return &ManualTimer{events: make(chan struct{})}
}

// Configure records the period; it has no other effect.
func (t *ManualTimer) Configure(periodTicks uint32) {
	t.period.Store(periodTicks)
}

// Period returns the last configured period.
func (t *ManualTimer) Period() uint32 {
	return t.period.Load()
}

// Acknowledge clears the pending flag.
func (t *ManualTimer) Acknowledge() {
	t.pending.Store(false)
	t.acked.Add(1)
}

// Events returns the interrupt channel.
func (t *ManualTimer) Events() <-chan struct{} {
	return t.events
}

// Fire raises one interrupt and blocks until a handler receives it.
func (t *ManualTimer) Fire() {
	t.pending.Store(true)
	t.events <- struct{}{}
}

// Pending reports whether an event is waiting for acknowledgement.
func (t *ManualTimer) Pending() bool {
	return t.pending.Load()
}

// Acked returns the number of acknowledgements received.
func (t *ManualTimer) Acked() uint64 {
	return t.acked.Load()
}
