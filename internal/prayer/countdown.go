package prayer

import (
	"sync"
	"time"
)

// Countdown re-derives the next prayer from a full DailyTimes value once per
// second. It keeps no incremental state between ticks beyond the previous
// result; every tick is a fresh ComputeNextPrayer over the current input.
type Countdown struct {
	// Clock supplies the reference instant; defaults to RealClock.
	Clock Clock
	// OnChange, when set, receives every freshly computed result, including
	// nil when no prayer time is available. Called from the ticker goroutine
	// and synchronously from SetTimes.
	OnChange func(*NextPrayer)

	mu      sync.Mutex
	times   DailyTimes
	current *NextPrayer

	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	started  bool
}

// NewCountdown returns a stopped countdown for times. Set Clock and OnChange
// before Start; Start computes the initial state synchronously, then ticks.
func NewCountdown(times DailyTimes) *Countdown {
	return &Countdown{
		Clock:    RealClock{},
		times:    times,
		interval: time.Second,
		stop:     make(chan struct{}),
	}
}

// Start computes the current state and launches the 1-second tick loop.
// Calling Start twice is a no-op.
func (c *Countdown) Start() {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	c.recompute()
	go c.run()
}

func (c *Countdown) run() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.recompute()
		}
	}
}

// Stop releases the ticker. Safe to call from any path, any number of times.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// SetTimes replaces the input wholesale and recomputes synchronously, so the
// exposed state never lags a full tick behind fresh data.
func (c *Countdown) SetTimes(times DailyTimes) {
	c.mu.Lock()
	c.times = times
	c.mu.Unlock()
	c.recompute()
}

// Current returns the most recently computed next prayer, nil when none.
func (c *Countdown) Current() *NextPrayer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Countdown) recompute() {
	c.mu.Lock()
	times := c.times
	c.mu.Unlock()

	next := ComputeNextPrayer(times, c.Clock.Now())

	c.mu.Lock()
	c.current = next
	onChange := c.OnChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(next)
	}
}
