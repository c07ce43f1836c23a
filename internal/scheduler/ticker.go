// Package scheduler runs periodic tasks on an injectable clock.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/litescript/spacescope/internal/logging"
)

// Ticker runs a task on a fixed interval. Ticks never overlap: the task runs
// on a single goroutine and must return before the next tick is taken.
type Ticker struct {
	name     string
	interval time.Duration
	task     func()
	clock    clockwork.Clock
	logger   *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// Option configures a Ticker.
type Option func(*Ticker)

// WithClock sets the clock driving the ticker.
func WithClock(c clockwork.Clock) Option {
	return func(t *Ticker) { t.clock = c }
}

// WithLogger sets the ticker logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Ticker) { t.logger = l }
}

// NewTicker creates a stopped ticker. Non-positive intervals default to 5s.
func NewTicker(name string, interval time.Duration, task func(), opts ...Option) *Ticker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	t := &Ticker{
		name:     name,
		interval: interval,
		task:     task,
		clock:    clockwork.NewRealClock(),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Interval returns the tick interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Start begins ticking in the background. It returns false if the ticker is
// already running. The ticker stops when ctx is cancelled or Stop is called.
func (t *Ticker) Start(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})
	t.running = true

	// The clock ticker is created before Start returns so a fake clock
	// advanced immediately afterwards is observed.
	ticker := t.clock.NewTicker(t.interval)
	go t.loop(ctx, ticker, t.done)
	return true
}

func (t *Ticker) loop(ctx context.Context, ticker clockwork.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()
	defer func() {
		t.mu.Lock()
		t.running = false
		t.mu.Unlock()
	}()

	t.logger.Info("ticker started", "name", t.name, "interval", t.interval)
	for {
		select {
		case <-ticker.Chan():
			t.task()
		case <-ctx.Done():
			t.logger.Info("ticker stopped", "name", t.name)
			return
		}
	}
}

// Stop halts the ticker and waits for an in-flight task to finish. It is a
// no-op when the ticker is not running.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel = nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the ticker loop is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
