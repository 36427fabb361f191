package health

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Pinger checks reachability of the backing store. pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type state int

const (
	stateOnline state = iota
	// stateOffline means the last ping failed and the grace timer is running.
	stateOffline
	// stateAlerted means the grace period elapsed without recovery and the
	// outage has been reported. No further alerts until the store recovers.
	stateAlerted
)

// Monitor watches the store with periodic pings and reports an outage once it
// outlasts a grace period. All state lives in the run goroutine; flapping
// connections inside the grace window never alert.
type Monitor struct {
	pinger   Pinger
	logger   *slog.Logger
	interval time.Duration
	grace    time.Duration

	healthy atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor creates a monitor. interval is the ping cadence, grace is how
// long the store may stay unreachable before the outage is reported.
func NewMonitor(pinger Pinger, logger *slog.Logger, interval, grace time.Duration) *Monitor {
	m := &Monitor{
		pinger:   pinger,
		logger:   logger,
		interval: interval,
		grace:    grace,
	}
	m.healthy.Store(true)
	return m
}

// Healthy reports the result of the most recent ping.
func (m *Monitor) Healthy() bool {
	return m.healthy.Load()
}

// Start launches the monitoring goroutine. Calling Start twice without Stop
// is a no-op.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})
	go m.run(ctx)
}

// Stop terminates the monitoring goroutine and waits for it to exit.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel = nil
	m.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	current := stateOnline
	var offlineSince time.Time

	// The grace timer is created on the first failed ping and cancelled on
	// recovery. A nil channel blocks forever, so the select ignores it while
	// online.
	var graceTimer *time.Timer
	var graceCh <-chan time.Time

	stopGrace := func() {
		if graceTimer != nil {
			graceTimer.Stop()
			graceTimer = nil
			graceCh = nil
		}
	}
	defer stopGrace()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, m.interval)
			err := m.pinger.Ping(pingCtx)
			cancel()

			if err == nil {
				m.healthy.Store(true)
				if current != stateOnline {
					m.logger.Info("Store connection restored",
						slog.Duration("downtime", time.Since(offlineSince)))
					current = stateOnline
					stopGrace()
				}
				continue
			}

			m.healthy.Store(false)
			if current == stateOnline {
				offlineSince = time.Now()
				current = stateOffline
				m.logger.Warn("Store ping failed, starting grace period",
					slog.String("error", err.Error()),
					slog.Duration("grace", m.grace))
				graceTimer = time.NewTimer(m.grace)
				graceCh = graceTimer.C
			}

		case <-graceCh:
			if current == stateOffline {
				current = stateAlerted
				m.logger.Error("Store unreachable beyond grace period",
					slog.Time("offline_since", offlineSince))
			}
			stopGrace()
		}
	}
}
