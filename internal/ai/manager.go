package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval is used when NewTickManager gets a non-positive interval.
const DefaultTickInterval = 250 * time.Millisecond

// stopTimeout bounds Stop() calls made during shutdown, after ctx is already canceled.
const stopTimeout = 5 * time.Second

// TickManager ticks all registered controllers from a single goroutine.
// Controllers that report IsDone are stopped and unregistered automatically.
type TickManager struct {
	controllers     sync.Map // map[string]Controller: id → controller
	controllerCount atomic.Int32
	interval        time.Duration
	stopCh          chan struct{}
	stopOnce        sync.Once

	// waiters are closed when the last controller is unregistered.
	mu      sync.Mutex
	waiters []chan struct{}
}

// NewTickManager creates new tick manager
func NewTickManager(interval time.Duration) *TickManager {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &TickManager{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Interval returns tick interval.
func (m *TickManager) Interval() time.Duration {
	return m.interval
}

// Register starts controller and adds it to the tick loop.
// Returns error if id is already taken.
func (m *TickManager) Register(ctx context.Context, id string, controller Controller) error {
	m.mu.Lock()
	if _, loaded := m.controllers.LoadOrStore(id, controller); loaded {
		m.mu.Unlock()
		return fmt.Errorf("controller %q already registered", id)
	}
	m.controllerCount.Add(1)
	m.mu.Unlock()

	controller.Start(ctx)

	slog.Debug("controller registered",
		"id", id,
		"intention", controller.CurrentIntention())
	return nil
}

// Unregister stops controller and removes it from the tick loop.
func (m *TickManager) Unregister(ctx context.Context, id string) {
	value, ok := m.controllers.LoadAndDelete(id)
	if !ok {
		return
	}

	controller := value.(Controller)
	controller.Stop(ctx)

	m.mu.Lock()
	if m.controllerCount.Add(-1) == 0 {
		for _, ch := range m.waiters {
			close(ch)
		}
		m.waiters = nil
	}
	m.mu.Unlock()

	slog.Debug("controller unregistered", "id", id)
}

// Start runs the tick loop (blocks until context is canceled or Stop is called).
// On exit every remaining controller is stopped and unregistered.
func (m *TickManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	slog.Info("tick manager started", "interval", m.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("tick manager stopping", "controllers", m.Count())
			m.stopAll(ctx)
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("tick manager stopped", "controllers", m.Count())
			m.stopAll(ctx)
			return nil

		case <-ticker.C:
			m.tickAll(ctx)
		}
	}
}

// Stop stops tick loop. Safe to call more than once.
func (m *TickManager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// Wait blocks until no controllers are registered or ctx is done.
func (m *TickManager) Wait(ctx context.Context) error {
	m.mu.Lock()
	if m.controllerCount.Load() == 0 {
		m.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	m.waiters = append(m.waiters, ch)
	m.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// tickAll ticks every controller once and retires the finished ones.
func (m *TickManager) tickAll(ctx context.Context) {
	count := 0
	var finished []string

	m.controllers.Range(func(key, value any) bool {
		controller := value.(Controller)
		if !controller.IsDone() {
			controller.Tick(ctx)
			count++
		}
		if controller.IsDone() {
			finished = append(finished, key.(string))
		}
		return true
	})

	for _, id := range finished {
		m.Unregister(ctx, id)
	}

	if count > 0 && IsDebugEnabled() {
		slog.Debug("tick completed", "controllers", count, "finished", len(finished))
	}
}

// stopAll unregisters everything with a context that outlives the canceled parent.
func (m *TickManager) stopAll(parent context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), stopTimeout)
	defer cancel()

	var ids []string
	m.controllers.Range(func(key, _ any) bool {
		ids = append(ids, key.(string))
		return true
	})
	for _, id := range ids {
		m.Unregister(ctx, id)
	}
}

// Count returns number of registered controllers (O(1) cached count)
func (m *TickManager) Count() int {
	return int(m.controllerCount.Load())
}

// GetController returns controller by id
func (m *TickManager) GetController(id string) (Controller, error) {
	value, ok := m.controllers.Load(id)
	if !ok {
		return nil, fmt.Errorf("controller not found for id %q", id)
	}
	return value.(Controller), nil
}
