// Package shutdown coordinates orderly teardown of application components
// when the window closes or a termination signal arrives.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"gometrics/internal/logger"
)

type hook struct {
	name string
	fn   func()
}

// Manager runs registered teardown hooks exactly once, in reverse
// registration order, each bounded by a timeout.
type Manager struct {
	mu     sync.Mutex
	hooks  []hook
	log    logger.Logger
	done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		log:    log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a named teardown hook. Hooks run in reverse registration
// order so dependents stop before their dependencies.
func (m *Manager) Register(name string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook{name: name, fn: fn})
}

// Listen starts watching for SIGINT and SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.log.Info("Shutdown", "termination signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	}()
}

// Shutdown cancels the shared context and runs every hook. Subsequent calls
// are no-ops.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.log.Info("Shutdown", "teardown started", map[string]interface{}{
		"hooks": len(m.hooks),
	})

	m.cancel()

	for i := len(m.hooks) - 1; i >= 0; i-- {
		h := m.hooks[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			h.fn()
		}()

		select {
		case <-finished:
		case <-time.After(5 * time.Second):
			m.log.Warning("Shutdown", "hook timed out", map[string]interface{}{
				"hook": h.name,
			})
		}
	}

	m.log.Info("Shutdown", "teardown completed", nil)
}

// Context is cancelled as soon as shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}
