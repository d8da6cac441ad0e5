package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalHandler intercepts SIGINT and SIGTERM while a container runs and
// cancels the run on the first one, so the wrapper can stop the engine and
// still collect its output.
type SignalHandler struct {
	signals    chan os.Signal
	stopCh     chan struct{} // closed by Stop to signal goroutine to exit
	done       chan struct{} // closed when goroutine exits
	stopOnce   sync.Once
	cancel     context.CancelFunc
	onShutdown []func()
	mu         sync.Mutex
	received   int
}

// NewSignalHandler creates a signal handler. cancel may be nil; when set it
// is called on the first signal.
func NewSignalHandler(cancel context.CancelFunc) *SignalHandler {
	return &SignalHandler{
		signals:    make(chan os.Signal, 1),
		stopCh:     make(chan struct{}),
		done:       make(chan struct{}),
		cancel:     cancel,
		onShutdown: make([]func(), 0),
	}
}

// Start begins listening for signals
func (h *SignalHandler) Start() {
	h.StartWithNotify(true)
}

// StartWithNotify begins listening for signals, optionally registering with OS signal handling.
// Pass false for notify in unit tests to avoid global signal state interactions.
func (h *SignalHandler) StartWithNotify(notify bool) {
	if notify {
		signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)
	}

	go func() {
		defer close(h.done)
		for {
			select {
			case <-h.signals:
				h.handle()
			case <-h.stopCh:
				return
			}
		}
	}()
}

func (h *SignalHandler) handle() {
	h.mu.Lock()
	h.received++
	first := h.received == 1
	callbacks := make([]func(), len(h.onShutdown))
	copy(callbacks, h.onShutdown)
	h.mu.Unlock()

	if first && h.cancel != nil {
		h.cancel()
	}

	// Execute callbacks in registration order
	for _, fn := range callbacks {
		fn()
	}
}

// OnShutdown registers a callback to run on every intercepted signal
func (h *SignalHandler) OnShutdown(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onShutdown = append(h.onShutdown, fn)
}

// Stop restores default signal handling and waits for the listener to exit
func (h *SignalHandler) Stop() {
	signal.Stop(h.signals)
	h.stopOnce.Do(func() {
		close(h.stopCh)
	})
	<-h.done
}
