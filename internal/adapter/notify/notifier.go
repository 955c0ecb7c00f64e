// Package notify delivers lifecycle notifications to external listeners on a
// dedicated goroutine, in the order they were posted.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang-wifid/internal/pkg/logging"
	"golang-wifid/internal/types"

	"github.com/sirupsen/logrus"
)

// Notifier fans out interface, status, interface-event and radio-mode notifications.
type Notifier struct {
	logger *logrus.Entry

	mu      sync.Mutex
	queue   []func()
	signal  chan struct{}
	running bool

	listenersMu     sync.Mutex
	statusListeners []types.StatusListener
	radioListeners  []types.RadioModeListener
	eventCallback   types.InterfaceEventCallback
}

// New creates a notifier. Posted notifications are held until Run is called.
func New() *Notifier {
	return &Notifier{
		logger: logging.WithComponent("notifier"),
		signal: make(chan struct{}, 1),
	}
}

// Run delivers notifications until ctx is cancelled, then delivers whatever is still queued.
func (n *Notifier) Run(ctx context.Context) error {
	n.mu.Lock()
	if n.running {
		n.mu.Unlock()
		return fmt.Errorf("notifier already running")
	}
	n.running = true
	n.mu.Unlock()

	defer func() {
		n.drain()
		n.mu.Lock()
		n.running = false
		n.mu.Unlock()
	}()

	for {
		n.drain()
		select {
		case <-ctx.Done():
			return nil
		case <-n.signal:
		}
	}
}

func (n *Notifier) drain() {
	for {
		n.mu.Lock()
		if len(n.queue) == 0 {
			n.mu.Unlock()
			return
		}
		fn := n.queue[0]
		n.queue[0] = nil
		n.queue = n.queue[1:]
		n.mu.Unlock()

		n.deliver(fn)
	}
}

func (n *Notifier) deliver(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Errorf("Listener panicked: %v", r)
		}
	}()
	fn()
}

// Post queues fn for delivery.
func (n *Notifier) Post(fn func()) {
	n.mu.Lock()
	n.queue = append(n.queue, fn)
	n.mu.Unlock()

	select {
	case n.signal <- struct{}{}:
	default:
	}
}

// Flush waits until everything posted so far was delivered. It reports false on timeout.
func (n *Notifier) Flush(timeout time.Duration) bool {
	delivered := make(chan struct{})
	n.Post(func() { close(delivered) })

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-delivered:
		return true
	case <-timer.C:
		n.logger.Warnf("Listeners did not finish within %v", timeout)
		return false
	}
}

// InterfaceUp queues cb.OnUp(name).
func (n *Notifier) InterfaceUp(cb types.InterfaceCallback, name string) {
	if cb == nil {
		return
	}
	n.Post(func() { cb.OnUp(name) })
}

// InterfaceDown queues cb.OnDown(name).
func (n *Notifier) InterfaceDown(cb types.InterfaceCallback, name string) {
	if cb == nil {
		return
	}
	n.Post(func() { cb.OnDown(name) })
}

// InterfaceDestroyed queues cb.OnDestroyed(name).
func (n *Notifier) InterfaceDestroyed(cb types.InterfaceCallback, name string) {
	if cb == nil {
		return
	}
	n.Post(func() { cb.OnDestroyed(name) })
}

// RegisterStatusListener adds a subsystem status listener.
func (n *Notifier) RegisterStatusListener(l types.StatusListener) {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()
	n.statusListeners = append(n.statusListeners, l)
}

// StatusChanged queues OnStatusChanged for every status listener.
func (n *Notifier) StatusChanged(allReady bool) {
	n.Post(func() {
		n.listenersMu.Lock()
		listeners := append([]types.StatusListener(nil), n.statusListeners...)
		n.listenersMu.Unlock()

		for _, l := range listeners {
			l.OnStatusChanged(allReady)
		}
	})
}

// SetInterfaceEventCallback replaces the interface event callback.
func (n *Notifier) SetInterfaceEventCallback(cb types.InterfaceEventCallback) {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()
	n.eventCallback = cb
}

// HasInterfaceEventCallback reports whether an interface event callback is set.
func (n *Notifier) HasInterfaceEventCallback() bool {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()
	return n.eventCallback != nil
}

// InterfaceAdded queues OnInterfaceAdded on the interface event callback.
func (n *Notifier) InterfaceAdded(name string) {
	n.Post(func() {
		if cb := n.interfaceEventCallback(); cb != nil {
			cb.OnInterfaceAdded(name)
		}
	})
}

// InterfaceLinkStateChanged queues OnInterfaceLinkStateChanged on the interface event callback.
func (n *Notifier) InterfaceLinkStateChanged(name string, up bool) {
	n.Post(func() {
		if cb := n.interfaceEventCallback(); cb != nil {
			cb.OnInterfaceLinkStateChanged(name, up)
		}
	})
}

func (n *Notifier) interfaceEventCallback() types.InterfaceEventCallback {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()
	return n.eventCallback
}

// RegisterRadioModeListener adds a radio mode listener.
func (n *Notifier) RegisterRadioModeListener(l types.RadioModeListener) {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()
	n.radioListeners = append(n.radioListeners, l)
}

// RadioModeChanged queues OnRadioModeChanged for every radio mode listener.
func (n *Notifier) RadioModeChanged(mode types.RadioMode, band types.Band) {
	n.Post(func() {
		n.listenersMu.Lock()
		listeners := append([]types.RadioModeListener(nil), n.radioListeners...)
		n.listenersMu.Unlock()

		for _, l := range listeners {
			l.OnRadioModeChanged(mode, band)
		}
	})
}
