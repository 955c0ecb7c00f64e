package network

import (
	"fmt"
	"net"
	"sort"
	"sync"
	"time"

	"golang-wifid/internal/pkg/logging"
	"golang-wifid/internal/port"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

const defaultResubscribeDelay = time.Second

type linkObserver struct {
	name     string
	onChange func(name string)
}

// ObserverAdapter implements the NetworkObserver port on top of a NetworkManager link subscription.
type ObserverAdapter struct {
	network          port.NetworkManager
	resubscribeDelay time.Duration
	logger           *logrus.Entry

	mu        sync.Mutex
	nextToken port.ObserverToken
	observers map[port.ObserverToken]linkObserver
	watchers  map[int]port.InterfaceWatcher
	nextWatch int
	links     map[string]bool
	done      chan struct{}
	running   bool
	onLost    func(error)
}

// Ensure ObserverAdapter implements the NetworkObserver port
var _ port.NetworkObserver = (*ObserverAdapter)(nil)

// NewObserverAdapter creates a link observer. Call Start to begin receiving kernel events.
func NewObserverAdapter(network port.NetworkManager) *ObserverAdapter {
	return &ObserverAdapter{
		network:          network,
		resubscribeDelay: defaultResubscribeDelay,
		logger:           logging.WithComponent("link-observer"),
		observers:        make(map[port.ObserverToken]linkObserver),
		watchers:         make(map[int]port.InterfaceWatcher),
		links:            make(map[string]bool),
	}
}

// Start seeds the known link table and subscribes to kernel link updates.
func (o *ObserverAdapter) Start() error {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil
	}
	o.running = true
	o.done = make(chan struct{})
	done := o.done
	o.mu.Unlock()

	links, err := o.network.ListLinks()
	if err != nil {
		o.logger.WithError(err).Warn("Failed to list existing links")
	}
	o.mu.Lock()
	for _, link := range links {
		attrs := link.Attrs()
		o.links[attrs.Name] = attrs.Flags&net.FlagUp != 0
	}
	o.mu.Unlock()

	if err := o.subscribe(done); err != nil {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
		return err
	}
	return nil
}

// Stop ends the kernel subscription.
func (o *ObserverAdapter) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.running {
		return
	}
	o.running = false
	close(o.done)
}

// SetSubscriptionLostHandler sets a function called every time the kernel subscription
// breaks, before it is re-established.
func (o *ObserverAdapter) SetSubscriptionLostHandler(fn func(error)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onLost = fn
}

func (o *ObserverAdapter) subscribe(done chan struct{}) error {
	return o.network.SubscribeLinkUpdates(done, o.handleUpdate, func(err error) {
		if err == nil {
			return
		}
		o.mu.Lock()
		onLost := o.onLost
		o.mu.Unlock()
		if onLost != nil {
			onLost(err)
		}
		o.logger.WithError(err).Warnf("Link subscription lost, resubscribing in %v", o.resubscribeDelay)
		time.AfterFunc(o.resubscribeDelay, func() {
			select {
			case <-done:
				return
			default:
			}
			if err := o.subscribe(done); err != nil {
				o.logger.WithError(err).Error("Failed to resubscribe to link updates")
			}
		})
	})
}

func (o *ObserverAdapter) handleUpdate(update netlink.LinkUpdate) {
	if update.Link == nil {
		return
	}
	attrs := update.Link.Attrs()
	name := attrs.Name
	up := attrs.Flags&net.FlagUp != 0

	var (
		added     bool
		changed   bool
		observers []func(string)
		watchers  []port.InterfaceWatcher
	)

	o.mu.Lock()
	switch update.Header.Type {
	case unix.RTM_DELLINK:
		_, known := o.links[name]
		delete(o.links, name)
		changed = known
		up = false
	case unix.RTM_NEWLINK:
		prev, known := o.links[name]
		o.links[name] = up
		added = !known
		changed = !known || prev != up
	default:
		o.mu.Unlock()
		return
	}
	if changed {
		observers = o.observersFor(name)
	}
	if added || changed {
		watchers = o.watcherList()
	}
	o.mu.Unlock()

	for _, w := range watchers {
		if added {
			w.OnInterfaceAdded(name)
		}
		if changed {
			w.OnInterfaceLinkStateChanged(name, up)
		}
	}
	for _, fn := range observers {
		fn(name)
	}
}

// observersFor must be called with o.mu held.
func (o *ObserverAdapter) observersFor(name string) []func(string) {
	tokens := make([]port.ObserverToken, 0, len(o.observers))
	for token, obs := range o.observers {
		if obs.name == name {
			tokens = append(tokens, token)
		}
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })

	fns := make([]func(string), 0, len(tokens))
	for _, token := range tokens {
		fns = append(fns, o.observers[token].onChange)
	}
	return fns
}

// watcherList must be called with o.mu held.
func (o *ObserverAdapter) watcherList() []port.InterfaceWatcher {
	ids := make([]int, 0, len(o.watchers))
	for id := range o.watchers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	list := make([]port.InterfaceWatcher, 0, len(ids))
	for _, id := range ids {
		list = append(list, o.watchers[id])
	}
	return list
}

// RegisterObserver registers onChange for link changes of the named interface.
func (o *ObserverAdapter) RegisterObserver(name string, onChange func(name string)) (port.ObserverToken, error) {
	if name == "" {
		return 0, fmt.Errorf("cannot observe unnamed interface")
	}
	if onChange == nil {
		return 0, fmt.Errorf("nil observer for interface %s", name)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextToken++
	o.observers[o.nextToken] = linkObserver{name: name, onChange: onChange}
	return o.nextToken, nil
}

// UnregisterObserver removes an observer.
func (o *ObserverAdapter) UnregisterObserver(token port.ObserverToken) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.observers[token]; !ok {
		return fmt.Errorf("unknown observer %d", token)
	}
	delete(o.observers, token)
	return nil
}

// IsInterfaceUp queries the kernel for the administrative state of the interface.
func (o *ObserverAdapter) IsInterfaceUp(name string) (bool, error) {
	link, err := o.network.GetLinkByName(name)
	if err != nil {
		return false, err
	}
	return link.Attrs().Flags&net.FlagUp != 0, nil
}

// WatchInterfaces registers a watcher for interface added and link state events.
func (o *ObserverAdapter) WatchInterfaces(watcher port.InterfaceWatcher) (func(), error) {
	if watcher == nil {
		return nil, fmt.Errorf("nil interface watcher")
	}

	o.mu.Lock()
	o.nextWatch++
	id := o.nextWatch
	o.watchers[id] = watcher
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.watchers, id)
		o.mu.Unlock()
	}, nil
}
