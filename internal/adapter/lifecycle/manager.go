// Package lifecycle implements the radio interface lifecycle manager: it creates,
// preempts, switches and tears down interfaces while sequencing the vendor HAL,
// the link-control layer and the protocol daemons, and recovers when any of them dies.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang-wifid/internal/adapter/notify"
	"golang-wifid/internal/pkg/logging"
	"golang-wifid/internal/port"
	"golang-wifid/internal/types"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultDaemonConnectRetries  = 50
	defaultDaemonConnectInterval = 100 * time.Millisecond
	defaultDestroyTimeout        = 3 * time.Second
	defaultCallbackTimeout       = time.Second
)

// Config tunes the manager.
type Config struct {
	// DaemonConnectRetries is how many times a started daemon is polled for readiness.
	DaemonConnectRetries int
	// DaemonConnectInterval is the pause between readiness polls.
	DaemonConnectInterval time.Duration
	// DestroyTimeout bounds the wait for the vendor destroyed callback.
	DestroyTimeout time.Duration
	// CallbackTimeout bounds the wait for preempted interfaces' listeners.
	CallbackTimeout time.Duration
	// SelfRecoveryInterface, when set, is the only name interface events are forwarded for.
	SelfRecoveryInterface string
}

func (c *Config) applyDefaults() {
	if c.DaemonConnectRetries <= 0 {
		c.DaemonConnectRetries = defaultDaemonConnectRetries
	}
	if c.DaemonConnectInterval <= 0 {
		c.DaemonConnectInterval = defaultDaemonConnectInterval
	}
	if c.DestroyTimeout <= 0 {
		c.DestroyTimeout = defaultDestroyTimeout
	}
	if c.CallbackTimeout <= 0 {
		c.CallbackTimeout = defaultCallbackTimeout
	}
}

// Peers are the collaborators the manager sequences.
type Peers struct {
	Vendor      port.VendorHAL
	LinkControl port.LinkControl
	Client      port.ClientDaemon
	AccessPoint port.APDaemon
	Observer    port.NetworkObserver
}

func (p Peers) validate() error {
	switch {
	case p.Vendor == nil:
		return errors.New("vendor HAL is required")
	case p.LinkControl == nil:
		return errors.New("link control is required")
	case p.Client == nil:
		return errors.New("client daemon is required")
	case p.AccessPoint == nil:
		return errors.New("access point daemon is required")
	case p.Observer == nil:
		return errors.New("network observer is required")
	}
	return nil
}

// Manager is the lifecycle adapter that implements the InterfaceManager port.
// All state below the channels is owned by the goroutine running Run.
type Manager struct {
	cfg      Config
	peers    Peers
	table    *CompatibilityTable
	metrics  port.Metrics
	notifier *notify.Notifier
	logger   *logrus.Entry

	running  atomic.Bool
	requests chan request
	events   *eventQueue
	done     chan struct{}

	registry    *registry
	peerStates  peerTable
	pending     *types.Kind
	rollbacks   map[int]struct{}
	watchCancel func()
}

// Ensure Manager implements the InterfaceManager port
var _ port.InterfaceManager = (*Manager)(nil)

// NewManager creates a lifecycle manager. Nothing is started until the first interface request.
func NewManager(cfg Config, peers Peers, table *CompatibilityTable, metrics port.Metrics) (*Manager, error) {
	if err := peers.validate(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, errors.New("compatibility table is required")
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	cfg.applyDefaults()

	return &Manager{
		cfg:       cfg,
		peers:     peers,
		table:     table,
		metrics:   metrics,
		notifier:  notify.New(),
		logger:    logging.WithComponent("lifecycle"),
		requests:  make(chan request),
		events:    newEventQueue(),
		done:      make(chan struct{}),
		registry:  newRegistry(),
		rollbacks: make(map[int]struct{}),
	}, nil
}

// Run is the sequencing context. It executes caller requests and peer
// notifications one at a time until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) error {
	if !m.running.CompareAndSwap(false, true) {
		return errors.New("interface manager already running")
	}
	defer close(m.done)

	notifierCtx, stopNotifier := context.WithCancel(context.Background())
	g := new(errgroup.Group)
	g.Go(func() error {
		return m.notifier.Run(notifierCtx)
	})
	defer func() {
		stopNotifier()
		if err := g.Wait(); err != nil {
			m.logger.WithError(err).Warn("Notifier stopped with error")
		}
	}()

	m.logger.Info("Interface manager started")
	for {
		m.drainEvents()
		select {
		case <-ctx.Done():
			if m.watchCancel != nil {
				m.watchCancel()
				m.watchCancel = nil
			}
			m.logger.WithField("interfaces", m.registry.len()).Info("Interface manager stopped")
			return nil
		case req := <-m.requests:
			// Peer events that arrived first are applied first.
			m.drainEvents()
			req.fn()
			close(req.done)
		case <-m.events.signal:
		}
	}
}

// SetupInterfaceForClientConnectivity creates a station interface with the client daemon attached.
func (m *Manager) SetupInterfaceForClientConnectivity(cb types.InterfaceCallback, ws types.WorkSource) (string, error) {
	return m.setup(port.CreateRequest{Kind: types.KindStationConnectivity, Requestor: ws}, cb)
}

// SetupInterfaceForClientScanOnly creates a station interface without the client daemon.
func (m *Manager) SetupInterfaceForClientScanOnly(cb types.InterfaceCallback, ws types.WorkSource) (string, error) {
	return m.setup(port.CreateRequest{Kind: types.KindStationScanOnly, Requestor: ws}, cb)
}

// SetupInterfaceForAccessPoint creates an access point interface with the AP daemon attached.
func (m *Manager) SetupInterfaceForAccessPoint(cb types.InterfaceCallback, ws types.WorkSource, band types.Band, bridged bool) (string, error) {
	return m.setup(port.CreateRequest{Kind: types.KindAccessPoint, Requestor: ws, Band: band, Bridged: bridged}, cb)
}

// SetupInterfaceForP2P creates a device discovery interface.
func (m *Manager) SetupInterfaceForP2P(cb types.InterfaceCallback, ws types.WorkSource) (string, error) {
	return m.setup(port.CreateRequest{Kind: types.KindP2P, Requestor: ws}, cb)
}

// SetupInterfaceForNAN creates a service discovery interface.
func (m *Manager) SetupInterfaceForNAN(cb types.InterfaceCallback, ws types.WorkSource) (string, error) {
	return m.setup(port.CreateRequest{Kind: types.KindNAN, Requestor: ws}, cb)
}

func (m *Manager) setup(req port.CreateRequest, cb types.InterfaceCallback) (string, error) {
	var (
		name string
		err  error
	)
	if serr := m.submit(func() { name, err = m.createInterface(req, cb) }); serr != nil {
		return "", serr
	}
	return name, err
}

// SwitchClientInterfaceToScanMode detaches the client daemon from a station interface.
func (m *Manager) SwitchClientInterfaceToScanMode(name string, ws types.WorkSource) error {
	var err error
	if serr := m.submit(func() { err = m.switchToScanMode(name, ws) }); serr != nil {
		return serr
	}
	return err
}

// SwitchClientInterfaceToConnectivityMode attaches the client daemon to a station interface.
func (m *Manager) SwitchClientInterfaceToConnectivityMode(name string, ws types.WorkSource) error {
	var err error
	if serr := m.submit(func() { err = m.switchToConnectivityMode(name, ws) }); serr != nil {
		return serr
	}
	return err
}

// ReplaceStaIfaceRequestorWs changes the owner of a station interface in place.
func (m *Manager) ReplaceStaIfaceRequestorWs(name string, ws types.WorkSource) error {
	var err error
	if serr := m.submit(func() { err = m.replaceRequestor(name, ws) }); serr != nil {
		return serr
	}
	return err
}

// TeardownInterface destroys the named interface and waits until it is gone.
func (m *Manager) TeardownInterface(name string) {
	err := m.submit(func() {
		iface := m.registry.byName(name)
		if iface == nil {
			m.logger.WithField("interface", name).Debug("Teardown of unknown interface ignored")
			return
		}
		m.teardown(iface)
	})
	if err != nil {
		m.logger.WithError(err).WithField("interface", name).Warn("Teardown not executed")
	}
}

// TeardownAllInterfaces destroys every interface and stops all peers.
func (m *Manager) TeardownAllInterfaces() {
	if err := m.submit(m.teardownAll); err != nil {
		m.logger.WithError(err).Warn("Teardown of all interfaces not executed")
	}
}

// GetClientInterfaceNames returns the names of all station interfaces.
func (m *Manager) GetClientInterfaceNames() []string {
	var names []string
	_ = m.submit(func() { names = m.registry.names(types.Kind.IsStation) })
	return names
}

// GetAccessPointInterfaceNames returns the names of all access point interfaces.
func (m *Manager) GetAccessPointInterfaceNames() []string {
	var names []string
	_ = m.submit(func() {
		names = m.registry.names(func(k types.Kind) bool { return k == types.KindAccessPoint })
	})
	return names
}

// IsInterfaceUp queries the OS state of a managed interface.
func (m *Manager) IsInterfaceUp(name string) bool {
	var up bool
	_ = m.submit(func() {
		iface := m.registry.byName(name)
		if iface == nil || !hasNetdev(iface.kind) {
			return
		}
		var err error
		if up, err = m.peers.Observer.IsInterfaceUp(iface.linkName); err != nil {
			m.ifaceLogger(iface).WithError(err).Debug("Failed to query link state")
			up = false
		}
	})
	return up
}

// Interfaces returns a snapshot of every live interface ordered by id.
func (m *Manager) Interfaces() []types.InterfaceInfo {
	var infos []types.InterfaceInfo
	_ = m.submit(func() { infos = m.registry.snapshot() })
	return infos
}

// GetBridgedApInstances returns the instance names of a bridged access point
// interface, nil when the interface is not bridged.
func (m *Manager) GetBridgedApInstances(name string) ([]string, error) {
	var (
		instances []string
		err       error
	)
	serr := m.submit(func() {
		iface := m.registry.byName(name)
		switch {
		case iface == nil:
			err = fmt.Errorf("%w: %s", ErrUnknownInterface, name)
		case iface.kind != types.KindAccessPoint:
			err = fmt.Errorf("%s is not an access point interface", name)
		default:
			instances = append([]string(nil), iface.bridged...)
		}
	})
	if serr != nil {
		return nil, serr
	}
	return instances, err
}

// RegisterStatusListener registers for subsystem down/up notifications.
func (m *Manager) RegisterStatusListener(l types.StatusListener) {
	m.notifier.RegisterStatusListener(l)
}

// RegisterRadioModeListener registers for radio co-existence mode changes.
func (m *Manager) RegisterRadioModeListener(l types.RadioModeListener) {
	m.notifier.RegisterRadioModeListener(l)
}

// SetInterfaceEventCallback sets the receiver of interface events and starts the
// OS-level interface watch the first time a callback is set. It never blocks, so it
// may be called before Run; the watch then starts with the loop.
func (m *Manager) SetInterfaceEventCallback(cb types.InterfaceEventCallback) {
	m.notifier.SetInterfaceEventCallback(cb)
	if cb == nil {
		return
	}
	m.post(m.startInterfaceWatch)
}

func (m *Manager) startInterfaceWatch() {
	if m.watchCancel != nil {
		return
	}
	cancel, err := m.peers.Observer.WatchInterfaces(interfaceWatcher{m})
	if err != nil {
		m.logger.WithError(err).Warn("Failed to watch interfaces")
		return
	}
	m.watchCancel = cancel
}

// interfaceWatcher moves OS-level interface events onto the sequencing context.
type interfaceWatcher struct {
	m *Manager
}

func (w interfaceWatcher) OnInterfaceAdded(name string) {
	w.m.post(func() {
		if w.m.forwardInterfaceEvent(name) {
			w.m.notifier.InterfaceAdded(name)
		}
	})
}

func (w interfaceWatcher) OnInterfaceLinkStateChanged(name string, isLinkUp bool) {
	w.m.post(func() {
		if w.m.forwardInterfaceEvent(name) {
			w.m.notifier.InterfaceLinkStateChanged(name, isLinkUp)
		}
	})
}

func (m *Manager) forwardInterfaceEvent(name string) bool {
	if m.cfg.SelfRecoveryInterface != "" {
		return name == m.cfg.SelfRecoveryInterface
	}
	return m.registry.byName(name) != nil
}

func (m *Manager) handleRadioModeChange(mode types.RadioMode, band types.Band) {
	m.logger.WithFields(logrus.Fields{"mode": mode, "band": band}).Info("Radio mode changed")
	m.metrics.IncRadioModeChange(mode)
	m.notifier.RadioModeChanged(mode, band)
}

func (m *Manager) ifaceLogger(iface *managedIface) *logrus.Entry {
	return logging.WithComponentAndInterface("lifecycle", iface.name).WithFields(logrus.Fields{
		"iface_id": iface.id,
		"kind":     iface.kind,
	})
}

func (m *Manager) updateInterfaceCounts() {
	for _, kind := range types.AllKinds {
		m.metrics.SetInterfaceCount(kind, m.registry.countKind(kind))
	}
}

type nopMetrics struct{}

func (nopMetrics) IncSetupFailure(types.Kind, string) {}
func (nopMetrics) IncPeerCrash(string)                {}
func (nopMetrics) IncRadioModeChange(types.RadioMode) {}
func (nopMetrics) IncInterfaceDown(types.KindClass)   {}
func (nopMetrics) SetInterfaceCount(types.Kind, int)  {}
