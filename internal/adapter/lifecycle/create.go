package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"golang-wifid/internal/port"
	"golang-wifid/internal/types"

	"github.com/sirupsen/logrus"
)

// createInterface runs the whole creation sequence. Every failure is rolled back
// before it returns, so the registry never holds a partial interface.
func (m *Manager) createInterface(req port.CreateRequest, cb types.InterfaceCallback) (string, error) {
	logger := m.logger.WithFields(logrus.Fields{"kind": req.Kind, "requestor": req.Requestor})
	logger.Info("Creating interface")

	if req.Bridged && req.Kind != types.KindAccessPoint {
		return "", m.setupFailed(req.Kind, ReasonInterfaceCreate, errors.New("only access point interfaces can be bridged"))
	}

	victims, err := m.table.Victims(req.Kind, m.registry.snapshot())
	if err != nil {
		return "", m.setupFailed(req.Kind, ReasonCapabilityConflict, err)
	}

	// Peers needed by the new interface must survive the victims' teardown.
	m.pending = &req.Kind
	defer func() { m.pending = nil }()

	if err := m.ensureVendor(); err != nil {
		return "", m.setupFailed(req.Kind, ReasonHalStart, err)
	}

	if len(victims) > 0 {
		for _, victim := range victims {
			iface := m.registry.get(victim.ID)
			if iface == nil {
				continue
			}
			m.ifaceLogger(iface).WithField("new_kind", req.Kind).Info("Preempting interface")
			m.teardown(iface)
		}
		m.notifier.Flush(m.cfg.CallbackTimeout)

		// The vendor may have died while victim events were handled.
		if err := m.ensureVendor(); err != nil {
			return "", m.setupFailed(req.Kind, ReasonHalStart, err)
		}
	}

	if daemon, ok := daemonFor(req.Kind); ok {
		if err := m.ensureDaemon(daemon); err != nil {
			return "", m.setupFailed(req.Kind, ReasonDaemonStart, err)
		}
	}

	iface := m.registry.allocate(req.Kind, req.Requestor, cb)
	id := iface.id
	name, err := m.peers.Vendor.CreateInterface(req, func(string) {
		m.post(func() { m.handleDestroyed(id) })
	})
	if err != nil {
		return "", m.setupFailed(req.Kind, ReasonInterfaceCreate, err)
	}
	iface.name = name
	iface.linkName = name

	if req.Bridged {
		instances, err := m.peers.Vendor.GetBridgedApInstances(name)
		if err == nil && len(instances) == 0 {
			err = errors.New("no bridged instances")
		}
		if err != nil {
			m.rollbackVendor(iface)
			return "", m.setupFailed(req.Kind, ReasonInterfaceCreate, fmt.Errorf("bridged instances of %s: %w", name, err))
		}
		iface.bridged = instances
		iface.linkName = instances[0]
	}

	if err := m.attach(iface); err != nil {
		m.rollbackVendor(iface)
		return "", m.setupFailed(req.Kind, ReasonProtocolAttach, err)
	}

	if hasNetdev(req.Kind) {
		token, err := m.peers.Observer.RegisterObserver(iface.linkName, func(string) {
			m.post(func() { m.handleLinkChange(id) })
		})
		if err != nil {
			m.detach(iface, nil)
			m.rollbackVendor(iface)
			return "", m.setupFailed(req.Kind, ReasonInterfaceCreate, fmt.Errorf("observe %s: %w", iface.linkName, err))
		}
		iface.observer = token
		iface.hasObserver = true

		if up, err := m.peers.Observer.IsInterfaceUp(iface.linkName); err == nil {
			iface.up = up
			iface.stateKnown = true
		}
	}
	iface.features = m.queryFeatures(iface)

	m.registry.insert(iface)
	m.updateInterfaceCounts()
	m.ifaceLogger(iface).WithField("features", iface.features).Info("Interface created")

	if iface.up {
		m.notifier.InterfaceUp(iface.callback, iface.name)
	}
	return name, nil
}

// setupFailed records a creation failure and releases peers the attempt started.
func (m *Manager) setupFailed(kind types.Kind, reason Reason, err error) error {
	m.pending = nil
	m.stopUnusedPeers()
	m.metrics.IncSetupFailure(kind, reason.String())
	m.logger.WithError(err).WithFields(logrus.Fields{
		"kind":   kind,
		"reason": reason,
	}).Error("Failed to create interface")
	return &SetupError{Kind: kind, Reason: reason, Err: err}
}

// ensureVendor brings up the vendor HAL and the link-control layer. On the first
// start it also clears interfaces left behind by an earlier process.
func (m *Manager) ensureVendor() error {
	fresh := false
	if m.peerStates.state(PeerVendor) != PeerReady {
		if err := m.peerStates.markStarting(PeerVendor); err != nil {
			return err
		}
		gen := m.peerStates.generation(PeerVendor)
		if err := m.peers.Vendor.Start(); err != nil {
			m.peerStates.reset(PeerVendor)
			return fmt.Errorf("start vendor HAL: %w", err)
		}
		if err := m.peers.Vendor.RegisterDeathHandler(m.deathHandler(PeerVendor, gen)); err != nil {
			m.peers.Vendor.Stop()
			m.peerStates.reset(PeerVendor)
			return fmt.Errorf("register vendor HAL death handler: %w", err)
		}
		fresh = true
	}

	if m.peerStates.state(PeerLinkControl) != PeerReady {
		if err := m.startLinkControl(); err != nil {
			if fresh {
				m.stopVendorHAL()
			}
			return err
		}
	}

	if fresh {
		err := m.peers.Vendor.RegisterRadioModeChangeHandler(func(mode types.RadioMode, band types.Band) {
			m.post(func() { m.handleRadioModeChange(mode, band) })
		})
		if err != nil {
			m.logger.WithError(err).Warn("Failed to register radio mode handler")
		}
		if err := m.peerStates.markReady(PeerVendor); err != nil {
			return err
		}
		m.logger.WithField("peer", PeerVendor).Info("Peer ready")
	}
	return nil
}

func (m *Manager) startLinkControl() error {
	if err := m.peerStates.markStarting(PeerLinkControl); err != nil {
		return err
	}
	gen := m.peerStates.generation(PeerLinkControl)
	lc := m.peers.LinkControl

	if err := lc.Initialize(); err != nil {
		m.peerStates.reset(PeerLinkControl)
		return fmt.Errorf("initialize link control: %w", err)
	}
	if err := lc.RegisterDeathHandler(m.deathHandler(PeerLinkControl, gen)); err != nil {
		lc.Terminate()
		m.peerStates.reset(PeerLinkControl)
		return fmt.Errorf("register link control death handler: %w", err)
	}
	if err := lc.TeardownInterfaces(); err != nil {
		m.logger.WithError(err).Warn("Failed to clear stale interfaces")
	}
	if err := m.peerStates.markReady(PeerLinkControl); err != nil {
		return err
	}
	m.logger.WithField("peer", PeerLinkControl).Info("Peer ready")
	return nil
}

// ensureDaemon starts a protocol daemon unless it is ready already and waits
// until it answers.
func (m *Manager) ensureDaemon(p PeerID) error {
	if m.peerStates.state(p) == PeerReady {
		return nil
	}
	if err := m.peerStates.markStarting(p); err != nil {
		return err
	}
	gen := m.peerStates.generation(p)
	d := m.daemon(p)
	logger := m.logger.WithField("peer", p)

	registered := false
	abort := func(err error) error {
		if registered {
			if derr := d.DeregisterDeathHandler(); derr != nil {
				logger.WithError(derr).Debug("Failed to deregister death handler")
			}
		}
		d.Terminate()
		m.peerStates.reset(p)
		return err
	}

	if !d.IsInitializationStarted() {
		if err := d.Initialize(); err != nil {
			return abort(fmt.Errorf("initialize %s: %w", p, err))
		}
	}
	if err := d.RegisterDeathHandler(m.deathHandler(p, gen)); err != nil {
		return abort(fmt.Errorf("register %s death handler: %w", p, err))
	}
	registered = true
	if err := d.StartDaemon(); err != nil {
		return abort(fmt.Errorf("start %s: %w", p, err))
	}

	for attempt := 1; !d.IsInitializationComplete(); attempt++ {
		if attempt >= m.cfg.DaemonConnectRetries {
			return abort(fmt.Errorf("%s not ready after %d attempts", p, attempt))
		}
		time.Sleep(m.cfg.DaemonConnectInterval)
	}

	if err := m.peerStates.markReady(p); err != nil {
		return err
	}
	logger.Info("Peer ready")
	return nil
}

// attach prepares the link and attaches the protocol daemon. A failure undoes
// whatever part already succeeded.
func (m *Manager) attach(iface *managedIface) error {
	lc := m.peers.LinkControl
	switch {
	case iface.kind.IsStation():
		if err := lc.SetupClientInterface(iface.linkName); err != nil {
			return fmt.Errorf("set up client link %s: %w", iface.linkName, err)
		}
		if iface.kind != types.KindStationConnectivity {
			return nil
		}
		if err := m.peers.Client.SetupInterface(iface.name); err != nil {
			if terr := lc.TeardownClientInterface(iface.linkName); terr != nil {
				m.ifaceLogger(iface).WithError(terr).Warn("Failed to release client link")
			}
			return fmt.Errorf("attach client daemon to %s: %w", iface.name, err)
		}
	case iface.kind == types.KindAccessPoint:
		if err := lc.SetupAccessPointInterface(iface.linkName); err != nil {
			return fmt.Errorf("set up access point link %s: %w", iface.linkName, err)
		}
		if err := m.peers.AccessPoint.AddAccessPoint(iface.name); err != nil {
			if terr := lc.TeardownAccessPointInterface(iface.linkName); terr != nil {
				m.ifaceLogger(iface).WithError(terr).Warn("Failed to release access point link")
			}
			return fmt.Errorf("attach access point daemon to %s: %w", iface.name, err)
		}
	}
	return nil
}

// rollbackVendor destroys a vendor interface that never made it into the registry.
func (m *Manager) rollbackVendor(iface *managedIface) {
	logger := m.ifaceLogger(iface)
	m.rollbacks[iface.id] = struct{}{}
	if err := m.peers.Vendor.RemoveInterface(iface.name); err != nil {
		delete(m.rollbacks, iface.id)
		logger.WithError(err).Warn("Failed to roll back vendor interface")
		return
	}
	gone := func() bool {
		_, waiting := m.rollbacks[iface.id]
		return !waiting
	}
	if !m.awaitEvents(gone, m.cfg.DestroyTimeout) {
		delete(m.rollbacks, iface.id)
		logger.Warn("Vendor did not confirm rolled back interface")
	}
}

func (m *Manager) queryFeatures(iface *managedIface) types.FeatureSet {
	features := m.peers.Vendor.SupportedFeatures(iface.name)
	if iface.kind == types.KindStationConnectivity {
		features = features.
			Union(m.peers.Client.AdvancedCapabilities(iface.name)).
			Union(m.peers.Client.DriverFeatureSet(iface.name))
	}
	return features
}

func (m *Manager) daemon(p PeerID) port.Daemon {
	if p == PeerAPDaemon {
		return m.peers.AccessPoint
	}
	return m.peers.Client
}

// daemonFor returns the protocol daemon an interface kind needs, if any.
func daemonFor(kind types.Kind) (PeerID, bool) {
	switch kind {
	case types.KindStationConnectivity:
		return PeerClientDaemon, true
	case types.KindAccessPoint:
		return PeerAPDaemon, true
	}
	return 0, false
}
