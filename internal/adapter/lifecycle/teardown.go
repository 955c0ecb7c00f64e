package lifecycle

import (
	"golang-wifid/internal/types"
)

// skipFunc tells cleanup which peers must not be called.
type skipFunc func(PeerID) bool

func skipNone(PeerID) bool { return false }

func skipAll(PeerID) bool { return true }

func skipPeer(dead PeerID) skipFunc {
	return func(p PeerID) bool { return p == dead }
}

// teardown destroys a registered interface and returns once the vendor confirmed it.
func (m *Manager) teardown(iface *managedIface) {
	logger := m.ifaceLogger(iface)
	logger.Info("Tearing down interface")

	if !m.peerStates.state(PeerVendor).running() {
		m.destroy(iface, skipNone)
		return
	}
	if err := m.peers.Vendor.RemoveInterface(iface.name); err != nil {
		logger.WithError(err).Warn("Vendor failed to remove interface, cleaning up locally")
		m.destroy(iface, skipNone)
		return
	}

	id := iface.id
	if !m.awaitEvents(func() bool { return m.registry.get(id) == nil }, m.cfg.DestroyTimeout) {
		logger.WithField("timeout", m.cfg.DestroyTimeout).Warn("Vendor did not confirm removal, cleaning up locally")
		m.destroy(iface, skipNone)
	}
}

// handleDestroyed is the vendor's destroyed callback, delivered on the sequencing context.
func (m *Manager) handleDestroyed(id int) {
	if _, ok := m.rollbacks[id]; ok {
		delete(m.rollbacks, id)
		return
	}
	iface := m.registry.get(id)
	if iface == nil {
		m.logger.WithField("iface_id", id).Debug("Destroyed callback for unknown interface ignored")
		return
	}
	m.ifaceLogger(iface).Info("Vendor destroyed interface")
	m.destroy(iface, skipNone)
}

// destroy finishes a teardown: peer cleanup first, then the listener.
func (m *Manager) destroy(iface *managedIface, skip skipFunc) {
	m.cleanupInterface(iface, skip)
	m.stopUnusedPeers()
	m.notifier.InterfaceDestroyed(iface.callback, iface.name)
	m.ifaceLogger(iface).Info("Interface destroyed")
}

// cleanupInterface releases everything the manager holds for an interface and
// removes it from the registry. Peers that are not running are never called.
func (m *Manager) cleanupInterface(iface *managedIface, skip skipFunc) {
	m.detach(iface, skip)
	if iface.hasObserver {
		if err := m.peers.Observer.UnregisterObserver(iface.observer); err != nil {
			m.ifaceLogger(iface).WithError(err).Debug("Failed to unregister link observer")
		}
		iface.hasObserver = false
	}
	m.registry.remove(iface.id)
	m.updateInterfaceCounts()
}

// detach releases the protocol daemon and then the link of an interface.
func (m *Manager) detach(iface *managedIface, skip skipFunc) {
	if skip == nil {
		skip = skipNone
	}
	callable := func(p PeerID) bool {
		return m.peerStates.state(p).running() && !skip(p)
	}
	logger := m.ifaceLogger(iface)
	lc := m.peers.LinkControl

	switch {
	case iface.kind.IsStation():
		if iface.kind == types.KindStationConnectivity && callable(PeerClientDaemon) {
			if err := m.peers.Client.TeardownInterface(iface.name); err != nil {
				logger.WithError(err).Warn("Failed to detach client daemon")
			}
		}
		if callable(PeerLinkControl) {
			if err := lc.TeardownClientInterface(iface.linkName); err != nil {
				logger.WithError(err).Warn("Failed to release client link")
			}
		}
	case iface.kind == types.KindAccessPoint:
		if callable(PeerAPDaemon) {
			if err := m.peers.AccessPoint.RemoveAccessPoint(iface.name); err != nil {
				logger.WithError(err).Warn("Failed to detach access point daemon")
			}
		}
		if callable(PeerLinkControl) {
			if err := lc.TeardownAccessPointInterface(iface.linkName); err != nil {
				logger.WithError(err).Warn("Failed to release access point link")
			}
		}
	}
}

// needs reports whether a live or in-flight interface depends on peer p.
func (m *Manager) needs(p PeerID) bool {
	if m.pending != nil && dependsOn(*m.pending, p) {
		return true
	}
	return len(m.registry.dependents(p)) > 0
}

// stopUnusedPeers stops every daemon without dependents and, once no interface
// is left, the link-control layer and the vendor HAL.
func (m *Manager) stopUnusedPeers() {
	for _, p := range []PeerID{PeerClientDaemon, PeerAPDaemon} {
		if m.peerStates.state(p).running() && !m.needs(p) {
			m.stopDaemon(p)
		}
	}
	if m.registry.len() == 0 && m.pending == nil && m.peerStates.state(PeerVendor).running() {
		m.stopVendorHAL()
	}
}

func (m *Manager) stopDaemon(p PeerID) {
	d := m.daemon(p)
	logger := m.logger.WithField("peer", p)
	if err := d.DeregisterDeathHandler(); err != nil {
		logger.WithError(err).Debug("Failed to deregister death handler")
	}
	d.Terminate()
	m.peerStates.reset(p)
	logger.Info("Peer stopped")
}

func (m *Manager) stopVendorHAL() {
	if m.peerStates.state(PeerLinkControl).running() {
		lc := m.peers.LinkControl
		if err := lc.TeardownInterfaces(); err != nil {
			m.logger.WithError(err).Warn("Failed to release links")
		}
		if err := lc.DeregisterDeathHandler(); err != nil {
			m.logger.WithError(err).Debug("Failed to deregister link control death handler")
		}
		lc.Terminate()
	}
	m.peerStates.reset(PeerLinkControl)

	if err := m.peers.Vendor.DeregisterDeathHandler(); err != nil {
		m.logger.WithError(err).Debug("Failed to deregister vendor HAL death handler")
	}
	m.peers.Vendor.Stop()
	m.peerStates.reset(PeerVendor)
	m.logger.WithField("peer", PeerVendor).Info("Peer stopped")
}

// teardownAll cleans every interface without waiting for the vendor and stops all peers.
func (m *Manager) teardownAll() {
	ifaces := m.registry.list()
	m.logger.WithField("interfaces", len(ifaces)).Info("Tearing down all interfaces")

	vendorUp := m.peerStates.state(PeerVendor).running()
	for _, iface := range ifaces {
		if vendorUp {
			if err := m.peers.Vendor.RemoveInterface(iface.name); err != nil {
				m.ifaceLogger(iface).WithError(err).Warn("Vendor failed to remove interface")
			}
		}
		m.cleanupInterface(iface, skipNone)
	}

	for _, p := range []PeerID{PeerClientDaemon, PeerAPDaemon} {
		if m.peerStates.state(p).running() {
			m.stopDaemon(p)
		} else {
			m.peerStates.reset(p)
		}
	}
	if vendorUp {
		m.stopVendorHAL()
	} else {
		m.peerStates.reset(PeerLinkControl)
		m.peerStates.reset(PeerVendor)
	}

	for _, iface := range ifaces {
		m.notifier.InterfaceDestroyed(iface.callback, iface.name)
	}
}

// handleLinkChange re-reads the link state and reports real transitions only.
func (m *Manager) handleLinkChange(id int) {
	iface := m.registry.get(id)
	if iface == nil {
		return
	}
	logger := m.ifaceLogger(iface)

	up, err := m.peers.Observer.IsInterfaceUp(iface.linkName)
	if err != nil {
		logger.WithError(err).Debug("Link state unavailable, treating as down")
		up = false
	}
	if iface.stateKnown && iface.up == up {
		return
	}
	iface.up = up
	iface.stateKnown = true

	if up {
		logger.Info("Interface up")
		m.notifier.InterfaceUp(iface.callback, iface.name)
		return
	}
	logger.Warn("Interface down")
	m.metrics.IncInterfaceDown(iface.kind.Class())
	m.notifier.InterfaceDown(iface.callback, iface.name)
}
