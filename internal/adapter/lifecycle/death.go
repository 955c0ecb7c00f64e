package lifecycle

// deathHandler returns the handler registered with peer p for one start of it.
// The report is queued; the cascade runs on the sequencing context.
func (m *Manager) deathHandler(p PeerID, generation uint64) func() {
	return func() {
		m.post(func() { m.handlePeerDeath(p, generation) })
	}
}

// handlePeerDeath cleans up every interface that depended on the dead peer and
// brackets the recovery with a status down/up pair.
func (m *Manager) handlePeerDeath(p PeerID, generation uint64) {
	logger := m.logger.WithField("peer", p)
	if generation != m.peerStates.generation(p) || !m.peerStates.markDead(p) {
		logger.Debug("Stale death report ignored")
		return
	}

	logger.Error("Peer died")
	m.metrics.IncPeerCrash(p.String())
	m.notifier.StatusChanged(false)

	var affected []*managedIface
	if p == PeerVendor {
		// The radio session is gone: every interface and every other peer with it.
		affected = m.registry.list()
		for _, iface := range affected {
			m.cleanupInterface(iface, skipAll)
		}
		for _, other := range []PeerID{PeerClientDaemon, PeerAPDaemon} {
			if m.peerStates.state(other).running() {
				m.stopDaemon(other)
			}
		}
		if m.peerStates.state(PeerLinkControl).running() {
			lc := m.peers.LinkControl
			if err := lc.DeregisterDeathHandler(); err != nil {
				logger.WithError(err).Debug("Failed to deregister link control death handler")
			}
			lc.Terminate()
		}
		m.peerStates.reset(PeerLinkControl)
	} else {
		affected = m.registry.dependents(p)
		vendorUp := m.peerStates.state(PeerVendor).running()
		for _, iface := range affected {
			if vendorUp {
				if err := m.peers.Vendor.RemoveInterface(iface.name); err != nil {
					m.ifaceLogger(iface).WithError(err).Warn("Vendor failed to remove interface")
				}
			}
			m.cleanupInterface(iface, skipPeer(p))
		}
		m.terminateDead(p)
		m.stopUnusedPeers()
	}

	for _, iface := range affected {
		m.notifier.InterfaceDestroyed(iface.callback, iface.name)
	}
	logger.WithField("interfaces", len(affected)).Info("Recovered from peer death")
	m.notifier.StatusChanged(true)
}

// terminateDead releases local resources of a dead peer. Its state stays Dead
// until the next request restarts it.
func (m *Manager) terminateDead(p PeerID) {
	switch p {
	case PeerLinkControl:
		m.peers.LinkControl.Terminate()
	case PeerClientDaemon, PeerAPDaemon:
		m.daemon(p).Terminate()
	}
}
