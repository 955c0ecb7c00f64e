package lifecycle

import (
	"fmt"

	"golang-wifid/internal/types"
)

// stationByName returns the named station interface.
func (m *Manager) stationByName(name string) (*managedIface, error) {
	iface := m.registry.byName(name)
	if iface == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInterface, name)
	}
	if !iface.kind.IsStation() {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotStation, name, iface.kind)
	}
	return iface, nil
}

// switchToScanMode detaches the client daemon while keeping the vendor interface.
func (m *Manager) switchToScanMode(name string, ws types.WorkSource) error {
	iface, err := m.stationByName(name)
	if err != nil {
		return err
	}
	if iface.kind == types.KindStationScanOnly {
		return nil
	}
	logger := m.ifaceLogger(iface)
	logger.Info("Switching to scan-only mode")

	if err := m.peers.Vendor.ReplaceStaRequestor(iface.name, ws); err != nil {
		m.teardown(iface)
		return fmt.Errorf("replace requestor of %s: %w", name, err)
	}
	if err := m.peers.Client.TeardownInterface(iface.name); err != nil {
		m.teardown(iface)
		return fmt.Errorf("detach client daemon from %s: %w", name, err)
	}

	iface.kind = types.KindStationScanOnly
	iface.requestor = ws
	iface.features = m.queryFeatures(iface)
	m.updateInterfaceCounts()
	m.stopUnusedPeers()
	logger.Info("Switched to scan-only mode")
	return nil
}

// switchToConnectivityMode starts the client daemon if needed and attaches it.
func (m *Manager) switchToConnectivityMode(name string, ws types.WorkSource) error {
	iface, err := m.stationByName(name)
	if err != nil {
		return err
	}
	if iface.kind == types.KindStationConnectivity {
		return nil
	}
	logger := m.ifaceLogger(iface)
	logger.Info("Switching to connectivity mode")

	fail := func(reason Reason, err error) error {
		m.teardown(iface)
		m.metrics.IncSetupFailure(types.KindStationConnectivity, reason.String())
		logger.WithError(err).WithField("reason", reason).Error("Failed to switch to connectivity mode")
		return &SetupError{Kind: types.KindStationConnectivity, Reason: reason, Err: err}
	}

	if err := m.peers.Vendor.ReplaceStaRequestor(iface.name, ws); err != nil {
		return fail(ReasonInterfaceCreate, fmt.Errorf("replace requestor of %s: %w", name, err))
	}
	if err := m.ensureDaemon(PeerClientDaemon); err != nil {
		return fail(ReasonDaemonStart, err)
	}
	if err := m.peers.Client.SetupInterface(iface.name); err != nil {
		return fail(ReasonProtocolAttach, fmt.Errorf("attach client daemon to %s: %w", name, err))
	}

	iface.kind = types.KindStationConnectivity
	iface.requestor = ws
	iface.features = m.queryFeatures(iface)
	m.updateInterfaceCounts()
	logger.WithField("features", iface.features).Info("Switched to connectivity mode")
	return nil
}

// replaceRequestor changes the owner of a station in place. A vendor failure
// leaves the interface in an unknown state, so it is torn down.
func (m *Manager) replaceRequestor(name string, ws types.WorkSource) error {
	iface, err := m.stationByName(name)
	if err != nil {
		return err
	}
	if err := m.peers.Vendor.ReplaceStaRequestor(iface.name, ws); err != nil {
		m.ifaceLogger(iface).WithError(err).Error("Failed to replace requestor")
		m.teardown(iface)
		return fmt.Errorf("replace requestor of %s: %w", name, err)
	}
	iface.requestor = ws
	return nil
}
