// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-wifid/internal/types"
)

//go:generate mockgen -source=network.go -destination=../mock/mock_network.go -package=mock

// InterfaceManager is the primary port for radio interface lifecycle management.
// Every method except Run is executed on the single sequencing context started by Run
// and blocks until it completed there.
type InterfaceManager interface {
	// Run processes requests and peer events until the context is cancelled.
	Run(ctx context.Context) error

	// SetupInterfaceForClientConnectivity creates a station interface with the client daemon attached.
	SetupInterfaceForClientConnectivity(cb types.InterfaceCallback, ws types.WorkSource) (string, error)

	// SetupInterfaceForClientScanOnly creates a station interface without the client daemon.
	SetupInterfaceForClientScanOnly(cb types.InterfaceCallback, ws types.WorkSource) (string, error)

	// SetupInterfaceForAccessPoint creates an access point interface with the AP daemon attached.
	SetupInterfaceForAccessPoint(cb types.InterfaceCallback, ws types.WorkSource, band types.Band, bridged bool) (string, error)

	// SetupInterfaceForP2P creates a device discovery interface.
	SetupInterfaceForP2P(cb types.InterfaceCallback, ws types.WorkSource) (string, error)

	// SetupInterfaceForNAN creates a service discovery interface.
	SetupInterfaceForNAN(cb types.InterfaceCallback, ws types.WorkSource) (string, error)

	// SwitchClientInterfaceToScanMode detaches the client daemon from a station interface.
	SwitchClientInterfaceToScanMode(name string, ws types.WorkSource) error

	// SwitchClientInterfaceToConnectivityMode attaches the client daemon to a station interface.
	SwitchClientInterfaceToConnectivityMode(name string, ws types.WorkSource) error

	// ReplaceStaIfaceRequestorWs changes the owner of a station interface in place.
	ReplaceStaIfaceRequestorWs(name string, ws types.WorkSource) error

	// TeardownInterface destroys the named interface. Unknown names are ignored.
	TeardownInterface(name string)

	// TeardownAllInterfaces destroys every interface and stops all peers.
	TeardownAllInterfaces()

	// GetClientInterfaceNames returns the names of all station interfaces.
	GetClientInterfaceNames() []string

	// GetAccessPointInterfaceNames returns the names of all access point interfaces.
	GetAccessPointInterfaceNames() []string

	// IsInterfaceUp queries the OS state of a managed interface.
	IsInterfaceUp(name string) bool

	// Interfaces returns a snapshot of every live interface ordered by id.
	Interfaces() []types.InterfaceInfo

	// GetBridgedApInstances returns the instance names of a bridged access point interface.
	GetBridgedApInstances(name string) ([]string, error)

	// RegisterStatusListener registers for subsystem down/up notifications.
	RegisterStatusListener(l types.StatusListener)

	// SetInterfaceEventCallback sets the receiver of self-recovery interface events.
	SetInterfaceEventCallback(cb types.InterfaceEventCallback)

	// RegisterRadioModeListener registers for radio co-existence mode changes.
	RegisterRadioModeListener(l types.RadioModeListener)
}
