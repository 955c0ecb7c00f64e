package port

import (
	"golang-wifid/internal/types"
)

//go:generate mockgen -source=peer.go -destination=../mock/mock_peer.go -package=mock

// CreateRequest describes a radio interface the vendor HAL must create.
type CreateRequest struct {
	Kind      types.Kind
	Requestor types.WorkSource
	Band      types.Band
	Bridged   bool
}

// RadioModeChangeHandler receives radio co-existence mode changes from the vendor HAL.
type RadioModeChangeHandler func(mode types.RadioMode, band types.Band)

// VendorHAL is a port for the vendor hardware abstraction layer that owns the radio.
type VendorHAL interface {
	// Start brings the HAL up
	Start() error

	// Stop brings the HAL down, destroying every radio interface
	Stop()

	// IsReady reports whether the HAL is started and alive
	IsReady() bool

	// RegisterDeathHandler sets the handler invoked at most once when the HAL dies
	RegisterDeathHandler(handler func()) error

	// DeregisterDeathHandler clears the death handler
	DeregisterDeathHandler() error

	// RegisterRadioModeChangeHandler sets the radio mode change handler
	RegisterRadioModeChangeHandler(handler RadioModeChangeHandler) error

	// CreateInterface creates a radio interface and returns its OS name. onDestroyed is
	// called once, from any goroutine, when the interface is gone.
	CreateInterface(req CreateRequest, onDestroyed func(name string)) (string, error)

	// RemoveInterface starts destroying an interface; completion is reported via onDestroyed
	RemoveInterface(name string) error

	// ReplaceStaRequestor changes the requestor of a station interface
	ReplaceStaRequestor(name string, ws types.WorkSource) error

	// GetBridgedApInstances returns the instance names behind a bridged AP interface
	GetBridgedApInstances(name string) ([]string, error)

	// SupportedFeatures returns the driver features of an interface, empty when unknown
	SupportedFeatures(name string) types.FeatureSet
}

// Daemon is the lifecycle shared by the protocol daemons.
type Daemon interface {
	// Initialize prepares the connection to the daemon
	Initialize() error

	// IsInitializationStarted reports whether Initialize ran since the last Terminate
	IsInitializationStarted() bool

	// IsInitializationComplete reports whether the daemon answers on its control socket
	IsInitializationComplete() bool

	// StartDaemon launches the daemon process
	StartDaemon() error

	// Terminate stops the daemon and resets the adapter
	Terminate()

	// RegisterDeathHandler sets the handler invoked at most once when the daemon dies
	RegisterDeathHandler(handler func()) error

	// DeregisterDeathHandler clears the death handler
	DeregisterDeathHandler() error
}

// ClientDaemon is a port for the client-protocol (station authentication) daemon.
type ClientDaemon interface {
	Daemon

	// SetupInterface attaches the daemon to an interface
	SetupInterface(name string) error

	// TeardownInterface detaches the daemon from an interface
	TeardownInterface(name string) error

	// AdvancedCapabilities returns key management capabilities, empty on failure
	AdvancedCapabilities(name string) types.FeatureSet

	// DriverFeatureSet returns driver flags reported through the daemon, empty on failure
	DriverFeatureSet(name string) types.FeatureSet
}

// APDaemon is a port for the access point daemon.
type APDaemon interface {
	Daemon

	// AddAccessPoint attaches the daemon to an interface
	AddAccessPoint(name string) error

	// RemoveAccessPoint detaches the daemon from an interface
	RemoveAccessPoint(name string) error
}

// LinkControl is a port for the per-process link control layer.
type LinkControl interface {
	// Initialize connects the link control layer
	Initialize() error

	// Terminate disconnects the link control layer
	Terminate()

	// RegisterDeathHandler sets the handler invoked at most once when the layer dies
	RegisterDeathHandler(handler func()) error

	// DeregisterDeathHandler clears the death handler
	DeregisterDeathHandler() error

	// SetupClientInterface prepares an interface for client mode
	SetupClientInterface(name string) error

	// SetupAccessPointInterface prepares an interface for access point mode
	SetupAccessPointInterface(name string) error

	// TeardownClientInterface releases a client mode interface
	TeardownClientInterface(name string) error

	// TeardownAccessPointInterface releases an access point mode interface
	TeardownAccessPointInterface(name string) error

	// TeardownInterfaces releases every interface, including ones left by a previous run
	TeardownInterfaces() error
}

// ObserverToken identifies a registered link observer.
type ObserverToken int

// InterfaceWatcher receives OS-level interface events.
type InterfaceWatcher interface {
	OnInterfaceAdded(name string)
	OnInterfaceLinkStateChanged(name string, isLinkUp bool)
}

// NetworkObserver is a port for OS-level link state observation.
type NetworkObserver interface {
	// RegisterObserver calls onChange with the interface name on every link change of name
	RegisterObserver(name string, onChange func(name string)) (ObserverToken, error)

	// UnregisterObserver removes an observer
	UnregisterObserver(token ObserverToken) error

	// IsInterfaceUp reports the administrative state of an interface
	IsInterfaceUp(name string) (bool, error)

	// WatchInterfaces delivers interface added and link state events until cancel is called
	WatchInterfaces(watcher InterfaceWatcher) (cancel func(), err error)
}

// Metrics is a port for operational counters.
type Metrics interface {
	// IncSetupFailure counts a failed interface creation
	IncSetupFailure(kind types.Kind, reason string)

	// IncPeerCrash counts a peer death
	IncPeerCrash(peer string)

	// IncRadioModeChange counts a radio mode change
	IncRadioModeChange(mode types.RadioMode)

	// IncInterfaceDown counts an interface going down
	IncInterfaceDown(class types.KindClass)

	// SetInterfaceCount records the number of live interfaces of a kind
	SetInterfaceCount(kind types.Kind, n int)
}
