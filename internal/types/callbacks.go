package types

// InterfaceCallback receives per-interface lifecycle notifications.
// Calls are delivered in order on the notifier goroutine.
type InterfaceCallback interface {
	// OnUp is called when the interface becomes administratively up.
	OnUp(name string)
	// OnDown is called when the interface goes down.
	OnDown(name string)
	// OnDestroyed is called exactly once, after all cleanup of the interface.
	OnDestroyed(name string)
}

// InterfaceCallbackFuncs adapts plain functions to InterfaceCallback. Nil fields are ignored.
type InterfaceCallbackFuncs struct {
	Up        func(name string)
	Down      func(name string)
	Destroyed func(name string)
}

func (f InterfaceCallbackFuncs) OnUp(name string) {
	if f.Up != nil {
		f.Up(name)
	}
}

func (f InterfaceCallbackFuncs) OnDown(name string) {
	if f.Down != nil {
		f.Down(name)
	}
}

func (f InterfaceCallbackFuncs) OnDestroyed(name string) {
	if f.Destroyed != nil {
		f.Destroyed(name)
	}
}

// StatusListener is told when the whole subsystem goes down (a peer died)
// and when it is usable again.
type StatusListener interface {
	OnStatusChanged(allReady bool)
}

// StatusListenerFunc adapts a function to StatusListener.
type StatusListenerFunc func(allReady bool)

func (f StatusListenerFunc) OnStatusChanged(allReady bool) { f(allReady) }

// InterfaceEventCallback receives OS-level events for the self-recovery interface.
type InterfaceEventCallback interface {
	OnInterfaceLinkStateChanged(name string, isLinkUp bool)
	OnInterfaceAdded(name string)
}

// RadioMode is the co-existence mode reported by the vendor HAL.
type RadioMode int

const (
	RadioModeMCC RadioMode = iota
	RadioModeSCC
	RadioModeSBS
	RadioModeDBS
)

func (m RadioMode) String() string {
	switch m {
	case RadioModeMCC:
		return "mcc"
	case RadioModeSCC:
		return "scc"
	case RadioModeSBS:
		return "sbs"
	case RadioModeDBS:
		return "dbs"
	default:
		return "unknown"
	}
}

// RadioModeListener is told about radio co-existence mode changes.
type RadioModeListener interface {
	OnRadioModeChanged(mode RadioMode, band Band)
}
