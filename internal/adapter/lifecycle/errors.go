package lifecycle

import (
	"errors"
	"fmt"

	"golang-wifid/internal/types"
)

// Reason classifies why an interface could not be created.
type Reason int

const (
	ReasonHalStart Reason = iota
	ReasonDaemonStart
	ReasonInterfaceCreate
	ReasonProtocolAttach
	ReasonCapabilityConflict
)

// String returns the metric label of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonHalStart:
		return "hal_start_failure"
	case ReasonDaemonStart:
		return "daemon_start_failure"
	case ReasonInterfaceCreate:
		return "interface_create_failure"
	case ReasonProtocolAttach:
		return "protocol_attach_failure"
	case ReasonCapabilityConflict:
		return "capability_conflict"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

var (
	ErrHalStart           = errors.New("vendor HAL failed to start")
	ErrDaemonStart        = errors.New("protocol daemon failed to start")
	ErrInterfaceCreate    = errors.New("radio interface creation failed")
	ErrProtocolAttach     = errors.New("protocol attach failed")
	ErrCapabilityConflict = errors.New("no slot available for interface kind")

	// ErrUnknownInterface is returned for operations on a name that is not managed.
	ErrUnknownInterface = errors.New("unknown interface")
	// ErrNotStation is returned for station-only operations on other kinds.
	ErrNotStation = errors.New("not a station interface")
	// ErrManagerStopped is returned once Run has returned.
	ErrManagerStopped = errors.New("interface manager stopped")
)

func (r Reason) sentinel() error {
	switch r {
	case ReasonHalStart:
		return ErrHalStart
	case ReasonDaemonStart:
		return ErrDaemonStart
	case ReasonInterfaceCreate:
		return ErrInterfaceCreate
	case ReasonProtocolAttach:
		return ErrProtocolAttach
	default:
		return ErrCapabilityConflict
	}
}

// SetupError is the typed failure of an interface creation or mode switch.
type SetupError struct {
	Kind   types.Kind
	Reason Reason
	Err    error
}

func (e *SetupError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("setup %s interface: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("setup %s interface: %s: %v", e.Kind, e.Reason, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the failure reason.
func (e *SetupError) Is(target error) bool {
	return target == e.Reason.sentinel()
}
