package lifecycle

import (
	"fmt"

	"golang-wifid/internal/types"
)

// PeerID names one of the peers the manager drives.
type PeerID int

const (
	PeerVendor PeerID = iota
	PeerLinkControl
	PeerClientDaemon
	PeerAPDaemon
	peerCount
)

func (p PeerID) String() string {
	switch p {
	case PeerVendor:
		return "vendor_hal"
	case PeerLinkControl:
		return "link_control"
	case PeerClientDaemon:
		return "client_daemon"
	case PeerAPDaemon:
		return "ap_daemon"
	default:
		return fmt.Sprintf("peer(%d)", int(p))
	}
}

// PeerState is the lifecycle state of a peer.
type PeerState int

const (
	PeerNotStarted PeerState = iota
	PeerStarting
	PeerReady
	PeerDead
)

func (s PeerState) String() string {
	switch s {
	case PeerNotStarted:
		return "not_started"
	case PeerStarting:
		return "starting"
	case PeerReady:
		return "ready"
	case PeerDead:
		return "dead"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// running reports whether the peer was started and has not died.
func (s PeerState) running() bool {
	return s == PeerStarting || s == PeerReady
}

// peerTable holds the state of every peer. The generation changes on every
// start so that a death report from an earlier session can be recognised.
type peerTable struct {
	states      [peerCount]PeerState
	generations [peerCount]uint64
}

func (t *peerTable) state(p PeerID) PeerState {
	return t.states[p]
}

func (t *peerTable) generation(p PeerID) uint64 {
	return t.generations[p]
}

// markStarting moves a stopped or dead peer to Starting and opens a new generation.
func (t *peerTable) markStarting(p PeerID) error {
	switch t.states[p] {
	case PeerNotStarted, PeerDead:
		t.states[p] = PeerStarting
		t.generations[p]++
		return nil
	}
	return fmt.Errorf("%s cannot start from state %s", p, t.states[p])
}

func (t *peerTable) markReady(p PeerID) error {
	if t.states[p] != PeerStarting {
		return fmt.Errorf("%s cannot become ready from state %s", p, t.states[p])
	}
	t.states[p] = PeerReady
	return nil
}

// markDead records a death. It reports false when the peer was not running.
func (t *peerTable) markDead(p PeerID) bool {
	if !t.states[p].running() {
		return false
	}
	t.states[p] = PeerDead
	return true
}

func (t *peerTable) reset(p PeerID) {
	t.states[p] = PeerNotStarted
}

// dependsOn reports whether an interface of kind needs peer p.
func dependsOn(kind types.Kind, p PeerID) bool {
	switch p {
	case PeerVendor:
		return true
	case PeerLinkControl:
		return kind.IsStation() || kind == types.KindAccessPoint
	case PeerClientDaemon:
		return kind == types.KindStationConnectivity
	case PeerAPDaemon:
		return kind == types.KindAccessPoint
	}
	return false
}

// hasNetdev reports whether the kind has an OS network interface to observe.
func hasNetdev(kind types.Kind) bool {
	return kind.IsStation() || kind == types.KindAccessPoint
}
