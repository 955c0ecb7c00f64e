package lifecycle

import (
	"sort"

	"golang-wifid/internal/port"
	"golang-wifid/internal/types"
)

// managedIface is the registry record of a live interface.
type managedIface struct {
	id        int
	name      string
	linkName  string
	kind      types.Kind
	requestor types.WorkSource
	callback  types.InterfaceCallback

	observer    port.ObserverToken
	hasObserver bool

	up         bool
	stateKnown bool
	features   types.FeatureSet
	bridged    []string
	removing   bool
}

func (i *managedIface) info() types.InterfaceInfo {
	return types.InterfaceInfo{
		ID:        i.id,
		Name:      i.name,
		Kind:      i.kind,
		Requestor: i.requestor,
		Up:        i.up,
		Features:  i.features,
		Bridged:   len(i.bridged) > 0,
	}
}

// registry is the table of live interfaces keyed by handle. It is only touched
// from the sequencing context.
type registry struct {
	lastID int
	ifaces map[int]*managedIface
}

func newRegistry() *registry {
	return &registry{ifaces: make(map[int]*managedIface)}
}

// allocate creates a record with a fresh handle without inserting it.
func (r *registry) allocate(kind types.Kind, requestor types.WorkSource, cb types.InterfaceCallback) *managedIface {
	r.lastID++
	return &managedIface{id: r.lastID, kind: kind, requestor: requestor, callback: cb}
}

func (r *registry) insert(iface *managedIface) {
	r.ifaces[iface.id] = iface
}

func (r *registry) remove(id int) {
	delete(r.ifaces, id)
}

func (r *registry) get(id int) *managedIface {
	return r.ifaces[id]
}

// byName returns the newest interface with the name.
func (r *registry) byName(name string) *managedIface {
	var found *managedIface
	for _, iface := range r.ifaces {
		if iface.name == name && (found == nil || iface.id > found.id) {
			found = iface
		}
	}
	return found
}

// list returns every interface ordered by handle.
func (r *registry) list() []*managedIface {
	out := make([]*managedIface, 0, len(r.ifaces))
	for _, iface := range r.ifaces {
		out = append(out, iface)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// dependents returns the interfaces that need peer p, ordered by handle.
func (r *registry) dependents(p PeerID) []*managedIface {
	var out []*managedIface
	for _, iface := range r.list() {
		if dependsOn(iface.kind, p) {
			out = append(out, iface)
		}
	}
	return out
}

func (r *registry) countKind(kind types.Kind) int {
	n := 0
	for _, iface := range r.ifaces {
		if iface.kind == kind {
			n++
		}
	}
	return n
}

func (r *registry) len() int {
	return len(r.ifaces)
}

func (r *registry) names(match func(types.Kind) bool) []string {
	var names []string
	for _, iface := range r.list() {
		if match(iface.kind) {
			names = append(names, iface.name)
		}
	}
	return names
}

func (r *registry) snapshot() []types.InterfaceInfo {
	ifaces := r.list()
	out := make([]types.InterfaceInfo, 0, len(ifaces))
	for _, iface := range ifaces {
		out = append(out, iface.info())
	}
	return out
}
