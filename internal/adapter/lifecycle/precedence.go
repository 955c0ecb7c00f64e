package lifecycle

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang-wifid/internal/types"
)

// Relation tells whether two interface classes can run at the same time.
type Relation int

const (
	Coexist Relation = iota
	MutuallyExclusive
)

func (r Relation) String() string {
	if r == MutuallyExclusive {
		return "exclusive"
	}
	return "coexist"
}

// CompatibilityTable is the hardware concurrency matrix: how many interfaces of
// each class may exist and which classes exclude each other. The newest request
// always wins; the table only decides who has to make room.
type CompatibilityTable struct {
	slots     map[types.KindClass]int
	exclusive map[[2]types.KindClass]bool
}

// NewCompatibilityTable builds a table from slot counts and exclusive class pairs.
func NewCompatibilityTable(slots map[types.KindClass]int, exclusive [][2]types.KindClass) (*CompatibilityTable, error) {
	t := &CompatibilityTable{
		slots:     make(map[types.KindClass]int, len(types.AllClasses)),
		exclusive: make(map[[2]types.KindClass]bool),
	}
	for _, class := range types.AllClasses {
		n := slots[class]
		if n < 0 {
			return nil, fmt.Errorf("negative slot count for %s", class)
		}
		t.slots[class] = n
	}
	for _, pair := range exclusive {
		if pair[0] == pair[1] {
			return nil, fmt.Errorf("class %s cannot exclude itself", pair[0])
		}
		t.exclusive[pair] = true
		t.exclusive[[2]types.KindClass{pair[1], pair[0]}] = true
	}
	return t, nil
}

// Slots returns how many interfaces of the class may exist at once.
func (t *CompatibilityTable) Slots(class types.KindClass) int {
	return t.slots[class]
}

// Relation returns the relation of two classes. A class always coexists with
// itself up to its slot count.
func (t *CompatibilityTable) Relation(a, b types.KindClass) Relation {
	if t.exclusive[[2]types.KindClass{a, b}] {
		return MutuallyExclusive
	}
	return Coexist
}

// Victims returns the live interfaces that must be destroyed before an interface
// of kind can be created, ordered by handle: every interface of an exclusive class
// and the oldest interfaces of the same class beyond its slot count.
func (t *CompatibilityTable) Victims(kind types.Kind, live []types.InterfaceInfo) ([]types.InterfaceInfo, error) {
	class := kind.Class()
	slots := t.slots[class]
	if slots == 0 {
		return nil, fmt.Errorf("%w: hardware has no %s slot", ErrCapabilityConflict, class)
	}

	sorted := append([]types.InterfaceInfo(nil), live...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var (
		victims []types.InterfaceInfo
		same    []types.InterfaceInfo
	)
	for _, iface := range sorted {
		other := iface.Kind.Class()
		switch {
		case other == class:
			same = append(same, iface)
		case t.Relation(class, other) == MutuallyExclusive:
			victims = append(victims, iface)
		}
	}
	if excess := len(same) - slots + 1; excess > 0 {
		victims = append(victims, same[:excess]...)
	}

	sort.Slice(victims, func(i, j int) bool { return victims[i].ID < victims[j].ID })
	return victims, nil
}

// Write renders the table for humans.
func (t *CompatibilityTable) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %5s", "class", "slots")
	for _, class := range types.AllClasses {
		fmt.Fprintf(&b, " %-13s", class)
	}
	b.WriteByte('\n')
	for _, a := range types.AllClasses {
		fmt.Fprintf(&b, "%-14s %5d", a, t.slots[a])
		for _, other := range types.AllClasses {
			rel := t.Relation(a, other).String()
			if a == other {
				rel = "-"
			}
			fmt.Fprintf(&b, " %-13s", rel)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
