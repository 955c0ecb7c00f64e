// Package types defines common types used across the application.
package types

import (
	"fmt"
	"strings"
)

// Kind is the role a radio interface was created for. It never changes
// after creation, except for the station connectivity/scan-only switch.
type Kind int

const (
	KindStationConnectivity Kind = iota
	KindStationScanOnly
	KindAccessPoint
	KindP2P
	KindNAN
)

// AllKinds lists every interface kind in declaration order.
var AllKinds = []Kind{KindStationConnectivity, KindStationScanOnly, KindAccessPoint, KindP2P, KindNAN}

func (k Kind) String() string {
	switch k {
	case KindStationConnectivity:
		return "station_connectivity"
	case KindStationScanOnly:
		return "station_scan_only"
	case KindAccessPoint:
		return "access_point"
	case KindP2P:
		return "p2p"
	case KindNAN:
		return "nan"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Class returns the hardware slot class the kind occupies. Both station
// kinds share the station slots.
func (k Kind) Class() KindClass {
	switch k {
	case KindStationConnectivity, KindStationScanOnly:
		return ClassStation
	case KindAccessPoint:
		return ClassAccessPoint
	case KindP2P:
		return ClassP2P
	default:
		return ClassNAN
	}
}

// IsStation reports whether the kind is one of the two station kinds.
func (k Kind) IsStation() bool {
	return k.Class() == ClassStation
}

// KindClass groups interface kinds that compete for the same hardware slots.
type KindClass int

const (
	ClassStation KindClass = iota
	ClassAccessPoint
	ClassP2P
	ClassNAN
)

// AllClasses lists every kind class in declaration order.
var AllClasses = []KindClass{ClassStation, ClassAccessPoint, ClassP2P, ClassNAN}

func (c KindClass) String() string {
	switch c {
	case ClassStation:
		return "station"
	case ClassAccessPoint:
		return "access_point"
	case ClassP2P:
		return "p2p"
	case ClassNAN:
		return "nan"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// ParseKindClass parses the configuration spelling of a kind class.
func ParseKindClass(s string) (KindClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "station", "sta":
		return ClassStation, nil
	case "access_point", "ap":
		return ClassAccessPoint, nil
	case "p2p":
		return ClassP2P, nil
	case "nan":
		return ClassNAN, nil
	}
	return 0, fmt.Errorf("unknown interface class %q", s)
}

// WorkSource attributes an interface to the caller that requested it.
// It is used for accounting and for replacing the owner of a station in place.
type WorkSource struct {
	UID     int    `yaml:"uid"`
	Package string `yaml:"package"`
}

func (w WorkSource) String() string {
	if w.Package == "" {
		return fmt.Sprintf("uid=%d", w.UID)
	}
	return fmt.Sprintf("uid=%d pkg=%s", w.UID, w.Package)
}

// Band is a bitmask of radio bands.
type Band int

const (
	BandUnspecified Band = 0
	Band24GHz       Band = 1 << 0
	Band5GHz        Band = 1 << 1
	Band6GHz        Band = 1 << 2
	Band60GHz       Band = 1 << 3
)

func (b Band) String() string {
	if b == BandUnspecified {
		return "any"
	}
	var parts []string
	if b&Band24GHz != 0 {
		parts = append(parts, "2.4ghz")
	}
	if b&Band5GHz != 0 {
		parts = append(parts, "5ghz")
	}
	if b&Band6GHz != 0 {
		parts = append(parts, "6ghz")
	}
	if b&Band60GHz != 0 {
		parts = append(parts, "60ghz")
	}
	return strings.Join(parts, "|")
}

// ParseBand parses a "|" or "," separated list of bands ("2.4ghz|5ghz").
func ParseBand(s string) (Band, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "any" {
		return BandUnspecified, nil
	}
	var band Band
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		switch strings.TrimSpace(part) {
		case "2.4ghz", "2g":
			band |= Band24GHz
		case "5ghz", "5g":
			band |= Band5GHz
		case "6ghz", "6g":
			band |= Band6GHz
		case "60ghz", "60g":
			band |= Band60GHz
		default:
			return 0, fmt.Errorf("unknown band %q", part)
		}
	}
	return band, nil
}

// InterfaceInfo is a read-only snapshot of a live interface.
type InterfaceInfo struct {
	ID        int
	Name      string
	Kind      Kind
	Requestor WorkSource
	Up        bool
	Features  FeatureSet
	Bridged   bool
}
