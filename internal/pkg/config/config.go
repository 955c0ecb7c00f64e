package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang-wifid/internal/pkg/logging"
	"golang-wifid/internal/types"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// HardwareConfig describes the radio and which interface classes it can run concurrently
type HardwareConfig struct {
	Phy             string            `yaml:"phy"`
	IwBinary        string            `yaml:"iw_binary"`
	MaxStations     int               `yaml:"max_stations"`
	MaxAccessPoints int               `yaml:"max_access_points"`
	MaxP2P          int               `yaml:"max_p2p"`
	MaxNAN          int               `yaml:"max_nan"`
	Exclusive       [][]string        `yaml:"exclusive"`
	NamePrefixes    map[string]string `yaml:"name_prefixes,omitempty"`
}

// SupplicantConfig represents the wpa_supplicant settings
type SupplicantConfig struct {
	Binary     string   `yaml:"binary"`
	GlobalCtrl string   `yaml:"global_ctrl"`
	CtrlDir    string   `yaml:"ctrl_dir"`
	Driver     string   `yaml:"driver"`
	ExtraArgs  []string `yaml:"extra_args,omitempty"`
}

// HostapdConfig represents the hostapd settings
type HostapdConfig struct {
	Binary      string   `yaml:"binary"`
	GlobalCtrl  string   `yaml:"global_ctrl"`
	CtrlDir     string   `yaml:"ctrl_dir"`
	ConfigDir   string   `yaml:"config_dir"`
	Driver      string   `yaml:"driver"`
	ExtraConfig []string `yaml:"extra_config,omitempty"`
	ExtraArgs   []string `yaml:"extra_args,omitempty"`
}

// LifecycleConfig represents timing of the interface lifecycle manager
type LifecycleConfig struct {
	DaemonConnectRetries  int           `yaml:"daemon_connect_retries"`
	DaemonConnectInterval time.Duration `yaml:"daemon_connect_interval"`
	DestroyTimeout        time.Duration `yaml:"destroy_timeout"`
	CallbackTimeout       time.Duration `yaml:"callback_timeout"`
	ControlTimeout        time.Duration `yaml:"control_timeout"`
	RuntimeDir            string        `yaml:"runtime_dir"`
	SelfRecoveryInterface string        `yaml:"self_recovery_interface,omitempty"`
}

// MetricsConfig represents the Prometheus endpoint
type MetricsConfig struct {
	Listen string `yaml:"listen"`
	Path   string `yaml:"path"`
}

// InterfaceRequest is an interface requested at start-up and after every recovery
type InterfaceRequest struct {
	Role      string           `yaml:"role"`
	Band      string           `yaml:"band,omitempty"`
	Bridged   bool             `yaml:"bridged,omitempty"`
	Requestor types.WorkSource `yaml:"requestor"`
}

// Config represents the main configuration structure
type Config struct {
	Logging    logging.LogConfig  `yaml:"logging"`
	Hardware   HardwareConfig     `yaml:"hardware"`
	Supplicant SupplicantConfig   `yaml:"supplicant"`
	Hostapd    HostapdConfig      `yaml:"hostapd"`
	Lifecycle  LifecycleConfig    `yaml:"lifecycle"`
	Metrics    MetricsConfig      `yaml:"metrics"`
	Interfaces []InterfaceRequest `yaml:"interfaces"`
}

// Default returns the configuration used for every omitted field
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "text",
		},
		Hardware: HardwareConfig{
			Phy:             "phy0",
			IwBinary:        "iw",
			MaxStations:     1,
			MaxAccessPoints: 1,
			MaxP2P:          1,
			MaxNAN:          1,
			Exclusive: [][]string{
				{"station", "access_point"},
				{"access_point", "p2p"},
				{"access_point", "nan"},
				{"p2p", "nan"},
			},
		},
		Supplicant: SupplicantConfig{
			Binary:     "wpa_supplicant",
			GlobalCtrl: "/run/wpa_supplicant/global",
			CtrlDir:    "/run/wpa_supplicant",
			Driver:     "nl80211",
		},
		Hostapd: HostapdConfig{
			Binary:     "hostapd",
			GlobalCtrl: "/run/hostapd/global",
			CtrlDir:    "/run/hostapd",
			ConfigDir:  "/run/wifid",
			Driver:     "nl80211",
		},
		Lifecycle: LifecycleConfig{
			DaemonConnectRetries:  50,
			DaemonConnectInterval: 100 * time.Millisecond,
			DestroyTimeout:        3 * time.Second,
			CallbackTimeout:       time.Second,
			ControlTimeout:        5 * time.Second,
			RuntimeDir:            "/run/wifid",
		},
		Metrics: MetricsConfig{
			Listen: ":9135",
			Path:   "/metrics",
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration and reports every problem found
func (c *Config) Validate() error {
	var errs error

	if c.Hardware.Phy == "" {
		errs = multierr.Append(errs, fmt.Errorf("hardware: phy is required"))
	}
	for class, n := range map[string]int{
		"max_stations":      c.Hardware.MaxStations,
		"max_access_points": c.Hardware.MaxAccessPoints,
		"max_p2p":           c.Hardware.MaxP2P,
		"max_nan":           c.Hardware.MaxNAN,
	} {
		if n < 0 {
			errs = multierr.Append(errs, fmt.Errorf("hardware: %s must not be negative", class))
		}
	}
	if _, err := c.Hardware.ExclusivePairs(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := c.Hardware.Prefixes(); err != nil {
		errs = multierr.Append(errs, err)
	}

	if c.Supplicant.GlobalCtrl == "" {
		errs = multierr.Append(errs, fmt.Errorf("supplicant: global_ctrl is required"))
	}
	if c.Hostapd.GlobalCtrl == "" {
		errs = multierr.Append(errs, fmt.Errorf("hostapd: global_ctrl is required"))
	}

	if c.Lifecycle.DaemonConnectRetries < 1 {
		errs = multierr.Append(errs, fmt.Errorf("lifecycle: daemon_connect_retries must be at least 1"))
	}
	for name, d := range map[string]time.Duration{
		"daemon_connect_interval": c.Lifecycle.DaemonConnectInterval,
		"destroy_timeout":         c.Lifecycle.DestroyTimeout,
		"callback_timeout":        c.Lifecycle.CallbackTimeout,
		"control_timeout":         c.Lifecycle.ControlTimeout,
	} {
		if d <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("lifecycle: %s must be positive", name))
		}
	}

	for i, req := range c.Interfaces {
		kind, err := req.Kind()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("interfaces[%d]: %w", i, err))
		} else if req.Bridged && kind != types.KindAccessPoint {
			errs = multierr.Append(errs, fmt.Errorf("interfaces[%d]: bridged is only valid for access points", i))
		}
		if _, err := types.ParseBand(req.Band); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("interfaces[%d]: %w", i, err))
		}
	}

	return errs
}

// Slots returns the number of concurrent interfaces per class
func (h HardwareConfig) Slots() map[types.KindClass]int {
	return map[types.KindClass]int{
		types.ClassStation:     h.MaxStations,
		types.ClassAccessPoint: h.MaxAccessPoints,
		types.ClassP2P:         h.MaxP2P,
		types.ClassNAN:         h.MaxNAN,
	}
}

// ExclusivePairs parses the list of class pairs that cannot coexist
func (h HardwareConfig) ExclusivePairs() ([][2]types.KindClass, error) {
	pairs := make([][2]types.KindClass, 0, len(h.Exclusive))
	for i, raw := range h.Exclusive {
		if len(raw) != 2 {
			return nil, fmt.Errorf("hardware: exclusive[%d] must name exactly two classes", i)
		}
		a, err := types.ParseKindClass(raw[0])
		if err != nil {
			return nil, fmt.Errorf("hardware: exclusive[%d]: %w", i, err)
		}
		b, err := types.ParseKindClass(raw[1])
		if err != nil {
			return nil, fmt.Errorf("hardware: exclusive[%d]: %w", i, err)
		}
		if a == b {
			return nil, fmt.Errorf("hardware: exclusive[%d]: class %s cannot exclude itself, use its slot count", i, a)
		}
		pairs = append(pairs, [2]types.KindClass{a, b})
	}
	return pairs, nil
}

// Prefixes parses the interface name prefixes per class
func (h HardwareConfig) Prefixes() (map[types.KindClass]string, error) {
	prefixes := make(map[types.KindClass]string, len(h.NamePrefixes))
	for raw, prefix := range h.NamePrefixes {
		class, err := types.ParseKindClass(raw)
		if err != nil {
			return nil, fmt.Errorf("hardware: name_prefixes: %w", err)
		}
		prefixes[class] = prefix
	}
	return prefixes, nil
}

// Kind maps the configured role to an interface kind
func (r InterfaceRequest) Kind() (types.Kind, error) {
	switch strings.ToLower(r.Role) {
	case "station", "client", "sta":
		return types.KindStationConnectivity, nil
	case "scan_only", "scan":
		return types.KindStationScanOnly, nil
	case "access_point", "ap":
		return types.KindAccessPoint, nil
	case "p2p":
		return types.KindP2P, nil
	case "nan":
		return types.KindNAN, nil
	}
	return 0, fmt.Errorf("unknown role %q", r.Role)
}
