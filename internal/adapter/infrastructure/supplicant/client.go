// Package supplicant provides the client-protocol daemon adapter backed by wpa_supplicant.
package supplicant

import (
	"fmt"
	"strings"

	"golang-wifid/internal/adapter/infrastructure/daemon"
	"golang-wifid/internal/port"
	"golang-wifid/internal/types"
)

// Options configures the wpa_supplicant instance.
type Options struct {
	Binary     string
	GlobalCtrl string
	CtrlDir    string
	Driver     string
	ExtraArgs  []string
}

// ClientAdapter implements the ClientDaemon port over the wpa_supplicant global control interface.
type ClientAdapter struct {
	*daemon.Supervisor
	opts Options
}

// Ensure ClientAdapter implements the ClientDaemon port
var _ port.ClientDaemon = (*ClientAdapter)(nil)

// NewClientAdapter creates a wpa_supplicant adapter.
func NewClientAdapter(opts Options, runner port.ProcessRunner, dialer port.ControlDialer, files port.FileManager) *ClientAdapter {
	args := append([]string{"-g", opts.GlobalCtrl, "-O", opts.CtrlDir}, opts.ExtraArgs...)
	return &ClientAdapter{
		Supervisor: daemon.NewSupervisor(daemon.Options{
			Name:        "wpa_supplicant",
			Binary:      opts.Binary,
			Args:        args,
			ControlPath: opts.GlobalCtrl,
		}, runner, dialer, files),
		opts: opts,
	}
}

// SetupInterface adds the interface to wpa_supplicant.
func (c *ClientAdapter) SetupInterface(name string) error {
	// INTERFACE_ADD <ifname>TAB<confname>TAB<driver>TAB<ctrl_interface>
	cmd := fmt.Sprintf("INTERFACE_ADD %s\t\t%s\t%s", name, c.opts.Driver, c.opts.CtrlDir)
	if err := c.RequestOK(cmd); err != nil {
		return fmt.Errorf("failed to add interface %s: %w", name, err)
	}
	return nil
}

// TeardownInterface removes the interface from wpa_supplicant.
func (c *ClientAdapter) TeardownInterface(name string) error {
	if err := c.RequestOK("INTERFACE_REMOVE " + name); err != nil {
		return fmt.Errorf("failed to remove interface %s: %w", name, err)
	}
	return nil
}

var keyMgmtFeatures = map[string]types.FeatureSet{
	"SAE":         types.FeatureWPA3SAE,
	"FT-SAE":      types.FeatureWPA3SAE,
	"SUITE-B":     types.FeatureWPA3SuiteB,
	"SUITE-B-192": types.FeatureWPA3SuiteB,
	"OWE":         types.FeatureOWE,
	"DPP":         types.FeatureDPP,
	"FILS-SHA256": types.FeatureFILS,
	"FILS-SHA384": types.FeatureFILS,
}

// AdvancedCapabilities returns the key management features. Failures yield an empty set.
func (c *ClientAdapter) AdvancedCapabilities(name string) types.FeatureSet {
	reply, err := c.Request("IFNAME=" + name + " GET_CAPABILITY key_mgmt")
	if err != nil || strings.HasPrefix(reply, "FAIL") {
		return 0
	}
	return parseFlags(strings.Fields(reply), keyMgmtFeatures)
}

var driverFlagFeatures = map[string]types.FeatureSet{
	"AP":                  types.FeatureSoftAP,
	"P2P_CAPABLE":         types.FeatureP2P,
	"P2P_CONCURRENT":      types.FeatureP2P,
	"SAE":                 types.FeatureWPA3SAE,
	"OWE_OFFLOAD_STA":     types.FeatureOWE,
	"FILS_SK_OFFLOAD":     types.FeatureFILS,
	"OCE_STA":             types.FeatureOCE,
	"TDLS_SUPPORT":        types.FeatureTDLS,
	"MGMT_TX_RANDOM_TA":   types.FeatureMACRandomization,
	"SCHED_SCAN_RANDOM_M": types.FeatureMACRandomization,
	"HE_CAPAB":            types.Feature11AX,
}

// DriverFeatureSet returns features derived from the driver flags. Failures yield an empty set.
func (c *ClientAdapter) DriverFeatureSet(name string) types.FeatureSet {
	reply, err := c.Request("IFNAME=" + name + " DRIVER_FLAGS")
	if err != nil || strings.HasPrefix(reply, "FAIL") {
		return 0
	}
	lines := strings.Split(reply, "\n")
	// The first line carries the raw hex mask.
	if len(lines) > 0 && strings.HasPrefix(lines[0], "0x") {
		lines = lines[1:]
	}
	return types.FeatureInfraSTA | parseFlags(lines, driverFlagFeatures)
}

func parseFlags(tokens []string, table map[string]types.FeatureSet) types.FeatureSet {
	var set types.FeatureSet
	for _, token := range tokens {
		if f, ok := table[strings.TrimSpace(token)]; ok {
			set |= f
		}
	}
	return set
}
