// Package hostapd provides the access point daemon adapter backed by hostapd.
package hostapd

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang-wifid/internal/adapter/infrastructure/daemon"
	"golang-wifid/internal/port"

	"go.uber.org/multierr"
)

// Options configures the hostapd instance.
type Options struct {
	Binary      string
	GlobalCtrl  string
	CtrlDir     string
	ConfigDir   string
	Driver      string
	ExtraConfig []string
	ExtraArgs   []string
}

// APAdapter implements the APDaemon port over the hostapd global control interface.
type APAdapter struct {
	*daemon.Supervisor
	opts  Options
	files port.FileManager
}

// Ensure APAdapter implements the APDaemon port
var _ port.APDaemon = (*APAdapter)(nil)

// NewAPAdapter creates a hostapd adapter.
func NewAPAdapter(opts Options, runner port.ProcessRunner, dialer port.ControlDialer, files port.FileManager) *APAdapter {
	args := append([]string{"-g", opts.GlobalCtrl}, opts.ExtraArgs...)
	return &APAdapter{
		Supervisor: daemon.NewSupervisor(daemon.Options{
			Name:        "hostapd",
			Binary:      opts.Binary,
			Args:        args,
			ControlPath: opts.GlobalCtrl,
		}, runner, dialer, files),
		opts:  opts,
		files: files,
	}
}

func (a *APAdapter) configPath(name string) string {
	return filepath.Join(a.opts.ConfigDir, "hostapd-"+name+".conf")
}

func (a *APAdapter) renderConfig(name string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "interface=%s\n", name)
	fmt.Fprintf(&b, "driver=%s\n", a.opts.Driver)
	fmt.Fprintf(&b, "ctrl_interface=%s\n", a.opts.CtrlDir)
	for _, line := range a.opts.ExtraConfig {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// AddAccessPoint writes the BSS configuration and adds it to hostapd.
func (a *APAdapter) AddAccessPoint(name string) error {
	path := a.configPath(name)
	if err := a.files.WriteFile(path, a.renderConfig(name), 0600); err != nil {
		return fmt.Errorf("failed to add access point %s: %w", name, err)
	}

	if err := a.RequestOK(fmt.Sprintf("ADD bss_config=%s:%s", name, path)); err != nil {
		return multierr.Append(
			fmt.Errorf("failed to add access point %s: %w", name, err),
			a.files.RemoveFile(path))
	}
	return nil
}

// RemoveAccessPoint removes the interface from hostapd and deletes its configuration.
func (a *APAdapter) RemoveAccessPoint(name string) error {
	var err error
	if reqErr := a.RequestOK("REMOVE " + name); reqErr != nil {
		err = fmt.Errorf("failed to remove access point %s: %w", name, reqErr)
	}
	return multierr.Append(err, a.files.RemoveFile(a.configPath(name)))
}
