// Package linkctl provides the link control layer adapter: it owns the
// administrative state of the radio's network interfaces.
package linkctl

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"golang-wifid/internal/pkg/logging"
	"golang-wifid/internal/port"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const sysClassNet = "/sys/class/net"

type linkMode int

const (
	modeClient linkMode = iota
	modeAccessPoint
)

func (m linkMode) String() string {
	if m == modeAccessPoint {
		return "access_point"
	}
	return "client"
}

// ControlAdapter implements the LinkControl port with netlink.
type ControlAdapter struct {
	phy     string
	network port.NetworkManager
	files   port.FileManager
	logger  *logrus.Entry

	mu           sync.Mutex
	initialized  bool
	links        map[string]linkMode
	deathHandler func()
}

// Ensure ControlAdapter implements the LinkControl port
var _ port.LinkControl = (*ControlAdapter)(nil)

// NewControlAdapter creates a link control adapter for the interfaces of phy.
func NewControlAdapter(phy string, network port.NetworkManager, files port.FileManager) *ControlAdapter {
	return &ControlAdapter{
		phy:     phy,
		network: network,
		files:   files,
		logger:  logging.WithComponent("link-control"),
		links:   make(map[string]linkMode),
	}
}

// Initialize verifies the netlink session.
func (c *ControlAdapter) Initialize() error {
	if _, err := c.network.ListLinks(); err != nil {
		return fmt.Errorf("failed to initialize link control: %w", err)
	}

	c.mu.Lock()
	c.initialized = true
	c.mu.Unlock()
	return nil
}

// Terminate forgets all tracked links.
func (c *ControlAdapter) Terminate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialized = false
	c.links = make(map[string]linkMode)
}

// RegisterDeathHandler sets the death handler. An in-process netlink session only dies
// with the process, so the handler is kept for Fail.
func (c *ControlAdapter) RegisterDeathHandler(handler func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deathHandler != nil {
		return errors.New("link control death handler already registered")
	}
	c.deathHandler = handler
	return nil
}

// DeregisterDeathHandler clears the death handler.
func (c *ControlAdapter) DeregisterDeathHandler() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deathHandler == nil {
		return errors.New("link control death handler not registered")
	}
	c.deathHandler = nil
	return nil
}

// Fail marks the layer unusable and invokes the death handler once.
func (c *ControlAdapter) Fail(reason error) {
	c.mu.Lock()
	handler := c.deathHandler
	c.deathHandler = nil
	c.initialized = false
	c.links = make(map[string]linkMode)
	c.mu.Unlock()

	c.logger.WithError(reason).Error("Link control failed")
	if handler != nil {
		handler()
	}
}

// SetupClientInterface brings the interface up for client mode.
func (c *ControlAdapter) SetupClientInterface(name string) error {
	return c.setup(name, modeClient)
}

// SetupAccessPointInterface brings the interface up for access point mode.
func (c *ControlAdapter) SetupAccessPointInterface(name string) error {
	return c.setup(name, modeAccessPoint)
}

// TeardownClientInterface brings a client interface down.
func (c *ControlAdapter) TeardownClientInterface(name string) error {
	return c.teardown(name, modeClient)
}

// TeardownAccessPointInterface brings an access point interface down.
func (c *ControlAdapter) TeardownAccessPointInterface(name string) error {
	return c.teardown(name, modeAccessPoint)
}

func (c *ControlAdapter) setup(name string, mode linkMode) error {
	c.mu.Lock()
	initialized := c.initialized
	c.mu.Unlock()
	if !initialized {
		return errors.New("link control not initialized")
	}

	link, err := c.network.GetLinkByName(name)
	if err != nil {
		return fmt.Errorf("failed to set up %s interface %s: %w", mode, name, err)
	}
	if err := c.network.SetLinkUp(link); err != nil {
		return fmt.Errorf("failed to set up %s interface %s: %w", mode, name, err)
	}

	c.mu.Lock()
	c.links[name] = mode
	c.mu.Unlock()

	c.logger.WithField("interface", name).Debugf("Interface set up in %s mode", mode)
	return nil
}

func (c *ControlAdapter) teardown(name string, mode linkMode) error {
	c.mu.Lock()
	current, ok := c.links[name]
	if ok && current == mode {
		delete(c.links, name)
	}
	c.mu.Unlock()

	if !ok {
		return fmt.Errorf("interface %s is not set up", name)
	}
	if current != mode {
		return fmt.Errorf("interface %s is set up in %s mode, not %s", name, current, mode)
	}

	link, err := c.network.GetLinkByName(name)
	if err != nil {
		// Already gone with the radio interface
		return nil
	}
	if err := c.network.SetLinkDown(link); err != nil {
		return fmt.Errorf("failed to tear down %s interface %s: %w", mode, name, err)
	}
	return nil
}

// TeardownInterfaces brings down every link of the phy, including links left by a previous run.
func (c *ControlAdapter) TeardownInterfaces() error {
	c.mu.Lock()
	c.links = make(map[string]linkMode)
	c.mu.Unlock()

	links, err := c.network.ListLinks()
	if err != nil {
		return fmt.Errorf("failed to tear down interfaces: %w", err)
	}

	var errs error
	for _, link := range links {
		name := link.Attrs().Name
		if !c.onPhy(name) {
			continue
		}
		c.logger.WithField("interface", name).Info("Bringing down interface")
		errs = multierr.Append(errs, c.network.SetLinkDown(link))
	}
	return errs
}

func (c *ControlAdapter) onPhy(name string) bool {
	data, err := c.files.ReadFile(filepath.Join(sysClassNet, name, "phy80211", "name"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == c.phy
}
