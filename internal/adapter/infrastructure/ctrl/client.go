// Package ctrl provides a client for the wpa_ctrl style control sockets used by
// wpa_supplicant and hostapd.
package ctrl

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang-wifid/internal/port"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 5 * time.Second
	maxReplySize   = 4096
)

// DialerAdapter is an adapter that implements the ControlDialer port over unix datagram sockets.
type DialerAdapter struct {
	localDir string
	timeout  time.Duration
}

// Ensure DialerAdapter implements the ControlDialer port
var _ port.ControlDialer = (*DialerAdapter)(nil)

// NewDialerAdapter creates a dialer binding client sockets in localDir.
func NewDialerAdapter(localDir string, timeout time.Duration) *DialerAdapter {
	if localDir == "" {
		localDir = os.TempDir()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &DialerAdapter{localDir: localDir, timeout: timeout}
}

// Dial connects to the control socket at path.
func (d *DialerAdapter) Dial(path string) (port.ControlChannel, error) {
	local := filepath.Join(d.localDir, "wifid-ctrl-"+uuid.NewString()[:8])

	conn, err := net.DialUnix("unixgram",
		&net.UnixAddr{Name: local, Net: "unixgram"},
		&net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		_ = os.Remove(local)
		return nil, fmt.Errorf("failed to connect to control socket %s: %w", path, err)
	}

	return &channel{conn: conn, local: local, timeout: d.timeout}, nil
}

type channel struct {
	mu      sync.Mutex
	conn    *net.UnixConn
	local   string
	timeout time.Duration
}

// Request sends cmd and waits for the reply. Unsolicited event messages are skipped.
func (c *channel) Request(cmd string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return "", fmt.Errorf("failed to set deadline: %w", err)
	}
	if _, err := c.conn.Write([]byte(cmd)); err != nil {
		return "", fmt.Errorf("failed to send %q: %w", commandName(cmd), err)
	}

	buf := make([]byte, maxReplySize)
	for {
		n, err := c.conn.Read(buf)
		if err != nil {
			return "", fmt.Errorf("no reply to %q: %w", commandName(cmd), err)
		}
		reply := string(buf[:n])
		if strings.HasPrefix(reply, "<") {
			continue
		}
		return strings.TrimRight(reply, "\n"), nil
	}
}

// Close closes the socket and removes its local path.
func (c *channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.conn.Close()
	if rmErr := os.Remove(c.local); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
		err = rmErr
	}
	return err
}

func commandName(cmd string) string {
	if i := strings.IndexAny(cmd, " \t"); i > 0 {
		return cmd[:i]
	}
	return cmd
}
