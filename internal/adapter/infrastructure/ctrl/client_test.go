//go:build unit

package ctrl

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDaemon answers datagrams on a unix socket the way wpa_supplicant does.
func fakeDaemon(t *testing.T, dir string, handle func(cmd string) []string) string {
	t.Helper()
	path := filepath.Join(dir, "global")
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	go func() {
		buf := make([]byte, 4096)
		for {
			n, addr, err := conn.ReadFromUnix(buf)
			if err != nil {
				return
			}
			for _, reply := range handle(string(buf[:n])) {
				_, _ = conn.WriteToUnix([]byte(reply), addr)
			}
		}
	}()
	return path
}

func TestDialerAdapter_Request(t *testing.T) {
	dir := t.TempDir()
	path := fakeDaemon(t, dir, func(cmd string) []string {
		switch {
		case cmd == "PING":
			return []string{"PONG\n"}
		case strings.HasPrefix(cmd, "INTERFACE_ADD"):
			return []string{"<3>CTRL-EVENT-SCAN-STARTED", "OK\n"}
		default:
			return []string{"UNKNOWN COMMAND\n"}
		}
	})

	dialer := NewDialerAdapter(dir, time.Second)
	ch, err := dialer.Dial(path)
	require.NoError(t, err)
	defer ch.Close()

	t.Run("Ping", func(t *testing.T) {
		reply, err := ch.Request("PING")
		require.NoError(t, err)
		assert.Equal(t, "PONG", reply)
	})

	t.Run("SkipsUnsolicitedEvents", func(t *testing.T) {
		reply, err := ch.Request("INTERFACE_ADD wlan0\t\tnl80211\t/run/wpa_supplicant")
		require.NoError(t, err)
		assert.Equal(t, "OK", reply)
	})

	t.Run("Unknown", func(t *testing.T) {
		reply, err := ch.Request("FOO")
		require.NoError(t, err)
		assert.Equal(t, "UNKNOWN COMMAND", reply)
	})
}

func TestDialerAdapter_Timeout(t *testing.T) {
	dir := t.TempDir()
	path := fakeDaemon(t, dir, func(string) []string { return nil })

	ch, err := NewDialerAdapter(dir, 100*time.Millisecond).Dial(path)
	require.NoError(t, err)
	defer ch.Close()

	_, err = ch.Request("PING")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no reply")
}

func TestDialerAdapter_DialMissingSocket(t *testing.T) {
	dir := t.TempDir()
	_, err := NewDialerAdapter(dir, time.Second).Dial(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestChannel_CloseRemovesLocalSocket(t *testing.T) {
	dir := t.TempDir()
	path := fakeDaemon(t, dir, func(string) []string { return []string{"PONG"} })

	ch, err := NewDialerAdapter(dir, time.Second).Dial(path)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, ch.Close())
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
