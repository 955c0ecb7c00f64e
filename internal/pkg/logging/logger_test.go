//go:build unit

package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "Peer died",
		Data: logrus.Fields{
			"interface": "wlan0",
			"component": "lifecycle",
			"peer":      "client_daemon",
			"kind":      "station_connectivity",
			"iface_id":  3,
		},
	}

	t.Run("Simple", func(t *testing.T) {
		out, err := (&CompactFormatter{}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t, "[WARNING][lifecycle][client_daemon][wlan0] Peer died (iface_id=3, kind=station_connectivity)\n", string(out))
	})

	t.Run("WithTime", func(t *testing.T) {
		out, err := (&CompactFormatter{ShowTime: true}).Format(entry)
		require.NoError(t, err)
		assert.Contains(t, string(out), "[03:04:05][WARNING]")
	})

	t.Run("NoFields", func(t *testing.T) {
		out, err := (&CompactFormatter{}).Format(&logrus.Entry{
			Logger:  logrus.New(),
			Level:   logrus.InfoLevel,
			Message: "Interface manager started",
			Data:    logrus.Fields{},
		})
		require.NoError(t, err)
		assert.Equal(t, "[INFO] Interface manager started\n", string(out))
	})
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	t.Run("LevelAndFormat", func(t *testing.T) {
		InitLogger(LogConfig{Level: "debug", Format: "compact"})
		assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())
		assert.IsType(t, &CompactFormatter{}, Logger.Formatter)
	})

	t.Run("InvalidLevelDefaultsToInfo", func(t *testing.T) {
		InitLogger(LogConfig{Level: "loud", Format: "json"})
		assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, Logger.Formatter)
	})

	t.Run("FileOutput", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wifid.log")
		InitLogger(LogConfig{Level: "info", Format: "simple", Output: path})
		WithPeer("daemon", "hostapd").Info("Daemon started")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "[INFO][daemon][hostapd] Daemon started\n")
	})

	t.Run("InvalidOutputDefaultsToStdout", func(t *testing.T) {
		InitLogger(LogConfig{Level: "info", Format: "text", Output: "/nonexistent/dir/wifid.log"})
		assert.Equal(t, os.Stdout, Logger.Out)
	})
}
