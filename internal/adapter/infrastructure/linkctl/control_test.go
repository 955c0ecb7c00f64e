//go:build unit

package linkctl

import (
	"testing"

	"golang-wifid/internal/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"
)

func newAdapter(t *testing.T) (*ControlAdapter, *mock.MockNetworkManager, *mock.MockFileManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	network := mock.NewMockNetworkManager(ctrl)
	files := mock.NewMockFileManager(ctrl)
	return NewControlAdapter("phy0", network, files), network, files
}

func dummy(name string) netlink.Link {
	return &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: name}}
}

func TestControlAdapter_Setup(t *testing.T) {
	adapter, network, _ := newAdapter(t)

	t.Run("NotInitialized", func(t *testing.T) {
		assert.Error(t, adapter.SetupClientInterface("wlan0"))
	})

	network.EXPECT().ListLinks().Return(nil, nil)
	require.NoError(t, adapter.Initialize())

	t.Run("Client", func(t *testing.T) {
		link := dummy("wlan0")
		network.EXPECT().GetLinkByName("wlan0").Return(link, nil)
		network.EXPECT().SetLinkUp(link).Return(nil)
		assert.NoError(t, adapter.SetupClientInterface("wlan0"))
	})

	t.Run("WrongModeTeardown", func(t *testing.T) {
		err := adapter.TeardownAccessPointInterface("wlan0")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "client mode")
	})

	t.Run("ClientTeardown", func(t *testing.T) {
		link := dummy("wlan0")
		network.EXPECT().GetLinkByName("wlan0").Return(link, nil)
		network.EXPECT().SetLinkDown(link).Return(nil)
		assert.NoError(t, adapter.TeardownClientInterface("wlan0"))

		assert.Error(t, adapter.TeardownClientInterface("wlan0"))
	})

	t.Run("AccessPointLinkMissing", func(t *testing.T) {
		network.EXPECT().GetLinkByName("wlan1").Return(nil, assert.AnError)
		err := adapter.SetupAccessPointInterface("wlan1")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("AccessPointTeardownAfterDestroy", func(t *testing.T) {
		link := dummy("wlan1")
		network.EXPECT().GetLinkByName("wlan1").Return(link, nil)
		network.EXPECT().SetLinkUp(link).Return(nil)
		require.NoError(t, adapter.SetupAccessPointInterface("wlan1"))

		network.EXPECT().GetLinkByName("wlan1").Return(nil, assert.AnError)
		assert.NoError(t, adapter.TeardownAccessPointInterface("wlan1"))
	})
}

func TestControlAdapter_Initialize(t *testing.T) {
	adapter, network, _ := newAdapter(t)
	network.EXPECT().ListLinks().Return(nil, assert.AnError)
	assert.ErrorIs(t, adapter.Initialize(), assert.AnError)
}

func TestControlAdapter_TeardownInterfaces(t *testing.T) {
	adapter, network, files := newAdapter(t)

	wlan0, wlan1, eth0, wlan2 := dummy("wlan0"), dummy("wlan1"), dummy("eth0"), dummy("wlan2")
	network.EXPECT().ListLinks().Return([]netlink.Link{wlan0, eth0, wlan1, wlan2}, nil)
	files.EXPECT().ReadFile("/sys/class/net/wlan0/phy80211/name").Return([]byte("phy0\n"), nil)
	files.EXPECT().ReadFile("/sys/class/net/eth0/phy80211/name").Return(nil, assert.AnError)
	files.EXPECT().ReadFile("/sys/class/net/wlan1/phy80211/name").Return([]byte("phy1\n"), nil)
	files.EXPECT().ReadFile("/sys/class/net/wlan2/phy80211/name").Return([]byte("phy0\n"), nil)
	network.EXPECT().SetLinkDown(wlan0).Return(assert.AnError)
	network.EXPECT().SetLinkDown(wlan2).Return(nil)

	err := adapter.TeardownInterfaces()
	assert.Len(t, multierr.Errors(err), 1)
}

func TestControlAdapter_DeathHandler(t *testing.T) {
	adapter, _, _ := newAdapter(t)

	calls := 0
	require.NoError(t, adapter.RegisterDeathHandler(func() { calls++ }))
	assert.Error(t, adapter.RegisterDeathHandler(func() {}))

	adapter.Fail(assert.AnError)
	adapter.Fail(assert.AnError)
	assert.Equal(t, 1, calls)

	assert.Error(t, adapter.DeregisterDeathHandler())
	require.NoError(t, adapter.RegisterDeathHandler(func() {}))
	assert.NoError(t, adapter.DeregisterDeathHandler())
}
