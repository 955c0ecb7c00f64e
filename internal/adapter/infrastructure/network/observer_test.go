//go:build unit

package network

import (
	"net"
	"sync"
	"testing"
	"time"

	"golang-wifid/internal/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"
)

type recordingWatcher struct {
	mu     sync.Mutex
	events []string
}

func (w *recordingWatcher) OnInterfaceAdded(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, "added:"+name)
}

func (w *recordingWatcher) OnInterfaceLinkStateChanged(name string, isLinkUp bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	state := "down"
	if isLinkUp {
		state = "up"
	}
	w.events = append(w.events, state+":"+name)
}

func linkUpdate(msgType uint16, name string, up bool) netlink.LinkUpdate {
	attrs := netlink.LinkAttrs{Name: name}
	if up {
		attrs.Flags = net.FlagUp
	}
	update := netlink.LinkUpdate{Link: &netlink.Dummy{LinkAttrs: attrs}}
	update.Header.Type = msgType
	return update
}

func startObserver(t *testing.T, existing []netlink.Link) (*ObserverAdapter, *mock.MockNetworkManager, *func(netlink.LinkUpdate), *func(error)) {
	t.Helper()
	ctrl := gomock.NewController(t)
	networkMgr := mock.NewMockNetworkManager(ctrl)

	var (
		onUpdate func(netlink.LinkUpdate)
		onClosed func(error)
	)
	networkMgr.EXPECT().ListLinks().Return(existing, nil)
	networkMgr.EXPECT().
		SubscribeLinkUpdates(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(done <-chan struct{}, u func(netlink.LinkUpdate), c func(error)) error {
			onUpdate = u
			onClosed = c
			return nil
		})

	observer := NewObserverAdapter(networkMgr)
	require.NoError(t, observer.Start())
	t.Cleanup(observer.Stop)
	return observer, networkMgr, &onUpdate, &onClosed
}

func TestObserverAdapter_RegisterObserver(t *testing.T) {
	observer, _, onUpdate, _ := startObserver(t, nil)

	var calls []string
	token, err := observer.RegisterObserver("wlan0", func(name string) { calls = append(calls, name) })
	require.NoError(t, err)

	t.Run("ChangeForObservedInterface", func(t *testing.T) {
		(*onUpdate)(linkUpdate(unix.RTM_NEWLINK, "wlan0", true))
		assert.Equal(t, []string{"wlan0"}, calls)
	})

	t.Run("DuplicateStateIsMasked", func(t *testing.T) {
		(*onUpdate)(linkUpdate(unix.RTM_NEWLINK, "wlan0", true))
		assert.Len(t, calls, 1)
	})

	t.Run("OtherInterfaceIgnored", func(t *testing.T) {
		(*onUpdate)(linkUpdate(unix.RTM_NEWLINK, "wlan1", true))
		assert.Len(t, calls, 1)
	})

	t.Run("Unregister", func(t *testing.T) {
		require.NoError(t, observer.UnregisterObserver(token))
		(*onUpdate)(linkUpdate(unix.RTM_NEWLINK, "wlan0", false))
		assert.Len(t, calls, 1)

		assert.Error(t, observer.UnregisterObserver(token))
	})

	t.Run("InvalidArguments", func(t *testing.T) {
		_, err := observer.RegisterObserver("", func(string) {})
		assert.Error(t, err)
		_, err = observer.RegisterObserver("wlan0", nil)
		assert.Error(t, err)
	})
}

func TestObserverAdapter_WatchInterfaces(t *testing.T) {
	existing := []netlink.Link{&netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "wlan0", Flags: net.FlagUp}}}
	observer, _, onUpdate, _ := startObserver(t, existing)

	watcher := &recordingWatcher{}
	cancel, err := observer.WatchInterfaces(watcher)
	require.NoError(t, err)

	(*onUpdate)(linkUpdate(unix.RTM_NEWLINK, "wlan0", true))
	(*onUpdate)(linkUpdate(unix.RTM_NEWLINK, "wlan1", false))
	(*onUpdate)(linkUpdate(unix.RTM_NEWLINK, "wlan0", false))
	(*onUpdate)(linkUpdate(unix.RTM_DELLINK, "wlan1", false))

	assert.Equal(t, []string{"added:wlan1", "down:wlan1", "down:wlan0", "down:wlan1"}, watcher.events)

	cancel()
	(*onUpdate)(linkUpdate(unix.RTM_NEWLINK, "wlan2", true))
	assert.Len(t, watcher.events, 4)

	_, err = observer.WatchInterfaces(nil)
	assert.Error(t, err)
}

func TestObserverAdapter_IsInterfaceUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	networkMgr := mock.NewMockNetworkManager(ctrl)
	observer := NewObserverAdapter(networkMgr)

	t.Run("Up", func(t *testing.T) {
		networkMgr.EXPECT().GetLinkByName("wlan0").
			Return(&netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "wlan0", Flags: net.FlagUp | net.FlagBroadcast}}, nil)
		up, err := observer.IsInterfaceUp("wlan0")
		require.NoError(t, err)
		assert.True(t, up)
	})

	t.Run("Down", func(t *testing.T) {
		networkMgr.EXPECT().GetLinkByName("wlan0").
			Return(&netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "wlan0"}}, nil)
		up, err := observer.IsInterfaceUp("wlan0")
		require.NoError(t, err)
		assert.False(t, up)
	})

	t.Run("Missing", func(t *testing.T) {
		networkMgr.EXPECT().GetLinkByName("wlan9").Return(nil, assert.AnError)
		_, err := observer.IsInterfaceUp("wlan9")
		assert.Error(t, err)
	})
}

func TestObserverAdapter_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	networkMgr := mock.NewMockNetworkManager(ctrl)

	networkMgr.EXPECT().ListLinks().Return(nil, assert.AnError)
	networkMgr.EXPECT().SubscribeLinkUpdates(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	observer := NewObserverAdapter(networkMgr)
	assert.Error(t, observer.Start())
}

func TestObserverAdapter_SubscriptionLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	networkMgr := mock.NewMockNetworkManager(ctrl)

	var onClosed func(error)
	resubscribed := make(chan struct{}, 1)
	networkMgr.EXPECT().ListLinks().Return(nil, nil)
	gomock.InOrder(
		networkMgr.EXPECT().SubscribeLinkUpdates(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(done <-chan struct{}, u func(netlink.LinkUpdate), c func(error)) error {
				onClosed = c
				return nil
			}),
		networkMgr.EXPECT().SubscribeLinkUpdates(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(done <-chan struct{}, u func(netlink.LinkUpdate), c func(error)) error {
				resubscribed <- struct{}{}
				return nil
			}),
	)

	observer := NewObserverAdapter(networkMgr)
	observer.resubscribeDelay = 10 * time.Millisecond
	var lost []error
	observer.SetSubscriptionLostHandler(func(err error) { lost = append(lost, err) })
	require.NoError(t, observer.Start())
	defer observer.Stop()

	onClosed(nil)
	assert.Empty(t, lost)

	onClosed(assert.AnError)
	assert.Equal(t, []error{assert.AnError}, lost)

	select {
	case <-resubscribed:
	case <-time.After(time.Second):
		t.Fatal("observer did not resubscribe")
	}
}
