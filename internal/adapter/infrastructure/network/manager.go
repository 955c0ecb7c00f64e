// Package network provides network management adapter implementation.
package network

import (
	"errors"
	"fmt"
	"sync"

	"golang-wifid/internal/port"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the NetworkManager port using vishvananda/netlink library.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// errSubscriptionClosed is reported when the kernel side of a link subscription goes away.
var errSubscriptionClosed = errors.New("link subscription closed")

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// GetLinkByName returns a network link by interface name.
func (n *ManagerAdapter) GetLinkByName(interfaceName string) (netlink.Link, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// ListLinks returns every link known to the kernel.
func (n *ManagerAdapter) ListLinks() ([]netlink.Link, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// SetLinkUp brings the interface up.
func (n *ManagerAdapter) SetLinkUp(link netlink.Link) error {
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("failed to set link %s up: %w", link.Attrs().Name, err)
	}
	return nil
}

// SetLinkDown brings the interface down.
func (n *ManagerAdapter) SetLinkDown(link netlink.Link) error {
	if err := netlink.LinkSetDown(link); err != nil {
		return fmt.Errorf("failed to set link %s down: %w", link.Attrs().Name, err)
	}
	return nil
}

// SubscribeLinkUpdates streams link updates to onUpdate from a dedicated goroutine.
func (n *ManagerAdapter) SubscribeLinkUpdates(done <-chan struct{}, onUpdate func(netlink.LinkUpdate), onClosed func(error)) error {
	var (
		mu      sync.Mutex
		lastErr error
	)

	updates := make(chan netlink.LinkUpdate, 64)
	err := netlink.LinkSubscribeWithOptions(updates, done, netlink.LinkSubscribeOptions{
		ErrorCallback: func(err error) {
			mu.Lock()
			lastErr = err
			mu.Unlock()
		},
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to link updates: %w", err)
	}

	go func() {
		// The library closes updates when the subscription ends for any reason.
		for update := range updates {
			onUpdate(update)
		}

		select {
		case <-done:
			onClosed(nil)
		default:
			mu.Lock()
			err := lastErr
			mu.Unlock()
			if err == nil {
				err = errSubscriptionClosed
			}
			onClosed(err)
		}
	}()

	return nil
}
