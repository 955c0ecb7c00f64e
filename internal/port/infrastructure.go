// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"github.com/vishvananda/netlink"
)

//go:generate mockgen -source=infrastructure.go -destination=../mock/mock_infrastructure.go -package=mock

// NetworkManager is a port for network interface operations.
// This interface abstracts netlink operations on links.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListLinks returns every link known to the kernel
	ListLinks() ([]netlink.Link, error)

	// SetLinkUp brings the interface up
	SetLinkUp(link netlink.Link) error

	// SetLinkDown brings the interface down
	SetLinkDown(link netlink.Link) error

	// SubscribeLinkUpdates delivers RTM_NEWLINK/RTM_DELLINK updates to onUpdate until done
	// is closed. onClosed is called once when the subscription ends, with the last receive
	// error if it ended on its own.
	SubscribeLinkUpdates(done <-chan struct{}, onUpdate func(netlink.LinkUpdate), onClosed func(error)) error
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// RemoveFile deletes a file, ignoring files that do not exist
	RemoveFile(filename string) error

	// FileExists checks if a file exists
	FileExists(filename string) bool

	// EnsureDir creates a directory and its parents if they do not exist
	EnsureDir(path string, perm int) error
}

// ProcessRunner is a port for running external programs.
type ProcessRunner interface {
	// Output runs a command to completion and returns its combined output
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Start launches a long running command
	Start(name string, args ...string) (Process, error)
}

// Process is a handle on a started program.
type Process interface {
	// Pid returns the OS process id
	Pid() int

	// Done is closed when the process exited
	Done() <-chan struct{}

	// Err returns the exit error once Done is closed
	Err() error

	// Stop terminates the process and waits for it to exit
	Stop() error
}

// ControlDialer is a port for opening daemon control sockets.
type ControlDialer interface {
	// Dial connects to the control socket at path
	Dial(path string) (ControlChannel, error)
}

// ControlChannel is a request/response session on a daemon control socket.
type ControlChannel interface {
	// Request sends a command and returns the reply with trailing newlines removed
	Request(cmd string) (string, error)

	// Close releases the session
	Close() error
}
