// Package daemon supervises a protocol daemon process and its global control socket.
package daemon

import (
	"errors"
	"fmt"
	"sync"

	"golang-wifid/internal/pkg/logging"
	"golang-wifid/internal/port"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var (
	// ErrNotConnected is returned by Request before the control socket answered a PING.
	ErrNotConnected = errors.New("daemon control socket not connected")
	// ErrAlreadyRunning is returned by StartDaemon while a previous process is alive.
	ErrAlreadyRunning = errors.New("daemon already running")
)

// Options describes how to launch and reach a daemon.
type Options struct {
	Name        string
	Binary      string
	Args        []string
	ControlPath string
}

// Supervisor implements the shared Daemon lifecycle. Exit of the supervised process
// invokes the registered death handler once, unless Terminate caused it.
type Supervisor struct {
	opts   Options
	runner port.ProcessRunner
	dialer port.ControlDialer
	files  port.FileManager
	logger *logrus.Entry

	mu           sync.Mutex
	proc         port.Process
	channel      port.ControlChannel
	initStarted  bool
	terminating  bool
	deathHandler func()
}

// NewSupervisor creates a daemon supervisor.
func NewSupervisor(opts Options, runner port.ProcessRunner, dialer port.ControlDialer, files port.FileManager) *Supervisor {
	return &Supervisor{
		opts:   opts,
		runner: runner,
		dialer: dialer,
		files:  files,
		logger: logging.WithPeer("daemon", opts.Name),
	}
}

// Initialize prepares a fresh session and removes a stale control socket left by a killed instance.
func (s *Supervisor) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initStarted {
		return nil
	}
	if s.proc == nil && s.files.FileExists(s.opts.ControlPath) {
		s.logger.Debugf("Removing stale control socket %s", s.opts.ControlPath)
		if err := s.files.RemoveFile(s.opts.ControlPath); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", s.opts.Name, err)
		}
	}
	s.initStarted = true
	return nil
}

// IsInitializationStarted reports whether Initialize ran since the last Terminate.
func (s *Supervisor) IsInitializationStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initStarted
}

// StartDaemon launches the daemon process.
func (s *Supervisor) StartDaemon() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.proc != nil {
		select {
		case <-s.proc.Done():
		default:
			return ErrAlreadyRunning
		}
	}

	proc, err := s.runner.Start(s.opts.Binary, s.opts.Args...)
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", s.opts.Name, err)
	}
	s.proc = proc
	s.logger.WithField("pid", proc.Pid()).Info("Daemon started")

	go s.watch(proc)
	return nil
}

func (s *Supervisor) watch(proc port.Process) {
	<-proc.Done()

	s.mu.Lock()
	if s.proc != proc || s.terminating {
		s.mu.Unlock()
		return
	}
	handler := s.deathHandler
	s.deathHandler = nil
	s.dropChannelLocked()
	s.mu.Unlock()

	s.logger.WithError(proc.Err()).WithField("pid", proc.Pid()).Error("Daemon exited unexpectedly")
	if handler != nil {
		handler()
	}
}

// IsInitializationComplete reports whether the daemon answers PING on its control socket.
func (s *Supervisor) IsInitializationComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.proc == nil {
		return false
	}
	if s.channel == nil {
		channel, err := s.dialer.Dial(s.opts.ControlPath)
		if err != nil {
			s.logger.WithError(err).Debug("Control socket not ready")
			return false
		}
		s.channel = channel
	}

	reply, err := s.channel.Request("PING")
	if err != nil || reply != "PONG" {
		s.logger.WithError(err).Debugf("Unexpected PING reply %q", reply)
		s.dropChannelLocked()
		return false
	}
	return true
}

// Request sends a command on the global control socket.
func (s *Supervisor) Request(cmd string) (string, error) {
	s.mu.Lock()
	channel := s.channel
	s.mu.Unlock()

	if channel == nil {
		return "", ErrNotConnected
	}
	return channel.Request(cmd)
}

// RequestOK sends a command and requires an OK reply.
func (s *Supervisor) RequestOK(cmd string) error {
	reply, err := s.Request(cmd)
	if err != nil {
		return err
	}
	if reply != "OK" {
		return fmt.Errorf("%s rejected command: %s", s.opts.Name, reply)
	}
	return nil
}

// Terminate closes the control socket, stops the process and resets the session.
func (s *Supervisor) Terminate() {
	s.mu.Lock()
	s.terminating = true
	proc := s.proc
	s.dropChannelLocked()
	s.mu.Unlock()

	var err error
	if proc != nil {
		err = multierr.Append(err, proc.Stop())
	}
	if s.files.FileExists(s.opts.ControlPath) {
		err = multierr.Append(err, s.files.RemoveFile(s.opts.ControlPath))
	}
	if err != nil {
		s.logger.WithError(err).Warn("Errors while terminating daemon")
	}

	s.mu.Lock()
	s.proc = nil
	s.initStarted = false
	s.terminating = false
	s.mu.Unlock()

	s.logger.Info("Daemon terminated")
}

// RegisterDeathHandler sets the death handler.
func (s *Supervisor) RegisterDeathHandler(handler func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deathHandler != nil {
		return fmt.Errorf("%s death handler already registered", s.opts.Name)
	}
	s.deathHandler = handler
	return nil
}

// DeregisterDeathHandler clears the death handler.
func (s *Supervisor) DeregisterDeathHandler() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deathHandler == nil {
		return fmt.Errorf("%s death handler not registered", s.opts.Name)
	}
	s.deathHandler = nil
	return nil
}

// dropChannelLocked must be called with s.mu held.
func (s *Supervisor) dropChannelLocked() {
	if s.channel == nil {
		return
	}
	if err := s.channel.Close(); err != nil {
		s.logger.WithError(err).Debug("Failed to close control socket")
	}
	s.channel = nil
}
