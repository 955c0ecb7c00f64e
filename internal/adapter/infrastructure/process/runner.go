// Package process provides the external program runner adapter implementation.
package process

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"golang-wifid/internal/pkg/logging"
	"golang-wifid/internal/port"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const defaultStopTimeout = 5 * time.Second

// RunnerAdapter is an adapter that implements the ProcessRunner port using os/exec.
type RunnerAdapter struct {
	stopTimeout time.Duration
}

// Ensure RunnerAdapter implements the ProcessRunner port
var _ port.ProcessRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new process runner adapter.
func NewRunnerAdapter() *RunnerAdapter {
	return &RunnerAdapter{stopTimeout: defaultStopTimeout}
}

// Output runs a command to completion and returns its combined output.
func (r *RunnerAdapter) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("%s %v failed: %w (output: %s)", name, args, err, trimOutput(out))
	}
	return out, nil
}

// Start launches a long running command in its own process group. Its stdout and
// stderr are forwarded to the log.
func (r *RunnerAdapter) Start(name string, args ...string) (port.Process, error) {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe for %s: %w", name, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe for %s: %w", name, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}

	p := &handle{
		cmd:         cmd,
		done:        make(chan struct{}),
		stopTimeout: r.stopTimeout,
		logger:      logging.WithComponent(filepath.Base(name)).WithField("pid", cmd.Process.Pid),
	}

	var pipes sync.WaitGroup
	pipes.Add(2)
	go p.forward(&pipes, stdout, logrus.DebugLevel)
	go p.forward(&pipes, stderr, logrus.WarnLevel)

	go func() {
		// Wait must not be called before the pipes are drained.
		pipes.Wait()
		p.err = cmd.Wait()
		close(p.done)
	}()

	return p, nil
}

type handle struct {
	cmd         *exec.Cmd
	done        chan struct{}
	err         error
	stopTimeout time.Duration
	logger      *logrus.Entry
	stopOnce    sync.Once
	stopErr     error
}

func (p *handle) forward(wg *sync.WaitGroup, r io.Reader, level logrus.Level) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.logger.Log(level, scanner.Text())
	}
}

// Pid returns the OS process id.
func (p *handle) Pid() int {
	return p.cmd.Process.Pid
}

// Done is closed when the process exited.
func (p *handle) Done() <-chan struct{} {
	return p.done
}

// Err returns the exit error once Done is closed.
func (p *handle) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Stop sends SIGTERM to the process group and escalates to SIGKILL after the stop timeout.
func (p *handle) Stop() error {
	p.stopOnce.Do(func() {
		select {
		case <-p.done:
			return
		default:
		}

		pgid := -p.cmd.Process.Pid
		if err := unix.Kill(pgid, unix.SIGTERM); err != nil {
			p.logger.WithError(err).Debug("SIGTERM failed")
		}

		timer := time.NewTimer(p.stopTimeout)
		defer timer.Stop()
		select {
		case <-p.done:
		case <-timer.C:
			p.logger.Warnf("Process did not exit within %v, killing", p.stopTimeout)
			if err := unix.Kill(pgid, unix.SIGKILL); err != nil {
				p.stopErr = fmt.Errorf("failed to kill process %d: %w", p.cmd.Process.Pid, err)
				return
			}
			<-p.done
		}
	})
	return p.stopErr
}

func trimOutput(out []byte) string {
	const max = 256
	if len(out) > max {
		return string(out[:max]) + "..."
	}
	return string(out)
}
