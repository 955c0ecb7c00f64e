// Package requester keeps the interfaces listed in the configuration requested:
// once at start-up and again every time the subsystem recovered from a peer death.
package requester

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang-wifid/internal/adapter/lifecycle"
	"golang-wifid/internal/pkg/logging"
	"golang-wifid/internal/port"
	"golang-wifid/internal/types"

	"github.com/sirupsen/logrus"
)

// Request is one interface the daemon keeps alive.
type Request struct {
	Kind      types.Kind
	Band      types.Band
	Bridged   bool
	Requestor types.WorkSource
}

// Requester issues the configured requests against the interface manager.
type Requester struct {
	mgr        port.InterfaceManager
	requests   []Request
	retryDelay time.Duration
	logger     *logrus.Entry
	wake       chan struct{}

	mu    sync.Mutex
	names []string
}

// New creates a requester. Failed requests are retried after retryDelay.
func New(mgr port.InterfaceManager, requests []Request, retryDelay time.Duration) *Requester {
	return &Requester{
		mgr:        mgr,
		requests:   requests,
		retryDelay: retryDelay,
		logger:     logging.WithComponent("requester"),
		wake:       make(chan struct{}, 1),
		names:      make([]string, len(requests)),
	}
}

// OnStatusChanged re-requests missing interfaces once the subsystem is ready again.
func (r *Requester) OnStatusChanged(allReady bool) {
	if !allReady {
		r.logger.Warn("Interface subsystem down")
		return
	}
	r.logger.Info("Interface subsystem recovered")
	r.trigger()
}

func (r *Requester) trigger() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Run issues every request and keeps re-issuing missing ones until ctx is cancelled.
func (r *Requester) Run(ctx context.Context) error {
	if len(r.requests) == 0 {
		return nil
	}
	r.mgr.RegisterStatusListener(r)

	retry := time.NewTimer(r.retryDelay)
	retry.Stop()
	defer retry.Stop()

	r.trigger()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-retry.C:
		case <-r.wake:
		}
		if r.requestMissing(ctx) {
			retry.Reset(r.retryDelay)
		}
	}
}

// Names returns the current interface name per request, empty when it does not exist.
func (r *Requester) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

// requestMissing sets up every request that has no live interface. It reports
// whether a failure should be retried.
func (r *Requester) requestMissing(ctx context.Context) bool {
	retry := false
	for i, req := range r.requests {
		if ctx.Err() != nil {
			return false
		}
		if r.name(i) != "" {
			continue
		}

		logger := r.logger.WithFields(logrus.Fields{"kind": req.Kind, "requestor": req.Requestor})
		name, err := r.setup(req, r.callback(i))
		if err != nil {
			logger.WithError(err).Error("Interface request failed")
			if !errors.Is(err, lifecycle.ErrCapabilityConflict) && !errors.Is(err, lifecycle.ErrManagerStopped) {
				retry = true
			}
			continue
		}
		r.setName(i, name)
		logger.WithField("interface", name).Info("Interface requested")
	}
	return retry
}

func (r *Requester) setup(req Request, cb types.InterfaceCallback) (string, error) {
	switch req.Kind {
	case types.KindStationConnectivity:
		return r.mgr.SetupInterfaceForClientConnectivity(cb, req.Requestor)
	case types.KindStationScanOnly:
		return r.mgr.SetupInterfaceForClientScanOnly(cb, req.Requestor)
	case types.KindAccessPoint:
		return r.mgr.SetupInterfaceForAccessPoint(cb, req.Requestor, req.Band, req.Bridged)
	case types.KindP2P:
		return r.mgr.SetupInterfaceForP2P(cb, req.Requestor)
	default:
		return r.mgr.SetupInterfaceForNAN(cb, req.Requestor)
	}
}

func (r *Requester) callback(i int) types.InterfaceCallback {
	return types.InterfaceCallbackFuncs{
		Up: func(name string) {
			logging.WithComponentAndInterface("requester", name).Info("Interface up")
		},
		Down: func(name string) {
			logging.WithComponentAndInterface("requester", name).Warn("Interface down")
		},
		Destroyed: func(name string) {
			logging.WithComponentAndInterface("requester", name).Info("Interface destroyed")
			r.mu.Lock()
			if r.names[i] == name {
				r.names[i] = ""
			}
			r.mu.Unlock()
		},
	}
}

func (r *Requester) name(i int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.names[i]
}

func (r *Requester) setName(i int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[i] = name
}
