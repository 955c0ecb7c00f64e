//go:build unit

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"golang-wifid/internal/port"
	"golang-wifid/internal/types"

	"github.com/stretchr/testify/require"
)

// callLog records peer and listener calls in the order they happened.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

func (l *callLog) count(call string) int {
	n := 0
	for _, c := range l.snapshot() {
		if c == call {
			n++
		}
	}
	return n
}

// index returns the position of the first occurrence of call, -1 if absent.
func (l *callLog) index(call string) int {
	for i, c := range l.snapshot() {
		if c == call {
			return i
		}
	}
	return -1
}

// withPrefix returns the calls starting with prefix.
func (l *callLog) withPrefix(prefix string) []string {
	var out []string
	for _, c := range l.snapshot() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (l *callLog) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = nil
}

type fakeVendor struct {
	log *callLog

	mu          sync.Mutex
	started     bool
	startErr    error
	createErr   error
	removeErr   error
	replaceErr  error
	silent      bool
	bridged     []string
	features    types.FeatureSet
	ifaces      map[string]func(string)
	death       func()
	radio       port.RadioModeChangeHandler
	afterRemove func(name string)
}

func newFakeVendor(log *callLog) *fakeVendor {
	return &fakeVendor{log: log, ifaces: make(map[string]func(string)), features: types.FeatureInfraSTA}
}

func (v *fakeVendor) Start() error {
	v.log.add("vendor.Start")
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.startErr != nil {
		return v.startErr
	}
	v.started = true
	return nil
}

func (v *fakeVendor) Stop() {
	v.log.add("vendor.Stop")
	v.mu.Lock()
	defer v.mu.Unlock()
	v.started = false
	v.ifaces = make(map[string]func(string))
}

func (v *fakeVendor) IsReady() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.started
}

func (v *fakeVendor) RegisterDeathHandler(handler func()) error {
	v.log.add("vendor.RegisterDeathHandler")
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.death != nil {
		return errors.New("already registered")
	}
	v.death = handler
	return nil
}

func (v *fakeVendor) DeregisterDeathHandler() error {
	v.log.add("vendor.DeregisterDeathHandler")
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.death == nil {
		return errors.New("not registered")
	}
	v.death = nil
	return nil
}

func (v *fakeVendor) RegisterRadioModeChangeHandler(handler port.RadioModeChangeHandler) error {
	v.log.add("vendor.RegisterRadioModeChangeHandler")
	v.mu.Lock()
	defer v.mu.Unlock()
	v.radio = handler
	return nil
}

func (v *fakeVendor) prefix(kind types.Kind) string {
	switch kind {
	case types.KindP2P:
		return "p2p"
	case types.KindNAN:
		return "nan"
	default:
		return "wlan"
	}
}

func (v *fakeVendor) CreateInterface(req port.CreateRequest, onDestroyed func(string)) (string, error) {
	v.log.add("vendor.CreateInterface %s", req.Kind)
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.createErr != nil {
		return "", v.createErr
	}
	for i := 0; ; i++ {
		name := fmt.Sprintf("%s%d", v.prefix(req.Kind), i)
		if _, taken := v.ifaces[name]; !taken {
			v.ifaces[name] = onDestroyed
			return name, nil
		}
	}
}

func (v *fakeVendor) RemoveInterface(name string) error {
	v.log.add("vendor.RemoveInterface %s", name)
	v.mu.Lock()
	if v.removeErr != nil {
		v.mu.Unlock()
		return v.removeErr
	}
	onDestroyed, ok := v.ifaces[name]
	if !ok {
		v.mu.Unlock()
		return fmt.Errorf("no interface %s", name)
	}
	delete(v.ifaces, name)
	if !v.silent {
		go onDestroyed(name)
	}
	after := v.afterRemove
	v.mu.Unlock()

	if after != nil {
		after(name)
	}
	return nil
}

func (v *fakeVendor) ReplaceStaRequestor(name string, ws types.WorkSource) error {
	v.log.add("vendor.ReplaceStaRequestor %s %s", name, ws)
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.replaceErr
}

func (v *fakeVendor) GetBridgedApInstances(name string) ([]string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bridged, nil
}

func (v *fakeVendor) SupportedFeatures(name string) types.FeatureSet {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.features
}

// destroyExternally deletes an interface behind the manager's back.
func (v *fakeVendor) destroyExternally(name string) {
	v.mu.Lock()
	onDestroyed := v.ifaces[name]
	delete(v.ifaces, name)
	v.mu.Unlock()
	if onDestroyed != nil {
		onDestroyed(name)
	}
}

// kill simulates the HAL going away.
func (v *fakeVendor) kill() {
	v.mu.Lock()
	handler := v.death
	v.death = nil
	v.started = false
	v.ifaces = make(map[string]func(string))
	v.mu.Unlock()
	if handler != nil {
		handler()
	}
}

func (v *fakeVendor) radioModeChanged(mode types.RadioMode, band types.Band) {
	v.mu.Lock()
	handler := v.radio
	v.mu.Unlock()
	if handler != nil {
		handler(mode, band)
	}
}

// fakeDaemon serves as both the client and the access point daemon.
type fakeDaemon struct {
	name string
	log  *callLog

	mu          sync.Mutex
	initStarted bool
	initErr     error
	startErr    error
	notReady    bool
	attachErr   error
	detachErr   error
	caps        types.FeatureSet
	death       func()
}

func newFakeDaemon(name string, log *callLog) *fakeDaemon {
	return &fakeDaemon{name: name, log: log}
}

func (d *fakeDaemon) Initialize() error {
	d.log.add("%s.Initialize", d.name)
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.initErr != nil {
		return d.initErr
	}
	d.initStarted = true
	return nil
}

func (d *fakeDaemon) IsInitializationStarted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initStarted
}

func (d *fakeDaemon) IsInitializationComplete() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.notReady
}

func (d *fakeDaemon) StartDaemon() error {
	d.log.add("%s.StartDaemon", d.name)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.startErr
}

func (d *fakeDaemon) Terminate() {
	d.log.add("%s.Terminate", d.name)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.initStarted = false
}

func (d *fakeDaemon) RegisterDeathHandler(handler func()) error {
	d.log.add("%s.RegisterDeathHandler", d.name)
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.death != nil {
		return errors.New("already registered")
	}
	d.death = handler
	return nil
}

func (d *fakeDaemon) DeregisterDeathHandler() error {
	d.log.add("%s.DeregisterDeathHandler", d.name)
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.death == nil {
		return errors.New("not registered")
	}
	d.death = nil
	return nil
}

func (d *fakeDaemon) attach(call, name string) error {
	d.log.add("%s.%s %s", d.name, call, name)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attachErr
}

func (d *fakeDaemon) detach(call, name string) error {
	d.log.add("%s.%s %s", d.name, call, name)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detachErr
}

func (d *fakeDaemon) SetupInterface(name string) error    { return d.attach("SetupInterface", name) }
func (d *fakeDaemon) TeardownInterface(name string) error { return d.detach("TeardownInterface", name) }
func (d *fakeDaemon) AddAccessPoint(name string) error    { return d.attach("AddAccessPoint", name) }
func (d *fakeDaemon) RemoveAccessPoint(name string) error { return d.detach("RemoveAccessPoint", name) }

func (d *fakeDaemon) AdvancedCapabilities(name string) types.FeatureSet {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.caps
}

func (d *fakeDaemon) DriverFeatureSet(name string) types.FeatureSet {
	return 0
}

func (d *fakeDaemon) kill() {
	d.mu.Lock()
	handler := d.death
	d.death = nil
	d.initStarted = false
	d.mu.Unlock()
	if handler != nil {
		handler()
	}
}

type fakeLinkControl struct {
	log *callLog

	mu      sync.Mutex
	initErr error
	death   func()
}

func (l *fakeLinkControl) Initialize() error {
	l.log.add("link.Initialize")
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initErr
}

func (l *fakeLinkControl) Terminate() {
	l.log.add("link.Terminate")
}

func (l *fakeLinkControl) RegisterDeathHandler(handler func()) error {
	l.log.add("link.RegisterDeathHandler")
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.death != nil {
		return errors.New("already registered")
	}
	l.death = handler
	return nil
}

func (l *fakeLinkControl) DeregisterDeathHandler() error {
	l.log.add("link.DeregisterDeathHandler")
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.death == nil {
		return errors.New("not registered")
	}
	l.death = nil
	return nil
}

func (l *fakeLinkControl) SetupClientInterface(name string) error {
	l.log.add("link.SetupClientInterface %s", name)
	return nil
}

func (l *fakeLinkControl) SetupAccessPointInterface(name string) error {
	l.log.add("link.SetupAccessPointInterface %s", name)
	return nil
}

func (l *fakeLinkControl) TeardownClientInterface(name string) error {
	l.log.add("link.TeardownClientInterface %s", name)
	return nil
}

func (l *fakeLinkControl) TeardownAccessPointInterface(name string) error {
	l.log.add("link.TeardownAccessPointInterface %s", name)
	return nil
}

func (l *fakeLinkControl) TeardownInterfaces() error {
	l.log.add("link.TeardownInterfaces")
	return nil
}

func (l *fakeLinkControl) kill() {
	l.mu.Lock()
	handler := l.death
	l.death = nil
	l.mu.Unlock()
	if handler != nil {
		handler()
	}
}

type fakeObserver struct {
	log *callLog

	mu          sync.Mutex
	next        port.ObserverToken
	observers   map[port.ObserverToken]func(string)
	names       map[port.ObserverToken]string
	up          map[string]bool
	registerErr error
	watcher     port.InterfaceWatcher
}

func newFakeObserver(log *callLog) *fakeObserver {
	return &fakeObserver{
		log:       log,
		observers: make(map[port.ObserverToken]func(string)),
		names:     make(map[port.ObserverToken]string),
		up:        make(map[string]bool),
	}
}

func (o *fakeObserver) RegisterObserver(name string, onChange func(string)) (port.ObserverToken, error) {
	o.log.add("observer.RegisterObserver %s", name)
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.registerErr != nil {
		return 0, o.registerErr
	}
	o.next++
	o.observers[o.next] = onChange
	o.names[o.next] = name
	return o.next, nil
}

func (o *fakeObserver) UnregisterObserver(token port.ObserverToken) error {
	o.mu.Lock()
	name, ok := o.names[token]
	delete(o.observers, token)
	delete(o.names, token)
	o.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown token %d", token)
	}
	o.log.add("observer.UnregisterObserver %s", name)
	return nil
}

func (o *fakeObserver) IsInterfaceUp(name string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.up[name], nil
}

func (o *fakeObserver) WatchInterfaces(watcher port.InterfaceWatcher) (func(), error) {
	o.log.add("observer.WatchInterfaces")
	o.mu.Lock()
	defer o.mu.Unlock()
	o.watcher = watcher
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.watcher = nil
	}, nil
}

// setUp changes the state of a link and notifies its observers.
func (o *fakeObserver) setUp(name string, up bool) {
	o.mu.Lock()
	o.up[name] = up
	var fns []func(string)
	for token, fn := range o.observers {
		if o.names[token] == name {
			fns = append(fns, fn)
		}
	}
	o.mu.Unlock()
	for _, fn := range fns {
		fn(name)
	}
}

func (o *fakeObserver) observed() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.observers)
}

func (o *fakeObserver) currentWatcher() port.InterfaceWatcher {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.watcher
}

type fakeMetrics struct {
	mu            sync.Mutex
	setupFailures map[string]int
	crashes       map[string]int
	radioModes    map[types.RadioMode]int
	downs         map[types.KindClass]int
	counts        map[types.Kind]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		setupFailures: make(map[string]int),
		crashes:       make(map[string]int),
		radioModes:    make(map[types.RadioMode]int),
		downs:         make(map[types.KindClass]int),
		counts:        make(map[types.Kind]int),
	}
}

func (f *fakeMetrics) IncSetupFailure(kind types.Kind, reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setupFailures[kind.String()+"/"+reason]++
}

func (f *fakeMetrics) IncPeerCrash(peer string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.crashes[peer]++
}

func (f *fakeMetrics) IncRadioModeChange(mode types.RadioMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.radioModes[mode]++
}

func (f *fakeMetrics) IncInterfaceDown(class types.KindClass) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.downs[class]++
}

func (f *fakeMetrics) SetInterfaceCount(kind types.Kind, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[kind] = n
}

func (f *fakeMetrics) setupFailure(kind types.Kind, reason Reason) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setupFailures[kind.String()+"/"+reason.String()]
}

func (f *fakeMetrics) crash(p PeerID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.crashes[p.String()]
}

func (f *fakeMetrics) count(kind types.Kind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[kind]
}

func (f *fakeMetrics) down(class types.KindClass) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.downs[class]
}

// recorder is an interface callback that writes into the shared call log.
func recorder(log *callLog) types.InterfaceCallback {
	return types.InterfaceCallbackFuncs{
		Up:        func(name string) { log.add("cb.up %s", name) },
		Down:      func(name string) { log.add("cb.down %s", name) },
		Destroyed: func(name string) { log.add("cb.destroyed %s", name) },
	}
}

type harness struct {
	log      *callLog
	vendor   *fakeVendor
	link     *fakeLinkControl
	client   *fakeDaemon
	ap       *fakeDaemon
	observer *fakeObserver
	metrics  *fakeMetrics
	mgr      *Manager
	stop     func()
}

// defaultTable allows one interface per class; the access point excludes every
// other class and P2P excludes NAN.
func defaultTable(t *testing.T) *CompatibilityTable {
	return tableWithSlots(t, 1, 1, 1, 1)
}

func tableWithSlots(t *testing.T, station, ap, p2p, nan int) *CompatibilityTable {
	t.Helper()
	table, err := NewCompatibilityTable(
		map[types.KindClass]int{
			types.ClassStation:     station,
			types.ClassAccessPoint: ap,
			types.ClassP2P:         p2p,
			types.ClassNAN:         nan,
		},
		[][2]types.KindClass{
			{types.ClassStation, types.ClassAccessPoint},
			{types.ClassAccessPoint, types.ClassP2P},
			{types.ClassAccessPoint, types.ClassNAN},
			{types.ClassP2P, types.ClassNAN},
		},
	)
	require.NoError(t, err)
	return table
}

func testConfig() Config {
	return Config{
		DaemonConnectRetries:  3,
		DaemonConnectInterval: time.Millisecond,
		DestroyTimeout:        200 * time.Millisecond,
		CallbackTimeout:       200 * time.Millisecond,
	}
}

func newHarness(t *testing.T, table *CompatibilityTable) *harness {
	return newHarnessWithConfig(t, table, testConfig())
}

func newHarnessWithConfig(t *testing.T, table *CompatibilityTable, cfg Config) *harness {
	t.Helper()
	log := &callLog{}
	h := &harness{
		log:      log,
		vendor:   newFakeVendor(log),
		link:     &fakeLinkControl{log: log},
		client:   newFakeDaemon("client", log),
		ap:       newFakeDaemon("ap", log),
		observer: newFakeObserver(log),
		metrics:  newFakeMetrics(),
	}

	mgr, err := NewManager(cfg, Peers{
		Vendor:      h.vendor,
		LinkControl: h.link,
		Client:      h.client,
		AccessPoint: h.ap,
		Observer:    h.observer,
	}, table, h.metrics)
	require.NoError(t, err)
	h.mgr = mgr

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- mgr.Run(ctx) }()

	var once sync.Once
	h.stop = func() {
		once.Do(func() {
			cancel()
			select {
			case err := <-done:
				require.NoError(t, err)
			case <-time.After(2 * time.Second):
				t.Error("manager did not stop")
			}
		})
	}
	t.Cleanup(h.stop)
	h.sync()
	return h
}

// eventually waits until the call was logged n times.
func (h *harness) eventually(t *testing.T, call string, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.log.count(call) == n }, time.Second, 5*time.Millisecond,
		"expected %q %d times, log: %v", call, n, h.log.snapshot())
}

// sync waits until the manager processed everything queued so far.
func (h *harness) sync() {
	h.mgr.Interfaces()
}
