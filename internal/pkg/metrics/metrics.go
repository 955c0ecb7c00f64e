// Package metrics exposes the lifecycle counters through Prometheus.
package metrics

import (
	"net/http"

	"golang-wifid/internal/port"
	"golang-wifid/internal/types"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wifid"

// Collector implements the Metrics port on a private Prometheus registry.
type Collector struct {
	registry         *prometheus.Registry
	setupFailures    *prometheus.CounterVec
	peerCrashes      *prometheus.CounterVec
	radioModeChanges *prometheus.CounterVec
	interfaceDowns   *prometheus.CounterVec
	interfaces       *prometheus.GaugeVec
}

// Ensure Collector implements the Metrics port
var _ port.Metrics = (*Collector)(nil)

// NewCollector creates the collector and registers its metrics together with
// the Go runtime and process collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		setupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interface_setup_failures_total",
			Help:      "Failed interface creations by kind and failure reason.",
		}, []string{"kind", "reason"}),
		peerCrashes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "peer_crashes_total",
			Help:      "Deaths of the vendor HAL, link control and protocol daemons.",
		}, []string{"peer"}),
		radioModeChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "radio_mode_changes_total",
			Help:      "Radio co-existence mode changes reported by the vendor HAL.",
		}, []string{"mode"}),
		interfaceDowns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interface_down_total",
			Help:      "Interfaces observed going down, by class.",
		}, []string{"class"}),
		interfaces: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "interfaces",
			Help:      "Live interfaces by kind.",
		}, []string{"kind"}),
	}

	c.registry.MustRegister(
		c.setupFailures,
		c.peerCrashes,
		c.radioModeChanges,
		c.interfaceDowns,
		c.interfaces,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	for _, kind := range types.AllKinds {
		c.interfaces.WithLabelValues(kind.String()).Set(0)
	}
	return c
}

// IncSetupFailure counts a failed interface creation.
func (c *Collector) IncSetupFailure(kind types.Kind, reason string) {
	c.setupFailures.WithLabelValues(kind.String(), reason).Inc()
}

// IncPeerCrash counts a peer death.
func (c *Collector) IncPeerCrash(peer string) {
	c.peerCrashes.WithLabelValues(peer).Inc()
}

// IncRadioModeChange counts a radio mode change.
func (c *Collector) IncRadioModeChange(mode types.RadioMode) {
	c.radioModeChanges.WithLabelValues(mode.String()).Inc()
}

// IncInterfaceDown counts an interface going down.
func (c *Collector) IncInterfaceDown(class types.KindClass) {
	c.interfaceDowns.WithLabelValues(class.String()).Inc()
}

// SetInterfaceCount records the number of live interfaces of a kind.
func (c *Collector) SetInterfaceCount(kind types.Kind, n int) {
	c.interfaces.WithLabelValues(kind.String()).Set(float64(n))
}

// Handler returns the HTTP handler serving the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
