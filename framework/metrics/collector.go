// Package metrics exports container state to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/km-arc/microioc/framework/container"
)

var (
	entriesDesc = prometheus.NewDesc(
		"microioc_entries",
		"Number of registered container entries by lifetime kind",
		[]string{"kind"}, nil,
	)
	lockedDesc = prometheus.NewDesc(
		"microioc_locked",
		"1 if the container has been locked down, 0 otherwise",
		nil, nil,
	)
)

// Collector reads a container on every scrape.
type Collector struct {
	c *container.IocContainer
}

// NewCollector returns a Collector for c.
func NewCollector(c *container.IocContainer) *Collector {
	return &Collector{c: c}
}

// Describe implements prometheus.Collector.
func (col *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- entriesDesc
	ch <- lockedDesc
}

// Collect implements prometheus.Collector.
func (col *Collector) Collect(ch chan<- prometheus.Metric) {
	counts := map[container.Kind]int{
		container.KindInstance: 0,
		container.KindFactory:  0,
	}
	for _, e := range col.c.All() {
		counts[e.Kind()]++
	}
	for _, kind := range []container.Kind{container.KindInstance, container.KindFactory} {
		ch <- prometheus.MustNewConstMetric(entriesDesc, prometheus.GaugeValue, float64(counts[kind]), string(kind))
	}

	locked := 0.0
	if col.c.Locked() {
		locked = 1
	}
	ch <- prometheus.MustNewConstMetric(lockedDesc, prometheus.GaugeValue, locked)
}

// NewRegistry returns a Prometheus registry holding a Collector for c plus
// the Go runtime and process collectors.
func NewRegistry(c *container.IocContainer) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		NewCollector(c),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
