// Package metrics keeps the monitor's own counters: ticks, tick latency,
// icon renders, sampling errors and the active adapter count. The registry is
// private and never served; it is summarized into the log at shutdown.
package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sysmontray"

// Collector owns a private prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	ticks          prometheus.Counter
	tickDuration   prometheus.Histogram
	iconRenders    prometheus.Counter
	sampleErrors   *prometheus.CounterVec
	activeAdapters prometheus.Gauge
}

// NewCollector registers the monitor's metrics and the process heap gauges
// on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Number of completed sampling ticks.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Time spent sampling and formatting one tick.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		iconRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "icon_renders_total",
			Help:      "Number of times the tray icon glyph was redrawn.",
		}),
		sampleErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sample_errors_total",
			Help:      "Per-tick sampling failures by metric.",
		}, []string{"metric"}),
		activeAdapters: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_adapters",
			Help:      "Network adapters counted in the last tick.",
		}),
	}

	mem := NewMemoryCollector()
	heap := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "heap_alloc_bytes",
		Help:      "Heap bytes in use by the monitor.",
	}, func() float64 { return float64(mem.Snapshot().HeapAlloc) })

	c.registry.MustRegister(c.ticks, c.tickDuration, c.iconRenders, c.sampleErrors, c.activeAdapters, heap)
	return c
}

// Registry exposes the underlying registry for tests and summaries.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveTick records one completed tick and its duration.
func (c *Collector) ObserveTick(d time.Duration) {
	c.ticks.Inc()
	c.tickDuration.Observe(d.Seconds())
}

// IconRendered counts one glyph redraw.
func (c *Collector) IconRendered() { c.iconRenders.Inc() }

// SampleError counts one failed sample of the named metric.
func (c *Collector) SampleError(metric string) {
	c.sampleErrors.WithLabelValues(metric).Inc()
}

// SetActiveAdapters records how many adapters contributed to the NET line.
func (c *Collector) SetActiveAdapters(n int) { c.activeAdapters.Set(float64(n)) }

// Value is one summarized series.
type Value struct {
	Name  string
	Value float64
}

// Summary gathers the registry into name/value pairs sorted by name.
// Counters and gauges sum across label values; histograms report their
// sample count and sum as <name>_count and <name>_sum.
func (c *Collector) Summary() ([]Value, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64)
	for _, mf := range families {
		name := mf.GetName()
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				totals[name] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				totals[name] += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				totals[name+"_count"] += float64(m.GetHistogram().GetSampleCount())
				totals[name+"_sum"] += m.GetHistogram().GetSampleSum()
			}
		}
	}
	out := make([]Value, 0, len(totals))
	for name, v := range totals {
		out = append(out, Value{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
