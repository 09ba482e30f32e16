// Package sampler runs one sampling tick: read the counters in a fixed
// order, update the icon, and assemble the four tooltip lines. Driver repeats
// it on an injected Ticker.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/sysmontray/internal/counters"
	"github.com/agbru/sysmontray/internal/format"
	"github.com/agbru/sysmontray/internal/logging"
	"github.com/agbru/sysmontray/internal/metrics"
)

const tracerName = "github.com/agbru/sysmontray/internal/sampler"

// Tooltip holds the four display lines of one tick.
type Tooltip struct {
	CPU  string
	RAM  string
	Disk string
	Net  string
}

// String joins the lines in display order.
func (t Tooltip) String() string {
	return strings.Join([]string{t.CPU, t.RAM, t.Disk, t.Net}, "\n")
}

// Lines returns the lines in display order.
func (t Tooltip) Lines() []string {
	return []string{t.CPU, t.RAM, t.Disk, t.Net}
}

func placeholder() Tooltip {
	return Tooltip{CPU: "CPU: --", RAM: "RAM: --", Disk: "DISK: --", Net: "NET: --"}
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithLogger sets the logger for per-tick failures.
func WithLogger(l logging.Logger) Option { return func(s *Sampler) { s.logger = l } }

// WithMetrics sets the self-metrics collector.
func WithMetrics(c *metrics.Collector) Option { return func(s *Sampler) { s.metrics = c } }

// WithTracer overrides the tracer used for tick spans.
func WithTracer(t trace.Tracer) Option { return func(s *Sampler) { s.tracer = t } }

// WithDiskWriteCompat makes the DISK write figure read the disk read counter
// a second time, matching the behavior of the classic System Monitor.
func WithDiskWriteCompat(enabled bool) Option {
	return func(s *Sampler) { s.diskWriteCompat = enabled }
}

// Sampler performs ticks. Its state is owned by one goroutine.
type Sampler struct {
	counters   Counters
	filter     AdapterFilter
	icon       Icon
	capacityMB int64

	diskWriteCompat bool
	logger          logging.Logger
	metrics         *metrics.Collector
	tracer          trace.Tracer
	now             func() time.Time

	last Tooltip
	ram  int16
}

// New returns a Sampler over the given counters, adapter filter and icon.
// capacityMB is total physical memory, fixed for the process lifetime.
func New(c Counters, f AdapterFilter, icon Icon, capacityMB int64, opts ...Option) *Sampler {
	s := &Sampler{
		counters:   c,
		filter:     f,
		icon:       icon,
		capacityMB: capacityMB,
		logger:     logging.Nop(),
		tracer:     otel.Tracer(tracerName),
		now:        time.Now,
		last:       placeholder(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewCollector()
	}
	return s
}

// SampleError reports which metric failed during a tick.
type SampleError struct {
	Metric string
	Err    error
}

func (e *SampleError) Error() string { return fmt.Sprintf("sample %s: %v", e.Metric, e.Err) }

func (e *SampleError) Unwrap() error { return e.Err }

// Tick samples CPU, RAM (updating the icon), disk and network, in that order.
// A failing sample keeps its line's previous text; the returned error joins
// every failure of the tick.
func (s *Sampler) Tick(ctx context.Context) (Tooltip, error) {
	_, span := s.tracer.Start(ctx, "sampler.Tick")
	defer span.End()
	start := s.now()

	var errs []error
	fail := func(metric string, err error) {
		s.metrics.SampleError(metric)
		errs = append(errs, &SampleError{Metric: metric, Err: err})
	}

	if v, err := s.counters.Sample(counters.CPUTotal); err != nil {
		fail("cpu", err)
	} else {
		s.last.CPU = format.CPU(v)
	}

	if avail, err := s.counters.Sample(counters.MemoryAvailable); err != nil {
		fail("memory", err)
	} else {
		s.ram = format.RAMPercent(s.capacityMB, avail)
		if s.icon.Update(s.ram) {
			s.metrics.IconRendered()
		}
		s.last.RAM = format.RAM(s.ram)
		span.SetAttributes(attribute.Int("sysmon.ram_percent", int(s.ram)))
	}

	if line, err := s.disk(); err != nil {
		fail("disk", err)
	} else {
		s.last.Disk = line
	}

	if line, n, err := s.network(); err != nil {
		fail("network", err)
	} else {
		s.last.Net = line
		s.metrics.SetActiveAdapters(n)
		span.SetAttributes(attribute.Int("sysmon.active_adapters", n))
	}

	elapsed := s.now().Sub(start)
	s.metrics.ObserveTick(elapsed)

	err := errors.Join(errs...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sample failed")
	}
	return s.last, err
}

func (s *Sampler) disk() (string, error) {
	read, err := s.counters.Sample(counters.DiskRead)
	if err != nil {
		return "", err
	}
	writeMetric := counters.DiskWrite
	if s.diskWriteCompat {
		writeMetric = counters.DiskRead
	}
	write, err := s.counters.Sample(writeMetric)
	if err != nil {
		return "", err
	}
	return format.Disk(read, write), nil
}

func (s *Sampler) network() (string, int, error) {
	active, err := s.filter.Active()
	if err != nil {
		return "", 0, err
	}
	var sent, recv float64
	for _, i := range active {
		si, ri, err := s.counters.SampleNetwork(i)
		if err != nil {
			return "", 0, err
		}
		sent += si
		recv += ri
	}
	return format.Network(sent, recv), len(active), nil
}

// Last returns the most recent tooltip without sampling.
func (s *Sampler) Last() Tooltip { return s.last }

// RAMPercent returns the most recently sampled RAM percentage.
func (s *Sampler) RAMPercent() int16 { return s.ram }
