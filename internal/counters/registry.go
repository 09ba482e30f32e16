package counters

import (
	"errors"
	"fmt"

	apperrors "github.com/agbru/sysmontray/internal/errors"
)

// Handle is an opaque reference to an opened counter, owned by a Source.
type Handle uintptr

// Source is the operating system backend behind the registry.
//
// Next follows "next value" semantics: rate counters report the average since
// the previous call on the same handle, so the first call after Open may
// return 0 or an unreliable value.
type Source interface {
	Open(path string) (Handle, error)
	Next(h Handle) (float64, error)
	Release(h Handle) error
	Instances(object string) ([]string, error)
	TotalMemoryMB() (int64, error)
}

// Registry holds one handle per Metric and one sent/received pair per
// network instance. Handles are opened exactly once in New and released
// exactly once in Close.
type Registry struct {
	src       Source
	fixed     [metricCount]Handle
	instances []string
	sent      []Handle
	recv      []Handle
	opened    []Handle
	closed    bool
}

// New opens every counter the monitor needs. Any failure releases the
// handles opened so far and returns an apperrors.CounterError.
func New(src Source) (*Registry, error) {
	r := &Registry{src: src}

	for _, m := range Metrics() {
		h, err := r.open(m.Path())
		if err != nil {
			return nil, r.abort(err)
		}
		r.fixed[m] = h
	}

	instances, err := src.Instances(NetworkObject)
	if err != nil {
		return nil, r.abort(apperrors.CounterError{Path: NetworkObject, Cause: err})
	}
	r.instances = append([]string(nil), instances...)
	r.sent = make([]Handle, len(instances))
	r.recv = make([]Handle, len(instances))
	for i, name := range instances {
		if r.sent[i], err = r.open(NetworkSentPath(name)); err != nil {
			return nil, r.abort(err)
		}
		if r.recv[i], err = r.open(NetworkReceivedPath(name)); err != nil {
			return nil, r.abort(err)
		}
	}
	return r, nil
}

func (r *Registry) open(path string) (Handle, error) {
	h, err := r.src.Open(path)
	if err != nil {
		return 0, apperrors.CounterError{Path: path, Cause: err}
	}
	r.opened = append(r.opened, h)
	return h, nil
}

func (r *Registry) abort(err error) error {
	if cerr := r.Close(); cerr != nil {
		return errors.Join(err, cerr)
	}
	return err
}

// Sample reads the next value of a fixed metric.
func (r *Registry) Sample(m Metric) (float64, error) {
	if m < 0 || m >= metricCount {
		return 0, fmt.Errorf("unknown metric %v", m)
	}
	v, err := r.src.Next(r.fixed[m])
	if err != nil {
		return 0, apperrors.WrapError(err, "sample %s", m)
	}
	return v, nil
}

// NetworkInstances returns the network counter instance names discovered at
// startup. Indices into this slice address SampleNetwork.
func (r *Registry) NetworkInstances() []string {
	return append([]string(nil), r.instances...)
}

// SampleNetwork reads the next sent and received bytes/s of instance i.
func (r *Registry) SampleNetwork(i int) (sent, recv float64, err error) {
	if i < 0 || i >= len(r.instances) {
		return 0, 0, fmt.Errorf("network instance index %d out of range [0,%d)", i, len(r.instances))
	}
	if sent, err = r.src.Next(r.sent[i]); err != nil {
		return 0, 0, apperrors.WrapError(err, "sample sent bytes for %q", r.instances[i])
	}
	if recv, err = r.src.Next(r.recv[i]); err != nil {
		return 0, 0, apperrors.WrapError(err, "sample received bytes for %q", r.instances[i])
	}
	return sent, recv, nil
}

// Close releases every opened handle. Calling it again is a no-op.
func (r *Registry) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	var errs []error
	for _, h := range r.opened {
		if err := r.src.Release(h); err != nil {
			errs = append(errs, err)
		}
	}
	r.opened = nil
	return errors.Join(errs...)
}

// Capacity returns total physical memory in megabytes. It is queried once at
// startup; failure is fatal.
func Capacity(src Source) (int64, error) {
	mb, err := src.TotalMemoryMB()
	if err != nil {
		return 0, apperrors.CapacityError{Cause: err}
	}
	if mb <= 0 {
		return 0, apperrors.CapacityError{Cause: apperrors.ErrNoCapacity}
	}
	return mb, nil
}
