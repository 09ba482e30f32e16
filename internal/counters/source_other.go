//go:build !windows

package counters

import (
	"fmt"
	"slices"

	"github.com/agbru/sysmontray/internal/sysmon"
)

// reader yields the next value for one opened counter.
type reader func() (float64, error)

// portableSource maps counter paths onto gopsutil totals. Rate counters are
// derived from cumulative totals, each handle keeping its own previous value.
type portableSource struct {
	readers map[Handle]reader
	next    Handle
}

// NewSource returns the gopsutil-backed counter source.
func NewSource() (Source, error) {
	return &portableSource{readers: make(map[Handle]reader)}, nil
}

func (s *portableSource) Open(path string) (Handle, error) {
	rd, err := resolve(path)
	if err != nil {
		return 0, err
	}
	s.next++
	s.readers[s.next] = rd
	return s.next, nil
}

func resolve(path string) (reader, error) {
	switch path {
	case CPUTotal.Path():
		return sysmon.CPUPercent, nil
	case MemoryAvailable.Path():
		return func() (float64, error) {
			m, err := sysmon.ReadMemory()
			return m.AvailableMB, err
		}, nil
	case DiskRead.Path():
		return diskReader(func(read, _ uint64) uint64 { return read }), nil
	case DiskWrite.Path():
		return diskReader(func(_, write uint64) uint64 { return write }), nil
	}

	object, instance, counter, ok := ParsePath(path)
	if !ok || object != NetworkObject || instance == "" {
		return nil, fmt.Errorf("unsupported counter path %q", path)
	}
	var pick func(sysmon.NetTotals) uint64
	switch counter {
	case "Bytes Sent/sec":
		pick = func(t sysmon.NetTotals) uint64 { return t.Sent }
	case "Bytes Received/sec":
		pick = func(t sysmon.NetTotals) uint64 { return t.Recv }
	default:
		return nil, fmt.Errorf("unsupported network counter %q", counter)
	}
	totals, err := sysmon.NetworkTotals()
	if err != nil {
		return nil, err
	}
	if _, found := totals[instance]; !found {
		return nil, fmt.Errorf("network instance %q not found", instance)
	}
	rate := sysmon.NewRate()
	return func() (float64, error) {
		totals, err := sysmon.NetworkTotals()
		if err != nil {
			return 0, err
		}
		t, found := totals[instance]
		if !found {
			return 0, fmt.Errorf("network instance %q disappeared", instance)
		}
		return rate.Next(pick(t)), nil
	}, nil
}

func diskReader(pick func(read, write uint64) uint64) reader {
	rate := sysmon.NewRate()
	return func() (float64, error) {
		read, write, err := sysmon.DiskTotals()
		if err != nil {
			return 0, err
		}
		return rate.Next(pick(read, write)), nil
	}
}

func (s *portableSource) Next(h Handle) (float64, error) {
	rd, ok := s.readers[h]
	if !ok {
		return 0, fmt.Errorf("invalid counter handle %d", h)
	}
	return rd()
}

func (s *portableSource) Release(h Handle) error {
	if _, ok := s.readers[h]; !ok {
		return fmt.Errorf("invalid counter handle %d", h)
	}
	delete(s.readers, h)
	return nil
}

func (s *portableSource) Instances(object string) ([]string, error) {
	if object != NetworkObject {
		return nil, fmt.Errorf("unsupported counter object %q", object)
	}
	totals, err := sysmon.NetworkTotals()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (s *portableSource) TotalMemoryMB() (int64, error) {
	m, err := sysmon.ReadMemory()
	if err != nil {
		return 0, err
	}
	return m.TotalMB, nil
}
