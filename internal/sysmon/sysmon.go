// Package sysmon reads system-wide resource totals through gopsutil. It backs
// the counter registry and the adapter enumerator on platforms without the
// Windows performance data helper.
package sysmon

import (
	"errors"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

const bytesPerMB = 1024 * 1024

// Memory holds physical memory totals in megabytes.
type Memory struct {
	TotalMB     int64
	AvailableMB float64
}

// NetTotals holds cumulative byte counters for one interface.
type NetTotals struct {
	Sent uint64
	Recv uint64
}

// CPUPercent returns system-wide CPU utilization since the previous call.
// The first call compares against boot time.
func CPUPercent() (float64, error) {
	pcts, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, errors.New("cpu: no samples returned")
	}
	return pcts[0], nil
}

// ReadMemory returns total and available physical memory.
func ReadMemory() (Memory, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Memory{}, err
	}
	return Memory{
		TotalMB:     int64(vm.Total / bytesPerMB),
		AvailableMB: float64(vm.Available) / bytesPerMB,
	}, nil
}

// DiskTotals returns cumulative bytes read and written summed over physical
// disks. Partitions and stacked devices are skipped so each byte counts once.
func DiskTotals() (read, write uint64, err error) {
	stats, err := disk.IOCounters()
	if err != nil {
		return 0, 0, err
	}
	read, write = sumDisks(stats, physicalDisk)
	return read, write, nil
}

func sumDisks(stats map[string]disk.IOCountersStat, keep func(name string) bool) (read, write uint64) {
	for name, s := range stats {
		if !keep(name) {
			continue
		}
		read += s.ReadBytes
		write += s.WriteBytes
	}
	return read, write
}

// NetworkTotals returns cumulative byte counters keyed by interface name.
func NetworkTotals() (map[string]NetTotals, error) {
	stats, err := net.IOCounters(true)
	if err != nil {
		return nil, err
	}
	out := make(map[string]NetTotals, len(stats))
	for _, s := range stats {
		out[s.Name] = NetTotals{Sent: s.BytesSent, Recv: s.BytesRecv}
	}
	return out, nil
}
