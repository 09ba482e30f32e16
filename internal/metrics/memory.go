package metrics

import "runtime"

// MemorySnapshot is the monitor's own heap footprint at one point in time.
// A tray utility that samples once per second should stay flat; the
// shutdown summary reports these so growth is visible in the log.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use
	Sys         uint64 // bytes obtained from the OS
	NumGC       uint32
	HeapObjects uint64
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct {
	read func(*runtime.MemStats)
}

// NewMemoryCollector creates a collector backed by runtime.ReadMemStats.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{read: runtime.ReadMemStats}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	mc.read(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		Sys:         m.Sys,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}
