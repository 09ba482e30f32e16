// Package counters opens and samples the operating system performance
// counters the tray monitor displays. Every counter is resolved once at
// startup from a typed Metric to an opaque Handle; a missing counter fails
// the whole registry instead of degrading silently.
package counters

import (
	"fmt"
	"strings"
)

// Metric identifies one of the fixed, system-wide counters.
type Metric int

const (
	// CPUTotal is total processor utilization in percent.
	CPUTotal Metric = iota
	// MemoryAvailable is available physical memory in megabytes.
	MemoryAvailable
	// DiskRead is physical disk read throughput in bytes/s.
	DiskRead
	// DiskWrite is physical disk write throughput in bytes/s.
	DiskWrite

	metricCount
)

// NetworkObject is the counter object whose instances are network adapters.
const NetworkObject = "Network Interface"

var metricPaths = [metricCount]string{
	CPUTotal:        `\Processor(_Total)\% Processor Time`,
	MemoryAvailable: `\Memory\Available MBytes`,
	DiskRead:        `\PhysicalDisk(_Total)\Disk Read Bytes/sec`,
	DiskWrite:       `\PhysicalDisk(_Total)\Disk Write Bytes/sec`,
}

var metricNames = [metricCount]string{
	CPUTotal:        "cpu",
	MemoryAvailable: "memory",
	DiskRead:        "disk_read",
	DiskWrite:       "disk_write",
}

// Metrics lists every fixed metric in registry open order.
func Metrics() []Metric {
	return []Metric{CPUTotal, MemoryAvailable, DiskRead, DiskWrite}
}

// Path returns the English counter path for the metric.
func (m Metric) Path() string {
	if m < 0 || m >= metricCount {
		return ""
	}
	return metricPaths[m]
}

func (m Metric) String() string {
	if m < 0 || m >= metricCount {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// NetworkSentPath is the bytes-sent counter path for an adapter instance.
func NetworkSentPath(instance string) string {
	return `\` + NetworkObject + `(` + instance + `)\Bytes Sent/sec`
}

// NetworkReceivedPath is the bytes-received counter path for an adapter instance.
func NetworkReceivedPath(instance string) string {
	return `\` + NetworkObject + `(` + instance + `)\Bytes Received/sec`
}

// ParsePath splits `\Object(Instance)\Counter` or `\Object\Counter` into its
// parts. Instance names may themselves contain parentheses or brackets, so the
// instance runs from the first '(' to the last ')' before the counter name.
func ParsePath(path string) (object, instance, counter string, ok bool) {
	if !strings.HasPrefix(path, `\`) {
		return "", "", "", false
	}
	rest := path[1:]
	sep := strings.LastIndex(rest, `\`)
	if sep <= 0 || sep == len(rest)-1 {
		return "", "", "", false
	}
	head, counter := rest[:sep], rest[sep+1:]
	open := strings.IndexByte(head, '(')
	if open < 0 {
		return head, "", counter, true
	}
	if !strings.HasSuffix(head, ")") || open == 0 {
		return "", "", "", false
	}
	return head[:open], head[open+1 : len(head)-1], counter, true
}
