// Package format turns raw counter readings into the short strings shown in
// the tray tooltip and icon.
package format

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// BytesPerKB is the divisor from bytes/s to KB/s.
	BytesPerKB = 1024
	// BytesPerMB is the divisor from bytes/s to MB/s.
	BytesPerMB = 1024 * 1024
	// PrecisionCutoff is the magnitude below which rates keep one decimal.
	PrecisionCutoff = 10
	// OverflowGlyph replaces RAM percentages outside [0, 100).
	OverflowGlyph = "∞"
)

// CPU formats a processor utilization reading, truncating toward zero.
func CPU(percent float64) string {
	return fmt.Sprintf("CPU: %d%%", int64(math.Trunc(percent)))
}

// RAMPercent computes the used-memory percentage from the installed capacity
// and the currently available megabytes. The result is rounded half to even
// and saturated to the int16 range; transient readings may fall outside [0, 100).
func RAMPercent(capacityMB int64, availableMB float64) int16 {
	if capacityMB <= 0 {
		return math.MaxInt16
	}
	p := math.RoundToEven(100 * (float64(capacityMB) - availableMB) / float64(capacityMB))
	switch {
	case math.IsNaN(p):
		return math.MaxInt16
	case p > math.MaxInt16:
		return math.MaxInt16
	case p < math.MinInt16:
		return math.MinInt16
	}
	return int16(p)
}

// Glyph is the text drawn into the tray icon for a RAM percentage.
func Glyph(percent int16) string {
	if percent >= 0 && percent < 100 {
		return strconv.Itoa(int(percent))
	}
	return OverflowGlyph
}

// RAM formats the RAM tooltip line. Unlike the icon glyph, the tooltip keeps
// the numeric value even outside [0, 100).
func RAM(percent int16) string {
	return "RAM: " + strconv.Itoa(int(percent)) + "%"
}

// Rate renders a rate with one decimal below PrecisionCutoff and none at or
// above it. Midpoints round to even.
func Rate(v float64) string {
	if v < PrecisionCutoff {
		r := math.RoundToEven(v*10) / 10
		if r == 0 {
			r = 0 // drop negative zero
		}
		return strconv.FormatFloat(r, 'f', 1, 64)
	}
	return strconv.FormatFloat(math.RoundToEven(v), 'f', 0, 64)
}

// Disk formats disk throughput given read and write rates in bytes/s.
func Disk(readBps, writeBps float64) string {
	return "DISK: " + Rate(readBps/BytesPerMB) + "+" + Rate(writeBps/BytesPerMB) + " MB/S"
}

// Network formats network throughput given summed sent and received rates in
// bytes/s. Both directions stay in integer KB/s while each is below 1024 KB/s;
// otherwise both switch to MB/s.
func Network(sentBps, recvBps float64) string {
	sentKB := sentBps / BytesPerKB
	recvKB := recvBps / BytesPerKB
	if sentKB < BytesPerKB && recvKB < BytesPerKB {
		return fmt.Sprintf("NET: %d+%d KB/S", int64(sentKB), int64(recvKB))
	}
	return "NET: " + Rate(sentKB/BytesPerKB) + "+" + Rate(recvKB/BytesPerKB) + " MB/S"
}
