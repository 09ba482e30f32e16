package format

import (
	"fmt"
	"time"
)

// Elapsed renders a tick duration for logs: whole microseconds below a
// millisecond, whole milliseconds below a second, time.Duration beyond.
func Elapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
