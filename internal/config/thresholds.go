package config

import "time"

// SlowTickThreshold is the tick duration above which the driver warns. A tick
// that eats half the interval leaves the tooltip visibly lagging.
func SlowTickThreshold(cfg AppConfig) time.Duration {
	return max(cfg.Interval/2, 50*time.Millisecond)
}
