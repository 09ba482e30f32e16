package sysmon

import "time"

// Rate turns a cumulative byte counter into bytes per second between
// consecutive observations. The first observation only primes it.
type Rate struct {
	prev   uint64
	at     time.Time
	primed bool
	now    func() time.Time
}

// NewRate returns a Rate using the wall clock.
func NewRate() *Rate { return &Rate{now: time.Now} }

// Next records total and returns the average rate since the previous call.
// A counter that went backwards (wrap or interface reset) reads as 0.
func (r *Rate) Next(total uint64) float64 {
	now := r.now()
	defer func() {
		r.prev, r.at, r.primed = total, now, true
	}()
	if !r.primed || total < r.prev {
		return 0
	}
	elapsed := now.Sub(r.at).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(total-r.prev) / elapsed
}
