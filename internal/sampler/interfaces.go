//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package sampler

import "github.com/agbru/sysmontray/internal/counters"

// Counters reads the opened performance counters. *counters.Registry
// satisfies it.
type Counters interface {
	Sample(m counters.Metric) (float64, error)
	SampleNetwork(i int) (sent, recv float64, err error)
}

// AdapterFilter returns the network instance indices to sum this tick.
// *adapters.Filter satisfies it.
type AdapterFilter interface {
	Active() ([]int, error)
}

// Icon receives the RAM percentage every tick. *render.Renderer satisfies it.
type Icon interface {
	Update(p int16) bool
}
