// Package adapters decides which network counter instances count toward the
// NET line: only adapters that are up and have at least one default gateway.
package adapters

import (
	"strings"

	"github.com/samber/lo"
)

// Adapter is a point-in-time view of one network adapter.
type Adapter struct {
	Description string
	Up          bool
	Gateways    int
}

// Enumerator lists the system's network adapters.
type Enumerator interface {
	Adapters() ([]Adapter, error)
}

// EnumeratorFunc adapts a function to Enumerator.
type EnumeratorFunc func() ([]Adapter, error)

// Adapters calls f.
func (f EnumeratorFunc) Adapters() ([]Adapter, error) { return f() }

var nameReplacer = strings.NewReplacer("(", "[", ")", "]", "#", "_", "/", "_", `\`, "_")

// NormalizeName maps an adapter description onto the character set the
// performance counter namespace uses for instance names.
func NormalizeName(description string) string {
	return nameReplacer.Replace(description)
}

// Active returns, in adapter enumeration order, the indices into instances of
// adapters that are up, have a gateway and whose normalized description
// names a counter instance. Each instance index appears at most once.
func Active(list []Adapter, instances []string) []int {
	indices := lo.FilterMap(list, func(a Adapter, _ int) (int, bool) {
		if !a.Up || a.Gateways == 0 {
			return 0, false
		}
		i := lo.IndexOf(instances, NormalizeName(a.Description))
		return i, i >= 0
	})
	return lo.Uniq(indices)
}

// Filter re-enumerates adapters on every call so adapters that come up or go
// down between ticks are picked up immediately.
type Filter struct {
	enum      Enumerator
	instances []string
}

// NewFilter binds an enumerator to the counter instances discovered at startup.
func NewFilter(enum Enumerator, instances []string) *Filter {
	return &Filter{enum: enum, instances: instances}
}

// Active returns the instance indices whose counters contribute to this tick.
func (f *Filter) Active() ([]int, error) {
	list, err := f.enum.Adapters()
	if err != nil {
		return nil, err
	}
	return Active(list, f.instances), nil
}

// Instances returns the counter instance names the filter matches against.
func (f *Filter) Instances() []string { return f.instances }
