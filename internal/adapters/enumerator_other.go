//go:build !windows

package adapters

import "github.com/agbru/sysmontray/internal/sysmon"

// NewEnumerator returns the gopsutil-backed enumerator. Interface names serve
// as descriptions, matching the instance names the counter source reports.
func NewEnumerator() Enumerator {
	return EnumeratorFunc(func() ([]Adapter, error) {
		ifaces, err := sysmon.Interfaces()
		if err != nil {
			return nil, err
		}
		out := make([]Adapter, len(ifaces))
		for i, iface := range ifaces {
			out[i] = Adapter{Description: iface.Name, Up: iface.Up, Gateways: iface.Gateways}
		}
		return out, nil
	})
}
