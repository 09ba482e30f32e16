package sysmon

import (
	"net/netip"
	"slices"

	"github.com/shirou/gopsutil/v4/net"
)

// Interface describes a network interface for adapter filtering.
type Interface struct {
	Name     string
	Up       bool
	Gateways int
}

// Interfaces lists network interfaces with their operational state and the
// number of default gateways routed through each. Where no routing table is
// readable, an interface with a global unicast address counts as having one
// gateway.
func Interfaces() ([]Interface, error) {
	stats, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	gateways, routeErr := defaultGateways()

	out := make([]Interface, 0, len(stats))
	for _, s := range stats {
		iface := Interface{
			Name: s.Name,
			Up:   slices.Contains(s.Flags, "up"),
		}
		if routeErr == nil {
			iface.Gateways = gateways[s.Name]
		} else if hasGlobalUnicast(s.Addrs) {
			iface.Gateways = 1
		}
		out = append(out, iface)
	}
	return out, nil
}

func hasGlobalUnicast(addrs net.InterfaceAddrList) bool {
	for _, a := range addrs {
		p, err := netip.ParsePrefix(a.Addr)
		if err != nil {
			continue
		}
		if p.Addr().IsGlobalUnicast() {
			return true
		}
	}
	return false
}
