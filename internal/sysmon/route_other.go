//go:build !linux

package sysmon

func defaultGateways() (map[string]int, error) {
	return nil, errNoRouteTable
}
