//go:build linux

package sysmon

import "os"

func defaultGateways() (map[string]int, error) {
	f, err := os.Open("/proc/net/route")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseRouteTable(f)
}
