package sysmon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errNoRouteTable = errors.New("routing table not available on this platform")

// parseRouteTable counts default routes (destination and mask 0.0.0.0) per
// interface in the /proc/net/route format.
func parseRouteTable(r io.Reader) (map[string]int, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("route table: missing header")
	}
	header := strings.Fields(sc.Text())
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		return -1
	}
	ifaceCol, destCol, maskCol := col("Iface"), col("Destination"), col("Mask")
	if ifaceCol < 0 || destCol < 0 || maskCol < 0 {
		return nil, fmt.Errorf("route table: unexpected header %q", sc.Text())
	}

	out := make(map[string]int)
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) <= max(ifaceCol, destCol, maskCol) {
			continue
		}
		if f[destCol] == "00000000" && f[maskCol] == "00000000" {
			out[f[ifaceCol]]++
		}
	}
	return out, sc.Err()
}
