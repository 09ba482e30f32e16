//go:build !linux

package sysmon

// gopsutil reports whole disks only outside Linux.
func physicalDisk(string) bool { return true }
