//go:build linux

package sysmon

import (
	"os"
	"path/filepath"
)

const sysBlock = "/sys/block"

// physicalDisk reports whether name is a whole disk: listed under /sys/block
// (partitions are not) and not layered on other devices (dm, md).
func physicalDisk(name string) bool {
	return wholeDisk(sysBlock, name)
}

func wholeDisk(root, name string) bool {
	if _, err := os.Stat(root); err != nil {
		return true
	}
	dir := filepath.Join(root, name)
	if _, err := os.Stat(dir); err != nil {
		return false
	}
	slaves, err := os.ReadDir(filepath.Join(dir, "slaves"))
	return err != nil || len(slaves) == 0
}
