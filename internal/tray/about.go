package tray

// AboutText is the body of the About dialog.
func AboutText(version string) string {
	return "System Monitor " + version + "\n" +
		"CPU, memory, disk and network at a glance\n" +
		"Copyright © the sysmontray authors"
}
