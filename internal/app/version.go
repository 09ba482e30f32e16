package app

import (
	"fmt"
	"io"
	"runtime"
	"slices"
)

// Version is the release version, set at build time with
// -ldflags "-X github.com/agbru/sysmontray/internal/app.Version=1.0.0".
var Version = "dev"

// HasVersionFlag reports whether args request the version banner.
func HasVersionFlag(args []string) bool {
	return slices.ContainsFunc(args, func(a string) bool {
		return a == "--version" || a == "-version" || a == "-v"
	})
}

// PrintVersion writes the version banner to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "sysmontray %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
