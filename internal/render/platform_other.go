//go:build !windows

package render

// Status notifier hosts decode PNG.
var (
	platformEncoder Encoder = EncodePNG
	DefaultIcon             = defaultPNG
)
