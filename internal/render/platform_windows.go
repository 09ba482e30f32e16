//go:build windows

package render

// The notification area takes ICO bytes.
var (
	platformEncoder Encoder = EncodeICO
	DefaultIcon             = defaultICO
)
