package render

import _ "embed"

//go:embed assets/default.ico
var defaultICO []byte

//go:embed assets/default.png
var defaultPNG []byte
