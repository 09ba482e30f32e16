package render

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
)

// Encoder turns the rendered bitmap into icon bytes for the host.
type Encoder func(img image.Image) ([]byte, error)

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

const icoHeaderSize = 6 + 16

// EncodeICO wraps a PNG-encoded img in a single-image ICO container.
func EncodeICO(img image.Image) ([]byte, error) {
	b := img.Bounds()
	if b.Empty() || b.Dx() > 256 || b.Dy() > 256 {
		return nil, fmt.Errorf("ico: unsupported size %dx%d", b.Dx(), b.Dy())
	}
	payload, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(icoHeaderSize + len(payload))
	entry := iconDirEntry{
		Width:       icoDimension(b.Dx()),
		Height:      icoDimension(b.Dy()),
		Planes:      1,
		BitCount:    32,
		BytesInRes:  uint32(len(payload)),
		ImageOffset: icoHeaderSize,
	}
	if err := binary.Write(&buf, binary.LittleEndian, iconDir{Type: 1, Count: 1}); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, entry); err != nil {
		return nil, err
	}
	buf.Write(payload)
	return buf.Bytes(), nil
}

// 256 is stored as 0.
func icoDimension(n int) uint8 {
	if n >= 256 {
		return 0
	}
	return uint8(n)
}
