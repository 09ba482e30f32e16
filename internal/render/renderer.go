package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/agbru/sysmontray/internal/format"
	"github.com/agbru/sysmontray/internal/logging"
)

const (
	// IconSize is the width and height of the icon bitmap in pixels.
	IconSize = 16
	// FontSize is the glyph size in pixels.
	FontSize = 14
)

// Host installs icon bytes on the tray surface.
type Host interface {
	SetIcon(icon []byte)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEncoder overrides the platform icon encoder.
func WithEncoder(e Encoder) Option {
	return func(r *Renderer) { r.encode = e }
}

// WithFallback overrides the icon installed when encoding fails.
func WithFallback(icon []byte) Option {
	return func(r *Renderer) { r.fallback = icon }
}

// WithLogger sets the logger used for encode failures.
func WithLogger(l logging.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// Renderer redraws the icon when the RAM percentage changes. It is not safe
// for concurrent use; the tick driver goroutine owns it.
type Renderer struct {
	host     Host
	encode   Encoder
	fallback []byte
	logger   logging.Logger

	img  *image.RGBA
	face font.Face
	ink  image.Image

	prev         int16
	rendered     bool
	usingDefault bool
	current      []byte
	renders      int
}

// New parses the embedded Go Regular font and prepares an empty bitmap.
func New(host Host, opts ...Option) (*Renderer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	r := &Renderer{
		host:     host,
		encode:   platformEncoder,
		fallback: DefaultIcon,
		logger:   logging.Nop(),
		img:      image.NewRGBA(image.Rect(0, 0, IconSize, IconSize)),
		face:     face,
		ink:      image.NewUniform(color.White),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Update renders p if it differs from the last rendered value, if nothing has
// been rendered yet, or if the default icon is installed. It reports whether
// a new glyph icon was installed.
func (r *Renderer) Update(p int16) bool {
	if r.rendered && !r.usingDefault && p == r.prev {
		return false
	}
	r.prev = p
	r.rendered = true
	r.draw(format.Glyph(p))

	icon, err := r.encode(r.img)
	r.current = nil
	if err != nil {
		r.logger.Warn("icon encode failed, installing default icon",
			logging.Int("percent", int(p)), logging.Err(err))
		r.usingDefault = true
		r.current = r.fallback
		r.host.SetIcon(r.current)
		return false
	}
	r.usingDefault = false
	r.current = icon
	r.host.SetIcon(r.current)
	r.renders++
	return true
}

func (r *Renderer) draw(s string) {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: r.img, Src: r.ink, Face: r.face}
	bounds, advance := d.BoundString(s)
	size := fixed.I(IconSize)
	d.Dot = fixed.Point26_6{
		X: (size - advance) / 2,
		Y: (size-(bounds.Max.Y-bounds.Min.Y))/2 - bounds.Min.Y,
	}
	d.DrawString(s)
}

// Renders returns how many glyph icons have been installed.
func (r *Renderer) Renders() int { return r.renders }

// UsingDefault reports whether the fallback icon is currently installed.
func (r *Renderer) UsingDefault() bool { return r.usingDefault }

// Close releases the font face.
func (r *Renderer) Close() error {
	r.current = nil
	return r.face.Close()
}
