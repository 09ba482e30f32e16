package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type recordingHost struct {
	icons [][]byte
}

func (h *recordingHost) SetIcon(icon []byte) { h.icons = append(h.icons, icon) }

func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, *recordingHost) {
	t.Helper()
	host := &recordingHost{}
	r, err := New(host, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r, host
}

func inkedPixels(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestRenderer_FirstUpdateAlwaysRenders(t *testing.T) {
	t.Parallel()
	r, host := newTestRenderer(t, WithEncoder(EncodePNG))

	if !r.Update(0) {
		t.Fatal("first Update should render")
	}
	if len(host.icons) != 1 {
		t.Fatalf("host received %d icons, want 1", len(host.icons))
	}
	if _, err := png.Decode(bytes.NewReader(host.icons[0])); err != nil {
		t.Errorf("installed icon is not a PNG: %v", err)
	}
	if inkedPixels(r.img) == 0 {
		t.Error("glyph left the bitmap empty")
	}
}

func TestRenderer_SkipsUnchangedValue(t *testing.T) {
	t.Parallel()
	r, host := newTestRenderer(t, WithEncoder(EncodePNG))

	r.Update(42)
	if r.Update(42) {
		t.Error("Update with the same value should not render")
	}
	if !r.Update(43) {
		t.Error("Update with a new value should render")
	}
	if r.Renders() != 2 || len(host.icons) != 2 {
		t.Errorf("Renders() = %d, host icons = %d, want 2 and 2", r.Renders(), len(host.icons))
	}
}

func TestRenderer_ClearsBetweenGlyphs(t *testing.T) {
	t.Parallel()
	r, _ := newTestRenderer(t, WithEncoder(EncodePNG))

	r.Update(1)
	one := inkedPixels(r.img)
	r.Update(88)
	r.Update(1)
	if got := inkedPixels(r.img); got != one {
		t.Errorf("redrawing the same glyph inked %d pixels, want %d", got, one)
	}
}

func TestRenderer_OverflowGlyph(t *testing.T) {
	t.Parallel()
	r, _ := newTestRenderer(t, WithEncoder(EncodePNG))
	for _, p := range []int16{100, -3, 32767} {
		r.Update(p)
		if inkedPixels(r.img) == 0 {
			t.Errorf("Update(%d) drew nothing", p)
		}
	}
}

func TestRenderer_EncodeFailureInstallsDefault(t *testing.T) {
	t.Parallel()
	fail := true
	enc := func(img image.Image) ([]byte, error) {
		if fail {
			return nil, errors.New("encoder unavailable")
		}
		return EncodePNG(img)
	}
	fallback := []byte("fallback")
	r, host := newTestRenderer(t, WithEncoder(enc), WithFallback(fallback))

	if r.Update(50) {
		t.Error("failed encode should not count as a render")
	}
	if !r.UsingDefault() {
		t.Error("default icon should be installed")
	}
	if len(host.icons) != 1 || !bytes.Equal(host.icons[0], fallback) {
		t.Fatalf("host icons = %q, want the fallback", host.icons)
	}

	fail = false
	if !r.Update(50) {
		t.Error("same value should be retried while the default icon is installed")
	}
	if r.UsingDefault() {
		t.Error("default icon should be replaced after a successful render")
	}
	if r.Update(50) {
		t.Error("after recovery an unchanged value should be skipped")
	}
}

func TestRenderer_RenderCountFollowsValueChanges(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("renders equal value changes plus one", prop.ForAll(
		func(values []int16) bool {
			host := &recordingHost{}
			r, err := New(host, WithEncoder(func(image.Image) ([]byte, error) { return []byte{1}, nil }))
			if err != nil {
				return false
			}
			defer r.Close()

			want := 0
			for i, v := range values {
				if i == 0 || v != values[i-1] {
					want++
				}
				r.Update(v)
			}
			distinct := map[int16]struct{}{}
			for _, v := range values {
				distinct[v] = struct{}{}
			}
			return r.Renders() == want && r.Renders() <= len(values) &&
				(len(values) == 0 || r.Renders() >= len(distinct))
		},
		gen.SliceOf(gen.Int16Range(-2, 102)),
	))

	properties.TestingRun(t)
}

func TestEncodeICO(t *testing.T) {
	t.Parallel()
	img := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))
	ico, err := EncodeICO(img)
	if err != nil {
		t.Fatalf("EncodeICO: %v", err)
	}

	var dir iconDir
	var entry iconDirEntry
	rd := bytes.NewReader(ico)
	if err := binary.Read(rd, binary.LittleEndian, &dir); err != nil {
		t.Fatal(err)
	}
	if err := binary.Read(rd, binary.LittleEndian, &entry); err != nil {
		t.Fatal(err)
	}
	if dir.Type != 1 || dir.Count != 1 {
		t.Errorf("icon dir = %+v, want type 1 count 1", dir)
	}
	if entry.Width != IconSize || entry.Height != IconSize || entry.BitCount != 32 {
		t.Errorf("entry = %+v", entry)
	}
	if int(entry.ImageOffset)+int(entry.BytesInRes) != len(ico) {
		t.Errorf("entry offset %d + size %d != %d", entry.ImageOffset, entry.BytesInRes, len(ico))
	}
	decoded, err := png.Decode(bytes.NewReader(ico[entry.ImageOffset:]))
	if err != nil {
		t.Fatalf("payload is not PNG: %v", err)
	}
	if decoded.Bounds().Dx() != IconSize {
		t.Errorf("payload width = %d", decoded.Bounds().Dx())
	}
}

func TestEncodeICO_RejectsOversize(t *testing.T) {
	t.Parallel()
	if _, err := EncodeICO(image.NewRGBA(image.Rect(0, 0, 300, 16))); err == nil {
		t.Error("expected error for a 300px wide image")
	}
	if _, err := EncodeICO(image.NewRGBA(image.Rectangle{})); err == nil {
		t.Error("expected error for an empty image")
	}
}

func TestDefaultIcons(t *testing.T) {
	t.Parallel()
	if _, err := png.Decode(bytes.NewReader(defaultPNG)); err != nil {
		t.Errorf("embedded PNG icon: %v", err)
	}
	if len(defaultICO) <= icoHeaderSize {
		t.Fatalf("embedded ICO is %d bytes", len(defaultICO))
	}
	if _, err := png.Decode(bytes.NewReader(defaultICO[icoHeaderSize:])); err != nil {
		t.Errorf("embedded ICO payload: %v", err)
	}
	if len(DefaultIcon) == 0 {
		t.Error("platform default icon is empty")
	}
}
