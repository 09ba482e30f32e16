package tui

// GlyphIcon stands in for the tray icon in the console. The view draws the
// glyph as text, so Update only tracks whether the percentage changed.
type GlyphIcon struct {
	prev    int16
	set     bool
	changes int
}

// NewGlyphIcon returns an icon that has not displayed anything yet.
func NewGlyphIcon() *GlyphIcon { return &GlyphIcon{} }

// Update records p and reports whether the displayed glyph must change.
func (g *GlyphIcon) Update(p int16) bool {
	if g.set && p == g.prev {
		return false
	}
	g.prev, g.set = p, true
	g.changes++
	return true
}

// Changes returns how many times the glyph changed.
func (g *GlyphIcon) Changes() int { return g.changes }
