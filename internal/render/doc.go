// Package render draws the RAM percentage glyph that stands in for the tray
// icon. A Renderer owns its bitmap, font face and last rendered value, and
// only redraws when the displayed percentage changes.
package render
