// Package glyph prints generated pixel buffers as text for quick inspection.
package glyph

import (
	"image/color"
	"strings"
)

// Unknown is printed for colors missing from the map.
const Unknown = '?'

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// DefaultMap renders black as a filled square and white as a space.
func DefaultMap() map[color.RGBA]rune {
	return map[color.RGBA]rune{
		black: '■',
		white: ' ',
	}
}

// Rows converts a row-major RGBA buffer into one string per row.
func Rows(buf []byte, w, h int, glyphs map[color.RGBA]rune) []string {
	if glyphs == nil {
		glyphs = DefaultMap()
	}
	rows := make([]string, 0, h)
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.Reset()
		for x := 0; x < w; x++ {
			i := 4 * (y*w + x)
			if i+3 >= len(buf) {
				sb.WriteRune(Unknown)
				continue
			}
			c := color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
			r, ok := glyphs[c]
			if !ok {
				r = Unknown
			}
			sb.WriteRune(r)
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// String joins Rows with newlines.
func String(buf []byte, w, h int, glyphs map[color.RGBA]rune) string {
	return strings.Join(Rows(buf, w, h, glyphs), "\n")
}
