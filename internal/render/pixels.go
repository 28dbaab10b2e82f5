package render

import "image/color"

// FillPaletteRGBA converts color indices into RGBA pixels in buf using a
// palette. Indices past the end of the palette use the last entry. When the
// palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint16, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// TintRGBA blends col over the pixel at index i of an RGBA buffer using the
// alpha of col.
func TintRGBA(buf []byte, i int, col color.RGBA) {
	base := i * 4
	if base < 0 || base+3 >= len(buf) {
		return
	}
	a := uint32(col.A)
	inv := 255 - a
	buf[base+0] = uint8((uint32(buf[base+0])*inv + uint32(col.R)*a) / 255)
	buf[base+1] = uint8((uint32(buf[base+1])*inv + uint32(col.G)*a) / 255)
	buf[base+2] = uint8((uint32(buf[base+2])*inv + uint32(col.B)*a) / 255)
	buf[base+3] = 255
}
