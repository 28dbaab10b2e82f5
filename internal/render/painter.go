//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads RGBA frames into a single ebiten image and draws it scaled.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter for a w*h frame.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads buf and draws it onto dst. Frames of the wrong size are
// ignored.
func (p *Painter) Blit(dst *ebiten.Image, buf []byte, scale int) {
	if len(buf) != 4*p.w*p.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	p.img.WritePixels(buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
