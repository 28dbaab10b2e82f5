//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type contradictionProvider interface {
	Contradicted() (x, y int, ok bool)
}

var markerColor = color.RGBA{R: 255, G: 48, B: 48, A: 230}

// Overlay marks the cell where the last attempt ran out of patterns.
type Overlay struct {
	src   contradictionProvider
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src contradictionProvider, scale int) *Overlay {
	o := &Overlay{src: src, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the marker on C.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.show = !o.show
	}
}

// Draw frames the contradicted cell.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.src == nil {
		return
	}
	x, y, ok := o.src.Contradicted()
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	thick := float64(max(scale/4, 1))
	const reach = 2
	left := float64((x - reach) * scale)
	top := float64((y - reach) * scale)
	side := float64((2*reach + 1) * scale)
	o.rect(screen, left, top, side, thick)
	o.rect(screen, left, top+side-thick, side, thick)
	o.rect(screen, left, top, thick, side)
	o.rect(screen, left+side-thick, top, thick, side)
	o.rect(screen, float64(x*scale), float64(y*scale), float64(scale), float64(scale))
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(markerColor)
	screen.DrawImage(o.pixel, op)
}
