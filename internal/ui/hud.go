//go:build ebiten

package ui

import (
	"image/color"

	"wfcgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 12
	headerBaseline = 14
	lineHeight     = 16
	charWidth      = 7
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hintColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

var hints = []string{"R regenerate", "S new seed", "N next seed", "Space auto", "C marker"}

// HUD renders the parameter panel to the right of the output view.
type HUD struct {
	provider   core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []Line
}

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(provider core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{provider: provider, width: width}
}

// Update refreshes the cached lines from the provider.
func (h *HUD) Update() {
	if h == nil || h.provider == nil {
		return
	}
	cols := (h.width - 2*panelPadding) / charWidth
	h.lines = Lines(h.provider.Parameters(), cols)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.lines {
		if line.Text != "" {
			col := textColor
			if line.Header {
				col = headerColor
			}
			text.Draw(h.panel, line.Text, face, panelPadding, y, col)
		}
		y += lineHeight
	}
	y += lineHeight
	for _, hint := range hints {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, hint, face, panelPadding, y, hintColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
