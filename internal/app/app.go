//go:build ebiten

package app

import (
	"time"

	"wfcgen/internal/core"
	"wfcgen/internal/render"
	"wfcgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generation session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	auto    *core.FixedStep

	scale    int
	hudWidth int
	running  bool
}

// New constructs a Game for the provided session.
func New(s *Session, scale, hudWidth, rate int) *Game {
	size := s.Size()
	return &Game{
		session:  s,
		painter:  render.NewPainter(size.W, size.H),
		hud:      ui.NewHUD(s, hudWidth),
		overlay:  ui.NewOverlay(s, scale),
		auto:     core.NewFixedStep(rate),
		scale:    scale,
		hudWidth: hudWidth,
	}
}

// Update handles per-frame input and automatic regeneration.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Regenerate(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Regenerate(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Next()
	}
	if g.auto.ShouldStep() && g.running {
		g.session.Next()
	}

	g.overlay.Update()
	g.hud.Update()
	return nil
}

// Draw renders the latest frame, the marker and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Frame(), g.scale)
	g.overlay.Draw(screen)
	size := g.session.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
