//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wfcgen/internal/app"
	_ "wfcgen/internal/samples"
	"wfcgen/internal/wfc"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	in, err := cfg.LoadInput()
	if err != nil {
		log.Fatal(err)
	}
	params := cfg.Resolve(in.Defaults)
	model, err := wfc.New(in.Pixels, in.W, in.H, params)
	if err != nil {
		log.Fatalf("%s: %v", in.Name, err)
	}

	rc := cfg.RunnerConfig()
	rc.Logf = log.Printf
	session := app.NewSession(model, rc)
	game := app.New(session, cfg.Scale, cfg.HUDWidth, cfg.Rate)
	size := session.Size()

	ebiten.SetWindowTitle("wfcgen — " + in.Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
