package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"wfcgen/internal/app"
	"wfcgen/internal/glyph"
	"wfcgen/internal/imageio"
	"wfcgen/internal/runner"
	_ "wfcgen/internal/samples"
	"wfcgen/internal/wfc"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 1
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "", "write the output image to this path (png or gif)")
	ascii := flag.Bool("ascii", false, "print the output as glyphs")
	quiet := flag.Bool("q", false, "do not log the attempt summary")
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
	if !*quiet {
		rc.Logf = log.Printf
	}
	res, buf, err := runner.RunModel(model, rc)
	if err != nil {
		log.Fatal(err)
	}
	if !res.Success {
		if x, y, ok := model.Contradicted(); ok {
			log.Printf("last attempt contradicted at (%d,%d)", x, y)
		}
		os.Exit(1)
	}

	if *ascii {
		fmt.Println(glyph.String(buf, params.Width, params.Height, glyph.DefaultMap()))
	}
	if *out != "" {
		img, err := imageio.FromRGBA(buf, params.Width, params.Height)
		if err != nil {
			log.Fatal(err)
		}
		if err := imageio.Save(imageio.Scale(img, cfg.Scale), *out); err != nil {
			log.Fatal(err)
		}
		if !*quiet {
			log.Printf("wrote %s (%dx%d, %d patterns, seed %d)", *out, params.Width, params.Height, model.Catalog().Len(), res.Seed)
		}
	}
}
