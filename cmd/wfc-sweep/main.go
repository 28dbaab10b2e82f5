package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"wfcgen/internal/app"
	_ "wfcgen/internal/samples"
	"wfcgen/internal/sweep"
	"wfcgen/internal/wfc"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	runs := flag.Int("runs", 32, "independent retry loops per setting")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	symmetries := flag.Bool("all-symmetry", false, "sweep every symmetry level 1-8 instead of the configured one")
	plotDir := flag.String("plot", "", "write an attempts histogram per setting into this directory")
	flag.Parse()

	in, err := cfg.LoadInput()
	if err != nil {
		log.Fatal(err)
	}
	base := cfg.Resolve(in.Defaults)

	levels := []int{base.Symmetry}
	if *symmetries {
		levels = []int{1, 2, 3, 4, 5, 6, 7, 8}
	}

	type row struct {
		params  wfc.Params
		summary sweep.Summary
		elapsed time.Duration
	}
	var rows []row
	for _, s := range levels {
		p := base
		p.Symmetry = s
		grid, err := wfc.NewInputGrid(in.Pixels, in.W, in.H, p.PeriodicInput)
		if err != nil {
			log.Fatal(err)
		}
		cat, err := wfc.NewCatalog(grid, p.N, p.Symmetry)
		if err != nil {
			log.Fatalf("symmetry %d: %v", s, err)
		}
		start := time.Now()
		sum, err := sweep.Run(cat, p, sweep.Config{Runs: *runs, FirstSeed: cfg.Seed, MaxAttempts: cfg.MaxAttempts, Workers: *workers})
		if err != nil {
			log.Fatalf("symmetry %d: %v", s, err)
		}
		elapsed := time.Since(start)
		rows = append(rows, row{params: p, summary: sum, elapsed: elapsed})
		fmt.Printf("%s N=%d symmetry=%d patterns=%d %dx%d: %s (%s)\n",
			in.Name, p.N, p.Symmetry, cat.Len(), p.Width, p.Height, sum, elapsed.Round(time.Millisecond))

		if *plotDir != "" {
			path := filepath.Join(*plotDir, fmt.Sprintf("%s_n%d_s%d.png", in.Name, p.N, p.Symmetry))
			title := fmt.Sprintf("%s N=%d symmetry=%d", in.Name, p.N, p.Symmetry)
			if err := sweep.PlotAttempts(sum, title, path); err != nil {
				log.Printf("symmetry %d: %v", s, err)
			}
		}
	}

	if len(rows) < 2 {
		return
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].summary.SuccessRate != rows[j].summary.SuccessRate {
			return rows[i].summary.SuccessRate > rows[j].summary.SuccessRate
		}
		return rows[i].summary.MeanAttempts < rows[j].summary.MeanAttempts
	})
	fmt.Println("\nRanked by success rate:")
	for i, r := range rows {
		fmt.Printf("%d. symmetry=%d rate=%.2f mean attempts=%.2f elapsed=%s\n",
			i+1, r.params.Symmetry, r.summary.SuccessRate, r.summary.MeanAttempts, r.elapsed.Round(time.Millisecond))
	}
}
