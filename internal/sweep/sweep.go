// Package sweep runs many independent retry loops over one shared catalog in
// parallel and summarizes how hard a configuration is to satisfy.
package sweep

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"wfcgen/internal/runner"
	"wfcgen/internal/wfc"
)

// Config controls a sweep.
type Config struct {
	// Runs is the number of independent retry loops.
	Runs int
	// FirstSeed seeds run i with FirstSeed + i*MaxAttempts so that no two
	// runs share a stream.
	FirstSeed   int64
	MaxAttempts int
	Workers     int
}

// DefaultConfig returns a sweep of 32 runs on every CPU.
func DefaultConfig() Config {
	return Config{Runs: 32, FirstSeed: 1, MaxAttempts: runner.DefaultMaxAttempts, Workers: runtime.NumCPU()}
}

// RunRecord is the outcome of one retry loop.
type RunRecord struct {
	Run     int
	Seed    int64
	Outcome runner.Result
}

// Summary aggregates the records of a sweep.
type Summary struct {
	Runs        int
	Successes   int
	SuccessRate float64

	// Attempt statistics over successful runs only.
	MeanAttempts   float64
	StdDevAttempts float64
	MedianAttempts float64
	MaxAttempts    int

	// FirstTry is the fraction of single attempts that succeeded.
	FirstTry float64

	Records []RunRecord
}

func (s Summary) String() string {
	return fmt.Sprintf("runs=%d successes=%d rate=%.2f attempts mean=%.2f sd=%.2f median=%.1f max=%d single-attempt=%.3f",
		s.Runs, s.Successes, s.SuccessRate, s.MeanAttempts, s.StdDevAttempts, s.MedianAttempts, s.MaxAttempts, s.FirstTry)
}

// Run executes the sweep. Each worker owns its own model built over cat, so
// the catalog is the only state shared between goroutines.
func Run(cat *wfc.Catalog, params wfc.Params, cfg Config) (Summary, error) {
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultConfig().Runs
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = runner.DefaultMaxAttempts
	}
	// Validate once up front so workers cannot fail.
	if _, err := wfc.NewModel(cat, params); err != nil {
		return Summary{}, err
	}

	jobs := make(chan int)
	records := make([]RunRecord, cfg.Runs)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			model, _ := wfc.NewModel(cat, params)
			for run := range jobs {
				seed := cfg.FirstSeed + int64(run)*int64(cfg.MaxAttempts)
				rc := runner.DefaultConfig()
				rc.MaxAttempts = cfg.MaxAttempts
				rc.Seed = seed
				records[run] = RunRecord{Run: run, Seed: seed, Outcome: runner.Run(model, rc)}
			}
		}()
	}
	for run := 0; run < cfg.Runs; run++ {
		jobs <- run
	}
	close(jobs)
	wg.Wait()

	return Summarize(records), nil
}

// Summarize computes aggregate statistics for records.
func Summarize(records []RunRecord) Summary {
	s := Summary{Runs: len(records), Records: records}
	var attempts []float64
	total := 0
	for _, rec := range records {
		total += rec.Outcome.Attempts
		if !rec.Outcome.Success {
			continue
		}
		s.Successes++
		attempts = append(attempts, float64(rec.Outcome.Attempts))
		if rec.Outcome.Attempts > s.MaxAttempts {
			s.MaxAttempts = rec.Outcome.Attempts
		}
	}
	if s.Runs > 0 {
		s.SuccessRate = float64(s.Successes) / float64(s.Runs)
	}
	if total > 0 {
		s.FirstTry = float64(s.Successes) / float64(total)
	}
	if len(attempts) > 0 {
		s.MeanAttempts, s.StdDevAttempts = stat.MeanStdDev(attempts, nil)
		if len(attempts) < 2 {
			s.StdDevAttempts = 0
		}
		sort.Float64s(attempts)
		s.MedianAttempts = stat.Quantile(0.5, stat.Empirical, attempts, nil)
	}
	return s
}
