package app

import (
	"flag"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfcgen/internal/imageio"
	_ "wfcgen/internal/samples"
	"wfcgen/internal/wfc"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg
}

func TestResolveLayersDefaults(t *testing.T) {
	cfg := parse(t, "-n", "3", "-periodic_output")
	p := cfg.Resolve(map[string]string{"n": "2", "symmetry": "8", "w": "20"})

	assert.Equal(t, 3, p.N, "explicit flag wins over sample default")
	assert.Equal(t, 8, p.Symmetry)
	assert.Equal(t, 20, p.Width)
	assert.Equal(t, 48, p.Height)
	assert.True(t, p.PeriodicOutput)
	assert.Equal(t, wfc.NoGround, p.Ground)
}

func TestResolveWithoutBind(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, wfc.DefaultParams().Apply(map[string]string{"n": "3"}), cfg.Resolve(map[string]string{"n": "3"}))
}

func TestRunnerConfig(t *testing.T) {
	cfg := parse(t, "-seed", "9", "-attempts", "7")
	rc := cfg.RunnerConfig()
	assert.Equal(t, int64(9), rc.Seed)
	assert.Equal(t, 7, rc.MaxAttempts)
	assert.Equal(t, -1, rc.Ground)
}

func TestLoadInputSample(t *testing.T) {
	cfg := parse(t, "-sample", "checker")
	in, err := cfg.LoadInput()
	require.NoError(t, err)
	assert.Equal(t, "checker", in.Name)
	assert.Equal(t, 2, in.W)
	assert.Equal(t, 2, in.H)
	assert.Len(t, in.Pixels, 4)
	assert.Equal(t, "2", in.Defaults["n"])

	cfg = parse(t, "-sample", "nope")
	_, err = cfg.LoadInput()
	assert.ErrorContains(t, err, "unknown sample")
}

func TestLoadInputImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	red := color.RGBA{R: 250, A: 255}
	nearRed := color.RGBA{R: 240, G: 4, A: 255}
	blue := color.RGBA{B: 250, A: 255}
	for x := 0; x < 3; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	img.SetRGBA(1, 0, nearRed)
	path := filepath.Join(t.TempDir(), "tiles.png")
	require.NoError(t, imageio.Save(img, path))

	in, err := parse(t, "-in", path).LoadInput()
	require.NoError(t, err)
	assert.Equal(t, "tiles", in.Name)
	assert.Equal(t, 3, in.W)
	assert.Equal(t, 2, in.H)
	assert.Equal(t, nearRed, in.Pixels[1])

	in, err = parse(t, "-in", path, "-colors", "2", "-palette", "kmeans").LoadInput()
	require.NoError(t, err)
	distinct := map[color.RGBA]bool{}
	for _, c := range in.Pixels {
		distinct[c] = true
	}
	assert.LessOrEqual(t, len(distinct), 2)
	assert.Len(t, in.Pixels, 6)
}
