// Package palette turns arbitrary images into the small indexed color sets
// the generator learns from. The engine itself only compares indices, so any
// color matching happens here.
package palette

import (
	"errors"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Method selects how a reduced palette is extracted.
type Method int

const (
	// MethodExact keeps every distinct color of the input.
	MethodExact Method = iota
	// MethodKMeans clusters pixels in RGB space.
	MethodKMeans
	// MethodDominant uses dominant-color extraction.
	MethodDominant
)

// ErrEmptyImage is returned for images without pixels.
var ErrEmptyImage = errors.New("palette: image has no pixels")

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	case MethodDominant:
		return "dominant"
	default:
		return "exact"
	}
}

// ParseMethod maps a flag value to a Method. Unknown names select MethodExact.
func ParseMethod(name string) Method {
	switch name {
	case "kmeans":
		return MethodKMeans
	case "dominant", "dominantcolor":
		return MethodDominant
	default:
		return MethodExact
	}
}

// Exact returns every distinct color of img in first-seen row-major order.
func Exact(img image.Image) []color.RGBA {
	var out []color.RGBA
	seen := map[color.RGBA]bool{}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := toRGBA(img.At(x, y))
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Extract returns a palette of at most k colors. MethodExact, or k <= 0,
// returns the exact palette.
func Extract(img image.Image, k int, method Method) []color.RGBA {
	if k <= 0 || method == MethodExact {
		return Exact(img)
	}
	exact := Exact(img)
	if len(exact) <= k {
		return exact
	}
	var cols []colorful.Color
	switch method {
	case MethodKMeans:
		cols = kmeansPalette(img, k)
	case MethodDominant:
		cols = dominantPalette(img, k)
	}
	if len(cols) == 0 {
		return exact[:k]
	}
	out := make([]color.RGBA, 0, len(cols))
	for _, c := range cols {
		r, g, b := c.Clamped().RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return dedupe(out)
}

func kmeansPalette(img image.Image, k int) []colorful.Color {
	b := img.Bounds()
	dataset := make(clusters.Observations, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}
	km := kmeans.New()
	cc, err := km.Partition(dataset, min(k, len(dataset)))
	if err != nil {
		return nil
	}
	// Most populated clusters first so index 0 is the dominant color.
	slices.SortStableFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})
	out := make([]colorful.Color, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		out = append(out, colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]})
	}
	return out
}

func dominantPalette(img image.Image, k int) []colorful.Color {
	out := make([]colorful.Color, 0, k)
	for _, c := range dominantcolor.FindWeight(img, k) {
		col, ok := colorful.MakeColor(c.RGBA)
		if !ok {
			continue
		}
		out = append(out, col)
	}
	return out
}

// Nearest returns the index of the palette entry closest to c in Lab space.
// Exact matches short-circuit. It returns -1 for an empty palette.
func Nearest(palette []color.RGBA, c color.RGBA) int {
	best := -1
	bestDist := math.Inf(1)
	want, _ := colorful.MakeColor(opaque(c))
	for i, p := range palette {
		if p == c {
			return i
		}
		have, _ := colorful.MakeColor(opaque(p))
		if d := want.DistanceLab(have); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// Index maps every pixel of img to its nearest palette entry and returns the
// indices in row-major order with the image dimensions.
func Index(img image.Image, palette []color.RGBA) ([]int, int, int, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || len(palette) == 0 {
		return nil, 0, 0, ErrEmptyImage
	}
	cache := map[color.RGBA]int{}
	out := make([]int, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := toRGBA(img.At(x, y))
			idx, ok := cache[c]
			if !ok {
				idx = Nearest(palette, c)
				cache[c] = idx
			}
			out = append(out, idx)
		}
	}
	return out, w, h, nil
}

// Pixels returns the pixels of img in row-major order, optionally snapped to
// palette. A nil palette keeps the exact colors.
func Pixels(img image.Image, palette []color.RGBA) ([]color.RGBA, int, int, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, 0, 0, ErrEmptyImage
	}
	if palette != nil {
		idx, _, _, err := Index(img, palette)
		if err != nil {
			return nil, 0, 0, err
		}
		out := make([]color.RGBA, len(idx))
		for i, v := range idx {
			out[i] = palette[v]
		}
		return out, w, h, nil
	}
	out := make([]color.RGBA, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, toRGBA(img.At(x, y)))
		}
	}
	return out, w, h, nil
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

func dedupe(in []color.RGBA) []color.RGBA {
	seen := map[color.RGBA]bool{}
	out := in[:0]
	for _, c := range in {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
