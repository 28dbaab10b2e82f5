package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Sample is a small built-in input image the generator can learn from.
type Sample struct {
	Name   string
	Size   Size
	Pixels []color.RGBA

	// Suggested generation parameters as flag-style key/value pairs.
	Defaults map[string]string
}

// Factory constructs a Sample using an optional configuration map.
type Factory func(cfg map[string]string) Sample

var samples = map[string]Factory{}

// Register adds a sample factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	samples[name] = f
}

// Samples exposes the registry of available sample factories.
func Samples() map[string]Factory {
	return samples
}

// SampleNames returns the registered sample names in sorted order.
func SampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
