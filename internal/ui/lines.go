package ui

import (
	"fmt"

	"wfcgen/internal/core"
)

// Line is one row of the HUD panel.
type Line struct {
	Text   string
	Header bool
}

// Lines lays out a snapshot as a header per group followed by one line per
// parameter with its value right-aligned to width columns.
func Lines(snap core.ParameterSnapshot, width int) []Line {
	var out []Line
	for gi, g := range snap.Groups {
		if gi > 0 {
			out = append(out, Line{})
		}
		out = append(out, Line{Text: g.Name, Header: true})
		for _, p := range g.Params {
			out = append(out, Line{Text: entry(p.Label, p.Value, width)})
		}
	}
	return out
}

func entry(label, value string, width int) string {
	pad := width - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	return fmt.Sprintf("%s%*s%s", label, pad, "", value)
}
