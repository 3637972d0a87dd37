package ui

import (
	"fmt"
	"strings"

	"github.com/Flixlef/game-of-life/pkg/core"
)

// PanelInput is everything the side panel shows besides the parameters.
type PanelInput struct {
	Title    string
	Message  string
	Seek     string
	Params   core.ParameterSnapshot
	Controls []string
}

// PanelLines lays out the panel text, wrapping long lines at width characters.
func PanelLines(in PanelInput, width int) []string {
	var lines []string
	if in.Title != "" {
		lines = append(lines, in.Title, "")
	}
	for _, group := range in.Params.Groups {
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, WrapText(fmt.Sprintf("  %s: %s", p.Label, p.Value), width)...)
		}
		lines = append(lines, "")
	}
	if in.Message != "" {
		lines = append(lines, WrapText(in.Message, width)...)
		lines = append(lines, "")
	}
	lines = append(lines, "Show generation: "+in.Seek+"_", "")
	for _, c := range in.Controls {
		lines = append(lines, WrapText(c, width)...)
	}
	return lines
}

// WrapText breaks s on spaces so no line exceeds width characters. Words longer
// than width are split.
func WrapText(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}
	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, word := range strings.Fields(s) {
		for len(word) > width {
			flush()
			out = append(out, word[:width])
			word = word[width:]
		}
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	flush()
	if len(out) == 0 {
		return []string{""}
	}
	return out
}
