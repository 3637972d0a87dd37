package ui

import (
	"slices"
	"strings"
	"testing"

	"github.com/Flixlef/game-of-life/pkg/core"
)

func TestWrapText(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"Dead board.", 0, []string{"Dead board."}},
		{"one two three four", 9, []string{"one two", "three", "four"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}
	for _, c := range cases {
		if got := WrapText(c.in, c.width); !slices.Equal(got, c.want) {
			t.Fatalf("WrapText(%q, %d)=%q, expected %q", c.in, c.width, got, c.want)
		}
	}
}

func TestPanelLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Game",
		Params: []core.Parameter{core.IntParam("generation", "Generation", 12)},
	}}}
	lines := PanelLines(PanelInput{
		Title:    "Game of Life",
		Message:  "Generation loaded.",
		Seek:     "4",
		Params:   snap,
		Controls: []string{"space  go / pause"},
	}, 40)

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Game of Life", "  Generation: 12", "Generation loaded.", "Show generation: 4_", "space  go / pause"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("panel missing %q:\n%s", want, joined)
		}
	}
	for _, l := range lines {
		if len(l) > 40 {
			t.Fatalf("line exceeds width: %q", l)
		}
	}
}
