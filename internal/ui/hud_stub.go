//go:build !ebiten

package ui

import "github.com/Flixlef/game-of-life/pkg/core"

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
	StatusMessage() string
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(parameterProvider, int, []string) *HUD { return nil }

// Width returns zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(string) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
