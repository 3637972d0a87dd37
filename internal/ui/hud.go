//go:build ebiten

package ui

import (
	"image/color"

	"github.com/Flixlef/game-of-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
	glyphWidth   = 7
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
	StatusMessage() string
}

// HUD renders the status panel to the right of the board.
type HUD struct {
	src        parameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
	controls   []string
}

// NewHUD constructs a HUD for the provided game and panel width.
func NewHUD(src parameterProvider, width int, controls []string) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width, controls: controls}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the panel text. seek is the generation number being typed.
func (h *HUD) Update(seek string) {
	if h == nil || h.src == nil {
		return
	}
	chars := (h.width - 2*panelPadding) / glyphWidth
	h.lines = PanelLines(PanelInput{
		Title:    "Game of Life",
		Message:  h.src.StatusMessage(),
		Seek:     seek,
		Params:   h.src.Parameters(),
		Controls: h.controls,
	}, chars)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + 12
	for i, line := range h.lines {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			fg = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, fg)
		y += lineHeight
		if y > height {
			break
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
