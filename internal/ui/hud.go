//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the status panel and the key help overlay in the top-left corner.
type HUD struct {
	showHelp bool
}

// NewHUD constructs a HUD with the help overlay visible.
func NewHUD() *HUD {
	return &HUD{showHelp: true}
}

// Update toggles the help overlay.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showHelp = !h.showHelp
	}
}

// Draw paints the status panel and, when enabled, the help overlay below it.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	lines := s.Lines()
	if h.showHelp {
		lines = append(append(lines, ""), helpLines...)
	}
	width := 0
	for _, l := range lines {
		width = max(width, text.BoundString(basicfont.Face7x13, l).Dx())
	}
	height := len(lines)*lineHeight + 2*panelPadding
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*panelPadding), float32(height), color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, l := range lines {
		y := panelPadding + (i+1)*lineHeight - 4
		text.Draw(screen, l, basicfont.Face7x13, panelPadding, y, fg)
	}
}

const (
	panelPadding = 8
	lineHeight   = 16
)
