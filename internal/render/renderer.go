//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads binary cell data into a one-pixel-per-cell image and
// draws it scaled, with grid lines on top.
type GridPainter struct {
	n   int
	img *ebiten.Image
	buf []byte

	On   color.Color
	Off  color.Color
	Line color.Color
}

// NewGridPainter allocates a painter for an n×n grid.
func NewGridPainter(n int) *GridPainter {
	return &GridPainter{
		n:    n,
		img:  ebiten.NewImage(n, n),
		buf:  make([]byte, 4*n*n),
		On:   color.RGBA{R: 240, G: 240, B: 240, A: 255},
		Off:  color.Black,
		Line: color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

// Draw paints cells onto dst with the grid's top-left corner at (ox, oy).
func (gp *GridPainter) Draw(dst *ebiten.Image, cells []uint8, cell, ox, oy int) {
	if len(cells) != gp.n*gp.n || cell <= 0 {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.On, gp.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cell), float64(cell))
	op.GeoM.Translate(float64(ox), float64(oy))
	dst.DrawImage(gp.img, op)

	if cell < 6 {
		return
	}
	xs := gridLines(gp.n, cell, ox)
	ys := gridLines(gp.n, cell, oy)
	top, bottom := ys[0], ys[len(ys)-1]
	left, right := xs[0], xs[len(xs)-1]
	for _, x := range xs {
		vector.StrokeLine(dst, x, top, x, bottom, 1, gp.Line, false)
	}
	for _, y := range ys {
		vector.StrokeLine(dst, left, y, right, y, 1, gp.Line, false)
	}
}
