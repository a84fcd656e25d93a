package render

import (
	"math"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/constant"
)

// Viewport maps arena space onto the terminal grid. The arena is stretched over every column
// and every row above the status line
type Viewport struct {
	Arena      component.Arena
	Cols, Rows int // arena area in cells
}

// NewViewport sizes the arena area for a terminal of the given dimensions.
// Both axes keep at least one cell
func NewViewport(arena component.Arena, screenWidth, screenHeight int) Viewport {
	return Viewport{
		Arena: arena,
		Cols:  max(screenWidth, 1),
		Rows:  max(screenHeight-constant.StatusRows, 1),
	}
}

// Col returns the column containing arena x, clamped to the grid
func (v Viewport) Col(x float64) int {
	return clampCell(int(math.Floor(x*float64(v.Cols)/v.Arena.Width)), v.Cols)
}

// Row returns the row containing arena y, clamped to the grid
func (v Viewport) Row(y float64) int {
	return clampCell(int(math.Floor(y*float64(v.Rows)/v.Arena.Height)), v.Rows)
}

// ArenaY returns the arena y at the vertical center of a terminal row.
// Rows below the arena map past its bottom edge; callers clamp
func (v Viewport) ArenaY(row int) float64 {
	return (float64(row) + 0.5) * v.Arena.Height / float64(v.Rows)
}

// ArenaX returns the arena x at the horizontal center of a column
func (v Viewport) ArenaX(col int) float64 {
	return (float64(col) + 0.5) * v.Arena.Width / float64(v.Cols)
}

// ColSpan returns the inclusive column range covered by [x0, x1). Never empty
func (v Viewport) ColSpan(x0, x1 float64) (int, int) {
	return span(x0, x1, v.Arena.Width, v.Cols)
}

// RowSpan returns the inclusive row range covered by [y0, y1). Never empty
func (v Viewport) RowSpan(y0, y1 float64) (int, int) {
	return span(y0, y1, v.Arena.Height, v.Rows)
}

func span(lo, hi, extent float64, cells int) (int, int) {
	start := clampCell(int(math.Floor(lo*float64(cells)/extent)), cells)
	end := clampCell(int(math.Ceil(hi*float64(cells)/extent))-1, cells)
	if end < start {
		end = start
	}
	return start, end
}

func clampCell(c, cells int) int {
	if c < 0 {
		return 0
	}
	if c >= cells {
		return cells - 1
	}
	return c
}
