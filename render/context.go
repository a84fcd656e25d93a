package render

import "github.com/gdamore/tcell/v2"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Screen   tcell.Screen
	Viewport Viewport

	IsPaused bool
	IsMuted  bool
}

// FillRect paints every cell covered by the arena rectangle [x0,x1) x [y0,y1)
func (ctx RenderContext) FillRect(x0, y0, x1, y1 float64, ch rune, style tcell.Style) {
	c0, c1 := ctx.Viewport.ColSpan(x0, x1)
	r0, r1 := ctx.Viewport.RowSpan(y0, y1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			ctx.Screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// DrawText writes a string starting at a cell, clipped at the right edge of the screen
func (ctx RenderContext) DrawText(col, row int, text string, style tcell.Style) {
	width, _ := ctx.Screen.Size()
	for _, r := range text {
		if col >= width {
			return
		}
		ctx.Screen.SetContent(col, row, r, nil, style)
		col++
	}
}
