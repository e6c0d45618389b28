package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// terminalRenderer draws the field scaled down onto the terminal grid.
// A rectangle covers every cell it touches, so nothing shrinks to nothing.
type terminalRenderer struct {
	screen tcell.Screen
	fieldW float64
	fieldH float64
}

func newTerminalRenderer(screen tcell.Screen, fieldW, fieldH float64) *terminalRenderer {
	return &terminalRenderer{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

func (r *terminalRenderer) Clear(c color.Color) {
	r.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(c)))
}

func (r *terminalRenderer) FillRect(x, y, w, h float64, c color.Color) {
	cols, rows := r.screen.Size()
	sx, sy := float64(cols)/r.fieldW, float64(rows)/r.fieldH

	x0, x1 := clamp(int(math.Floor(x*sx)), cols), clamp(int(math.Ceil((x+w)*sx)), cols)
	y0, y1 := clamp(int(math.Floor(y*sy)), rows), clamp(int(math.Ceil((y+h)*sy)), rows)

	style := tcell.StyleDefault.Background(toTcell(c))
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// fieldY maps a terminal row to the field height at the row's center
func (r *terminalRenderer) fieldY(row int) float64 {
	_, rows := r.screen.Size()
	return (float64(row) + .5) * r.fieldH / float64(rows)
}

// drawText writes s centered on row, over whatever is already there
func (r *terminalRenderer) drawText(row int, s string, fg, bg color.Color) {
	cols, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
	runes := []rune(s)
	x := (cols - len(runes)) / 2
	for i, ch := range runes {
		r.screen.SetContent(x+i, row, ch, nil, style)
	}
}

func toTcell(c color.Color) tcell.Color {
	cr, cg, cb, _ := c.RGBA()
	return tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8))
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
