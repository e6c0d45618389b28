package pong

import "image/color"

// Renderer is a drawing surface the game paints itself on once per frame
type Renderer interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
}

func drawRect(r Renderer, rect Rect) {
	r.FillRect(rect.Left(), rect.Top(), rect.Size.X, rect.Size.Y, ObjColor)
}
