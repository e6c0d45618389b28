package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
)

// screenRenderer paints on an ebiten image
type screenRenderer struct {
	img *ebiten.Image
}

func (r screenRenderer) Clear(c color.Color) {
	_ = r.img.Fill(c)
}

func (r screenRenderer) FillRect(x, y, w, h float64, c color.Color) {
	ebitenutil.DrawRect(r.img, x, y, w, h, c)
}
