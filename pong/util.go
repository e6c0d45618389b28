package pong

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Center returns the center position of a field of the given size
func Center(width, height float64) Vector {
	return Vector{
		X: width / 2,
		Y: height / 2,
	}
}

var (
	BgColor  color.Color = colornames.Black
	ObjColor color.Color = colornames.White
)
