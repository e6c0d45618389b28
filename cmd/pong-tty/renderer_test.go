package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/jtestard/rubberpong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = tcell.NewRGBColor(0, 0, 0)
	white = tcell.NewRGBColor(255, 255, 255)
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestTerminalRendererClear(t *testing.T) {
	screen := newTestScreen(t)
	r := newTerminalRenderer(screen, 800, 600)

	r.Clear(pong.BgColor)

	for _, p := range [][2]int{{0, 0}, {79, 23}, {40, 12}} {
		assert.Equal(t, black, background(screen, p[0], p[1]), "cell %v", p)
	}
}

func TestTerminalRendererFillRect(t *testing.T) {
	screen := newTestScreen(t)
	r := newTerminalRenderer(screen, 800, 600)
	r.Clear(pong.BgColor)

	// 800x600 onto 80x24: 10 units per column, 25 per row
	r.FillRect(395, 295, 10, 10, pong.ObjColor)

	assert.Equal(t, white, background(screen, 39, 11))
	assert.Equal(t, white, background(screen, 40, 12))
	assert.Equal(t, black, background(screen, 38, 11))
	assert.Equal(t, black, background(screen, 41, 12))
	assert.Equal(t, black, background(screen, 39, 10))
	assert.Equal(t, black, background(screen, 39, 13))
}

func TestTerminalRendererClipsOffscreen(t *testing.T) {
	screen := newTestScreen(t)
	r := newTerminalRenderer(screen, 800, 600)
	r.Clear(pong.BgColor)

	assert.NotPanics(t, func() {
		r.FillRect(30, -80, 20, 100, pong.ObjColor)
		r.FillRect(780, 590, 40, 40, pong.ObjColor)
	})
	assert.Equal(t, white, background(screen, 3, 0))
	assert.Equal(t, black, background(screen, 3, 1))
	assert.Equal(t, white, background(screen, 79, 23))
}

func TestTerminalRendererFieldY(t *testing.T) {
	screen := newTestScreen(t)
	r := newTerminalRenderer(screen, 800, 600)

	assert.Equal(t, 12.5, r.fieldY(0))
	assert.Equal(t, 312.5, r.fieldY(12))
	assert.Equal(t, 587.5, r.fieldY(23))
}

func TestTerminalRendererDrawText(t *testing.T) {
	screen := newTestScreen(t)
	r := newTerminalRenderer(screen, 800, 600)

	r.drawText(0, "0 - 0", pong.ObjColor, pong.BgColor)

	var row []rune
	for x := 37; x < 42; x++ {
		ch, _, _, _ := screen.GetContent(x, 0)
		row = append(row, ch)
	}
	assert.Equal(t, "0 - 0", string(row))
}
