package main

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/jtestard/rubberpong/pong"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	scoreFontSize   = 32
	captionFontSize = 16
	scoreMargin     = 48
)

var (
	scoreFont   font.Face
	captionFont font.Face
)

func initFonts() error {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	scoreFont = truetype.NewFace(tt, &truetype.Options{
		Size:    scoreFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	captionFont = truetype.NewFace(tt, &truetype.Options{
		Size:    captionFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return nil
}

// scoreLine formats both scores, left player first
func scoreLine(g *pong.Game) string {
	return fmt.Sprintf("%d - %d", g.Players[pong.Human].Score, g.Players[pong.AI].Score)
}

// caption returns the hint shown for a phase, if any
func caption(p pong.Phase) string {
	if p == pong.NotStarted {
		return "click to serve"
	}
	return ""
}

func drawScores(g *pong.Game, clr color.Color, screen *ebiten.Image) {
	s := scoreLine(g)
	w := font.MeasureString(scoreFont, s).Ceil()
	text.Draw(screen, s, scoreFont, (int(g.Width)-w)/2, scoreMargin, clr)
}

func drawCaption(p pong.Phase, clr color.Color, screen *ebiten.Image) {
	s := caption(p)
	if s == "" {
		return
	}
	sw, sh := screen.Size()
	w := font.MeasureString(captionFont, s).Ceil()
	text.Draw(screen, s, captionFont, (sw-w)/2, sh-scoreMargin, clr)
}
