package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/jtestard/rubberpong/pong"
)

// errQuit stops the run loop without being reported as a failure
var errQuit = errors.New("quit")

// Game adapts a pong.Game to ebiten: ebiten owns the frame scheduling and
// input delivery, the pong package owns the rules.
type Game struct {
	pong      *pong.Game
	clock     pong.FrameClock
	start     time.Time
	cursorY   int
	cursorSet bool
	width     int
	height    int
	spectator *pong.Spectator
}

// NewGame creates an ebiten game from the given settings
func NewGame(cfg pong.Config) *Game {
	g := &Game{
		pong:   cfg.NewGame(),
		start:  time.Now(),
		width:  int(cfg.Width),
		height: int(cfg.Height),
	}
	g.pong.OnScore = func(player int) {
		log.Printf("point to player %d (%s)", player, scoreLine(g.pong))
	}
	return g
}

// Update handles input and advances the game by the time since the last call
func (g *Game) Update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	_, y := ebiten.CursorPosition()
	g.pointer(y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.pong.Start() {
		log.Printf("serve: ball velocity (%.1f, %.1f)", g.pong.Ball.Vel.X, g.pong.Ball.Vel.Y)
	}

	millis := float64(time.Since(g.start)) / float64(time.Millisecond)
	if dt, ok := g.clock.Tick(millis); ok {
		g.pong.Update(dt)
		if g.spectator != nil {
			g.spectator.Publish(g.pong.Snapshot())
		}
	}
	return nil
}

// pointer forwards cursor movement to the human paddle. The first reading
// only records where the cursor is; the paddle waits for a real move.
func (g *Game) pointer(y int) {
	if !g.cursorSet {
		g.cursorY, g.cursorSet = y, true
		return
	}
	if y != g.cursorY {
		g.cursorY = y
		g.pong.PointerMove(float64(y))
	}
}

// Draw updates the game screen elements drawn
func (g *Game) Draw(screen *ebiten.Image) {
	g.pong.Draw(screenRenderer{screen})
	drawScores(g.pong, pong.ObjColor, screen)
	drawCaption(g.pong.State.Phase, pong.ObjColor, screen)
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	flag.Parse()

	cfg, err := pong.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := initFonts(); err != nil {
		log.Fatalf("load fonts: %v", err)
	}

	g := NewGame(cfg)
	if cfg.SpectatorAddr != "" {
		g.spectator = pong.NewSpectator()
		defer g.spectator.Close()
		go func() {
			log.Printf("starting spectator feed on %s", cfg.SpectatorAddr)
			if err := g.spectator.ListenAndServe(cfg.SpectatorAddr); err != nil {
				log.Printf("spectator feed stopped: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetRunnableOnUnfocused(true)

	log.Printf("starting the game (%gx%g, ai %s)", cfg.Width, cfg.Height, cfg.AIPolicy)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		log.Fatalf("run: %v", err)
	}
}
