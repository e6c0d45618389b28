// pong-tty plays the game in a terminal, steering the left paddle with the mouse
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jtestard/rubberpong/pong"
)

const frameInterval = time.Second / 60

type session struct {
	screen    tcell.Screen
	game      *pong.Game
	renderer  *terminalRenderer
	spectator *pong.Spectator
	clock     pong.FrameClock
	start     time.Time
}

func newSession(screen tcell.Screen, game *pong.Game) *session {
	return &session{
		screen:   screen,
		game:     game,
		renderer: newTerminalRenderer(screen, game.Width, game.Height),
		start:    time.Now(),
	}
}

// handleEvent applies one input event and reports whether the player quit
func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q'
		}
	case *tcell.EventMouse:
		_, row := ev.Position()
		s.game.PointerMove(s.renderer.fieldY(row))
		if ev.Buttons()&tcell.Button1 != 0 && s.game.Start() {
			log.Printf("serve: ball velocity (%.1f, %.1f)", s.game.Ball.Vel.X, s.game.Ball.Vel.Y)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

// tick runs one frame for a timestamp taken at now
func (s *session) tick(now time.Time) {
	millis := float64(now.Sub(s.start)) / float64(time.Millisecond)
	if dt, ok := s.clock.Tick(millis); ok {
		s.game.Frame(dt, s.renderer)
		if s.spectator != nil {
			s.spectator.Publish(s.game.Snapshot())
		}
	} else {
		s.game.Draw(s.renderer)
	}

	s.renderer.drawText(0, scoreLine(s.game), pong.ObjColor, pong.BgColor)
	if !s.game.State.Running() {
		_, rows := s.screen.Size()
		s.renderer.drawText(rows-1, "click to serve, q to quit", pong.ObjColor, pong.BgColor)
	}
	s.screen.Show()
}

func (s *session) run() {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			if s.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

func scoreLine(g *pong.Game) string {
	return fmt.Sprintf(" %d - %d ", g.Players[pong.Human].Score, g.Players[pong.AI].Score)
}

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := pong.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	s := newSession(screen, cfg.NewGame())
	s.game.OnScore = func(player int) {
		log.Printf("point to player %d (%s)", player, scoreLine(s.game))
	}
	if cfg.SpectatorAddr != "" {
		s.spectator = pong.NewSpectator()
		go func() {
			log.Printf("starting spectator feed on %s", cfg.SpectatorAddr)
			if err := s.spectator.ListenAndServe(cfg.SpectatorAddr); err != nil {
				log.Printf("spectator feed stopped: %v", err)
			}
		}()
	}

	log.Printf("starting the game (%gx%g, ai %s)", cfg.Width, cfg.Height, cfg.AIPolicy)
	s.run()

	if s.spectator != nil {
		s.spectator.Close()
	}
	screen.Fini()
}
