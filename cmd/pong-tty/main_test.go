package main

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jtestard/rubberpong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func newTestSession(t *testing.T) *session {
	t.Helper()
	g := pong.NewGame(800, 600, pong.DefaultGameState(), fixedRandom(.9))
	return newSession(newTestScreen(t), g)
}

func TestHandleEventMouseMove(t *testing.T) {
	s := newTestSession(t)

	quit := s.handleEvent(tcell.NewEventMouse(10, 12, tcell.ButtonNone, tcell.ModNone))

	assert.False(t, quit)
	assert.Equal(t, 312.5, s.game.Players[pong.Human].Pos.Y)
	assert.False(t, s.game.State.Running(), "moving does not serve")
}

func TestHandleEventClickServes(t *testing.T) {
	s := newTestSession(t)

	s.handleEvent(tcell.NewEventMouse(10, 0, tcell.Button1, tcell.ModNone))

	require.True(t, s.game.State.Running())
	assert.Equal(t, 12.5, s.game.Players[pong.Human].Pos.Y)
	assert.Equal(t, pong.Vector{X: 400, Y: 0}, s.game.Ball.Vel)
}

func TestHandleEventQuit(t *testing.T) {
	s := newTestSession(t)

	assert.True(t, s.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, s.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, s.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, s.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestTickFirstFrameOnlyDraws(t *testing.T) {
	s := newTestSession(t)
	s.game.Start()

	s.tick(s.start)

	assert.Equal(t, pong.Vector{X: 400, Y: 300}, s.game.Ball.Pos)
	assert.Equal(t, white, background(s.screen, 40, 12), "ball should be drawn")
}

func TestTickAdvances(t *testing.T) {
	s := newTestSession(t)
	s.game.Start()

	s.tick(s.start)
	s.tick(s.start.Add(100 * time.Millisecond))

	assert.InDelta(t, 440, s.game.Ball.Pos.X, 1e-6)
}

func TestTickPublishes(t *testing.T) {
	s := newTestSession(t)
	s.spectator = pong.NewSpectator()
	srv := httptest.NewServer(s.spectator.Handler())
	defer srv.Close()
	defer s.spectator.Close()

	ws, err := websocket.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), "", srv.URL)
	require.NoError(t, err)
	defer ws.Close()
	require.Eventually(t, func() bool { return s.spectator.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	s.game.Start()
	s.tick(s.start)
	s.tick(s.start.Add(100 * time.Millisecond))

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got pong.Snapshot
	require.NoError(t, websocket.JSON.Receive(ws, &got))
	assert.Equal(t, pong.Running, got.Phase)
	assert.InDelta(t, 440, got.Ball.Position.X, 1e-6, "viewer should see the advanced frame")
}

func TestScoreLine(t *testing.T) {
	g := pong.NewGame(800, 600, pong.DefaultGameState(), fixedRandom(.5))
	g.Players[pong.AI].Score = 4

	assert.Equal(t, " 0 - 4 ", scoreLine(g))
}
