package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/chlobes/rps-game-client/internal/netcfg"
)

func (a *App) pollPointer() {
	g := a.game

	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	if a.activeTouchID != -1 || len(a.touchIDs) > 0 {
		a.pollTouch()
		return
	}

	p := a.world(ebiten.CursorPosition())
	g.PointerMove(p)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.PointerDown(p)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.PointerUp(p)
	}
}

// pollTouch follows the first finger down until it lifts.
func (a *App) pollTouch() {
	g := a.game
	if a.activeTouchID == -1 {
		tid := a.touchIDs[0]
		a.activeTouchID = tid
		a.lastTouch = a.world(ebiten.TouchPosition(tid))
		g.PointerDown(a.lastTouch)
		return
	}
	if inpututil.IsTouchJustReleased(a.activeTouchID) {
		g.PointerUp(a.lastTouch)
		a.activeTouchID = -1
		return
	}
	a.lastTouch = a.world(ebiten.TouchPosition(a.activeTouchID))
	g.PointerMove(a.lastTouch)
}

func (a *App) pollKeys() {
	g := a.game
	if !g.LoggedIn() {
		a.pollLogin()
		return
	}

	if g.RepairTyping() {
		a.chars = ebiten.AppendInputChars(a.chars[:0])
		if len(a.chars) > 0 {
			g.TypeText(string(a.chars))
		}
		if repeating(ebiten.KeyBackspace) {
			g.Backspace()
		}
		if (ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)) &&
			inpututil.IsKeyJustPressed(ebiten.KeyV) {
			if s, err := readClipboard(); err == nil {
				g.Paste(s)
			} else {
				log.Printf("clipboard: %v", err)
			}
		}
		return
	}

	if g.Replay() != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.TogglePause()
		}
		if repeating(ebiten.KeyArrowLeft) {
			g.StepReplay(-1)
		}
		if repeating(ebiten.KeyArrowRight) {
			g.StepReplay(1)
		}
	}
}

func (a *App) pollLogin() {
	create := inpututil.IsKeyJustPressed(ebiten.KeyC)
	if !create && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	if !a.conn.Connected() {
		return
	}
	if err := a.game.Login(create, netcfg.Name, netcfg.Password); err != nil {
		log.Printf("AUTH: %v", err)
	}
}

// repeating reports a fresh press or a held key's auto-repeat.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 30 && d%4 == 0)
}
