// Package app adapts the game controller to ebiten: it owns the window,
// polls input, drains the network each tick and submits the frame batch.
package app

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/chlobes/rps-game-client/internal/game"
	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/netcfg"
)

var background = color.NRGBA{0x10, 0x10, 0x14, 0xff}

// App implements ebiten.Game.
type App struct {
	game     *game.Game
	conn     *game.Conn
	renderer *Renderer

	w, h int

	// touch tracking; -1 when no finger is down
	activeTouchID ebiten.TouchID
	lastTouch     geom.Vec2

	chars    []rune
	touchIDs []ebiten.TouchID
}

// New connects to the server at url in the background.
func New(url string) *App {
	conn := game.NewConn(url)
	return &App{
		game:          game.New(conn),
		conn:          conn,
		renderer:      NewRenderer(),
		w:             1280,
		h:             720,
		activeTouchID: -1,
	}
}

func (a *App) Update() error {
	if a.conn.Maintain() {
		a.game.ResetLogin()
		if netcfg.Name != "" && netcfg.Password != "" {
			if err := a.game.Login(netcfg.Create, netcfg.Name, netcfg.Password); err != nil {
				log.Printf("AUTH: %v", err)
			}
		}
	}
	a.conn.Drain(a.game.HandlePacket)
	a.game.SetStatus(a.conn.Status())

	a.pollPointer()
	a.pollKeys()
	a.game.Tick()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	a.renderer.Draw(screen, a.game.Frame(), a.game.View())
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.w, a.h = outsideWidth, outsideHeight
	a.game.SetView(geom.NewView(a.w, a.h))
	return a.w, a.h
}

func (a *App) world(x, y int) geom.Vec2 {
	return a.game.View().ScreenToWorld(x, y, a.w, a.h)
}
