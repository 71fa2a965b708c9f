// Package mobile is the ebitenmobile bind target.
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/chlobes/rps-game-client/internal/app"
	"github.com/chlobes/rps-game-client/internal/netcfg"
)

func init() {
	mobile.SetGame(app.New(netcfg.ServerURL(netcfg.Location, netcfg.IP)))
}

// Dummy gives the bound package an exported symbol.
func Dummy() {}
