//go:build !android && !js

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/chlobes/rps-game-client/internal/app"
	"github.com/chlobes/rps-game-client/internal/netcfg"
)

func main() {
	url := netcfg.ServerURL(netcfg.Location, netcfg.IP)
	log.Printf("Desktop main() starting, server %s", url)
	if err := ebiten.RunGame(app.New(url)); err != nil {
		log.Fatal(err)
	}
}
