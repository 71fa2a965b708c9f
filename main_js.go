//go:build js

package main

import (
	"log"
	"syscall/js"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/chlobes/rps-game-client/internal/app"
	"github.com/chlobes/rps-game-client/internal/netcfg"
)

func main() {
	href := js.Global().Get("location").Get("href").String()
	url := netcfg.ServerURL(href, netcfg.IP)
	log.Printf("Web main() starting, server %s", url)
	if err := ebiten.RunGame(app.New(url)); err != nil {
		log.Fatal(err)
	}
}
