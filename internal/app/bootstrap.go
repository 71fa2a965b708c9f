//go:build !android

package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/chlobes/rps-game-client/internal/protocol"
)

func init() {
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle(protocol.GameName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(640, 360, -1, -1)
}
