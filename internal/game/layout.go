package game

import (
	"fmt"

	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/protocol"
	"github.com/chlobes/rps-game-client/internal/render"
	"github.com/chlobes/rps-game-client/internal/widget"
)

var textSize = geom.V(0.06, 0.06)

const (
	storageCols = 14
	storageRows = 7
	equipCols   = 10
	equipRows   = 10
)

var (
	storageScale = geom.V(0.2, 0.2)
	equipScale   = geom.V(0.4, 0.4)
)

func rowX(n, i int) float64 {
	return (-float64(n)/2 - 0.1 + float64(i)*widget.Gap) * widget.UnitSize.X
}

func teamUnitPos(n, i int) geom.Vec2 {
	return geom.V(rowX(n, i), -0.3-widget.UnitSize.Y)
}

func opponentUnitPos(n, i int) geom.Vec2 {
	return geom.V(rowX(n, i), 0.3)
}

func storageUnitSize() geom.Vec2 { return widget.UnitSize.Mul(storageScale) }

func unitStorageBoxSize() geom.Vec2 {
	return storageUnitSize().Mul(geom.V(storageCols, storageRows)).Scale(widget.Gap)
}

func unitStorageBoxPos(v geom.View) geom.Vec2 {
	return geom.V(v.Left()+textSize.X, v.Top()-textSize.Y-unitStorageBoxSize().Y)
}

func storageUnitPos(v geom.View, i int) geom.Vec2 {
	size := storageUnitSize()
	cell := geom.V(float64(i%storageCols), float64(storageRows-1-i/storageCols))
	return unitStorageBoxPos(v).Add(cell.Mul(size).Scale(widget.Gap)).Add(size.Scale(0.05))
}

// equipCell is the size of one cell of an equipment grid.
func equipCell() geom.Vec2 { return geom.V(widget.EquipSize, widget.EquipSize).Mul(equipScale) }

func equipBoxSize() geom.Vec2 { return equipCell().Scale(10.1) }

func equipPos(i int) geom.Vec2 {
	cell := geom.V(float64(i%equipCols), float64(equipRows-1-i/equipCols))
	return cell.AddScalar(0.05).Mul(equipCell())
}

// safeEquipBoxPos is the top-right grid of equipment stored in the safe zone.
func safeEquipBoxPos(v geom.View) geom.Vec2 {
	return geom.V(v.Right()-0.06, v.Top()-0.06).Sub(equipBoxSize())
}

// equipBoxPos is the bottom-right grid of carried equipment.
func equipBoxPos(v geom.View) geom.Vec2 {
	return geom.V(v.Right()-0.06-equipBoxSize().X, v.Bottom()+0.06)
}

// detailPos is where the selected detail panel is drawn.
func detailPos(v geom.View) geom.Vec2 { return geom.V(v.Left(), v.Bottom()) }

type controls struct {
	fight, doNot   widget.Button
	up, stay, down widget.Button
	purchase       widget.Button
	healAll        widget.Button
	repair, juice  widget.Button
	pause, rewind  widget.Button
	skip           widget.Button
}

func newControls() controls {
	b := widget.ButtonSize
	big := b.Mul(geom.V(2.5, 1.5))
	small := geom.V(b.Y, b.Y)
	square := small.Scale(1.5)
	pause := small.Scale(-0.5)
	// repair and juice sit on top of the carried equipment grid, measured
	// from the right edge
	y := -1 + 0.06 + equipBoxSize().Y + 0.02
	return controls{
		fight: widget.Button{Name: "fight", Pos: geom.V(-0.5, 0).Sub(big.Scale(0.5)), Size: big, Fill: render.Color(render.Red)},
		doNot: widget.Button{Name: "do not", Pos: geom.V(0.5, 0).Sub(big.Scale(0.5)), Size: big, Fill: render.Color(render.Green)},
		up:    widget.Button{Name: "up", Pos: geom.V(-b.X*1.25, 0.025+b.Y*0.75), Size: big, Fill: render.Color(render.Yellow)},
		stay:  widget.Button{Name: "stay", Pos: geom.V(-b.X*1.25, -b.Y*0.75), Size: big, Fill: render.Color(render.DarkGrey)},
		down:  widget.Button{Name: "down", Pos: geom.V(-b.X*1.25, -0.025-b.Y*2.25), Size: big, Fill: render.Color(render.Purple)},
		purchase: widget.Button{
			Name: fmt.Sprintf("purchase unit: %.2f", protocol.UnitCost),
			Pos:  b.Mul(geom.V(-1.25, -0.5)).Add(geom.V(0, -1+0.07)),
			Size: b.Mul(geom.V(2.5, 1)),
			Fill: render.Color(render.Cyan),
		},
		healAll: widget.Button{Name: "heal all", Pos: geom.V(0, -0.02).Sub(b.Scale(0.75)), Size: b.Scale(1.5), Fill: render.Color(render.Green)},
		repair: widget.Button{
			Pos:    geom.V(-0.06-2*square.X-0.02, y),
			Size:   square,
			Fill:   render.Color(render.Cyan),
			Anchor: widget.AnchorRight,
		},
		juice: widget.Button{
			Name:   "juice",
			Pos:    geom.V(-0.06-square.X, y),
			Size:   square,
			Fill:   render.Color(render.Red),
			Anchor: widget.AnchorRight,
		},
		pause:  widget.Button{Name: "pause", Pos: pause, Size: small, Fill: render.Color(render.Green)},
		rewind: widget.Button{Name: "rewind", Pos: pause.Sub(geom.V(b.Y*widget.Gap, 0)), Size: small, Fill: render.Color(render.Red)},
		skip:   widget.Button{Name: "skip", Pos: pause.Add(geom.V(b.Y*widget.Gap, 0)), Size: small, Fill: render.Color(render.Blue)},
	}
}

// repairButton reflects the typed text while the target is being edited.
func (g *Game) repairButton() widget.Button {
	b := g.ctl.repair
	if g.repairTyping {
		b.Name = g.repairText
		c := render.Cyan
		b.Fill = render.Color([4]float32{c[0] * 1.1, c[1] * 1.1, c[2] * 1.1, c[3]})
	} else {
		b.Name = fmt.Sprintf("%.3f", g.repairTarget)
	}
	return b
}

func (g *Game) pauseButton() widget.Button {
	b := g.ctl.pause
	if g.replay != nil && g.replay.Paused {
		b.Fill = render.Color(render.DarkGreen)
	}
	return b
}
