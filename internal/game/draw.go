package game

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/netcfg"
	"github.com/chlobes/rps-game-client/internal/protocol"
	"github.com/chlobes/rps-game-client/internal/render"
	"github.com/chlobes/rps-game-client/internal/types"
	"github.com/chlobes/rps-game-client/internal/widget"
)

// SetStatus sets the connection line shown on the login screen.
func (g *Game) SetStatus(s string) { g.status = s }

func money(v float64) string { return humanize.FormatFloat("#,###.##", v) }

// Frame rebuilds the scene into the game's batch. The batch is reused, so
// the result is only valid until the next call.
func (g *Game) Frame() *render.Batch {
	b := &g.batch
	b.Reset()
	if !g.loggedIn {
		g.drawLogin(&b.Overlay)
		return b
	}
	f := &widget.Frame{Batch: b, Mouse: g.mouse, DragFrom: g.dragFrom}
	if g.replay != nil {
		g.drawReplay(f)
	} else {
		g.drawState(f)
	}
	g.messages.draw(&b.Overlay, g.view)
	g.drawHeader(&b.Overlay)
	if s := g.selected; s != nil {
		s.Detail.Draw(f, detailPos(g.view), geom.One, g.ctx(s.Addr != nil))
	}
	g.drawEquipmentBox(f, g.equipment, equipBoxPos(g.view))
	return b
}

func (g *Game) drawLogin(l *render.List) {
	name := g.loginName
	if name == "" {
		name = netcfg.Name
	}
	lines := []string{
		protocol.GameName,
		"name: " + name,
		g.loginResult,
		g.status,
		"enter: log in   c: create account",
	}
	y := 0.3
	for _, s := range lines {
		if s != "" {
			centerText(l, y, textSize, s)
		}
		y -= textSize.Y * 2
	}
}

func centerText(l *render.List, y float64, char geom.Vec2, s string) {
	n := float64(len([]rune(s)))
	l.Text(geom.V(-n*char.X/2, y), 20, char, s, nil)
}

// goldPos is the top-left corner label; juice sits right-aligned under the
// safe zone equipment grid.
func goldPos(v geom.View) geom.Vec2 {
	return geom.V(v.Left(), v.Top()).Add(geom.V(textSize.X, -textSize.Y).Scale(widget.Gap))
}

func juicePos(v geom.View, label string) geom.Vec2 {
	n := float64(len([]rune(label)))
	return geom.V(v.Right()-(n+widget.Gap)*textSize.X, safeEquipBoxPos(v).Y-textSize.Y)
}

func (g *Game) drawHeader(l *render.List) {
	l.Text(goldPos(g.view), 20, textSize, "gold: "+money(g.gold), nil)
	if _, ok := g.safeZone(); ok {
		s := "knife juice: " + money(g.juice)
		l.Text(juicePos(g.view, s), 20, textSize, s, nil)
	}
}

var depthSize = geom.V(0.05, 0.05)

// drawDepth labels the bottom centre; depth 0 is the surface and gets no label.
func (g *Game) drawDepth(l *render.List) {
	if g.depth <= 0 {
		return
	}
	s := fmt.Sprintf("depth: %d", g.depth)
	n := float64(len([]rune(s)))
	l.Text(geom.V(-n*depthSize.X/2, g.view.Bottom()), 20, depthSize, s, nil)
}

func (g *Game) drawState(f *widget.Frame) {
	ov := &f.Batch.Overlay
	switch s := g.state.(type) {
	case SafeZone:
		g.drawEquipmentBox(f, s.EquipmentStorage, safeEquipBoxPos(g.view))
		g.drawTeam(f, g.team, true)
		g.ctl.purchase.Draw(f, geom.Vec2{}, geom.One, g.ctx(false))
		// the repair button is dragged onto the item to repair
		g.repairButton().Draw(f, geom.Vec2{}, geom.One, g.ctx(true))
		g.ctl.juice.Draw(f, geom.Vec2{}, geom.One, g.ctx(false))
		if g.anyHurt() {
			g.ctl.healAll.Draw(f, geom.Vec2{}, geom.One, g.ctx(false))
		}
		for i, mo := range g.moveOptions {
			widget.MoveOption{MoveOption: mo}.Draw(f, widget.MoveOptionPos(len(g.moveOptions), i), geom.One, g.ctx(false))
		}
		g.drawUnitStorage(f, s.UnitStorage)
	case Looting:
		g.drawDepth(ov)
		g.drawTeam(f, g.team, false)
		for _, b := range []widget.Button{g.ctl.up, g.ctl.stay, g.ctl.down} {
			b.Draw(f, geom.Vec2{}, geom.One, g.ctx(false))
		}
	case InQueue:
		g.drawDepth(ov)
		g.drawTeam(f, g.team, false)
		centerText(ov, 0, textSize, "searching")
	case InFight:
		g.drawDepth(ov)
		g.drawTeam(f, g.team, false)
		g.drawOpponent(f, g.opponent, g.opponentName)
		if !s.Chosen {
			g.ctl.fight.Draw(f, geom.Vec2{}, geom.One, g.ctx(false))
			g.ctl.doNot.Draw(f, geom.Vec2{}, geom.One, g.ctx(false))
		}
	}
}

func (g *Game) drawReplay(f *widget.Frame) {
	r := g.replay
	snap := r.Current()
	g.drawTeam(f, snap.Team, false)
	g.drawOpponent(f, snap.Opponent, g.opponentName)
	for _, b := range []widget.Button{g.pauseButton(), g.ctl.rewind, g.ctl.skip} {
		b.Draw(f, geom.Vec2{}, geom.One, g.ctx(false))
	}
	below := g.ctl.pause.At(g.view).Y - textSize.Y*widget.Gap
	centerText(&f.Batch.Overlay, below, textSize, r.Progress())
}

// drawTeam draws our units. Heal buttons only appear when active.
func (g *Game) drawTeam(f *widget.Frame, units []types.Unit, active bool) {
	for i := range units {
		widget.Unit{Unit: &units[i]}.Draw(f, teamUnitPos(len(units), i), geom.One, g.ctx(active))
	}
}

func (g *Game) drawOpponent(f *widget.Frame, units []types.UnitView, name string) {
	for i := range units {
		widget.UnitView{UnitView: &units[i]}.Draw(f, opponentUnitPos(len(units), i), geom.One, g.ctx(false))
	}
	if name != "" {
		centerText(&f.Batch.Overlay, 0.3+widget.UnitSize.Y+textSize.Y, textSize, name)
	}
}

func (g *Game) drawUnitStorage(f *widget.Frame, units []types.Unit) {
	f.Batch.Opaque.Quad(unitStorageBoxPos(g.view), 0, unitStorageBoxSize(), render.Color(render.VeryDarkGrey))
	for i := range units {
		widget.Unit{Unit: &units[i]}.Draw(f, storageUnitPos(g.view, i), storageScale, g.ctx(false))
	}
}

func (g *Game) drawEquipmentBox(f *widget.Frame, items []types.Equipment, at geom.Vec2) {
	f.Batch.Opaque.Quad(at, 0, equipBoxSize(), render.Color(render.VeryDarkGrey))
	for i := range items {
		widget.Equipment{Equipment: &items[i]}.Draw(f, at.Add(equipPos(i)), equipScale, g.ctx(true))
	}
}
