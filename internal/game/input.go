package game

import (
	"strconv"

	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/protocol"
	"github.com/chlobes/rps-game-client/internal/types"
	"github.com/chlobes/rps-game-client/internal/widget"
)

// clickEpsilon is how far, in world units, a release may land from its
// press and still count as a click.
const clickEpsilon = 2e-2

func (g *Game) PointerMove(p geom.Vec2) { g.mouse = p }

// PointerDown only records where a gesture started.
func (g *Game) PointerDown(p geom.Vec2) {
	g.mouse = p
	g.dragFrom = &p
}

// PointerUp finishes a gesture: a click when the pointer barely moved,
// otherwise a drag between two inventory positions.
func (g *Game) PointerUp(p geom.Vec2) {
	g.mouse = p
	from := g.dragFrom
	g.dragFrom = nil
	g.stopRepairTyping()
	if from == nil || !g.loggedIn {
		return
	}
	if geom.Dist(*from, p) < clickEpsilon {
		g.click(p)
		return
	}
	if g.replay == nil {
		g.resolveDrag(*from, p)
	}
}

func (g *Game) ctx(active bool) widget.Ctx { return widget.Ctx{View: g.view, Active: active} }

func (g *Game) click(m geom.Vec2) {
	var clicked bool
	if g.replay != nil {
		clicked = g.clickReplay(m)
	} else {
		clicked = g.clickState(m)
		if g.clickTeam(m) || g.clickOpponent(m, g.opponent) {
			clicked = true
		}
	}
	if !clicked {
		g.selected = nil
	}
}

func (g *Game) clickReplay(m geom.Vec2) bool {
	r := g.replay
	switch {
	case g.ctl.skip.Hit(m, g.view):
		g.replay = nil
		return true
	case g.ctl.pause.Hit(m, g.view):
		r.TogglePause()
		return true
	case g.ctl.rewind.Hit(m, g.view):
		r.Rewind()
		return true
	}
	// replayed units can be inspected but not acted on
	snap := r.Current()
	for i := range snap.Team {
		u := widget.Unit{Unit: &snap.Team[i]}
		if reg, ok := u.HitTest(m, teamUnitPos(len(snap.Team), i), geom.One, g.ctx(false)); ok && reg == widget.RegionBody {
			d, _ := u.Select(g.ctx(false))
			g.selected = &Selection{Detail: d}
			return true
		}
	}
	return g.clickOpponent(m, snap.Opponent)
}

func (g *Game) clickState(m geom.Vec2) bool {
	switch s := g.state.(type) {
	case SafeZone:
		return g.clickSafeZone(m, s)
	case Looting:
		switch {
		case g.ctl.up.Hit(m, g.view):
			g.send(protocol.Move{Option: 0})
			g.depth = max(g.depth-1, 0)
		case g.ctl.stay.Hit(m, g.view):
			g.send(protocol.Move{Option: 1})
		case g.ctl.down.Hit(m, g.view):
			g.send(protocol.Move{Option: 2})
			g.depth++
		default:
			return false
		}
		g.state = InQueue{}
		return true
	case InFight:
		if s.Chosen {
			return false
		}
		switch {
		case g.ctl.fight.Hit(m, g.view):
			g.send(protocol.Fight{Accept: true})
		case g.ctl.doNot.Hit(m, g.view):
			g.send(protocol.Fight{Accept: false})
			g.state = InFight{Chosen: true}
		default:
			return false
		}
		return true
	}
	return false
}

func (g *Game) clickSafeZone(m geom.Vec2, s SafeZone) bool {
	clicked := false
	if g.repairButton().Hit(m, g.view) {
		g.repairTyping = true
		g.repairText = ""
		clicked = true
	}
	for i := range s.UnitStorage {
		u := widget.Unit{Unit: &s.UnitStorage[i]}
		if reg, ok := u.HitTest(m, storageUnitPos(g.view, i), storageScale, g.ctx(false)); ok && reg == widget.RegionBody {
			d, _ := u.Select(g.ctx(false))
			addr := protocol.UnitStorage(i)
			g.selected = &Selection{Detail: d, Addr: &addr}
			clicked = true
			break
		}
	}
	for i, mo := range g.moveOptions {
		_, hit := widget.MoveOption{MoveOption: mo}.HitTest(m, widget.MoveOptionPos(len(g.moveOptions), i), geom.One, g.ctx(false))
		if hit && mo.Allows(len(g.team)) {
			g.send(protocol.Move{Option: i})
			g.gold = 0
			g.depth = 1
			g.moveOptions = nil
			g.state = InQueue{}
			return true
		}
	}
	if g.ctl.purchase.Hit(m, g.view) {
		g.send(protocol.Purchase{Index: 0})
		clicked = true
	}
	if g.anyHurt() && g.ctl.healAll.Hit(m, g.view) {
		for i := range g.team {
			g.send(protocol.Purchase{Index: i + 1})
		}
		clicked = true
	}
	return clicked
}

func (g *Game) anyHurt() bool {
	for i := range g.team {
		if g.team[i].Hurt() {
			return true
		}
	}
	return false
}

// clickTeam selects a team unit or triggers its heal button or a pending
// perk choice. Heal buttons only exist in the safe zone.
func (g *Game) clickTeam(m geom.Vec2) bool {
	_, inSafe := g.safeZone()
	for i := range g.team {
		u := widget.Unit{Unit: &g.team[i]}
		reg, ok := u.HitTest(m, teamUnitPos(len(g.team), i), geom.One, g.ctx(inSafe))
		if !ok {
			continue
		}
		switch {
		case reg == widget.RegionBody:
			d, _ := u.Select(g.ctx(false))
			addr := protocol.Team(i)
			g.selected = &Selection{Detail: d, Addr: &addr}
		case reg == widget.RegionHeal:
			g.send(protocol.Purchase{Index: i + 1})
		default:
			g.send(protocol.PerkChoice{Unit: i, Choice: reg - widget.RegionChild})
		}
		return true
	}
	return false
}

// clickOpponent opens the detail of an opponent unit. It carries no
// address: nothing can be moved in or out of it.
func (g *Game) clickOpponent(m geom.Vec2, units []types.UnitView) bool {
	for i := range units {
		w := widget.UnitView{UnitView: &units[i]}
		if _, ok := w.HitTest(m, opponentUnitPos(len(units), i), geom.One, g.ctx(false)); ok {
			d, _ := w.Select(g.ctx(false))
			g.selected = &Selection{Detail: d}
			return true
		}
	}
	return false
}

func (g *Game) stopRepairTyping() {
	g.repairTyping = false
	g.repairText = ""
}

// TypeText appends typed characters to the repair target while it is
// being edited. Every edit that parses updates the target.
func (g *Game) TypeText(s string) {
	if !g.repairTyping || s == "" {
		return
	}
	g.repairText += s
	g.parseRepairText()
}

// Backspace deletes the last typed character of the repair target.
func (g *Game) Backspace() {
	if !g.repairTyping || g.repairText == "" {
		return
	}
	r := []rune(g.repairText)
	g.repairText = string(r[:len(r)-1])
	g.parseRepairText()
}

// Paste appends clipboard text to the repair target.
func (g *Game) Paste(s string) { g.TypeText(s) }

func (g *Game) RepairTyping() bool { return g.repairTyping }

func (g *Game) parseRepairText() {
	if v, err := strconv.ParseFloat(g.repairText, 64); err == nil {
		g.repairTarget = v
	}
}

// TogglePause and StepReplay drive the replay from the keyboard.
func (g *Game) TogglePause() {
	if g.replay != nil {
		g.replay.TogglePause()
	}
}

func (g *Game) StepReplay(delta int) {
	if g.replay != nil {
		g.replay.Step(delta)
	}
}
