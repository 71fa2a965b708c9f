package game

import (
	"fmt"
	"math"

	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/protocol"
	"github.com/chlobes/rps-game-client/internal/widget"
)

// resolveDrag turns a press at d and a release at m into a transfer,
// repair or juice request.
func (g *Game) resolveDrag(d, m geom.Vec2) {
	from := g.addressAt(d, false)
	to := g.addressAt(m, true)
	sz, inSafe := g.safeZone()

	if inSafe {
		repair := g.repairButton()
		if repair.Hit(d, g.view) || repair.Hit(m, g.view) {
			if to != nil {
				g.send(protocol.Repair{Target: g.repairTarget, At: *to})
			}
			return
		}
		if g.ctl.juice.Hit(m, g.view) {
			if from != nil {
				g.send(protocol.Juice{From: *from})
			}
			return
		}
	}

	if to == nil && inSafe {
		switch {
		case geom.InRect(m, unitStorageBoxPos(g.view), unitStorageBoxSize()):
			at := protocol.UnitStorage(appendIndex(len(sz.UnitStorage), from, protocol.UnitStorage(0)))
			to = &at
		case geom.InRect(m, safeEquipBoxPos(g.view), equipBoxSize()):
			at := protocol.EquipmentStorage(true, appendIndex(len(sz.EquipmentStorage), from, protocol.EquipmentStorage(true, 0)))
			to = &at
		}
	}
	if to == nil && geom.InRect(m, equipBoxPos(g.view), equipBoxSize()) {
		at := protocol.EquipmentStorage(false, appendIndex(len(g.equipment), from, protocol.EquipmentStorage(false, 0)))
		to = &at
	}
	if to == nil && from != nil {
		to = g.teamInsertion(m, *from)
	}

	if from == nil || to == nil {
		return
	}
	g.send(protocol.Transfer{From: *from, To: *to})
}

// addressAt finds the inventory position under p. The first container hit
// wins: team bodies, carried equipment, then in the safe zone stored units
// and stored equipment. An open detail panel for a team or stored unit
// takes precedence over all of them. On release (slots true) empty slots
// of the panel count; on press only occupied ones do.
func (g *Game) addressAt(p geom.Vec2, slots bool) *protocol.InventoryType {
	if a := g.detailAddressAt(p, slots); a != nil {
		return a
	}
	at := func(a protocol.InventoryType) *protocol.InventoryType { return &a }
	ctx := g.ctx(false)
	for i := range g.team {
		if r, ok := (widget.Unit{Unit: &g.team[i]}).HitTest(p, teamUnitPos(len(g.team), i), geom.One, ctx); ok && r == widget.RegionBody {
			return at(protocol.Team(i))
		}
	}
	for i := range g.equipment {
		if _, ok := (widget.Equipment{Equipment: &g.equipment[i]}).HitTest(p, equipBoxPos(g.view).Add(equipPos(i)), equipScale, ctx); ok {
			return at(protocol.EquipmentStorage(false, i))
		}
	}
	sz, ok := g.safeZone()
	if !ok {
		return nil
	}
	for i := range sz.UnitStorage {
		if r, ok := (widget.Unit{Unit: &sz.UnitStorage[i]}).HitTest(p, storageUnitPos(g.view, i), storageScale, ctx); ok && r == widget.RegionBody {
			return at(protocol.UnitStorage(i))
		}
	}
	for i := range sz.EquipmentStorage {
		if _, ok := (widget.Equipment{Equipment: &sz.EquipmentStorage[i]}).HitTest(p, safeEquipBoxPos(g.view).Add(equipPos(i)), equipScale, ctx); ok {
			return at(protocol.EquipmentStorage(true, i))
		}
	}
	return nil
}

func (g *Game) detailAddressAt(p geom.Vec2, slots bool) *protocol.InventoryType {
	s := g.selected
	if s == nil || s.Addr == nil {
		return nil
	}
	r, ok := s.Detail.HitTest(p, detailPos(g.view), geom.One, g.ctx(slots))
	if !ok {
		return nil
	}
	slot, err := protocol.EquipSlotFromIndex(r - widget.RegionChild)
	if err != nil {
		panic(fmt.Sprintf("game: detail panel reported region %d", r))
	}
	var a protocol.InventoryType
	switch s.Addr.Kind {
	case protocol.InvTeam:
		a = protocol.UnitSlot(true, s.Addr.Index, slot)
	case protocol.InvUnitStorage:
		a = protocol.UnitSlot(false, s.Addr.Index, slot)
	default:
		panic(fmt.Sprintf("game: detail panel addressed to %v", *s.Addr))
	}
	return &a
}

// appendIndex is the position one past the end of a container holding n
// items. When the item comes from the same container it is removed first,
// so the end moves one back.
func appendIndex(n int, from *protocol.InventoryType, container protocol.InventoryType) int {
	if from != nil && from.SameContainer(container) {
		return n - 1
	}
	return n
}

// teamInsertion maps the release x to a slot in the team row. Dropping a
// team unit reorders within the team; dropping a stored unit may also
// append it after the last member.
func (g *Game) teamInsertion(m geom.Vec2, from protocol.InventoryType) *protocol.InventoryType {
	n := len(g.team)
	even := n%2 == 0
	x := m.X / (widget.UnitSize.X * widget.Gap)
	var i int
	switch from.Kind {
	case protocol.InvTeam:
		if even {
			x += 2.0
		} else {
			x += 1.5
		}
		i = min(max(int(math.Floor(x)), 0), n-1)
	case protocol.InvUnitStorage:
		if even {
			x += 2.5
		} else {
			x += 2.0
		}
		i = min(max(int(math.Floor(x)), 0), n)
	default:
		return nil
	}
	at := protocol.Team(i)
	return &at
}
