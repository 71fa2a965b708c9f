package widget

import (
	"fmt"

	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/render"
	"github.com/chlobes/rps-game-client/internal/types"
)

// Equipment is an item body. It fills 90% of the slot it sits in. With
// ctx.Active it follows a drag that started on it.
type Equipment struct {
	*types.Equipment
}

func (e Equipment) Measure(base geom.Vec2, _ Ctx) geom.Vec2 {
	return geom.V(EquipSize, EquipSize).Mul(base).Scale(0.9)
}

func (e Equipment) HitTest(p, origin, base geom.Vec2, ctx Ctx) (int, bool) {
	return HitBody(e, p, origin, base, ctx)
}

func (e Equipment) Draw(f *Frame, origin, base geom.Vec2, ctx Ctx) {
	pos, moving := origin, false
	if ctx.Active {
		pos, moving = dragged(e, f, origin, base, ctx)
	}
	f.Batch.Opaque.Quad(pos, 10, e.Measure(base, ctx), render.Color(render.RGB(e.Color)))
	if _, ok := e.HitTest(f.Mouse, pos, base, ctx); ok {
		e.drawTooltip(f, ctx.View, moving)
	}
}

func (e Equipment) drawTooltip(f *Frame, view geom.View, shiftLeft bool) {
	char := geom.V(EquipSize, EquipSize).Scale(0.9 * 0.3)
	pos := f.Mouse
	width := char.X * types.DescWidth
	if pos.X+width > view.Right() || shiftLeft {
		pos.X -= width
	}
	desc := 0
	if e.Desc != "" {
		desc = render.TextLines(e.Desc)
	}
	n := float64(desc + e.Secondaries())
	if pos.Y+char.Y*(n+3) > view.Top() {
		pos.Y -= char.Y * (n + 3)
	}

	panel := &render.Panel{Fill: render.Color(render.Shade(e.Color, 0.8, 0.7)), Width: types.DescWidth}
	ov := &f.Batch.Overlay
	if desc > 0 {
		ov.Text(pos, 12, char, e.Desc, panel)
	}
	rows := []string{
		fmt.Sprintf("repair_cost: %.3f", e.RepairCost),
		fmt.Sprintf("durability: %.3f", e.Durability),
	}
	rows = append(rows, statRows(e.Stat2)...)
	rows = append(rows, statRows(e.Stat1)...)
	for i, s := range rows {
		ov.Text(pos.Add(geom.V(0, char.Y*float64(desc+i))), 12, char, s, panel)
	}
}

func statRows(s types.Stat) []string {
	var rows []string
	if s.Secondary != nil {
		rows = append(rows, fmt.Sprintf("%s: %.3f", s.Secondary.Name, s.Secondary.Value))
	}
	return append(rows, fmt.Sprintf("%s: %.3f", s.Name, s.Value))
}

func (e Equipment) Select(Ctx) (Detail, bool) { return nil, false }

// Slot is an equipment slot, empty when Item is nil.
type Slot struct {
	Item *types.Equipment
}

func (s Slot) Measure(base geom.Vec2, _ Ctx) geom.Vec2 { return geom.V(EquipSize, EquipSize).Mul(base) }

func (s Slot) HitTest(p, origin, base geom.Vec2, ctx Ctx) (int, bool) {
	return HitBody(s, p, origin, base, ctx)
}

func (s Slot) Draw(f *Frame, origin, base geom.Vec2, ctx Ctx) {
	size := s.Measure(base, ctx)
	f.Batch.Opaque.Quad(origin, 1, size, render.Color(render.DarkGrey))
	if s.Item != nil {
		Equipment{s.Item}.Draw(f, origin.Add(size.Scale(0.05)), base, ctx)
	}
}

func (s Slot) Select(Ctx) (Detail, bool) { return nil, false }

// Loadout is the detail panel of a unit: its perks in one row and its
// equipment slots in the row above. It has no body region; HitTest only
// reports slots. With ctx.Active every slot collides, otherwise only slots
// holding an item do.
type Loadout struct {
	Perks []types.Perk
	Slots [types.EquipSlots]*types.Equipment
}

// NewLoadout snapshots the perks and equipment of u.
func NewLoadout(u *types.Unit) Loadout {
	return Loadout{Perks: u.Perks, Slots: u.Equipment}
}

func (Loadout) detail() {}

func (l Loadout) Measure(base geom.Vec2, _ Ctx) geom.Vec2 { return base }

func (l Loadout) slotsOrigin(origin, base geom.Vec2) geom.Vec2 {
	return origin.AddScalar(0.01).Add(geom.V(0, PerkSize*base.Y*Gap))
}

func (l Loadout) HitTest(p, origin, base geom.Vec2, ctx Ctx) (int, bool) {
	at := l.slotsOrigin(origin, base)
	for i, item := range l.Slots {
		slot := Slot{item}
		if ctx.Active {
			if _, ok := slot.HitTest(p, at, base, ctx); ok {
				return RegionChild + i, true
			}
		} else if item != nil {
			if _, ok := (Equipment{item}).HitTest(p, at, base, ctx); ok {
				return RegionChild + i, true
			}
		}
		at.X += slot.Measure(base, ctx).X * Gap
	}
	return 0, false
}

func (l Loadout) Draw(f *Frame, origin, base geom.Vec2, ctx Ctx) {
	at := origin.AddScalar(0.01)
	for i := range l.Perks {
		perk := Perk{&l.Perks[i]}
		perk.Draw(f, at, base, ctx)
		at.X += perk.Measure(base, ctx).X * Gap
	}
	at = l.slotsOrigin(origin, base)
	for _, item := range l.Slots {
		slot := Slot{item}
		slot.Draw(f, at, base, ctx)
		at.X += slot.Measure(base, ctx).X * Gap
	}
}

func (l Loadout) Select(Ctx) (Detail, bool) { return nil, false }
