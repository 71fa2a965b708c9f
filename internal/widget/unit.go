package widget

import (
	"fmt"
	"strings"

	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/protocol"
	"github.com/chlobes/rps-game-client/internal/render"
	"github.com/chlobes/rps-game-client/internal/types"
)

// Unit is one of our own units. With ctx.Active it offers a heal button
// above its body.
type Unit struct {
	*types.Unit
}

// HealPrice is what healing u to full costs.
func HealPrice(u *types.Unit) float64 {
	if u.MaxHP <= 0 {
		return 0
	}
	choice := 0
	if u.HasPerkChoice() {
		choice = 1
	}
	return (1 - u.HP/u.MaxHP) * protocol.HealCost * float64(len(u.Perks)+5+choice) / 5
}

func (u Unit) Measure(base geom.Vec2, _ Ctx) geom.Vec2 { return UnitSize.Mul(base) }

func (u Unit) healButton(origin, base geom.Vec2, ctx Ctx) (Button, bool) {
	cost := HealPrice(u.Unit)
	if !ctx.Active || cost <= 1e-8 {
		return Button{}, false
	}
	size := u.Measure(base, ctx)
	return Button{
		Name: fmt.Sprintf("heal: %.2f", cost),
		Pos:  origin.Add(geom.V(0, size.Y+0.1)),
		Size: size.Div(geom.V(1, 6)),
		Fill: render.Color(render.Green),
	}, true
}

func (u Unit) choiceOrigin(origin, base geom.Vec2) geom.Vec2 {
	return origin.Add(geom.V(0, -PerkSize*base.Y*Gap))
}

func (u Unit) HitTest(p, origin, base geom.Vec2, ctx Ctx) (int, bool) {
	if geom.InRect(p, origin, u.Measure(base, ctx)) {
		return RegionBody, true
	}
	if b, ok := u.healButton(origin, base, ctx); ok {
		if _, hit := b.HitTest(p, origin, base, Ctx{View: ctx.View}); hit {
			return RegionHeal, true
		}
	}
	at := u.choiceOrigin(origin, base)
	for i := range u.PerkChoice {
		perk := Perk{&u.PerkChoice[i]}
		if _, ok := perk.HitTest(p, at, base, ctx); ok {
			return RegionChild + i, true
		}
		at.X += perk.Measure(base, ctx).X * Gap
	}
	return 0, false
}

func (u Unit) Draw(f *Frame, origin, base geom.Vec2, ctx Ctx) {
	pos, moving := dragged(u, f, origin, base, Ctx{View: ctx.View})
	view := types.Reveal(*u.Unit)
	UnitView{UnitView: &view, Dragging: moving}.Draw(f, pos, base, ctx)
	at := u.choiceOrigin(pos, base)
	for i := range u.PerkChoice {
		perk := Perk{&u.PerkChoice[i]}
		perk.Draw(f, at, base, Ctx{View: ctx.View})
		at.X += perk.Measure(base, ctx).X * Gap
	}
	if b, ok := u.healButton(pos, base, ctx); ok {
		b.Draw(f, geom.Vec2{}, geom.One, Ctx{View: ctx.View})
	}
}

func (u Unit) Select(Ctx) (Detail, bool) { return NewLoadout(u.Unit), true }

// UnitView is a possibly redacted unit. Dragging moves its tooltip to the
// left of the pointer so it does not cover the dragged body.
type UnitView struct {
	*types.UnitView
	Dragging bool
}

func (u UnitView) Measure(base geom.Vec2, _ Ctx) geom.Vec2 { return UnitSize.Mul(base) }

func (u UnitView) HitTest(p, origin, base geom.Vec2, ctx Ctx) (int, bool) {
	return HitBody(u, p, origin, base, ctx)
}

func (u UnitView) Draw(f *Frame, origin, base geom.Vec2, ctx Ctx) {
	bar := u.Measure(base, ctx).Div(geom.V(1, 3))
	step := geom.V(0, bar.Y)
	op := &f.Batch.Opaque

	op.Quad(origin, 1, bar, render.Color(u.classColor()))
	op.Quad(origin.Add(step), 1, bar, render.Color(u.elementColor()))
	hpAt := origin.Add(step.Scale(2))
	if u.HPRevealed {
		op.Quad(hpAt, 1, bar, render.Color(render.DarkGrey))
		if u.MaxHP > 0 {
			op.Quad(hpAt, 2, bar.Mul(geom.V(fraction(u.HPLim, u.MaxHP), 1)), render.Color(render.Purple))
			op.Quad(hpAt, 2, bar.Mul(geom.V(fraction(u.HP, u.MaxHP), 1)), render.Color(render.Yellow))
		}
	} else {
		op.Quad(hpAt, 1, bar, render.Color(render.Grey))
	}
	if stars := perkStars(len(u.Perks)); stars != "" {
		f.Batch.Overlay.Text(hpAt, 2, geom.V(0.03, 0.03).Mul(base), stars, nil)
	}

	if _, ok := u.HitTest(f.Mouse, origin, base, ctx); ok {
		u.drawTooltip(f, ctx.View)
	}
}

func (u UnitView) drawTooltip(f *Frame, view geom.View) {
	panel := UnitSize.Mul(geom.V(4, 1))
	m := f.Mouse
	if m.Y+panel.Y > view.Top() {
		m.Y -= panel.Y
	}
	if m.X+panel.X > view.Right() || u.Dragging {
		m.X -= panel.X
	}
	ov := &f.Batch.Overlay
	ov.Quad(m, 10, panel, render.Color(render.WithAlpha(render.DarkGrey, 0.75)))

	char := UnitSize.Div(geom.V(1, 3)).Scale(1 / 3.5)
	hp := fmt.Sprintf("hp: ??/%.2f", u.MaxHP)
	if u.HPRevealed {
		hp = fmt.Sprintf("hp: %.2f/%.2f", u.HP, u.MaxHP)
	}
	lines := []string{
		"class: " + u.className(),
		"element: " + u.elementName(),
		fmt.Sprintf("perks: %d", len(u.Perks)),
		fmt.Sprintf("attack: %.2f", u.Attack),
		fmt.Sprintf("armor: %.2f", u.Armor),
		fmt.Sprintf("block: %.2f", u.Block),
		fmt.Sprintf("regen: %.2f", u.Regen),
		hp,
	}
	for i, s := range lines {
		ov.Text(m.Add(geom.V(0, char.Y*float64(i))), 11, char, s, nil)
	}
}

func (u UnitView) Select(Ctx) (Detail, bool) { return NewLoadout(&u.Unit), true }

func (u UnitView) className() string {
	if !u.ClassRevealed {
		return "??"
	}
	return u.Class.String()
}

func (u UnitView) elementName() string {
	if !u.ElementRevealed {
		return "??"
	}
	return u.Element.String()
}

func (u UnitView) classColor() [4]float32 {
	switch {
	case !u.ClassRevealed:
		return render.Grey
	case u.Class == types.Ranged:
		return render.DarkGreen
	default:
		return render.DullRed
	}
}

func (u UnitView) elementColor() [4]float32 {
	if !u.ElementRevealed {
		return render.Grey
	}
	switch u.Element {
	case types.Green:
		return render.Green
	case types.Blue:
		return render.Blue
	default:
		return render.Red
	}
}

// fraction is v/total clamped to [0, 1], so bars stay inside the body.
func fraction(v, total float64) float64 {
	return max(0, min(v/total, 1))
}

// perkStars renders one star per perk, ten to a row.
func perkStars(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && i%10 == 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('*')
	}
	return b.String()
}
