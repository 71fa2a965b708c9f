package widget

import (
	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/render"
	"github.com/chlobes/rps-game-client/internal/types"
)

type Perk struct {
	*types.Perk
}

func (p Perk) Measure(base geom.Vec2, _ Ctx) geom.Vec2 { return geom.V(PerkSize, PerkSize).Mul(base) }

func (p Perk) HitTest(pt, origin, base geom.Vec2, ctx Ctx) (int, bool) {
	return HitBody(p, pt, origin, base, ctx)
}

func (p Perk) Draw(f *Frame, origin, base geom.Vec2, ctx Ctx) {
	f.Batch.Opaque.Quad(origin, 12, p.Measure(base, ctx), render.Color(render.RGB(p.Color)))
	if _, ok := p.HitTest(f.Mouse, origin, base, ctx); ok {
		char := geom.V(PerkSize, PerkSize).Scale(0.5)
		f.Batch.Overlay.Text(f.Mouse, 13, char, p.Desc, &render.Panel{
			Fill:  render.Color(render.Shade(p.Color, 0.8, 0.7)),
			Width: types.DescWidth,
		})
	}
}

func (p Perk) Select(Ctx) (Detail, bool) { return nil, false }
