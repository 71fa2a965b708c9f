// Package widget implements the on-screen entities of the client. Every
// widget can measure itself, hit test a point, draw into a frame batch and
// optionally expose a detail panel when selected. Widgets are rebuilt from
// game state every frame and never retained.
package widget

import (
	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/render"
)

var (
	UnitSize   = geom.V(0.3, 0.45)
	ButtonSize = geom.V(0.3, 0.1)
)

var (
	PerkSize  = UnitSize.X / 3.2
	EquipSize = UnitSize.X / 1.5
)

// Gap is the spacing multiplier between siblings in every row and grid.
const Gap = 1.1

// Hit regions reported by composite widgets.
const (
	RegionBody = 0
	RegionHeal = 1
	// RegionChild is the first child region: perk choice i of a unit, or
	// equipment slot i of a loadout, is RegionChild+i.
	RegionChild = 2
)

// Ctx is passed to every call. Active switches the optional affordances of
// a widget: heal buttons on units, empty-slot collisions on loadouts and
// drag following on equipment and buttons.
type Ctx struct {
	View   geom.View
	Active bool
}

// Frame is the draw target of one frame.
type Frame struct {
	Batch *render.Batch
	Mouse geom.Vec2
	// DragFrom is the press position of a pointer drag in progress.
	DragFrom *geom.Vec2
}

type Widget interface {
	Measure(base geom.Vec2, ctx Ctx) geom.Vec2
	HitTest(p, origin, base geom.Vec2, ctx Ctx) (int, bool)
	Draw(f *Frame, origin, base geom.Vec2, ctx Ctx)
	Select(ctx Ctx) (Detail, bool)
}

// Detail is a read-only panel shown for a selected widget.
type Detail interface {
	Widget
	detail()
}

// HitBody is the plain rectangle test shared by leaf widgets.
func HitBody(w Widget, p, origin, base geom.Vec2, ctx Ctx) (int, bool) {
	if geom.InRect(p, origin, w.Measure(base, ctx)) {
		return RegionBody, true
	}
	return 0, false
}

// dragged reports the origin a widget should be drawn at when the drag in
// progress started on its body.
func dragged(w Widget, f *Frame, origin, base geom.Vec2, ctx Ctx) (geom.Vec2, bool) {
	if f.DragFrom == nil {
		return origin, false
	}
	d := *f.DragFrom
	if r, ok := w.HitTest(d, origin, base, ctx); ok && r == RegionBody {
		return origin.Add(f.Mouse.Sub(d)), true
	}
	return origin, false
}
