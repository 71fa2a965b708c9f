package widget

import (
	"strconv"

	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/render"
	"github.com/chlobes/rps-game-client/internal/types"
)

// Anchor selects what a button's x position is measured from.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorLeft
	AnchorRight
)

// Button is a labelled rectangle with a fixed position. It ignores the
// origin and base size it is drawn with.
type Button struct {
	Name   string
	Pos    geom.Vec2 // relative to the anchor edge on x
	Size   geom.Vec2
	Fill   render.Tex
	Anchor Anchor
}

// At returns the world position of the button in view v.
func (b Button) At(v geom.View) geom.Vec2 {
	switch b.Anchor {
	case AnchorLeft:
		return b.Pos.Add(geom.V(v.Left(), 0))
	case AnchorRight:
		return b.Pos.Add(geom.V(v.Right(), 0))
	default:
		return b.Pos
	}
}

func (b Button) Measure(geom.Vec2, Ctx) geom.Vec2 { return b.Size }

func (b Button) HitTest(p, _, _ geom.Vec2, ctx Ctx) (int, bool) {
	if geom.InRect(p, b.At(ctx.View), b.Size) {
		return RegionBody, true
	}
	return 0, false
}

// Hit is the origin-free form of HitTest.
func (b Button) Hit(p geom.Vec2, v geom.View) bool {
	_, ok := b.HitTest(p, geom.Vec2{}, geom.One, Ctx{View: v})
	return ok
}

func (b Button) Draw(f *Frame, _, _ geom.Vec2, ctx Ctx) {
	fill := b.Fill
	if b.Hit(f.Mouse, ctx.View) {
		fill = fill.Dimmed(0.6)
	}
	pos := b.At(ctx.View)
	if ctx.Active && f.DragFrom != nil && b.Hit(*f.DragFrom, ctx.View) {
		pos = pos.Add(f.Mouse.Sub(*f.DragFrom))
	}
	f.Batch.Opaque.Quad(pos, 1, b.Size, fill)
	if b.Name == "" {
		return
	}
	n := float64(len([]rune(b.Name)))
	char := min(b.Size.X*0.9/n, b.Size.Y*0.9)
	at := pos.Add(geom.V((b.Size.X-n*char)*0.5, (b.Size.Y-char)/2))
	f.Batch.Overlay.Text(at, 10, geom.V(char, char), b.Name, nil)
}

func (b Button) Select(Ctx) (Detail, bool) { return nil, false }

// MoveOption is a destination offered in the safe zone, labelled with its
// name and group size cap.
type MoveOption struct {
	types.MoveOption
}

func (m MoveOption) Measure(base geom.Vec2, _ Ctx) geom.Vec2 { return ButtonSize.Mul(base) }

func (m MoveOption) HitTest(p, origin, base geom.Vec2, ctx Ctx) (int, bool) {
	return HitBody(m, p, origin, base, ctx)
}

func (m MoveOption) Draw(f *Frame, origin, base geom.Vec2, ctx Ctx) {
	size := m.Measure(base, ctx)
	fill := render.Color(render.Grey)
	if _, ok := m.HitTest(f.Mouse, origin, base, ctx); ok {
		fill = fill.Dimmed(0.6)
	}
	f.Batch.Opaque.Quad(origin, 1, size, fill)
	offset := geom.V(0, size.Y*0.5)
	top := origin.Add(geom.V(0, size.Y))
	char := geom.V(size.Y, size.Y).Scale(0.45)
	if m.MaxGroupSize != nil {
		f.Batch.Overlay.Text(top.Sub(offset), 10, char, strconv.Itoa(*m.MaxGroupSize), nil)
	}
	f.Batch.Overlay.Text(top.Sub(offset.Scale(2)), 10, char, m.Name, nil)
}

func (m MoveOption) Select(Ctx) (Detail, bool) { return nil, false }

// MoveOptionGrid lays out n move options ten to a row, centred above the
// team.
func MoveOptionGrid(n int) (start, step geom.Vec2) {
	start = geom.V(-(4.5*0.1 + 5.0), float64(n/10)*0.55+0.5).Mul(ButtonSize)
	return start, ButtonSize.Scale(Gap)
}

// MoveOptionPos is the origin of option i in a grid of n.
func MoveOptionPos(n, i int) geom.Vec2 {
	start, step := MoveOptionGrid(n)
	return start.Add(geom.V(float64(i%10)*step.X, -float64(i/10)*step.Y))
}
