// Package geom holds the small amount of 2D math the client needs: vectors,
// rectangle tests and the view context that maps between window pixels and
// world coordinates.
package geom

import "math"

type Vec2 struct{ X, Y float64 }

func V(x, y float64) Vec2 { return Vec2{x, y} }

// One is the neutral base size passed to widgets drawn at their natural scale.
var One = Vec2{1, 1}

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Mul(b Vec2) Vec2 { return Vec2{a.X * b.X, a.Y * b.Y} }
func (a Vec2) Div(b Vec2) Vec2 { return Vec2{a.X / b.X, a.Y / b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) AddScalar(s float64) Vec2 { return Vec2{a.X + s, a.Y + s} }
func (a Vec2) Neg() Vec2 { return Vec2{-a.X, -a.Y} }
func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }

// Dist returns the euclidean distance between a and b.
func Dist(a, b Vec2) float64 { return a.Sub(b).Len() }

// InRect reports whether p lies in [origin, origin+size) on both axes.
func InRect(p, origin, size Vec2) bool {
	return p.X >= origin.X && p.X < origin.X+size.X &&
		p.Y >= origin.Y && p.Y < origin.Y+size.Y
}

// View is the viewport context threaded through layout, hit testing and
// drawing. World space is y-up with y in [-1, 1] and x in [-Aspect, Aspect].
type View struct {
	Aspect float64 // width / height
}

// NewView builds a view for a window of w by h pixels.
func NewView(w, h int) View {
	if w <= 0 || h <= 0 {
		return View{Aspect: 1}
	}
	return View{Aspect: float64(w) / float64(h)}
}

func (v View) Left() float64   { return -v.Aspect }
func (v View) Right() float64  { return v.Aspect }
func (v View) Top() float64    { return 1 }
func (v View) Bottom() float64 { return -1 }

// ScreenToWorld converts a pixel position inside a w by h window to world
// coordinates.
func (v View) ScreenToWorld(px, py, w, h int) Vec2 {
	x := float64(px)/float64(w)*2 - 1
	y := -float64(py)/float64(h)*2 + 1
	return Vec2{x * float64(w) / float64(h), y}
}

// WorldToScreen is the inverse of ScreenToWorld, returning fractional pixels.
func (v View) WorldToScreen(p Vec2, w, h int) (float64, float64) {
	x := (p.X/v.Aspect + 1) / 2 * float64(w)
	y := (1 - p.Y) / 2 * float64(h)
	return x, y
}
