// Package render batches every quad of a frame into two ordered vertex lists
// that flatten into one triangle list for a single draw call.
package render

import (
	"sort"

	"github.com/chlobes/rps-game-client/internal/geom"
)

type TexKind int

const (
	KindColor TexKind = iota
	KindTexture
	KindBlend
)

// Tex is the fill of a quad: a solid color, an atlas cell, or a color
// blended with an atlas cell.
type Tex struct {
	Kind  TexKind
	Color [4]float32
	Cell  int
	Blend float32
}

func Color(c [4]float32) Tex { return Tex{Kind: KindColor, Color: c} }
func Texture(cell int) Tex   { return Tex{Kind: KindTexture, Cell: cell} }

func Blended(c [4]float32, cell int, amount float32) Tex {
	return Tex{Kind: KindBlend, Color: c, Cell: cell, Blend: amount}
}

// Dimmed returns t with its alpha scaled by f. Textures are unaffected.
func (t Tex) Dimmed(f float32) Tex {
	if t.Kind != KindTexture {
		t.Color[3] *= f
	}
	return t
}

type Vertex struct {
	X, Y, Z float32
	Col     [4]float32
	U, V    float32
	Blend   float32
}

// VertsPerQuad is the number of vertices a quad expands to (two triangles).
const VertsPerQuad = 6

// List is one ordered pass of quads.
type List []Vertex

func (l *List) Quad(pos geom.Vec2, z float64, size geom.Vec2, tex Tex) {
	q := makeQuad(pos, z, size, tex)
	*l = append(*l, q[:]...)
}

func makeQuad(pos geom.Vec2, z float64, size geom.Vec2, tex Tex) [VertsPerQuad]Vertex {
	if size.X < 0 {
		pos.X += size.X
		size.X = -size.X
	}
	if size.Y < 0 {
		pos.Y += size.Y
		size.Y = -size.Y
	}
	var (
		col   [4]float32
		blend float32
		uvs   [VertsPerQuad][2]float32
	)
	switch tex.Kind {
	case KindColor:
		col = tex.Color
	case KindTexture:
		uvs = cellUVs(tex.Cell)
		blend = 1
	case KindBlend:
		col = tex.Color
		uvs = cellUVs(tex.Cell)
		blend = tex.Blend
	}
	corners := [VertsPerQuad]geom.Vec2{
		pos,
		pos.Add(geom.V(size.X, 0)),
		pos.Add(size),
		pos,
		pos.Add(geom.V(0, size.Y)),
		pos.Add(size),
	}
	var q [VertsPerQuad]Vertex
	for i, c := range corners {
		q[i] = Vertex{
			X: float32(c.X), Y: float32(c.Y), Z: float32(z),
			Col: col, U: uvs[i][0], V: uvs[i][1], Blend: blend,
		}
	}
	return q
}

// Batch holds the two passes of a frame. Overlay is painted after every
// opaque quad so tooltips and messages are never covered.
type Batch struct {
	Opaque  List
	Overlay List
}

// Reset empties both passes, keeping their capacity.
func (b *Batch) Reset() {
	b.Opaque = b.Opaque[:0]
	b.Overlay = b.Overlay[:0]
}

// Quads returns the number of quads in both passes.
func (b *Batch) Quads() int {
	return (len(b.Opaque) + len(b.Overlay)) / VertsPerQuad
}

// Flatten orders each pass by depth (higher z paints later, ties keep
// submission order) and concatenates overlay after opaque.
func (b *Batch) Flatten() []Vertex {
	out := make([]Vertex, 0, len(b.Opaque)+len(b.Overlay))
	out = appendSorted(out, b.Opaque)
	out = appendSorted(out, b.Overlay)
	return out
}

func appendSorted(dst []Vertex, l List) []Vertex {
	n := len(l) / VertsPerQuad
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, c int) bool {
		return l[order[a]*VertsPerQuad].Z < l[order[c]*VertsPerQuad].Z
	})
	for _, q := range order {
		dst = append(dst, l[q*VertsPerQuad:(q+1)*VertsPerQuad]...)
	}
	return dst
}

// Shade resolves the sampling position and color scale of a vertex for a
// pipeline that multiplies the sampled texel by the vertex color. Solid
// fills sample the white cell; blended fills lerp their color toward white
// so the glyph shows through by the blend amount.
func (v Vertex) Shade() (u, w float32, col [4]float32) {
	if v.Blend == 0 {
		u, w = WhiteUV()
		return u, w, v.Col
	}
	b := v.Blend
	for i := range col {
		col[i] = v.Col[i]*(1-b) + b
	}
	return v.U, v.V, col
}
