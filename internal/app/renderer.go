package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/chlobes/rps-game-client/internal/geom"
	"github.com/chlobes/rps-game-client/internal/render"
)

// maxChunk is the largest whole number of quads one 16-bit index buffer
// can address.
const maxChunk = (1 << 16) / render.VertsPerQuad * render.VertsPerQuad

// Renderer submits a flattened batch to the GPU sampling the glyph atlas.
type Renderer struct {
	atlas *ebiten.Image
	verts []ebiten.Vertex
	idx   []uint16
}

func NewRenderer() *Renderer {
	return &Renderer{atlas: buildAtlas()}
}

// buildAtlas rasterizes the glyph table into a grid of cells and fills the
// white cell solid fills sample.
func buildAtlas() *ebiten.Image {
	const cell = render.CellPx
	img := ebiten.NewImage(render.AtlasCols*cell, render.AtlasRows*cell)
	face := basicfont.Face7x13
	for i, r := range render.Glyphs {
		x := (i%render.AtlasCols)*cell + (cell-face.Advance)/2
		baseline := (i/render.AtlasCols)*cell + (cell+face.Ascent-face.Descent)/2
		text.Draw(img, string(r), face, x, baseline, color.White)
	}
	col, row := render.WhiteCell%render.AtlasCols, render.WhiteCell/render.AtlasCols
	white := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
	img.SubImage(white).(*ebiten.Image).Fill(color.White)
	return img
}

// Draw maps the batch from world coordinates in view v onto dst.
func (r *Renderer) Draw(dst *ebiten.Image, b *render.Batch, v geom.View) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	aw, ah := float32(r.atlas.Bounds().Dx()), float32(r.atlas.Bounds().Dy())
	all := b.Flatten()
	for start := 0; start < len(all); start += maxChunk {
		chunk := all[start:min(start+maxChunk, len(all))]
		r.verts, r.idx = r.verts[:0], r.idx[:0]
		for i, vx := range chunk {
			x, y := v.WorldToScreen(geom.V(float64(vx.X), float64(vx.Y)), w, h)
			u, t, col := vx.Shade()
			r.verts = append(r.verts, ebiten.Vertex{
				DstX: float32(x), DstY: float32(y),
				SrcX: u * aw, SrcY: t * ah,
				ColorR: col[0], ColorG: col[1], ColorB: col[2], ColorA: col[3],
			})
			r.idx = append(r.idx, uint16(i))
		}
		dst.DrawTriangles(r.verts, r.idx, r.atlas, nil)
	}
}
