package render

// The glyph atlas is a sheet of AtlasCols by AtlasRows square cells.
const (
	AtlasCols = 9
	AtlasRows = 6
	CellPx    = 16

	// WhiteCell is solid white; solid color fills sample it.
	WhiteCell = AtlasCols*AtlasRows - 1
)

// Glyphs lists the characters of the atlas in cell order. Cell 0 is the
// space every unmapped character falls back to.
const Glyphs = " 0123456789abcdefghijklmnopqrstuvwxyz.:/(),?*-!'"

var glyphCells = func() map[rune]int {
	m := make(map[rune]int, len(Glyphs))
	for i, r := range Glyphs {
		m[r] = i
	}
	return m
}()

// GlyphCell returns the atlas cell for r, or the space cell when r has no glyph.
func GlyphCell(r rune) int {
	return glyphCells[r]
}

// uv inset in atlas pixels, keeps nearest sampling inside the cell.
const uvInset = 0.5

func cellUVs(n int) [VertsPerQuad][2]float32 {
	if n < 0 || n > WhiteCell {
		n = 0
	}
	const w, h = float32(AtlasCols * CellPx), float32(AtlasRows * CellPx)
	col, row := float32(n%AtlasCols), float32(n/AtlasCols)
	u0 := (col*CellPx + uvInset) / w
	u1 := ((col+1)*CellPx - uvInset) / w
	// Image rows grow downward while world y grows upward.
	vTop := (row*CellPx + uvInset) / h
	vBot := ((row+1)*CellPx - uvInset) / h
	return [VertsPerQuad][2]float32{
		{u0, vBot},
		{u1, vBot},
		{u1, vTop},
		{u0, vBot},
		{u0, vTop},
		{u1, vTop},
	}
}

// WhiteUV is the atlas coordinate sampled by solid fills.
func WhiteUV() (float32, float32) {
	uv := cellUVs(WhiteCell)
	return (uv[0][0] + uv[1][0]) / 2, (uv[0][1] + uv[2][1]) / 2
}
