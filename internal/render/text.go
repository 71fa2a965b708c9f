package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chlobes/rps-game-client/internal/geom"
)

// Panel is an optional background drawn behind a block of text.
type Panel struct {
	Fill Tex
	// Width is the panel width in characters. Zero uses the longest line.
	Width int
}

// Text draws s one quad per character. The last line starts at pos and
// earlier lines stack above it, so pos is the bottom-left of the block.
func (l *List) Text(pos geom.Vec2, z float64, size geom.Vec2, s string, bg *Panel) {
	lines := splitLines(s)
	if bg != nil {
		cols := bg.Width
		if cols == 0 {
			cols = longest(lines)
		}
		l.Quad(pos, z, geom.V(size.X*float64(cols), size.Y*float64(len(lines))), bg.Fill)
	}
	l.glyphs(pos, z, size, lines, func(cell int) Tex { return Texture(cell) })
}

// TextBlended draws s with every glyph blended toward color; amount 1 is the
// plain glyph and 0 is the bare color.
func (l *List) TextBlended(pos geom.Vec2, z float64, size geom.Vec2, s string, amount float32, color [4]float32) {
	l.glyphs(pos, z, size, splitLines(s), func(cell int) Tex { return Blended(color, cell, amount) })
}

func (l *List) glyphs(pos geom.Vec2, z float64, size geom.Vec2, lines []string, tex func(int) Tex) {
	for i, line := range lines {
		p := pos.Add(geom.V(0, size.Y*float64(len(lines)-1-i)))
		for _, r := range line {
			l.Quad(p, z, size, tex(GlyphCell(r)))
			p.X += size.X
		}
	}
}

// TextLines returns the number of lines s occupies when drawn.
func TextLines(s string) int { return strings.Count(s, "\n") + 1 }

func splitLines(s string) []string {
	return strings.Split(cases.Lower(language.Und).String(s), "\n")
}

func longest(lines []string) int {
	n := 0
	for _, l := range lines {
		if c := len([]rune(l)); c > n {
			n = c
		}
	}
	return n
}
