package geometry

import (
	"unicode"

	"github.com/gogpu/txf"
)

// GlyphGeometry is the geometry of one glyph of a font.
type GlyphGeometry struct {
	// Index is the glyph index in the font.
	Index int

	// Codepoint is the Unicode value the glyph was loaded for.
	Codepoint rune

	// Advance is the horizontal advance in em units.
	Advance float64

	// Shape is the outline bounding box in em units, y up.
	// It is empty for glyphs without an outline.
	Shape txf.Bounds

	// Plane and Atlas are assigned by Layout.
	Plane txf.Bounds
	Atlas txf.Bounds
}

// IsWhitespace reports whether the glyph has nothing to draw.
func (g *GlyphGeometry) IsWhitespace() bool {
	return g.Shape.IsEmpty() || unicode.IsSpace(g.Codepoint)
}

// FontGeometry is the glyph geometry of one font.
// It implements txf.FontSource.
type FontGeometry struct {
	name    string
	metrics txf.Metrics
	glyphs  []GlyphGeometry
	index   map[int]int // glyph index -> position in glyphs
	kerning []txf.KernPair
}

var _ txf.FontSource = (*FontGeometry)(nil)

// NewFontGeometry creates an empty font geometry.
func NewFontGeometry(name string, metrics txf.Metrics) *FontGeometry {
	return &FontGeometry{
		name:    name,
		metrics: metrics,
		index:   make(map[int]int),
	}
}

// Add appends a glyph. When several codepoints map to the same glyph
// index, Glyph resolves the index to the first one added.
func (f *FontGeometry) Add(g GlyphGeometry) {
	if _, ok := f.index[g.Index]; !ok {
		f.index[g.Index] = len(f.glyphs)
	}
	f.glyphs = append(f.glyphs, g)
}

// AddKerning appends a kerning pair between two glyph indices.
// Zero adjustments are ignored.
func (f *FontGeometry) AddKerning(left, right int, advance float64) {
	if advance == 0 {
		return
	}
	f.kerning = append(f.kerning, txf.KernPair{Left: left, Right: right, Advance: advance})
}

// Geometries returns the glyphs in load order.
// The slice is shared; Layout writes the plane and atlas quads through it.
func (f *FontGeometry) Geometries() []GlyphGeometry {
	return f.glyphs
}

// Len returns the number of glyphs.
func (f *FontGeometry) Len() int {
	return len(f.glyphs)
}

// Name implements txf.FontSource.
func (f *FontGeometry) Name() string {
	return f.name
}

// Metrics implements txf.FontSource.
func (f *FontGeometry) Metrics() txf.Metrics {
	return f.metrics
}

// Kerning implements txf.FontSource.
func (f *FontGeometry) Kerning() []txf.KernPair {
	return f.kerning
}

// Glyphs implements txf.FontSource.
func (f *FontGeometry) Glyphs() []txf.Glyph {
	out := make([]txf.Glyph, len(f.glyphs))
	for i := range f.glyphs {
		out[i] = f.glyphs[i].export()
	}
	return out
}

// Glyph implements txf.FontSource.
func (f *FontGeometry) Glyph(index int) (txf.Glyph, bool) {
	i, ok := f.index[index]
	if !ok {
		return txf.Glyph{}, false
	}
	return f.glyphs[i].export(), true
}

func (g *GlyphGeometry) export() txf.Glyph {
	return txf.Glyph{
		Codepoint:   g.Codepoint,
		Advance:     g.Advance,
		PlaneBounds: g.Plane,
		AtlasBounds: g.Atlas,
	}
}
