package geometry

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/txf"
)

// LoadFont parses a TrueType or OpenType font and collects the geometry of
// every charset codepoint the font maps. Codepoints without a glyph are
// skipped. Glyph plane and atlas quads are left empty for Layout to fill.
func LoadFont(data []byte, cs Charset, opts ...LoadOption) (*FontGeometry, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if cs.Len() == 0 {
		return nil, ErrEmptyCharset
	}
	o := buildLoadOptions(opts)

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("geometry: failed to parse font: %w", err)
	}
	p := &sfntFont{font: f, upem: float64(f.UnitsPerEm())}
	// Sizing at one pixel per font unit keeps every value in font units.
	p.ppem = fixed.Int26_6(f.UnitsPerEm()) << 6

	name := o.name
	if name == "" {
		name = p.name()
	}
	fg := NewFontGeometry(name, p.metrics())

	var missing int
	for _, r := range cs.Runes() {
		g, ok := p.glyph(r)
		if !ok {
			missing++
			continue
		}
		fg.Add(g)
	}
	if fg.Len() == 0 {
		return nil, ErrNoGlyphs
	}

	switch o.kerning {
	case KerningTable:
		p.kerning(fg)
	case KerningShaped:
		if err := shapeKerning(data, fg); err != nil {
			return nil, err
		}
	}

	txf.Logger().Debug("geometry: font loaded",
		"font", name,
		"glyphs", fg.Len(),
		"missing", missing,
		"kerning", o.kerning.String(),
		"pairs", len(fg.kerning),
	)
	return fg, nil
}

// sfntFont reads glyph data through golang.org/x/image/font/sfnt.
type sfntFont struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6
	upem float64
}

func (p *sfntFont) name() string {
	if s, err := p.font.Name(&p.buf, sfnt.NameIDFull); err == nil && s != "" {
		return s
	}
	if s, err := p.font.Name(&p.buf, sfnt.NameIDFamily); err == nil {
		return s
	}
	return ""
}

func (p *sfntFont) metrics() txf.Metrics {
	m, err := p.font.Metrics(&p.buf, p.ppem, font.HintingNone)
	if err != nil {
		return txf.Metrics{}
	}
	return txf.Metrics{
		LineHeight: p.em(m.Height),
		Ascender:   p.em(m.Ascent),
		Descender:  -p.em(m.Descent),
	}
}

func (p *sfntFont) glyph(r rune) (GlyphGeometry, bool) {
	idx, err := p.font.GlyphIndex(&p.buf, r)
	if err != nil || idx == 0 {
		return GlyphGeometry{}, false
	}
	bounds, advance, err := p.font.GlyphBounds(&p.buf, idx, p.ppem, font.HintingNone)
	if err != nil {
		return GlyphGeometry{}, false
	}

	g := GlyphGeometry{
		Index:     int(idx),
		Codepoint: r,
		Advance:   p.em(advance),
	}
	// sfnt bounds grow downwards.
	if bounds.Max.X > bounds.Min.X && bounds.Max.Y > bounds.Min.Y {
		g.Shape = txf.Bounds{
			Left:   p.em(bounds.Min.X),
			Bottom: -p.em(bounds.Max.Y),
			Right:  p.em(bounds.Max.X),
			Top:    -p.em(bounds.Min.Y),
		}
	}
	return g, true
}

// kerning adds the pair adjustments of every loaded glyph pair.
func (p *sfntFont) kerning(fg *FontGeometry) {
	indices := uniqueIndices(fg)
	for _, l := range indices {
		for _, r := range indices {
			k, err := p.font.Kern(&p.buf, sfnt.GlyphIndex(l), sfnt.GlyphIndex(r), p.ppem, font.HintingNone)
			if err != nil {
				if !errors.Is(err, sfnt.ErrNotFound) {
					txf.Logger().Debug("geometry: kerning lookup failed", "left", l, "right", r, "err", err)
				}
				continue
			}
			fg.AddKerning(l, r, p.em(k))
		}
	}
}

func (p *sfntFont) em(v fixed.Int26_6) float64 {
	return float64(v) / 64 / p.upem
}

// uniqueIndices returns the distinct glyph indices of fg in load order.
func uniqueIndices(fg *FontGeometry) []int {
	seen := make(map[int]bool, fg.Len())
	var out []int
	for _, g := range fg.glyphs {
		if !seen[g.Index] {
			seen[g.Index] = true
			out = append(out, g.Index)
		}
	}
	return out
}
