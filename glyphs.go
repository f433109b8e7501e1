package txf

// BuildGlyphTable allocates the dense glyph array for r and fills one slot
// per eligible glyph. Texture bounds are divided by the atlas dimensions;
// with YTopDown the vertical coordinates are measured from the top edge.
// KernIndex is left at 0. Later glyphs overwrite earlier ones with the same
// codepoint.
func BuildGlyphTable(glyphs []Glyph, r CodeRange, atlasWidth, atlasHeight int, dir YDirection) []GlyphRecord {
	table := make([]GlyphRecord, r.Count())
	aw := float64(atlasWidth)
	ah := float64(atlasHeight)

	for _, g := range glyphs {
		if !eligible(g.Codepoint) || !r.Contains(g.Codepoint) {
			continue
		}

		a := g.AtlasBounds
		if dir == YTopDown {
			a.Bottom = ah - a.Bottom
			a.Top = ah - a.Top
		}

		p := g.PlaneBounds
		table[r.Slot(g.Codepoint)] = GlyphRecord{
			Codepoint: uint16(g.Codepoint),
			Advance:   float32(g.Advance),
			PlaneBounds: [4]float32{
				float32(p.Left), float32(p.Bottom), float32(p.Right), float32(p.Top),
			},
			TexBounds: [4]float32{
				float32(a.Left / aw), float32(a.Bottom / ah), float32(a.Right / aw), float32(a.Top / ah),
			},
		}
	}

	return table
}
