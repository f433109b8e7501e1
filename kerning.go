package txf

import (
	"cmp"
	"math"
	"slices"
)

// kernEntry is a kerning pair resolved to codepoints.
type kernEntry struct {
	left, right rune
	advance     float32
}

// resolveKerning maps the font's kerning pairs to codepoints and drops
// pairs the table cannot represent: unresolvable or unmapped glyphs, left
// codepoints above MaxCodepoint and right codepoints above r.High.
func resolveKerning(src FontSource, r CodeRange) []kernEntry {
	pairs := src.Kerning()
	entries := make([]kernEntry, 0, len(pairs))
	for _, p := range pairs {
		gl, okL := src.Glyph(p.Left)
		gr, okR := src.Glyph(p.Right)
		if !okL || !okR || gl.Codepoint <= 0 || gr.Codepoint <= 0 {
			continue
		}
		if gl.Codepoint > MaxCodepoint || gr.Codepoint > rune(r.High) {
			continue
		}
		entries = append(entries, kernEntry{
			left:    gl.Codepoint,
			right:   gr.Codepoint,
			advance: float32(p.Advance),
		})
	}
	return entries
}

// BuildKernTable flattens the kerning pairs of src into the word table and
// stores each left glyph's run index into its record in table.
//
// Layout: one run per left codepoint in ascending order, each run a zero
// placeholder word followed by (right codepoint, advance bits) pairs in
// ascending right order, and a single zero word closing the table.
// Duplicate pairs are kept. A nil table means the font has no
// representable kerning.
//
// If a run index does not fit in 16 bits, every KernIndex is reset and
// ErrKernOverflow is returned.
func BuildKernTable(src FontSource, table []GlyphRecord, r CodeRange) ([]uint32, error) {
	entries := resolveKerning(src, r)
	if len(entries) == 0 {
		return nil, nil
	}

	slices.SortStableFunc(entries, func(a, b kernEntry) int {
		if c := cmp.Compare(a.left, b.left); c != 0 {
			return c
		}
		return cmp.Compare(a.right, b.right)
	})

	words := make([]uint32, 0, 2*len(entries)+2)
	cur := rune(-1)
	for _, e := range entries {
		if e.left != cur {
			cur = e.left
			words = append(words, 0)

			index := len(words)
			if index > math.MaxUint16 {
				clearKernIndex(table)
				return nil, ErrKernOverflow
			}
			if r.Contains(cur) {
				if rec := &table[r.Slot(cur)]; rec.Codepoint == uint16(cur) {
					rec.KernIndex = uint16(index)
				}
			}
		}
		words = append(words, uint32(e.right), math.Float32bits(e.advance))
	}
	words = append(words, 0)

	return words, nil
}

// KernOffsetWords returns the word offset of the kerning table in a file
// with glyphCount glyph records.
func KernOffsetWords(glyphCount int) int {
	return (HeaderSize + glyphCount*GlyphRecordSize) / 4
}

func clearKernIndex(table []GlyphRecord) {
	for i := range table {
		table[i].KernIndex = 0
	}
}
