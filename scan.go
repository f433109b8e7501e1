package txf

// CodeRange is the contiguous codepoint span covered by a glyph table.
type CodeRange struct {
	Low, High uint16
}

// Count returns the number of slots in the range.
func (r CodeRange) Count() int {
	return int(r.High) - int(r.Low) + 1
}

// Contains reports whether c falls inside the range.
func (r CodeRange) Contains(c rune) bool {
	return c >= rune(r.Low) && c <= rune(r.High)
}

// Slot returns the dense-array index of c. The caller checks Contains first.
func (r CodeRange) Slot(c rune) int {
	return int(c) - int(r.Low)
}

// eligible reports whether a codepoint can be stored in a glyph record.
// 0 marks unused slots and is never exported.
func eligible(c rune) bool {
	return c > 0 && c <= MaxCodepoint
}

// ScanRange returns the smallest range covering every eligible glyph.
// Glyphs above MaxCodepoint are skipped. ok is false when no glyph
// qualifies; the returned range is then meaningless.
func ScanRange(glyphs []Glyph) (r CodeRange, ok bool) {
	low, high := rune(MaxCodepoint), rune(0)
	for _, g := range glyphs {
		c := g.Codepoint
		if !eligible(c) {
			continue
		}
		ok = true
		low = min(low, c)
		high = max(high, c)
	}
	if !ok {
		return CodeRange{}, false
	}
	return CodeRange{Low: uint16(low), High: uint16(high)}, true
}
