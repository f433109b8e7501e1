package txf

import (
	"errors"
	"math"
)

// File is the in-memory form of one TXF file. Build produces it from a
// font, Decode reads it back.
type File struct {
	Header Header

	// Glyphs is the dense glyph array indexed by codepoint - Range().Low.
	Glyphs []GlyphRecord

	// Kern is the flattened kerning table, nil when the file has none.
	Kern []uint32
}

// Build runs the range scan, the glyph table and (when cfg.Kerning is set)
// the kerning table for one font. The configuration must be valid.
//
// A font without eligible glyphs yields a header-only file. Kerning that
// cannot be addressed with 16-bit offsets is dropped; both cases are
// logged as warnings.
func Build(src FontSource, cfg Config) *File {
	m := src.Metrics()
	f := &File{
		Header: Header{
			AtlasWidth:  uint16(cfg.AtlasWidth),
			AtlasHeight: uint16(cfg.AtlasHeight),
			FontSize:    float32(cfg.FontSize),
			PixelRange:  float32(cfg.PixelRange),
			LineHeight:  float32(m.LineHeight),
			Ascender:    float32(m.Ascender),
			Descender:   float32(m.Descender),
		},
	}

	glyphs := src.Glyphs()
	r, ok := ScanRange(glyphs)
	if !ok {
		fontLogger(src).Warn("txf: font has no eligible glyphs", "glyphs", len(glyphs))
		return f
	}

	f.Header.GlyphCount = uint16(r.Count())
	f.Glyphs = BuildGlyphTable(glyphs, r, cfg.AtlasWidth, cfg.AtlasHeight, cfg.YDirection)

	if !cfg.Kerning {
		return f
	}

	offset := KernOffsetWords(len(f.Glyphs))
	kern, err := BuildKernTable(src, f.Glyphs, r)
	if err == nil && len(kern) > 0 && offset > math.MaxUint16 {
		clearKernIndex(f.Glyphs)
		kern, err = nil, ErrKernOverflow
	}
	if err != nil {
		if errors.Is(err, ErrKernOverflow) {
			fontLogger(src).Warn("txf: kerning table dropped", "glyphs", len(f.Glyphs), "err", err)
		}
		return f
	}
	if len(kern) > 0 {
		f.Kern = kern
		f.Header.KernOffset = uint16(offset)
	}

	return f
}

// Range returns the codepoint range of the glyph array, derived from the
// last slot. ok is false for a file without glyphs.
func (f *File) Range() (r CodeRange, ok bool) {
	n := len(f.Glyphs)
	if n == 0 {
		return CodeRange{}, false
	}
	high := f.Glyphs[n-1].Codepoint
	return CodeRange{Low: high - uint16(n-1), High: high}, true
}

// Lookup returns the record of codepoint c.
func (f *File) Lookup(c rune) (GlyphRecord, bool) {
	r, ok := f.Range()
	if !ok || !r.Contains(c) {
		return GlyphRecord{}, false
	}
	rec := f.Glyphs[r.Slot(c)]
	if !rec.Used() {
		return GlyphRecord{}, false
	}
	return rec, true
}

// Kerning returns the adjustment between left and right, walking the run
// of the left glyph up to the next zero codepoint word. Duplicate pairs
// resolve to the first one.
func (f *File) Kerning(left, right rune) (float32, bool) {
	rec, ok := f.Lookup(left)
	if !ok || rec.KernIndex == 0 || right <= 0 {
		return 0, false
	}

	for i := int(rec.KernIndex); i+1 < len(f.Kern); i += 2 {
		code := rune(f.Kern[i])
		if code == 0 || code > right {
			break
		}
		if code == right {
			return math.Float32frombits(f.Kern[i+1]), true
		}
	}
	return 0, false
}

// Size returns the encoded size of the file in bytes.
func (f *File) Size() int {
	return HeaderSize + len(f.Glyphs)*GlyphRecordSize + 4*len(f.Kern)
}
