// Package txf writes and reads TXF font atlas files.
//
// # Overview
//
// A TXF file describes a multi-channel signed distance field font atlas for
// a runtime text renderer. It holds the font metrics, a dense glyph table
// covering one contiguous range of 16-bit codepoints, and an optional
// kerning table. The atlas image itself is stored separately.
//
// # Quick Start
//
//	import "github.com/gogpu/txf"
//
//	cfg := txf.DefaultConfig()
//	cfg.AtlasWidth, cfg.AtlasHeight = 512, 512
//
//	// fonts implement txf.FontSource, see package geometry
//	if err := txf.Export(fonts, cfg, "atlas.txf"); err != nil {
//	    log.Fatal(err)
//	}
//
// # File Layout
//
// All fields use the encoder's byte order (little-endian by default) and
// are packed without padding:
//
//	Header (28 bytes)
//	  u16 atlasWidth, atlasHeight, glyphCount, kernOffsetWords
//	  f32 fontSize, pixelRange, lineHeight, ascender, descender
//
//	GlyphRecord[glyphCount] (40 bytes each, slot = codepoint - lowCode)
//	  u16 codepoint       0 = unused slot
//	  u16 kernRunIndex    word index into the kerning table, 0 = none
//	  f32 advance
//	  f32 planeBounds[4]  left, bottom, right, top in em units
//	  f32 texBounds[4]    left, bottom, right, top normalized to [0, 1]
//
//	Kerning table (only if kernOffsetWords != 0), u32 words:
//	  per left glyph: 0, (rightCodepoint, float32 bits of advance)...
//	  terminated by a single 0
//
// kernOffsetWords is the offset of the kerning table from the start of the
// file in 32-bit words. A reader finds the kerning pairs of a glyph by
// starting at its kernRunIndex and reading pairs until a zero codepoint.
//
// # Dropped Data
//
// Glyphs above U+FFFF and kerning pairs that cannot be represented are
// dropped without error. A font without any eligible glyph produces a
// header-only file.
package txf
