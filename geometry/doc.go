// Package geometry produces the glyph geometry a TXF file is built from.
//
// A FontGeometry holds, per glyph, the codepoint, the advance and the
// glyph shape bounds in em units, plus the plane and atlas quads assigned
// by Layout. It implements txf.FontSource.
//
// Fonts are loaded with golang.org/x/image/font/sfnt. Kerning comes either
// from the font's pair tables (GPOS pair adjustment or the legacy kern
// table) or from measuring glyph pairs with the HarfBuzz shaper of
// github.com/go-text/typesetting, which also picks up contextual
// positioning. Layouts written by msdf-atlas-gen as JSON can be loaded with
// LoadLayoutJSON.
//
// # Usage
//
//	cs, _ := geometry.ParseCharset("ascii")
//	font, err := geometry.LoadFont(data, cs, geometry.WithKerning(geometry.KerningShaped))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	atlas, err := geometry.Layout([]*geometry.FontGeometry{font}, geometry.DefaultLayoutConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := txf.DefaultConfig()
//	cfg.AtlasWidth, cfg.AtlasHeight = atlas.Width, atlas.Height
//	err = txf.Export([]txf.FontSource{font}, cfg, "font.txf")
package geometry
