package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"

	"github.com/pterm/pterm"

	"github.com/gogpu/txf"
)

// dump prints the header and the used glyph slots of a TXF file.
func dump(w io.Writer, path, endian string) error {
	order, err := parseEndian(endian)
	if err != nil {
		return err
	}
	r, err := os.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	f, err := txf.Decode(bufio.NewReader(r), txf.WithByteOrder(order))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	h := f.Header
	fmt.Fprintf(w, "%s: %d bytes\n", path, f.Size())
	fmt.Fprintf(w, "atlas       %dx%d\n", h.AtlasWidth, h.AtlasHeight)
	fmt.Fprintf(w, "font size   %g px, range %g px\n", h.FontSize, h.PixelRange)
	fmt.Fprintf(w, "metrics     line height %g, ascender %g, descender %g\n", h.LineHeight, h.Ascender, h.Descender)
	if cr, ok := f.Range(); ok {
		fmt.Fprintf(w, "codepoints  U+%04X-U+%04X, %d slots\n", cr.Low, cr.High, h.GlyphCount)
	}
	fmt.Fprintf(w, "kerning     %d words at word offset %d\n", len(f.Kern), h.KernOffset)

	data := [][]string{{"Codepoint", "Char", "Advance", "Plane", "Texture", "Kerning"}}
	for _, g := range f.Glyphs {
		if !g.Used() {
			continue
		}
		data = append(data, []string{
			fmt.Sprintf("U+%04X", g.Codepoint),
			printable(rune(g.Codepoint)),
			strconv.FormatFloat(float64(g.Advance), 'f', 4, 32),
			quad(g.PlaneBounds),
			quad(g.TexBounds),
			strconv.Itoa(kernPairs(f, g)),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(w).Render()
}

func printable(r rune) string {
	if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
		return string(r)
	}
	return ""
}

func quad(q [4]float32) string {
	return fmt.Sprintf("%.4f %.4f %.4f %.4f", q[0], q[1], q[2], q[3])
}

// kernPairs counts the pairs of the run starting at the glyph's KernIndex.
func kernPairs(f *txf.File, g txf.GlyphRecord) int {
	if g.KernIndex == 0 {
		return 0
	}
	n := 0
	for i := int(g.KernIndex); i+1 < len(f.Kern) && f.Kern[i] != 0; i += 2 {
		n++
	}
	return n
}
