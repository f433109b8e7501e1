package txf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Decode reads a TXF file. The byte order must match the one the file was
// encoded with (WithByteOrder).
//
// The last glyph slot must be used. The first one may be empty only when
// the range starts at U+0000, which other writers produce for fonts with a
// glyph mapped to codepoint 0.
func Decode(r io.Reader, opts ...Option) (*File, error) {
	o := buildOptions(opts)
	f := &File{}

	if err := readFull(r, o.order, &f.Header); err != nil {
		return nil, err
	}

	if n := int(f.Header.GlyphCount); n > 0 {
		f.Glyphs = make([]GlyphRecord, n)
		if err := readFull(r, o.order, f.Glyphs); err != nil {
			return nil, err
		}
		if !f.Glyphs[n-1].Used() {
			return nil, &FormatError{Field: "glyphs", Reason: "last slot must be used"}
		}
		low := int(f.Glyphs[n-1].Codepoint) - n + 1
		if first := f.Glyphs[0]; low < 0 || (first.Used() && int(first.Codepoint) != low) || (!first.Used() && low != 0) {
			return nil, &FormatError{Field: "glyphs", Reason: "glyph count does not match codepoint range"}
		}
	}

	if f.Header.KernOffset == 0 {
		return f, nil
	}

	if want := KernOffsetWords(len(f.Glyphs)); int(f.Header.KernOffset) != want {
		return nil, &FormatError{
			Field:  "header",
			Reason: fmt.Sprintf("kerning offset %d, want %d", f.Header.KernOffset, want),
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || len(data)%4 != 0 {
		return nil, &FormatError{Field: "kerning", Reason: fmt.Sprintf("%d bytes is not a word table", len(data))}
	}
	f.Kern = make([]uint32, len(data)/4)
	for i := range f.Kern {
		f.Kern[i] = o.order.Uint32(data[4*i:])
	}
	if f.Kern[len(f.Kern)-1] != 0 {
		return nil, &FormatError{Field: "kerning", Reason: "missing terminator"}
	}

	for _, g := range f.Glyphs {
		if int(g.KernIndex) >= len(f.Kern) {
			return nil, &FormatError{
				Field:  "glyphs",
				Reason: fmt.Sprintf("kerning index %d of U+%04X out of range", g.KernIndex, g.Codepoint),
			}
		}
	}

	return f, nil
}

func readFull(r io.Reader, order binary.ByteOrder, data any) error {
	err := binary.Read(r, order, data)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
