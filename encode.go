package txf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encoder writes TXF files to an output stream.
type Encoder struct {
	w     io.Writer
	order binary.ByteOrder
}

// NewEncoder returns an encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	o := buildOptions(opts)
	return &Encoder{w: w, order: o.order}
}

// Encode writes the header, the glyph array and the kerning table, in that
// order. Records are packed without padding. A section that is not written
// completely fails with a *WriteError.
func (e *Encoder) Encode(f *File) error {
	if int(f.Header.GlyphCount) != len(f.Glyphs) {
		return &FormatError{
			Field:  "header",
			Reason: fmt.Sprintf("glyph count %d, glyph array %d", f.Header.GlyphCount, len(f.Glyphs)),
		}
	}
	if (f.Header.KernOffset == 0) != (len(f.Kern) == 0) {
		return &FormatError{Field: "header", Reason: "kerning offset does not match kerning table"}
	}

	buf := make([]byte, 0, f.Size())

	buf, err := binary.Append(buf, e.order, f.Header)
	if err != nil {
		return err
	}
	if err := e.write(SectionHeader, buf); err != nil {
		return err
	}

	if len(f.Glyphs) > 0 {
		buf, err = binary.Append(buf[:0], e.order, f.Glyphs)
		if err != nil {
			return err
		}
		if err := e.write(SectionGlyphs, buf); err != nil {
			return err
		}
	}

	if len(f.Kern) > 0 {
		buf, err = binary.Append(buf[:0], e.order, f.Kern)
		if err != nil {
			return err
		}
		if err := e.write(SectionKerning, buf); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) write(section Section, buf []byte) error {
	n, err := e.w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &WriteError{Section: section, Err: err}
	}
	return nil
}
