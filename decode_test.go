package txf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func encode(t *testing.T, f *File) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(f); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	if buf.Len() != f.Size() {
		t.Fatalf("encoded %d bytes, Size() = %d", buf.Len(), f.Size())
	}
	return buf.Bytes()
}

func kernedFont() *testFont {
	src := abcFont()
	src.glyphs = append(src.glyphs, Glyph{Codepoint: 'E', Advance: 0.5})
	src.kern = []KernPair{
		{Left: 0, Right: 1, Advance: -0.05}, // A B
		{Left: 0, Right: 3, Advance: -0.1},  // A E
		{Left: 2, Right: 0, Advance: 0.02},  // C A
	}
	return src
}

func TestDecodeRoundTrip(t *testing.T) {
	want := Build(kernedFont(), testConfig())
	got, err := Decode(bytes.NewReader(encode(t, want)))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFileLookup(t *testing.T) {
	f := Build(kernedFont(), testConfig())

	r, ok := f.Range()
	if !ok || r != (CodeRange{'A', 'E'}) {
		t.Fatalf("Range() = %+v, %v, want A-E", r, ok)
	}

	tests := []struct {
		c    rune
		want bool
	}{
		{'A', true},
		{'C', true},
		{'D', false}, // unused slot
		{'E', true},
		{'@', false},
		{'F', false},
		{-1, false},
	}
	for _, tt := range tests {
		rec, ok := f.Lookup(tt.c)
		if ok != tt.want {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.c, ok, tt.want)
		}
		if ok && rune(rec.Codepoint) != tt.c {
			t.Errorf("Lookup(%q) = U+%04X", tt.c, rec.Codepoint)
		}
	}
}

func TestFileKerning(t *testing.T) {
	f := Build(kernedFont(), testConfig())

	tests := []struct {
		left, right rune
		want        float32
		wantOK      bool
	}{
		{'A', 'B', -0.05, true},
		{'A', 'E', -0.1, true},
		{'C', 'A', 0.02, true},
		{'A', 'C', 0, false},
		{'B', 'A', 0, false},
		{'E', 'A', 0, false},
		{'Z', 'A', 0, false},
		{'A', 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := f.Kerning(tt.left, tt.right)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Kerning(%q, %q) = %v, %v, want %v, %v", tt.left, tt.right, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := encode(t, Build(kernedFont(), testConfig()))
	for _, n := range []int{0, 10, HeaderSize, HeaderSize + GlyphRecordSize + 3} {
		_, err := Decode(bytes.NewReader(data[:n]))
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("Decode(%d bytes) = %v, want ErrTruncated", n, err)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	valid := Build(kernedFont(), testConfig())

	tests := []struct {
		name   string
		mutate func(data []byte) []byte
	}{
		{
			name: "kern offset",
			mutate: func(data []byte) []byte {
				binary.LittleEndian.PutUint16(data[6:], 3)
				return data
			},
		},
		{
			name: "missing terminator",
			mutate: func(data []byte) []byte {
				return data[:len(data)-4]
			},
		},
		{
			name: "partial word",
			mutate: func(data []byte) []byte {
				return append(data, 0)
			},
		},
		{
			name: "kern index out of range",
			mutate: func(data []byte) []byte {
				binary.LittleEndian.PutUint16(data[HeaderSize+2:], 500)
				return data
			},
		},
		{
			name: "unused first slot above U+0000",
			mutate: func(data []byte) []byte {
				binary.LittleEndian.PutUint16(data[HeaderSize:], 0)
				return data
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(encode(t, valid))
			_, err := Decode(bytes.NewReader(data))
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Errorf("Decode() = %v, want *FormatError", err)
			}
		})
	}
}

func TestDecodeRangeFromZero(t *testing.T) {
	// Slot 0 stands for U+0000 and stays empty.
	glyphs := make([]GlyphRecord, 'B'+1)
	glyphs['A'] = GlyphRecord{Codepoint: 'A', Advance: 0.6}
	glyphs['B'] = GlyphRecord{Codepoint: 'B', Advance: 0.6}
	want := &File{
		Header: Header{AtlasWidth: 64, AtlasHeight: 64, GlyphCount: uint16(len(glyphs))},
		Glyphs: glyphs,
	}

	got, err := Decode(bytes.NewReader(encode(t, want)))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if r, ok := got.Range(); !ok || r != (CodeRange{0, 'B'}) {
		t.Errorf("Range() = %+v, %v, want U+0000-B", r, ok)
	}
	if rec, ok := got.Lookup('A'); !ok || rec.Codepoint != 'A' {
		t.Errorf("Lookup(A) = %+v, %v", rec, ok)
	}
	if _, ok := got.Lookup(0); ok {
		t.Error("Lookup(0) found the empty slot")
	}
}

func TestEncodeInconsistentFile(t *testing.T) {
	f := Build(abcFont(), testConfig())
	f.Header.GlyphCount = 7

	var ferr *FormatError
	if err := NewEncoder(&bytes.Buffer{}).Encode(f); !errors.As(err, &ferr) {
		t.Errorf("Encode() = %v, want *FormatError", err)
	}

	f = Build(abcFont(), testConfig())
	f.Kern = []uint32{0, 'B', math.Float32bits(1), 0}
	if err := NewEncoder(&bytes.Buffer{}).Encode(f); !errors.As(err, &ferr) {
		t.Errorf("Encode() without offset = %v, want *FormatError", err)
	}
}
