package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/txf"
)

func writeFont(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodeFile(t *testing.T, path string, order binary.ByteOrder) *txf.File {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	f, err := txf.Decode(bytes.NewReader(data), txf.WithByteOrder(order))
	if err != nil {
		t.Fatalf("Decode(%s) = %v", path, err)
	}
	return f
}

func TestRunFont(t *testing.T) {
	dir := t.TempDir()
	font := writeFont(t, dir, "Go-Regular.ttf", goregular.TTF)
	out := filepath.Join(dir, "go.txf")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-font", font, "-o", out, "-size", "24", "-charset", "0x41-0x5A"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "export complete") {
		t.Errorf("missing completion log:\n%s", stderr.String())
	}

	f := decodeFile(t, out, binary.LittleEndian)
	if f.Header.GlyphCount != 26 {
		t.Errorf("GlyphCount = %d, want 26", f.Header.GlyphCount)
	}
	if f.Header.FontSize != 24 {
		t.Errorf("FontSize = %v, want 24", f.Header.FontSize)
	}
	if w := f.Header.AtlasWidth; w < 64 || w&(w-1) != 0 {
		t.Errorf("AtlasWidth = %d, want a power of two >= 64", w)
	}
}

func TestRunKernedFont(t *testing.T) {
	font := filepath.Join("..", "..", "geometry", "testdata", "Roboto-Regular.ttf")
	out := filepath.Join(t.TempDir(), "roboto.txf")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-font", font, "-o", out, "-kerning", "-charset", "'A','V','W','o'"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}

	f := decodeFile(t, out, binary.LittleEndian)
	if want := uint16(txf.KernOffsetWords(len(f.Glyphs))); f.Header.KernOffset != want {
		t.Errorf("KernOffset = %d, want %d", f.Header.KernOffset, want)
	}
	if f.Header.KernOffset == 0 {
		t.Fatal("no kerning table written")
	}
	av, ok := f.Kerning('A', 'V')
	if !ok {
		t.Fatal("Kerning(A, V) not found")
	}
	if av >= 0 {
		t.Errorf("Kerning(A, V) = %v, want negative", av)
	}
}

func TestRunMultipleFonts(t *testing.T) {
	dir := t.TempDir()
	regular := writeFont(t, dir, "regular.ttf", goregular.TTF)
	bold := writeFont(t, dir, "bold.ttf", gobold.TTF)
	out := filepath.Join(dir, "out.txf")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-font", regular, "-font", bold, "-o", out, "-dimensions", "512x256", "-endian", "big"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}

	for _, name := range []string{"out-Go Regular.txf", "out-Go Bold.txf"} {
		f := decodeFile(t, filepath.Join(dir, name), binary.BigEndian)
		if f.Header.AtlasWidth != 512 || f.Header.AtlasHeight != 256 {
			t.Errorf("%s: atlas %dx%d, want 512x256", name, f.Header.AtlasWidth, f.Header.AtlasHeight)
		}
	}
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "atlas.json")
	const doc = `{
	  "atlas": {"type": "msdf", "distanceRange": 4, "size": 40, "width": 64, "height": 64, "yOrigin": "top"},
	  "metrics": {"emSize": 1, "lineHeight": 1.2, "ascender": -0.9, "descender": 0.2},
	  "glyphs": [
	    {"unicode": 65, "advance": 0.6,
	     "planeBounds": {"left": 0, "bottom": 0, "right": 0.6, "top": -0.7},
	     "atlasBounds": {"left": 0.5, "bottom": 31.5, "right": 24.5, "top": 0.5}}
	  ]
	}`
	if err := os.WriteFile(layout, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "atlas.txf")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-json", layout, "-o", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}

	f := decodeFile(t, out, binary.LittleEndian)
	if f.Header.FontSize != 40 || f.Header.PixelRange != 4 || f.Header.Ascender != 0.9 {
		t.Errorf("header = %+v", f.Header)
	}
	a, ok := f.Lookup('A')
	if !ok {
		t.Fatal("Lookup(A) failed")
	}
	// Bottom-up texture coordinates: the glyph sits in the upper half.
	if a.TexBounds[1] < 0.5 || a.TexBounds[3] <= a.TexBounds[1] {
		t.Errorf("TexBounds = %v", a.TexBounds)
	}
}

func TestRunDump(t *testing.T) {
	dir := t.TempDir()
	font := writeFont(t, dir, "Go-Regular.ttf", goregular.TTF)
	out := filepath.Join(dir, "go.txf")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-font", font, "-o", out, "-charset", "'A','V'"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}

	stdout.Reset()
	if code := run([]string{"-dump", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-dump) = %d, stderr:\n%s", code, stderr.String())
	}
	for _, want := range []string{"U+0041-U+0056", "U+0041", "U+0056"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("dump output lacks %q:\n%s", want, stdout.String())
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	font := writeFont(t, dir, "Go-Regular.ttf", goregular.TTF)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no input", nil, 2},
		{"unknown flag", []string{"-nope"}, 2},
		{"help", []string{"-h"}, 0},
		{"bad charset", []string{"-font", font, "-charset", "0x50-0x40", "-o", filepath.Join(dir, "a.txf")}, 1},
		{"bad dimensions", []string{"-font", font, "-dimensions", "64", "-o", filepath.Join(dir, "b.txf")}, 1},
		{"atlas too small", []string{"-font", font, "-dimensions", "8x8", "-o", filepath.Join(dir, "c.txf")}, 1},
		{"bad y origin", []string{"-font", font, "-yorigin", "middle", "-o", filepath.Join(dir, "d.txf")}, 1},
		{"bad endian", []string{"-font", font, "-endian", "middle", "-o", filepath.Join(dir, "e.txf")}, 1},
		{"missing font", []string{"-font", filepath.Join(dir, "missing-font-file.ttf"), "-o", filepath.Join(dir, "f.txf")}, 1},
		{"unwritable output", []string{"-font", font, "-o", filepath.Join(dir, "no", "such", "dir.txf")}, 1},
		{"dump missing file", []string{"-dump", filepath.Join(dir, "missing.txf")}, 1},
		{"json and font", []string{"-font", font, "-json", "x.json"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := run(tt.args, &stdout, &stderr); got != tt.want {
				t.Errorf("run(%q) = %d, want %d, stderr:\n%s", tt.args, got, tt.want, stderr.String())
			}
		})
	}
}

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		in   string
		w, h int
		ok   bool
	}{
		{"512x256", 512, 256, true},
		{"64X64", 64, 64, true},
		{"64", 0, 0, false},
		{"0x64", 0, 0, false},
		{"ax64", 0, 0, false},
	}
	for _, tt := range tests {
		w, h, err := parseDimensions(tt.in)
		if (err == nil) != tt.ok || w != tt.w || h != tt.h {
			t.Errorf("parseDimensions(%q) = %d, %d, %v", tt.in, w, h, err)
		}
	}
}
