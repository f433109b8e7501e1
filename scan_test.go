package txf

import "testing"

func TestScanRange(t *testing.T) {
	tests := []struct {
		name   string
		codes  []rune
		want   CodeRange
		wantOK bool
	}{
		{"single", []rune{'A'}, CodeRange{'A', 'A'}, true},
		{"unordered", []rune{'C', 'A', 'B'}, CodeRange{'A', 'C'}, true},
		{"gap", []rune{0x20, 0x410}, CodeRange{0x20, 0x410}, true},
		{"skips above bmp", []rune{'a', 0x1F600, 'z'}, CodeRange{'a', 'z'}, true},
		{"skips zero", []rune{0, 'x'}, CodeRange{'x', 'x'}, true},
		{"skips negative", []rune{-5, 'x'}, CodeRange{'x', 'x'}, true},
		{"bmp edge", []rune{0xFFFF, 0x10000}, CodeRange{0xFFFF, 0xFFFF}, true},
		{"only above bmp", []rune{0x10000, 0x1F600}, CodeRange{}, false},
		{"empty", nil, CodeRange{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyphs := make([]Glyph, len(tt.codes))
			for i, c := range tt.codes {
				glyphs[i] = Glyph{Codepoint: c}
			}
			got, ok := ScanRange(glyphs)
			if ok != tt.wantOK {
				t.Fatalf("ScanRange() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ScanRange() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCodeRange(t *testing.T) {
	r := CodeRange{Low: 'A', High: 'C'}
	if r.Count() != 3 {
		t.Errorf("Count() = %d, want 3", r.Count())
	}
	if !r.Contains('B') || r.Contains('@') || r.Contains('D') {
		t.Error("Contains() boundaries wrong")
	}
	if r.Slot('C') != 2 {
		t.Errorf("Slot('C') = %d, want 2", r.Slot('C'))
	}

	full := CodeRange{Low: 1, High: 0xFFFF}
	if full.Count() != 0xFFFF {
		t.Errorf("full range Count() = %d, want %d", full.Count(), 0xFFFF)
	}
}
