package geometry

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// pairShaper measures glyph pairs with go-text/typesetting's HarfBuzz port.
// It is not safe for concurrent use.
type pairShaper struct {
	face   *font.Face
	shaper shaping.HarfbuzzShaper
	size   fixed.Int26_6
	upem   float64
	lang   language.Language
}

func newPairShaper(data []byte) (*pairShaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("geometry: failed to parse font for shaping: %w", err)
	}
	upem := float64(face.Upem())
	return &pairShaper{
		face: face,
		// Shaping at one pixel per font unit keeps advances in font units.
		size: fixed.Int26_6(face.Upem()) << 6,
		upem: upem,
		lang: language.NewLanguage("en"),
	}, nil
}

func (s *pairShaper) shape(runes ...rune) []shaping.Glyph {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      s.size,
		Script:    language.LookupScript(runes[0]),
		Language:  s.lang,
	}
	return s.shaper.Shape(input).Glyphs
}

// advance returns the shaped advance of a single rune.
func (s *pairShaper) advance(r rune) (fixed.Int26_6, bool) {
	glyphs := s.shape(r)
	if len(glyphs) != 1 {
		return 0, false
	}
	return glyphs[0].Advance, true
}

// kern returns the adjustment applied to the pair l r, in em units.
// Pairs that shape to anything but two glyphs (ligatures, decomposition)
// report false.
func (s *pairShaper) kern(l, r rune, single fixed.Int26_6) (float64, bool) {
	glyphs := s.shape(l, r)
	if len(glyphs) != 2 {
		return 0, false
	}
	k := glyphs[0].Advance - single + glyphs[1].XOffset
	return float64(k) / 64 / s.upem, true
}

// shapeKerning fills fg's kerning from the shaped advances of every pair of
// loaded glyphs. Each glyph index is measured once, through the first
// codepoint loaded for it.
func shapeKerning(data []byte, fg *FontGeometry) error {
	s, err := newPairShaper(data)
	if err != nil {
		return err
	}

	type sample struct {
		index   int
		r       rune
		advance fixed.Int26_6
	}
	var samples []sample
	seen := make(map[int]bool, fg.Len())
	for _, g := range fg.glyphs {
		if seen[g.Index] {
			continue
		}
		seen[g.Index] = true
		adv, ok := s.advance(g.Codepoint)
		if !ok {
			continue
		}
		samples = append(samples, sample{index: g.Index, r: g.Codepoint, advance: adv})
	}

	for _, l := range samples {
		for _, r := range samples {
			if k, ok := s.kern(l.r, r.r, l.advance); ok {
				fg.AddKerning(l.index, r.index, k)
			}
		}
	}
	return nil
}
