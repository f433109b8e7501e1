package geometry

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/txf"
)

// AtlasInfo describes the atlas a JSON layout was generated for.
type AtlasInfo struct {
	Atlas

	// Type is the distance field type, e.g. "msdf".
	Type string

	// FontSize is the glyph scale in atlas pixels per em.
	FontSize float64

	// PixelRange is the distance field range in atlas pixels.
	PixelRange float64

	// YDirection is the convention the layout was written in. Loaded
	// geometry is always converted to bottom-up.
	YDirection txf.YDirection
}

type jsonBounds struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
}

type jsonGlyph struct {
	Unicode     *int32      `json:"unicode"`
	Index       *int        `json:"index"`
	Advance     float64     `json:"advance"`
	PlaneBounds *jsonBounds `json:"planeBounds"`
	AtlasBounds *jsonBounds `json:"atlasBounds"`
}

type jsonKerning struct {
	Unicode1 *int32  `json:"unicode1"`
	Unicode2 *int32  `json:"unicode2"`
	Index1   *int    `json:"index1"`
	Index2   *int    `json:"index2"`
	Advance  float64 `json:"advance"`
}

type jsonMetrics struct {
	EmSize             float64 `json:"emSize"`
	LineHeight         float64 `json:"lineHeight"`
	Ascender           float64 `json:"ascender"`
	Descender          float64 `json:"descender"`
	UnderlineY         float64 `json:"underlineY"`
	UnderlineThickness float64 `json:"underlineThickness"`
}

type jsonAtlas struct {
	Type          string  `json:"type"`
	DistanceRange float64 `json:"distanceRange"`
	Size          float64 `json:"size"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	YOrigin       string  `json:"yOrigin"`
}

type jsonFont struct {
	Name    string        `json:"name"`
	Metrics jsonMetrics   `json:"metrics"`
	Glyphs  []jsonGlyph   `json:"glyphs"`
	Kerning []jsonKerning `json:"kerning"`
}

type jsonLayout struct {
	Atlas jsonAtlas `json:"atlas"`
	jsonFont
	Variants []jsonFont `json:"variants"`
}

// LoadLayoutJSON reads an atlas layout in the JSON format written by
// msdf-atlas-gen. A multi-font layout yields one FontGeometry per variant.
// Glyphs are identified by glyph index when the layout has one, by
// codepoint otherwise.
func LoadLayoutJSON(r io.Reader) ([]*FontGeometry, AtlasInfo, error) {
	var doc jsonLayout
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, AtlasInfo{}, fmt.Errorf("geometry: failed to decode layout: %w", err)
	}

	info := AtlasInfo{
		Atlas:      Atlas{Width: doc.Atlas.Width, Height: doc.Atlas.Height},
		Type:       doc.Atlas.Type,
		FontSize:   doc.Atlas.Size,
		PixelRange: doc.Atlas.DistanceRange,
	}
	switch doc.Atlas.YOrigin {
	case "", "bottom":
		info.YDirection = txf.YBottomUp
	case "top":
		info.YDirection = txf.YTopDown
	default:
		return nil, AtlasInfo{}, fmt.Errorf("%w: unknown yOrigin %q", ErrInvalidLayout, doc.Atlas.YOrigin)
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, AtlasInfo{}, fmt.Errorf("%w: atlas size %dx%d", ErrInvalidLayout, info.Width, info.Height)
	}

	variants := doc.Variants
	if len(variants) == 0 {
		variants = []jsonFont{doc.jsonFont}
	}

	fonts := make([]*FontGeometry, 0, len(variants))
	for i := range variants {
		fg, err := variants[i].geometry(info)
		if err != nil {
			return nil, AtlasInfo{}, fmt.Errorf("geometry: variant %d: %w", i, err)
		}
		fonts = append(fonts, fg)
	}
	return fonts, info, nil
}

func (jf *jsonFont) geometry(info AtlasInfo) (*FontGeometry, error) {
	if len(jf.Glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrInvalidLayout)
	}

	// Layouts written without em normalization are in scaled font units.
	em := 1.0
	if jf.Metrics.EmSize != 0 {
		em = jf.Metrics.EmSize
	}
	flip := info.YDirection == txf.YTopDown
	yFactor := 1.0
	if flip {
		yFactor = -1
	}

	fg := NewFontGeometry(jf.Name, txf.Metrics{
		LineHeight: jf.Metrics.LineHeight / em,
		Ascender:   yFactor * jf.Metrics.Ascender / em,
		Descender:  yFactor * jf.Metrics.Descender / em,
	})

	byCodepoint := make(map[int32]int, len(jf.Glyphs))
	for _, jg := range jf.Glyphs {
		if jg.Unicode == nil && jg.Index == nil {
			continue
		}
		g := GlyphGeometry{Advance: jg.Advance / em}
		if jg.Unicode != nil {
			g.Codepoint = rune(*jg.Unicode)
		}
		if jg.Index != nil {
			g.Index = *jg.Index
		} else {
			g.Index = int(g.Codepoint)
		}
		if _, ok := byCodepoint[int32(g.Codepoint)]; !ok && jg.Unicode != nil {
			byCodepoint[int32(g.Codepoint)] = g.Index
		}

		if b := jg.PlaneBounds; b != nil {
			g.Plane = txf.Bounds{
				Left:   b.Left / em,
				Bottom: yFactor * b.Bottom / em,
				Right:  b.Right / em,
				Top:    yFactor * b.Top / em,
			}
			g.Shape = g.Plane
		}
		if b := jg.AtlasBounds; b != nil {
			g.Atlas = txf.Bounds{Left: b.Left, Bottom: b.Bottom, Right: b.Right, Top: b.Top}
			if flip {
				h := float64(info.Height)
				g.Atlas.Bottom, g.Atlas.Top = h-b.Bottom, h-b.Top
			}
		}
		fg.Add(g)
	}

	for _, k := range jf.Kerning {
		left, right, ok := k.indices(byCodepoint)
		if !ok {
			continue
		}
		fg.AddKerning(left, right, k.Advance/em)
	}
	return fg, nil
}

// indices resolves a kerning entry to glyph indices.
func (k *jsonKerning) indices(byCodepoint map[int32]int) (left, right int, ok bool) {
	if k.Index1 != nil && k.Index2 != nil {
		return *k.Index1, *k.Index2, true
	}
	if k.Unicode1 == nil || k.Unicode2 == nil {
		return 0, 0, false
	}
	left, ok1 := byCodepoint[*k.Unicode1]
	right, ok2 := byCodepoint[*k.Unicode2]
	return left, right, ok1 && ok2
}
