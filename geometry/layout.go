package geometry

import (
	"fmt"
	"math"

	"github.com/gogpu/txf"
	"github.com/gogpu/txf/internal/pack"
)

// LayoutConfig holds the atlas layout parameters.
type LayoutConfig struct {
	// FontSize is the glyph scale in atlas pixels per em.
	FontSize float64

	// PixelRange is the distance field range in atlas pixels.
	// Every glyph box grows by half of it on each side.
	PixelRange float64

	// Padding is the number of empty pixels between glyph boxes.
	Padding int

	// Width and Height fix the atlas size. When both are zero Layout picks
	// the smallest power-of-two square that fits.
	Width  int
	Height int
}

// DefaultLayoutConfig returns the default layout parameters.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		FontSize:   32,
		PixelRange: 2,
		Padding:    1,
	}
}

// Validate checks if the configuration is valid.
func (c LayoutConfig) Validate() error {
	if c.FontSize <= 0 {
		return &LayoutConfigError{Field: "FontSize", Reason: "must be positive"}
	}
	if c.PixelRange < 0 {
		return &LayoutConfigError{Field: "PixelRange", Reason: "must be non-negative"}
	}
	if c.Padding < 0 {
		return &LayoutConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if (c.Width == 0) != (c.Height == 0) {
		return &LayoutConfigError{Field: "Width", Reason: "width and height must be set together"}
	}
	if c.Width < 0 || c.Width > math.MaxUint16 {
		return &LayoutConfigError{Field: "Width", Reason: "must be between 1 and 65535"}
	}
	if c.Height < 0 || c.Height > math.MaxUint16 {
		return &LayoutConfigError{Field: "Height", Reason: "must be between 1 and 65535"}
	}
	return nil
}

// Atlas is the size of a laid out atlas in pixels.
type Atlas struct {
	Width  int
	Height int
}

// Layout packs the glyphs of all fonts into one shared atlas and assigns
// every glyph its plane quad (em units) and atlas quad (pixels, origin at
// the bottom-left). Whitespace glyphs get empty quads.
func Layout(fonts []*FontGeometry, cfg LayoutConfig) (Atlas, error) {
	if err := cfg.Validate(); err != nil {
		return Atlas{}, err
	}

	type ref struct{ font, glyph int }
	var (
		refs  []ref
		sizes []pack.Size
	)
	for fi, f := range fonts {
		for gi := range f.glyphs {
			g := &f.glyphs[gi]
			g.Plane, g.Atlas = txf.Bounds{}, txf.Bounds{}
			if g.IsWhitespace() {
				continue
			}
			refs = append(refs, ref{fi, gi})
			sizes = append(sizes, boxSize(g.Shape, cfg))
		}
	}

	res, err := pack.Fit(sizes, cfg.Padding, cfg.Width, cfg.Height)
	if err != nil {
		return Atlas{}, fmt.Errorf("geometry: layout of %d glyphs: %w", len(sizes), err)
	}

	for i, r := range refs {
		g := &fonts[r.font].glyphs[r.glyph]
		g.Plane, g.Atlas = placeGlyph(g.Shape, sizes[i], res.Points[i], cfg)
	}

	txf.Logger().Debug("geometry: atlas laid out",
		"fonts", len(fonts),
		"boxes", len(sizes),
		"width", res.Width,
		"height", res.Height,
		"rows", res.Rows,
		"utilization", res.Utilization,
	)
	return Atlas{Width: res.Width, Height: res.Height}, nil
}

// boxSize returns the pixel box of a glyph shape grown by the pixel range.
func boxSize(shape txf.Bounds, cfg LayoutConfig) pack.Size {
	return pack.Size{
		W: int(math.Ceil(shape.Width()*cfg.FontSize + cfg.PixelRange)),
		H: int(math.Ceil(shape.Height()*cfg.FontSize + cfg.PixelRange)),
	}
}

// placeGlyph centers the shape in its box and maps the box both ways.
// Both quads are inset by half a pixel so that they address texel centers.
func placeGlyph(shape txf.Bounds, box pack.Size, at pack.Point, cfg LayoutConfig) (plane, atlas txf.Bounds) {
	scale := cfg.FontSize
	slackX := (float64(box.W) - shape.Width()*scale) / 2 / scale
	slackY := (float64(box.H) - shape.Height()*scale) / 2 / scale
	inset := 0.5 / scale

	plane = txf.Bounds{
		Left:   shape.Left - slackX + inset,
		Bottom: shape.Bottom - slackY + inset,
		Right:  shape.Right + slackX - inset,
		Top:    shape.Top + slackY - inset,
	}
	atlas = txf.Bounds{
		Left:   float64(at.X) + 0.5,
		Bottom: float64(at.Y) + 0.5,
		Right:  float64(at.X+box.W) - 0.5,
		Top:    float64(at.Y+box.H) - 0.5,
	}
	return plane, atlas
}
