package txf

// MaxCodepoint is the highest codepoint a TXF file can hold.
// Glyphs above it are dropped without error.
const MaxCodepoint = 0xFFFF

// On-disk sizes of the fixed-layout records, in bytes.
const (
	HeaderSize      = 28
	GlyphRecordSize = 40
)

// Header is the fixed-size record at the start of every TXF file.
type Header struct {
	AtlasWidth  uint16
	AtlasHeight uint16

	// GlyphCount is the length of the dense glyph array (High - Low + 1).
	GlyphCount uint16

	// KernOffset is the offset of the kerning table in 32-bit words from
	// the start of the file. 0 means the file has no kerning table.
	KernOffset uint16

	FontSize   float32
	PixelRange float32
	LineHeight float32
	Ascender   float32
	Descender  float32
}

// GlyphRecord is one slot of the dense glyph array.
// A slot whose Codepoint is 0 is unused.
type GlyphRecord struct {
	Codepoint uint16

	// KernIndex is the word index of this glyph's first kerning pair
	// within the kerning table. 0 means the glyph has no kerning pairs.
	KernIndex uint16

	Advance float32

	// PlaneBounds is the glyph quad in em units: left, bottom, right, top.
	PlaneBounds [4]float32

	// TexBounds is the atlas quad normalized to [0, 1]: left, bottom, right, top.
	TexBounds [4]float32
}

// Used reports whether the slot holds a glyph.
func (g GlyphRecord) Used() bool {
	return g.Codepoint != 0
}

// Bounds is an axis-aligned quad: left, bottom, right, top.
type Bounds struct {
	Left, Bottom, Right, Top float64
}

// Width returns Right - Left.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns Top - Bottom.
func (b Bounds) Height() float64 {
	return b.Top - b.Bottom
}

// IsEmpty reports whether the quad has no area.
func (b Bounds) IsEmpty() bool {
	return b.Right <= b.Left || b.Top <= b.Bottom
}

// Glyph is the finished geometry of one glyph as handed over by the
// atlas generator.
type Glyph struct {
	// Codepoint is the Unicode value of the glyph, 0 if it has none.
	Codepoint rune

	// Advance is the horizontal advance in em units.
	Advance float64

	// PlaneBounds is the quad in em units relative to the pen position.
	PlaneBounds Bounds

	// AtlasBounds is the quad in atlas pixels, origin at the bottom-left.
	AtlasBounds Bounds
}

// KernPair is a kerning adjustment between two glyphs, identified by their
// glyph index in the font (not by codepoint).
type KernPair struct {
	Left, Right int

	// Advance is the adjustment in em units added to the left glyph's advance.
	Advance float64
}

// Metrics holds the font-wide vertical metrics in em units.
type Metrics struct {
	LineHeight float64
	Ascender   float64
	Descender  float64
}

// FontSource is the per-font input of the exporter.
type FontSource interface {
	// Name returns the font name used to derive output file names.
	// It may be empty.
	Name() string

	// Glyphs returns the glyph geometry in layout order.
	Glyphs() []Glyph

	// Glyph resolves a glyph index as used by Kerning.
	Glyph(index int) (Glyph, bool)

	// Kerning returns the kerning pairs of the font.
	Kerning() []KernPair

	// Metrics returns the font metrics.
	Metrics() Metrics
}

// YDirection is the vertical convention of the texture coordinates.
type YDirection int

const (
	// YBottomUp keeps the atlas origin at the bottom-left corner.
	YBottomUp YDirection = iota
	// YTopDown moves the atlas origin to the top-left corner.
	YTopDown
)

// String returns the string representation of the direction.
func (d YDirection) String() string {
	switch d {
	case YBottomUp:
		return "bottom-up"
	case YTopDown:
		return "top-down"
	default:
		return "unknown"
	}
}
