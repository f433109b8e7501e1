package geometry

import "errors"

// Sentinel errors for geometry package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("geometry: empty font data")

	// ErrEmptyCharset is returned when a charset selects no codepoint.
	ErrEmptyCharset = errors.New("geometry: empty charset")

	// ErrNoGlyphs is returned when none of the charset's codepoints is
	// mapped by the font.
	ErrNoGlyphs = errors.New("geometry: font maps no codepoint of the charset")
)

// CharsetError reports an unparsable charset item.
type CharsetError struct {
	Item   string
	Reason string
}

func (e *CharsetError) Error() string {
	return "geometry: invalid charset item " + `"` + e.Item + `": ` + e.Reason
}

// LayoutConfigError represents a layout configuration validation error.
type LayoutConfigError struct {
	Field  string
	Reason string
}

func (e *LayoutConfigError) Error() string {
	return "geometry: invalid layout config." + e.Field + ": " + e.Reason
}

// ErrInvalidLayout is returned when a JSON atlas layout lacks required data.
var ErrInvalidLayout = errors.New("geometry: invalid atlas layout")
