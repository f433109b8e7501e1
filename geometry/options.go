package geometry

import "fmt"

// KerningSource selects where LoadFont takes kerning pairs from.
type KerningSource int

const (
	// KerningNone loads no kerning pairs.
	KerningNone KerningSource = iota

	// KerningTable reads the font's pair adjustment tables
	// (GPOS pair positioning, falling back to the legacy kern table).
	KerningTable

	// KerningShaped measures every glyph pair with the HarfBuzz shaper.
	KerningShaped
)

// String returns the string representation of the kerning source.
func (k KerningSource) String() string {
	switch k {
	case KerningNone:
		return "none"
	case KerningTable:
		return "table"
	case KerningShaped:
		return "shaped"
	default:
		return fmt.Sprintf("KerningSource(%d)", int(k))
	}
}

// ParseKerningSource parses the names returned by KerningSource.String.
func ParseKerningSource(s string) (KerningSource, error) {
	switch s {
	case "none", "":
		return KerningNone, nil
	case "table":
		return KerningTable, nil
	case "shaped":
		return KerningShaped, nil
	}
	return KerningNone, fmt.Errorf("geometry: unknown kerning source %q", s)
}

// LoadOption configures LoadFont.
type LoadOption func(*loadOptions)

type loadOptions struct {
	kerning KerningSource
	name    string
}

// WithKerning selects the kerning source. The default is KerningTable.
func WithKerning(src KerningSource) LoadOption {
	return func(o *loadOptions) {
		o.kerning = src
	}
}

// WithName overrides the font name read from the name table.
func WithName(name string) LoadOption {
	return func(o *loadOptions) {
		o.name = name
	}
}

func buildLoadOptions(opts []LoadOption) loadOptions {
	o := loadOptions{kerning: KerningTable}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
