package txf

// Config holds the per-export parameters shared by every font.
type Config struct {
	// FontSize is the font size in pixels per em the atlas was generated at.
	FontSize float64

	// PixelRange is the distance field range in atlas pixels.
	PixelRange float64

	// AtlasWidth and AtlasHeight are the atlas image dimensions in pixels.
	AtlasWidth  int
	AtlasHeight int

	// YDirection selects the vertical convention of the texture coordinates.
	// Default: YBottomUp
	YDirection YDirection

	// Kerning enables the kerning table.
	Kerning bool
}

// DefaultConfig returns a configuration for a 256x256 atlas at 32 pixels
// per em with a 2 pixel range.
func DefaultConfig() Config {
	return Config{
		FontSize:    32,
		PixelRange:  2,
		AtlasWidth:  256,
		AtlasHeight: 256,
		YDirection:  YBottomUp,
		Kerning:     true,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.FontSize <= 0 {
		return &ConfigError{Field: "FontSize", Reason: "must be positive"}
	}
	if c.PixelRange < 0 {
		return &ConfigError{Field: "PixelRange", Reason: "must be non-negative"}
	}
	if c.AtlasWidth < 1 || c.AtlasWidth > 0xFFFF {
		return &ConfigError{Field: "AtlasWidth", Reason: "must be in [1, 65535]"}
	}
	if c.AtlasHeight < 1 || c.AtlasHeight > 0xFFFF {
		return &ConfigError{Field: "AtlasHeight", Reason: "must be in [1, 65535]"}
	}
	if c.YDirection != YBottomUp && c.YDirection != YTopDown {
		return &ConfigError{Field: "YDirection", Reason: "unknown direction"}
	}
	return nil
}
