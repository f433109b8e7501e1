package txf

import (
	"errors"
	"fmt"
)

// Sentinel errors for txf package.
var (
	// ErrNoFonts is returned when Export is called without fonts.
	ErrNoFonts = errors.New("txf: no fonts to export")

	// ErrKernOverflow is returned when the kerning table cannot be addressed
	// with the 16-bit offsets of the format.
	ErrKernOverflow = errors.New("txf: kerning table exceeds 16-bit addressing")

	// ErrTruncated is returned when a TXF stream ends inside a record.
	ErrTruncated = errors.New("txf: truncated file")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "txf: invalid config." + e.Field + ": " + e.Reason
}

// OpenError is returned when an output file cannot be created.
// It aborts the whole export.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("txf: create %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Section names a part of a TXF file.
type Section string

// File sections in write order.
const (
	SectionHeader  Section = "header"
	SectionGlyphs  Section = "glyphs"
	SectionKerning Section = "kerning"
)

// WriteError is returned when a section could not be written completely.
type WriteError struct {
	// Path is the output file, empty when writing to a plain io.Writer.
	Path    string
	Section Section
	Err     error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("txf: write %s: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("txf: write %s of %s: %v", e.Section, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// FormatError is returned by Decode for structurally invalid files.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return "txf: malformed " + e.Field + ": " + e.Reason
}
