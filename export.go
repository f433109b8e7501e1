package txf

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// defaultExt is appended to multi-font output names whose template has no
// extension.
const defaultExt = ".txf"

// Export writes one TXF file per font. With a single font the file is
// written to path; with several, OutputPath derives a distinct name per
// font.
//
// Fonts are processed sequentially. The first failure stops the export:
// an output file that cannot be created yields an *OpenError, an
// incomplete write a *WriteError. A partially written file is left on
// disk; files of earlier fonts are complete.
func Export(fonts []FontSource, cfg Config, path string, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(fonts) == 0 {
		return ErrNoFonts
	}

	o := buildOptions(opts)
	for i, src := range fonts {
		out := OutputPath(path, src.Name(), i, len(fonts))
		if err := exportFont(src, cfg, out, o); err != nil {
			return err
		}
	}
	return nil
}

func exportFont(src FontSource, cfg Config, path string, o options) (err error) {
	w, err := o.create(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("txf: close %s: %w", path, cerr)
		}
	}()

	f := Build(src, cfg)
	enc := &Encoder{w: w, order: o.order}
	if err := enc.Encode(f); err != nil {
		var werr *WriteError
		if errors.As(err, &werr) {
			werr.Path = path
		}
		return err
	}

	fontLogger(src).Debug("txf: font exported",
		"path", path,
		"glyphs", len(f.Glyphs),
		"kernWords", len(f.Kern),
		"bytes", f.Size())
	return nil
}

// OutputPath returns the output file of font index out of count fonts.
// A single font uses template verbatim. Otherwise "-<name>", or
// "-<index>" for unnamed fonts, is inserted before the extension of
// template; a template without extension gets "-<suffix>.txf".
// Path separators in name are replaced by underscores.
func OutputPath(template, name string, index, count int) string {
	if count <= 1 {
		return template
	}

	suffix := sanitizeName(name)
	if suffix == "" {
		suffix = strconv.Itoa(index)
	}

	ext := filepath.Ext(template)
	base := strings.TrimSuffix(template, ext)
	if ext == "" {
		ext = defaultExt
	}
	return base + "-" + suffix + ext
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == filepath.Separator {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
}
