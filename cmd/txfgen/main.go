// Command txfgen builds TXF font atlas descriptions.
//
// From font files, laid out into a fresh atlas:
//
//	txfgen -font Go-Regular.ttf -charset latin1 -size 48 -o go.txf
//
// From a layout written by msdf-atlas-gen:
//
//	txfgen -json atlas.json -o atlas.txf
//
// Inspecting a TXF file:
//
//	txfgen -dump go.txf
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/flopp/go-findfont"

	"github.com/gogpu/txf"
	"github.com/gogpu/txf/geometry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// fontList collects repeated -font flags.
type fontList []string

func (l *fontList) String() string {
	return strings.Join(*l, ",")
}

func (l *fontList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type flags struct {
	fonts      fontList
	json       string
	output     string
	dump       string
	size       float64
	pxRange    float64
	charset    string
	kerning    bool
	kernSource string
	dimensions string
	yOrigin    string
	padding    int
	endian     string
	verbose    bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("txfgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f flags
	fs.Var(&f.fonts, "font", "font file or installed font name (repeatable)")
	fs.StringVar(&f.json, "json", "", "msdf-atlas-gen JSON layout to convert instead of -font")
	fs.StringVar(&f.output, "o", "font.txf", "output file")
	fs.StringVar(&f.dump, "dump", "", "print the contents of a TXF file and exit")
	fs.Float64Var(&f.size, "size", 32, "glyph scale in atlas pixels per em")
	fs.Float64Var(&f.pxRange, "pxrange", 2, "distance field range in atlas pixels")
	fs.StringVar(&f.charset, "charset", "ascii", "codepoints to include, e.g. ascii,0x400-0x4ff")
	fs.BoolVar(&f.kerning, "kerning", true, "write the kerning table")
	fs.StringVar(&f.kernSource, "kernsource", "table", "kerning source: table or shaped")
	fs.StringVar(&f.dimensions, "dimensions", "", "fixed atlas size WxH (default: smallest power of two)")
	fs.StringVar(&f.yOrigin, "yorigin", "bottom", "texture coordinate origin: bottom or top")
	fs.IntVar(&f.padding, "padding", 1, "pixels between glyph boxes")
	fs.StringVar(&f.endian, "endian", "little", "byte order: little or big")
	fs.BoolVar(&f.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	txf.SetLogger(logger)
	defer txf.SetLogger(nil)

	var err error
	switch {
	case f.dump != "":
		err = dump(stdout, f.dump, f.endian)
	case f.json != "" || len(f.fonts) > 0:
		err = generate(logger, &f)
	default:
		fmt.Fprintln(stderr, "txfgen: one of -font, -json or -dump is required")
		fs.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "txfgen: %v\n", err)
		return 1
	}
	return 0
}

func generate(logger *slog.Logger, f *flags) error {
	if f.json != "" && len(f.fonts) > 0 {
		return errors.New("-json and -font are mutually exclusive")
	}
	order, err := parseEndian(f.endian)
	if err != nil {
		return err
	}

	cfg := txf.DefaultConfig()
	cfg.Kerning = f.kerning
	switch f.yOrigin {
	case "bottom":
		cfg.YDirection = txf.YBottomUp
	case "top":
		cfg.YDirection = txf.YTopDown
	default:
		return fmt.Errorf("unknown -yorigin %q", f.yOrigin)
	}

	var fonts []*geometry.FontGeometry
	if f.json != "" {
		fonts, err = fromJSON(f.json, &cfg)
	} else {
		fonts, err = fromFonts(f, &cfg)
	}
	if err != nil {
		return err
	}

	sources := make([]txf.FontSource, len(fonts))
	for i, fg := range fonts {
		sources[i] = fg
	}
	if err := txf.Export(sources, cfg, f.output, txf.WithByteOrder(order)); err != nil {
		return err
	}

	logger.Info("txfgen: export complete",
		"fonts", len(fonts),
		"atlas", fmt.Sprintf("%dx%d", cfg.AtlasWidth, cfg.AtlasHeight),
		"output", f.output)
	return nil
}

func fromJSON(path string, cfg *txf.Config) ([]*geometry.FontGeometry, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fonts, info, err := geometry.LoadLayoutJSON(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.AtlasWidth, cfg.AtlasHeight = info.Width, info.Height
	if info.FontSize > 0 {
		cfg.FontSize = info.FontSize
	}
	cfg.PixelRange = info.PixelRange
	return fonts, nil
}

func fromFonts(f *flags, cfg *txf.Config) ([]*geometry.FontGeometry, error) {
	cs, err := geometry.ParseCharset(f.charset)
	if err != nil {
		return nil, err
	}
	src, err := geometry.ParseKerningSource(f.kernSource)
	if err != nil {
		return nil, err
	}
	if !f.kerning {
		src = geometry.KerningNone
	}

	layout := geometry.LayoutConfig{
		FontSize:   f.size,
		PixelRange: f.pxRange,
		Padding:    f.padding,
	}
	if f.dimensions != "" {
		if layout.Width, layout.Height, err = parseDimensions(f.dimensions); err != nil {
			return nil, err
		}
	}

	fonts := make([]*geometry.FontGeometry, 0, len(f.fonts))
	for _, name := range f.fonts {
		path, err := findfont.Find(name)
		if err != nil {
			return nil, fmt.Errorf("font %q: %w", name, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		fg, err := geometry.LoadFont(data, cs, geometry.WithKerning(src))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		fonts = append(fonts, fg)
	}

	atlas, err := geometry.Layout(fonts, layout)
	if err != nil {
		return nil, err
	}
	cfg.FontSize = f.size
	cfg.PixelRange = f.pxRange
	cfg.AtlasWidth, cfg.AtlasHeight = atlas.Width, atlas.Height
	return fonts, nil
}

func parseDimensions(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		w, err = strconv.Atoi(ws)
		if err == nil {
			h, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid -dimensions %q, want WxH", s)
	}
	return w, h, nil
}

func parseEndian(s string) (binary.ByteOrder, error) {
	switch s {
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("unknown -endian %q", s)
}
