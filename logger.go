package txf

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Export runs with it unless the caller
// installs a logger.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger installs the logger used by Build, Export and the geometry
// package. nil silences them again, which is also the initial state.
//
// Records written:
//   - [slog.LevelDebug]: one per exported file (path, glyph slots, kerning
//     words) and, from geometry, per loaded font and laid out atlas
//   - [slog.LevelWarn]: fonts without eligible glyphs and kerning tables
//     dropped for exceeding 16-bit addressing
//
// A command line tool typically routes it to stderr:
//
//	txf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the installed logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return logger.Load()
}

// fontLogger tags the records of one font with its name.
func fontLogger(src FontSource) *slog.Logger {
	return Logger().With("font", src.Name())
}
