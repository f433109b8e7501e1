package txf

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes the package logger into a buffer for the rest of the
// test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggerSilentByDefault(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	// The initial logger and the one restored by SetLogger(nil).
	SetLogger(slog.Default())
	SetLogger(nil)
	for _, l := range []*slog.Logger{orig, Logger()} {
		if l == nil {
			t.Fatal("Logger() returned nil")
		}
		for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
			if l.Enabled(context.Background(), level) {
				t.Errorf("silent logger enabled for %v", level)
			}
		}
	}

	// Derived loggers stay silent.
	h := Logger().Handler().WithAttrs([]slog.Attr{slog.String("font", "x")}).WithGroup("g")
	if _, ok := h.(discard); !ok {
		t.Errorf("derived handler = %T, want discard", h)
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v", err)
	}
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t)

	fontLogger(&testFont{name: "Body"}).Debug("txf: test record", "glyphs", 3)
	out := buf.String()
	for _, want := range []string{"level=DEBUG", "txf: test record", "font=Body", "glyphs=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log lacks %q: %s", want, out)
		}
	}
}

func TestExportLogsDegenerateFont(t *testing.T) {
	buf := captureLogs(t)

	src := &testFont{name: "empty", glyphs: []Glyph{{Codepoint: 0x1F600, Advance: 1}}}
	path := t.TempDir() + "/empty.txf"
	if err := Export([]FontSource{src}, testConfig(), path); err != nil {
		t.Fatalf("Export() = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "no eligible glyphs") || !strings.Contains(out, "font=empty") {
		t.Errorf("expected degenerate-font warning, got: %s", out)
	}
	if !strings.Contains(out, "font exported") {
		t.Errorf("expected debug export record, got: %s", out)
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	dir := t.TempDir()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			path := filepath.Join(dir, fmt.Sprintf("font-%d.txf", i))
			if err := Export([]FontSource{abcFont()}, testConfig(), path); err != nil {
				t.Error(err)
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkBuildSilent(b *testing.B) {
	src := abcFont()
	cfg := testConfig()
	b.ReportAllocs()
	for b.Loop() {
		Build(src, cfg)
	}
}
