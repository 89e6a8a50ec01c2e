package fontload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/iconheaders"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadMissingFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconheaders")
	defer teardown()
	//
	ff := iconheaders.FontFile{Code: "X", Filename: "x.ttf", Source: filepath.Join(t.TempDir(), "x.ttf")}
	_, err := Load("Test", ff)
	if !errors.Is(err, iconheaders.ErrMissingSource) {
		t.Errorf("expected ErrMissingSource, have %v", err)
	}
}

func TestMissingGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconheaders")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load("Test", iconheaders.FontFile{Code: "GR", Filename: "goregular.ttf", Source: path})
	if err != nil {
		t.Fatalf("cannot load font: %v", err)
	}
	if len(f.Binary) != len(goregular.TTF) {
		t.Errorf("expected %d bytes, have %d", len(goregular.TTF), len(f.Binary))
	}
	glyphs := []iconheaders.GlyphEntry{
		{Name: "cat", CodePoint: "0041"},
		{Name: "arrow-left", CodePoint: "f060"},
	}
	missing, err := f.Missing(glyphs)
	if err != nil {
		t.Fatal(err)
	}
	if f.Fontname != "Go Regular" {
		t.Errorf("expected font name 'Go Regular', is %q", f.Fontname)
	}
	if len(missing) != 1 || missing[0].Name != "arrow-left" {
		t.Errorf("expected arrow-left to be missing, have %v", missing)
	}
}

func TestParseGarbage(t *testing.T) {
	f := &FontBinary{File: iconheaders.FontFile{Filename: "junk.ttf"}, Binary: []byte("not a font")}
	if err := f.Parse(); err == nil {
		t.Errorf("expected parse error for junk data")
	}
}
