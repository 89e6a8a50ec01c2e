package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "iconheaders.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	conf := Default()
	if len(conf.Fonts) != 1 || conf.Fonts[0].Name != "FAReEdit" {
		t.Errorf("expected default font FAReEdit, have %v", conf.Fonts)
	}
	if conf.EmbedFontFiles {
		t.Errorf("expected font file embedding to be off by default")
	}
	renderers, err := conf.Renderers()
	if err != nil || len(renderers) != 1 || renderers[0].Language() != "C and C++" {
		t.Errorf("expected C++ renderer as default, have %v (%v)", renderers, err)
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconheaders")
	defer teardown()
	//
	path := writeConfig(t, `
output_dir = "include"
languages = ["cpp", "go"]
embed_font_files = true

[[font]]
name = "Font Awesome 5"

[[font]]
name = "Material Icons"
abbr = "MD"
metadata = "./material/codepoints"
format = "codepoints"
  [[font.files]]
  code = "MD"
  filename = "MaterialIcons-Regular.ttf"
  source = "./material/MaterialIcons-Regular.ttf"
`)
	conf, err := Load(path)
	if err != nil {
		t.Fatalf("cannot load configuration: %v", err)
	}
	if conf.OutputDir != "include" || !conf.EmbedFontFiles {
		t.Errorf("settings not read: %+v", conf)
	}
	if conf.TraceLevel != "Info" {
		t.Errorf("expected default trace level Info, have %q", conf.TraceLevel)
	}
	if len(conf.Fonts) != 2 {
		t.Fatalf("expected 2 fonts, have %d", len(conf.Fonts))
	}
	fa, ok := conf.Font("Font Awesome 5")
	if !ok || fa.Abbr != "FA" || len(fa.Styles) != 2 {
		t.Errorf("expected catalog entry for Font Awesome 5, have %+v", fa)
	}
	md, ok := conf.Font("Material Icons")
	if !ok || md.Format != "codepoints" || len(md.FontFiles) != 1 || md.FontFiles[0].Code != "MD" {
		t.Errorf("unexpected font Material Icons: %+v", md)
	}
	renderers, err := conf.Renderers()
	if err != nil || len(renderers) != 2 {
		t.Errorf("expected 2 renderers, have %v (%v)", renderers, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconheaders")
	defer teardown()
	//
	conf, err := Load(writeConfig(t, "trace_level = \"Debug\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if conf.OutputDir != "." || len(conf.Languages) != 1 || conf.Fonts[0].Name != "FAReEdit" {
		t.Errorf("expected defaults, have %+v", conf)
	}
}

func TestLoadOverlaysBuiltinFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconheaders")
	defer teardown()
	//
	conf, err := Load(writeConfig(t, "[[font]]\nname = \"Font Awesome 5\"\nstyles = [\"solid\"]\n"))
	if err != nil {
		t.Fatal(err)
	}
	fd := conf.Fonts[0]
	if len(fd.Styles) != 1 || fd.Styles[0] != "solid" {
		t.Errorf("expected configured styles [solid], have %v", fd.Styles)
	}
	if fd.Abbr != "FA" || fd.Metadata != FontAwesome5.Metadata || len(fd.FontFiles) != 2 {
		t.Errorf("expected built-in fields to be kept, have %+v", fd)
	}
	if len(FontAwesome5.Styles) != 2 {
		t.Errorf("built-in font descriptor has been modified: %v", FontAwesome5.Styles)
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconheaders")
	defer teardown()
	//
	if _, err := Load(writeConfig(t, "[[font]]\nname = \"Wingdings\"\n")); err == nil {
		t.Errorf("expected error for unknown font without metadata")
	}
	if _, err := Load(writeConfig(t, "languages = [\"cpp\"\n")); err == nil {
		t.Errorf("expected error for malformed TOML")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Errorf("expected error for missing configuration file")
	}
	conf, err := Load(writeConfig(t, "languages = [\"cobol\"]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := conf.Renderers(); err == nil {
		t.Errorf("expected error for unknown language")
	}
}

func TestCatalog(t *testing.T) {
	for _, fd := range Catalog() {
		if fd.Name == "" || fd.Abbr == "" || fd.Metadata == "" || len(fd.FontFiles) == 0 {
			t.Errorf("incomplete catalog entry %+v", fd)
		}
	}
	if _, ok := LookupFont("Font Awesome 5 Brands"); !ok {
		t.Errorf("expected Font Awesome 5 Brands in catalog")
	}
}

func TestValidTraceLevel(t *testing.T) {
	if !ValidTraceLevel("Debug") || ValidTraceLevel("Verbose") {
		t.Errorf("trace level validation broken")
	}
}
