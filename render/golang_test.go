package render

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/npillmayer/iconheaders"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGoSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconheaders")
	defer teardown()
	//
	ir := testIR(
		iconheaders.GlyphEntry{Name: "arrow-left", CodePoint: "f060"},
		iconheaders.GlyphEntry{Name: "cat", CodePoint: "0041"},
	)
	out, err := Go{}.Render(ir)
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)
	t.Logf("generated:\n%s", src)
	if !strings.Contains(src, "package fa\n") {
		t.Errorf("expected package fa")
	}
	patterns := []string{
		`Min\s+= 0xf060`,
		`Max16\s+= 0xf060`,
		`IconArrowLeft\s+= "\\uf060"\s+// U\+f060`,
		`IconCat\s+= "A"\s+// U\+0041`,
	}
	for _, p := range patterns {
		if !regexp.MustCompile(p).MatchString(src) {
			t.Errorf("expected generated source to match %s", p)
		}
	}
	again, _ := Go{}.Render(ir)
	if !bytes.Equal(out, again) {
		t.Errorf("expected identical output for identical IR")
	}
}

func TestGoSourceEmptyGlyphSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconheaders")
	defer teardown()
	//
	out, err := Go{}.Render(testIR())
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`Min\s+= 0x10ffff`).Match(out) {
		t.Errorf("expected sentinel min bound, have\n%s", out)
	}
	if strings.Contains(string(out), "Icon") {
		t.Errorf("expected no glyph constants, have\n%s", out)
	}
}

func TestGoIdentifier(t *testing.T) {
	cases := map[string]string{
		"arrow-left":   "IconArrowLeft",
		"address-book": "IconAddressBook",
		"home":         "IconHome",
	}
	for in, expected := range cases {
		if id := GoIdentifier(in); id != expected {
			t.Errorf("GoIdentifier(%q) = %q, expected %q", in, id, expected)
		}
	}
}

func TestGoFilenames(t *testing.T) {
	ir := testIR()
	ir.Name = "Font Awesome 5"
	name := Go{}.Filename(ir)
	if strings.Contains(name, " ") || !strings.HasPrefix(name, "icons_") || !strings.HasSuffix(name, ".go") {
		t.Errorf("unexpected Go file name %q", name)
	}
	embed := Go{}.EmbedFilename(ir, ir.FontFiles[0])
	if !strings.HasPrefix(embed, strings.TrimSuffix(name, ".go")+"_") || !strings.HasSuffix(embed, ".go") {
		t.Errorf("unexpected embed file name %q", embed)
	}
}

func TestGoEmbed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconheaders")
	defer teardown()
	//
	ir := testIR()
	out, err := Go{}.Embed(ir, ir.FontFiles[0], []byte{0x00, 0x01, 0xff})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "[]byte{0x00, 0x01, 0xff}") {
		t.Errorf("unexpected listing:\n%s", out)
	}
}

func TestLookup(t *testing.T) {
	r, err := Lookup("CPP")
	if err != nil {
		t.Fatal(err)
	}
	if r.Language() != "C and C++" {
		t.Errorf("expected C++ renderer, have %s", r.Language())
	}
	if _, err := Lookup("cobol"); err == nil {
		t.Errorf("expected error for unknown language")
	}
}

func TestGoIdentifiersAreDistinct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconheaders")
	defer teardown()
	//
	ir := testIR(
		iconheaders.GlyphEntry{Name: "arrow-left", CodePoint: "f060"},
		iconheaders.GlyphEntry{Name: "arrow_left", CodePoint: "f060"},
		iconheaders.GlyphEntry{Name: "ArrowLeft", CodePoint: "f060"},
		iconheaders.GlyphEntry{Name: "+", CodePoint: "002b"},
		iconheaders.GlyphEntry{Name: "-", CodePoint: "002d"},
		iconheaders.GlyphEntry{Name: "--", CodePoint: "002d"},
	)
	ids := glyphIdentifiers(ir.Glyphs, "Min", "Max16", "Max")
	expected := []string{
		"IconArrowLeft", "IconArrowLeft_2", "IconArrowLeft_3",
		"IconU002B", "IconU002D", "IconU002D_2",
	}
	seen := make(map[string]bool)
	for i, id := range ids {
		if id != expected[i] {
			t.Errorf("glyph %q: expected identifier %s, have %s", ir.Glyphs[i].Name, expected[i], id)
		}
		if seen[id] {
			t.Errorf("identifier %s assigned twice", id)
		}
		seen[id] = true
	}
	out, err := Go{}.Render(ir)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range expected {
		if n := len(regexp.MustCompile(`(?m)^\s+` + id + `\s+=`).FindAll(out, -1)); n != 1 {
			t.Errorf("expected exactly one declaration of %s, have %d", id, n)
		}
	}
}
