package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
	"github.com/npillmayer/iconheaders"
)

// Go renders Go source files. The package is named after the font's
// abbreviation, glyphs become string constants with camel-cased names
// prefixed by "Icon".
type Go struct{}

// Language implements Renderer.
func (Go) Language() string {
	return "Go"
}

// Filename implements Renderer, e.g. "icons_font_awesome_5.go".
func (Go) Filename(ir *iconheaders.IR) string {
	return "icons_" + strcase.ToSnake(ir.FileStem()) + ".go"
}

// Render implements Renderer.
func (g Go) Render(ir *iconheaders.IR) ([]byte, error) {
	f := jen.NewFile(packageName(ir))
	f.HeaderComment(fmt.Sprintf("Code generated by iconheaders for language %s. DO NOT EDIT.", g.Language()))
	f.PackageComment(fmt.Sprintf("Package %s defines glyph constants for icon font %s.", packageName(ir), ir.Name))
	f.Comment("from " + ir.Metadata)
	f.Comment("for use with " + fontFileSources(ir))
	p := strcase.ToCamel(ir.MinMaxAbbr)
	f.Const().Defs(
		jen.Id(p + "Min").Op("=").Id(hexLiteral(ir.Bounds.Min)),
		jen.Id(p + "Max16").Op("=").Id(hexLiteral(ir.Bounds.Max16)),
		jen.Id(p + "Max").Op("=").Id(hexLiteral(ir.Bounds.Max)),
	)
	if len(ir.Glyphs) > 0 {
		ids := glyphIdentifiers(ir.Glyphs, p+"Min", p+"Max16", p+"Max")
		f.Const().DefsFunc(func(grp *jen.Group) {
			for i, glyph := range ir.Glyphs {
				grp.Id(ids[i]).Op("=").Lit(string(glyph.Rune())).Comment("U+" + glyph.CodePoint)
			}
		})
	}
	buf := &bytes.Buffer{}
	if err := f.Render(buf); err != nil {
		return nil, fmt.Errorf("rendering Go source for %s: %w", ir.Name, err)
	}
	tracer().Infof("converted - %s for %s", ir.Name, g.Language())
	return buf.Bytes(), nil
}

// GoIdentifier converts a glyph name into an exported Go identifier,
// e.g. "arrow-left" into "IconArrowLeft". Letters, digits and underscores
// are kept, a name without any of them yields plain "Icon".
func GoIdentifier(name string) string {
	id := strcase.ToCamel(name)
	id = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, id)
	return "Icon" + id
}

// glyphIdentifiers assigns a distinct Go identifier to every glyph, none of
// them equal to one of the reserved names. Glyphs whose name does not carry
// letters or digits are named after their code point, e.g. "IconUF060".
// Clashing identifiers get a numeric suffix: "IconArrowLeft_2".
func glyphIdentifiers(glyphs []iconheaders.GlyphEntry, reserved ...string) []string {
	used := make(map[string]bool, len(glyphs)+len(reserved))
	for _, r := range reserved {
		used[r] = true
	}
	ids := make([]string, len(glyphs))
	for i, g := range glyphs {
		base := GoIdentifier(g.Name)
		if strings.Trim(base, "_") == "Icon" {
			base = "IconU" + strings.ToUpper(g.CodePoint)
		}
		id := base
		for n := 2; used[id]; n++ {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		used[id] = true
		ids[i] = id
	}
	return ids
}

func packageName(ir *iconheaders.IR) string {
	name := strings.ToLower(strcase.ToSnake(ir.Abbr))
	name = strings.ReplaceAll(name, "_", "")
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		name = "icons" + name
	}
	return name
}

// --- Font file embedding ---------------------------------------------------

// EmbedFilename implements Embedder, e.g.
// "icons_font_awesome_5_fa_solid_900.go".
func (g Go) EmbedFilename(ir *iconheaders.IR, ff iconheaders.FontFile) string {
	return strings.TrimSuffix(g.Filename(ir), ".go") + "_" + strcase.ToSnake(fontFileStem(ff)) + ".go"
}

// Embed implements Embedder, listing data as a []byte variable named after
// the font file, e.g. FaSolid900TTF.
func (g Go) Embed(ir *iconheaders.IR, ff iconheaders.FontFile, data []byte) ([]byte, error) {
	f := jen.NewFile(packageName(ir))
	f.HeaderComment(fmt.Sprintf("Code generated by iconheaders for language %s. DO NOT EDIT.", g.Language()))
	f.Comment("from " + ff.Source)
	f.Var().Id(strcase.ToCamel(fontFileStem(ff)) + "TTF").Op("=").Index().Byte().ValuesFunc(func(grp *jen.Group) {
		for _, b := range data {
			grp.Id(fmt.Sprintf("0x%02x", b))
		}
	})
	buf := &bytes.Buffer{}
	if err := f.Render(buf); err != nil {
		return nil, fmt.Errorf("rendering Go listing of %s: %w", ff.Filename, err)
	}
	return buf.Bytes(), nil
}

func fontFileStem(ff iconheaders.FontFile) string {
	return strings.TrimSuffix(ff.Filename, filepath.Ext(ff.Filename))
}
