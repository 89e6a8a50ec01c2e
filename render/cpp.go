package render

import (
	"fmt"
	"strings"

	"github.com/npillmayer/iconheaders"
)

// CPP renders headers for C and C++. Glyphs become constexpr string
// constants holding the UTF-8 encoding of the glyph.
type CPP struct{}

// Language implements Renderer.
func (CPP) Language() string {
	return "C and C++"
}

// Filename implements Renderer. The file name is "Icons<name>.h", with
// spaces removed from the font's display name.
func (CPP) Filename(ir *iconheaders.IR) string {
	return fmt.Sprintf("Icons%s.h", ir.FileStem())
}

// Render implements Renderer.
func (c CPP) Render(ir *iconheaders.IR) ([]byte, error) {
	var sb strings.Builder
	c.prelude(&sb, ir)
	c.bounds(&sb, ir)
	for _, g := range ir.Glyphs {
		c.glyphLine(&sb, g)
	}
	sb.WriteString("}\n")
	tracer().Infof("converted - %s for %s", ir.Name, c.Language())
	return []byte(sb.String()), nil
}

func (c CPP) prelude(sb *strings.Builder, ir *iconheaders.IR) {
	fmt.Fprintf(sb, "// Generated by iconheaders for languages %s\n", c.Language())
	fmt.Fprintf(sb, "// from %s\n", ir.Metadata)
	fmt.Fprintf(sb, "// for use with %s\n", fontFileSources(ir))
	sb.WriteString("#pragma once\n\n")
	fmt.Fprintf(sb, "namespace %s {\n\n", ir.Abbr)
}

func (CPP) bounds(sb *strings.Builder, ir *iconheaders.IR) {
	p := ir.MinMaxAbbr
	fmt.Fprintf(sb, "constexpr auto k%sMin = %s;\n", p, hexLiteral(ir.Bounds.Min))
	fmt.Fprintf(sb, "constexpr auto k%sMax16 = %s;\n", p, hexLiteral(ir.Bounds.Max16))
	fmt.Fprintf(sb, "constexpr auto k%sMax = %s;\n", p, hexLiteral(ir.Bounds.Max))
}

func (CPP) glyphLine(sb *strings.Builder, g iconheaders.GlyphEntry) {
	name := strings.ReplaceAll(g.Name, "-", "_")
	fmt.Fprintf(sb, "constexpr auto %s = \"%s\";\t// U+%s\n", name, EscapeC(string(g.Rune())), g.CodePoint)
}

// EscapeC escapes the bytes of s for use in a C string literal. Printable
// ASCII characters are kept, all other bytes are written as \xNN.
func EscapeC(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '"' || b == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		case b == '\t':
			sb.WriteString(`\t`)
		case b == '\n':
			sb.WriteString(`\n`)
		case b == '\r':
			sb.WriteString(`\r`)
		case b >= 0x20 && b < 0x7f:
			sb.WriteByte(b)
		default:
			fmt.Fprintf(&sb, `\x%02x`, b)
		}
	}
	return sb.String()
}

// --- Font file embedding ---------------------------------------------------

// EmbedFilename implements Embedder. The name is the header's file name
// followed by "_<font file name>.h".
func (c CPP) EmbedFilename(ir *iconheaders.IR, ff iconheaders.FontFile) string {
	return c.Filename(ir) + "_" + ff.Filename + ".h"
}

// Embed implements Embedder, listing data as a static uint8_t array.
func (c CPP) Embed(ir *iconheaders.IR, ff iconheaders.FontFile, data []byte) ([]byte, error) {
	name := strings.TrimSuffix(ff.Filename, ".ttf")
	name = strings.ReplaceAll(strings.ReplaceAll(name, "-", "_"), " ", "")
	var sb strings.Builder
	fmt.Fprintf(&sb, "// Generated by iconheaders for languages %s\n", c.Language())
	fmt.Fprintf(&sb, "// from %s\n", ff.Source)
	sb.WriteString("// Requires #include <stdint.h>\n")
	sb.WriteString("#pragma once\n\n")
	fmt.Fprintf(&sb, "static const uint8_t s_%s_ttf[%d] = \n{", name, len(data))
	for n, b := range data {
		if n%16 == 0 {
			sb.WriteString("\n\t")
		}
		fmt.Fprintf(&sb, "0x%02x, ", b)
	}
	sb.WriteString("\n};\n\n")
	tracer().Debugf("embedded %d bytes of %s", len(data), ff.Filename)
	return []byte(sb.String()), nil
}
