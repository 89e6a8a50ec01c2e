/*
Package iconheaders converts icon font metadata into source headers.

Icon fonts such as Font Awesome ship a metadata file which maps glyph names
to Unicode code points. Applications referencing icons by raw code point are
hard to read and hard to maintain, so we generate a header file per font
and output language, which defines a named constant for every glyph.

Generation is a two-stage pipeline:

▪︎ A metadata parser (package `metadata`) reads a font's metadata document,
filters glyphs by style tag, drops duplicates and computes code point bounds.
The result is an intermediate representation (type IR).

▪︎ A renderer (package `render`) translates an IR into the text of a header
file for one target language.

Package `generate` drives the pipeline for a list of configured fonts, and
package `config` holds the built-in font table.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package iconheaders

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'iconheaders'
func tracer() tracing.Trace {
	return tracing.Select("iconheaders")
}

// Code point limits used for computing bounds.
const (
	// ASCIILimit is the highest code point excluded from the lower bound.
	ASCIILimit rune = 0x0127
	// Max16Limit is the highest code point representable in 16 bits.
	Max16Limit rune = 0xffff
	// MaxCodePoint is the highest Unicode code point. It is the sentinel
	// value of Bounds.Min.
	MaxCodePoint rune = 0x10ffff
)

// GlyphEntry is a named glyph of an icon font.
type GlyphEntry struct {
	Name      string // glyph key from the metadata, e.g. "arrow-left"
	CodePoint string // hex code point, at least 4 digits, e.g. "f060"
}

// Rune returns the glyph's code point as a rune. It returns
// unicode.ReplacementChar if the code point is not a valid hex number.
func (g GlyphEntry) Rune() rune {
	n, err := strconv.ParseUint(g.CodePoint, 16, 32)
	if err != nil {
		return unicode.ReplacementChar
	}
	return rune(n)
}

// NormalizeCodePoint left-pads a hex code point with zeros to at least
// 4 digits. Case is left untouched.
func NormalizeCodePoint(cp string) string {
	cp = strings.TrimSpace(cp)
	if len(cp) < 4 {
		cp = strings.Repeat("0", 4-len(cp)) + cp
	}
	return cp
}

// Bounds holds three code point limits of a glyph set.
//
// The limits are computed by independent scans over the glyph set and are
// not derived from each other. Consumers use the distinction between
// Max16 and Max to detect glyphs outside the Basic Multilingual Plane.
type Bounds struct {
	Min   rune // smallest code point above ASCIILimit
	Max16 rune // largest code point not above Max16Limit
	Max   rune // largest code point
}

// NewBounds returns bounds set to their sentinel values: Min is
// MaxCodePoint, Max16 and Max are zero.
func NewBounds() Bounds {
	return Bounds{Min: MaxCodePoint}
}

// Update includes code point r into each of the three scans.
func (b *Bounds) Update(r rune) {
	if r < b.Min && r > ASCIILimit {
		b.Min = r
	}
	if r > b.Max16 && r <= Max16Limit {
		b.Max16 = r
	}
	if r > b.Max {
		b.Max = r
	}
}

// FontFile references a binary font file belonging to an icon font.
type FontFile struct {
	Code     string `toml:"code"`     // short code, e.g. "FAS"
	Filename string `toml:"filename"` // file name, e.g. "fa-solid-900.ttf"
	Source   string `toml:"source"`   // path of the file
}

// Metadata formats understood by package metadata.
const (
	FormatFontAwesome = "fontawesome"
	FormatCodepoints  = "codepoints"
)

// FontDescriptor is the static, hand-configured description of an icon font.
type FontDescriptor struct {
	Name       string     `toml:"name"`        // display name, e.g. "Font Awesome 5"
	Abbr       string     `toml:"abbr"`        // namespace abbreviation, e.g. "FA"
	MinMaxAbbr string     `toml:"minmax_abbr"` // optional, differentiates bound names
	Metadata   string     `toml:"metadata"`    // path of the metadata document
	Format     string     `toml:"format"`      // metadata format, empty means FormatFontAwesome
	Styles     []string   `toml:"styles"`      // accepted style tags
	FontFiles  []FontFile `toml:"files"`
}

// FileStem returns the font's display name with spaces removed, suitable
// as part of a file name.
func (fd FontDescriptor) FileStem() string {
	return strings.ReplaceAll(fd.Name, " ", "")
}

// IR is the intermediate representation of an icon font. It is built once
// per font and must not be changed afterwards.
type IR struct {
	FontDescriptor
	Bounds Bounds
	Glyphs []GlyphEntry
}

// NewIR creates the intermediate representation for a font from its
// descriptor and parsed glyph set.
func NewIR(desc FontDescriptor, bounds Bounds, glyphs []GlyphEntry) *IR {
	ir := &IR{
		FontDescriptor: desc,
		Bounds:         bounds,
		Glyphs:         glyphs,
	}
	tracer().Debugf("intermediate representation for %s has %d glyphs", desc.Name, len(glyphs))
	return ir
}

// Glyph looks up a glyph by name. If a name occurs more than once, the first
// entry is returned.
func (ir *IR) Glyph(name string) (GlyphEntry, bool) {
	for _, g := range ir.Glyphs {
		if g.Name == name {
			return g, true
		}
	}
	return GlyphEntry{}, false
}
