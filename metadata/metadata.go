/*
Package metadata reads icon font metadata and builds intermediate
representations from it.

Metadata formats differ between icon font families. Every format is
handled by a Parser, which yields the font's glyph list together with
its code point bounds. Glyph order follows the order of the metadata
document, which keeps generated files stable between runs.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package metadata

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/npillmayer/iconheaders"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'iconheaders'
func tracer() tracing.Trace {
	return tracing.Select("iconheaders")
}

// Result is the font-specific part of an intermediate representation.
type Result struct {
	Bounds iconheaders.Bounds
	Glyphs []iconheaders.GlyphEntry
}

// Parser decodes a metadata document. Only glyphs carrying one of the
// accepted style tags are included, for formats which have style tags.
type Parser interface {
	Parse(raw []byte, styles []string) (*Result, error)
}

// ParserFor returns the parser for a metadata format. An empty format
// selects iconheaders.FormatFontAwesome.
func ParserFor(format string) (Parser, error) {
	switch format {
	case "", iconheaders.FormatFontAwesome:
		return FontAwesome{}, nil
	case iconheaders.FormatCodepoints:
		return Codepoints{}, nil
	}
	return nil, fmt.Errorf("%w: unknown metadata format %q", iconheaders.ErrMalformedMetadata, format)
}

// Build reads the metadata document of a font and creates the font's
// intermediate representation.
//
// If the metadata document cannot be read, the error wraps
// iconheaders.ErrMissingSource. Errors decoding the document wrap
// iconheaders.ErrMalformedMetadata.
func Build(desc iconheaders.FontDescriptor) (*iconheaders.IR, error) {
	raw, err := os.ReadFile(desc.Metadata)
	if err != nil {
		return nil, iconheaders.Missing(desc.Name, desc.Metadata, err)
	}
	tracer().Infof("file read - %s", desc.Name)
	parser, err := ParserFor(desc.Format)
	if err != nil {
		return nil, &iconheaders.SourceError{Font: desc.Name, Path: desc.Metadata, Err: err}
	}
	res, err := parser.Parse(raw, desc.Styles)
	if err != nil {
		return nil, &iconheaders.SourceError{Font: desc.Name, Path: desc.Metadata, Err: err}
	}
	ir := iconheaders.NewIR(desc, res.Bounds, res.Glyphs)
	tracer().Infof("generated intermediate data - %s", desc.Name)
	return ir, nil
}

// --- Collecting glyphs -----------------------------------------------------

type glyphKey struct {
	name, cp string
}

// collector accumulates glyphs, dropping repeated (name, code point) pairs.
type collector struct {
	seen map[glyphKey]struct{}
	res  Result
}

func newCollector() *collector {
	return &collector{
		seen: make(map[glyphKey]struct{}),
		res:  Result{Bounds: iconheaders.NewBounds(), Glyphs: []iconheaders.GlyphEntry{}},
	}
}

func (c *collector) add(name, codepoint string) error {
	cp := iconheaders.NormalizeCodePoint(codepoint)
	k := glyphKey{name: name, cp: cp}
	if _, dup := c.seen[k]; dup {
		return nil
	}
	n, err := strconv.ParseUint(cp, 16, 32)
	if err != nil {
		return fmt.Errorf("%w: glyph %q has invalid code point %q", iconheaders.ErrMalformedMetadata,
			name, codepoint)
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return fmt.Errorf("%w: glyph %q has code point U+%s outside of Unicode scalar values",
			iconheaders.ErrMalformedMetadata, name, cp)
	}
	c.seen[k] = struct{}{}
	c.res.Bounds.Update(r)
	c.res.Glyphs = append(c.res.Glyphs, iconheaders.GlyphEntry{Name: name, CodePoint: cp})
	return nil
}

func (c *collector) result() *Result {
	tracer().Debugf("collected %d glyphs, bounds = %#x/%#x/%#x", len(c.res.Glyphs),
		c.res.Bounds.Min, c.res.Bounds.Max16, c.res.Bounds.Max)
	return &c.res
}
