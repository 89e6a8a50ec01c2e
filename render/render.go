/*
Package render translates intermediate representations of icon fonts into
source headers.

Every output language is implemented by a Renderer. Output of a renderer
is a pure function of the intermediate representation: rendering the same
IR twice yields identical bytes, which keeps generated files diff-friendly.

A header consists of

▪︎ a prelude, naming the metadata source and the font files and opening
a namespace named after the font's abbreviation,

▪︎ a bounds block with constants Min, Max16 and Max,

▪︎ one constant per glyph, in the order of the IR's glyph list,

▪︎ an epilogue, closing the namespace.

Renderers may optionally implement Embedder, converting binary font files
into byte array listings.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/iconheaders"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'iconheaders'
func tracer() tracing.Trace {
	return tracing.Select("iconheaders")
}

// Renderer produces a header file for one target language.
type Renderer interface {
	Language() string                          // display name of the target language
	Filename(ir *iconheaders.IR) string        // output file name for a font
	Render(ir *iconheaders.IR) ([]byte, error) // header text
}

// Embedder converts binary font files into source listings.
type Embedder interface {
	EmbedFilename(ir *iconheaders.IR, ff iconheaders.FontFile) string
	Embed(ir *iconheaders.IR, ff iconheaders.FontFile, data []byte) ([]byte, error)
}

var registry = map[string]Renderer{
	"c":      CPP{},
	"cpp":    CPP{},
	"c++":    CPP{},
	"go":     Go{},
	"golang": Go{},
}

// Lookup returns the renderer for a language key, e.g. "cpp" or "go".
// Keys are case-insensitive.
func Lookup(key string) (Renderer, error) {
	r, ok := registry[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, fmt.Errorf("no renderer for language %q, known are %v", key, Keys())
	}
	return r, nil
}

// Keys lists the language keys understood by Lookup.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// hexLiteral formats a code point as a hex literal with at least 4 digits.
func hexLiteral(r rune) string {
	return fmt.Sprintf("0x%04x", r)
}

func fontFileSources(ir *iconheaders.IR) string {
	sources := make([]string, len(ir.FontFiles))
	for i, ff := range ir.FontFiles {
		sources[i] = ff.Source
	}
	return strings.Join(sources, ", ")
}
