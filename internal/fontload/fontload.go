package fontload

import (
	"fmt"
	"os"

	"github.com/npillmayer/iconheaders"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'iconheaders'
func tracer() tracing.Trace {
	return tracing.Select("iconheaders")
}

// FontBinary is a font file referenced by an icon font, with its raw bytes
// and, after parsing, its SFNT view.
type FontBinary struct {
	Fontname string
	File     iconheaders.FontFile
	Binary   []byte
	SFNT     *sfnt.Font
}

// Load reads a font file of icon font font. If the file cannot be read, the
// error wraps iconheaders.ErrMissingSource.
func Load(font string, ff iconheaders.FontFile) (*FontBinary, error) {
	bytez, err := os.ReadFile(ff.Source)
	if err != nil {
		return nil, iconheaders.Missing(font, ff.Source, err)
	}
	tracer().Infof("font file read - %s", ff.Filename)
	return &FontBinary{File: ff, Binary: bytez}, nil
}

// Parse decodes the binary as an OpenType font (TTF or OTF). It is not
// necessary to parse a font for embedding it.
func (f *FontBinary) Parse() (err error) {
	if f.SFNT != nil {
		return nil
	}
	if f.SFNT, err = sfnt.Parse(f.Binary); err != nil {
		return fmt.Errorf("cannot parse font file %s: %w", f.File.Filename, err)
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		tracer().Debugf("font file %s has no full name: %v", f.File.Filename, err)
		f.Fontname = f.File.Filename
	}
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return nil
}

// Missing returns the glyphs which the font's character map does not cover.
// The font is parsed if necessary.
func (f *FontBinary) Missing(glyphs []iconheaders.GlyphEntry) ([]iconheaders.GlyphEntry, error) {
	if err := f.Parse(); err != nil {
		return nil, err
	}
	var buf sfnt.Buffer
	var missing []iconheaders.GlyphEntry
	for _, g := range glyphs {
		gid, err := f.SFNT.GlyphIndex(&buf, g.Rune())
		if err != nil {
			return nil, fmt.Errorf("looking up %s in %s: %w", g.Name, f.File.Filename, err)
		}
		if gid == 0 {
			missing = append(missing, g)
		}
	}
	tracer().Debugf("%s: %d of %d glyphs missing", f.File.Filename, len(missing), len(glyphs))
	return missing, nil
}
