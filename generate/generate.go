/*
Package generate drives header generation for a list of icon fonts.

For every font the driver builds the intermediate representation and
writes one file per configured renderer. Fonts are processed one after
the other and independently of each other: a font whose metadata is
missing is reported and skipped, and the run continues with the next font.
Malformed metadata and failures writing output files terminate the run.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/iconheaders"
	"github.com/npillmayer/iconheaders/config"
	"github.com/npillmayer/iconheaders/internal/fontload"
	"github.com/npillmayer/iconheaders/metadata"
	"github.com/npillmayer/iconheaders/render"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'iconheaders'
func tracer() tracing.Trace {
	return tracing.Select("iconheaders")
}

// Driver generates headers for a list of fonts and renderers.
type Driver struct {
	Fonts          []iconheaders.FontDescriptor
	Renderers      []render.Renderer
	OutputDir      string // directory for output files, empty means current directory
	EmbedFontFiles bool   // convert font files into byte array listings as well
}

// Output describes a file written by the driver.
type Output struct {
	Font     string // display name of the font
	Language string // language of the renderer
	Path     string // path of the written file
	Embedded bool   // file is a font file listing
}

// Report summarizes a generator run.
type Report struct {
	Outputs []Output
	Skipped []error // per-font failures, each wrapping iconheaders.ErrMissingSource
}

// FromConfig creates a driver from generator settings.
func FromConfig(conf *config.Config) (*Driver, error) {
	renderers, err := conf.Renderers()
	if err != nil {
		return nil, err
	}
	return &Driver{
		Fonts:          conf.Fonts,
		Renderers:      renderers,
		OutputDir:      conf.OutputDir,
		EmbedFontFiles: conf.EmbedFontFiles,
	}, nil
}

// Run processes all fonts. It returns an error for failures which terminate
// the run; fonts skipped because of missing sources are listed in the report.
func (d *Driver) Run() (*Report, error) {
	report := &Report{}
	irs := make([]*iconheaders.IR, 0, len(d.Fonts))
	for _, fd := range d.Fonts {
		ir, err := metadata.Build(fd)
		if errors.Is(err, iconheaders.ErrMissingSource) {
			tracer().Errorf("%v", err)
			report.Skipped = append(report.Skipped, err)
			continue
		} else if err != nil {
			return report, err
		}
		irs = append(irs, ir)
	}
	for _, ir := range irs {
		for _, r := range d.Renderers {
			if err := d.write(report, ir, r); err != nil {
				return report, err
			}
			if !d.EmbedFontFiles {
				continue
			}
			if emb, ok := r.(render.Embedder); ok {
				if err := d.embed(report, ir, r, emb); err != nil {
					return report, err
				}
			}
		}
	}
	return report, nil
}

func (d *Driver) write(report *Report, ir *iconheaders.IR, r render.Renderer) error {
	text, err := r.Render(ir)
	if err != nil {
		return err
	}
	path := filepath.Join(d.OutputDir, r.Filename(ir))
	if err := os.WriteFile(path, text, 0o644); err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}
	tracer().Infof("saved - %s", path)
	report.Outputs = append(report.Outputs, Output{Font: ir.Name, Language: r.Language(), Path: path})
	return nil
}

// embed writes listings of a font's font files. A missing font file stops
// embedding for this font and renderer, but not the run.
func (d *Driver) embed(report *Report, ir *iconheaders.IR, r render.Renderer, emb render.Embedder) error {
	for _, ff := range ir.FontFiles {
		fb, err := fontload.Load(ir.Name, ff)
		if err != nil {
			tracer().Errorf("%v", err)
			report.Skipped = append(report.Skipped, err)
			return nil
		}
		text, err := emb.Embed(ir, ff, fb.Binary)
		if err != nil {
			return err
		}
		path := filepath.Join(d.OutputDir, emb.EmbedFilename(ir, ff))
		if err := os.WriteFile(path, text, 0o644); err != nil {
			return fmt.Errorf("cannot save %s: %w", path, err)
		}
		tracer().Infof("font file saved - %s", path)
		report.Outputs = append(report.Outputs, Output{
			Font:     ir.Name,
			Language: r.Language(),
			Path:     path,
			Embedded: true,
		})
	}
	return nil
}

// --- Checking font files ---------------------------------------------------

// Coverage lists glyphs of a font which are missing from one of its font files.
type Coverage struct {
	Font     string
	File     iconheaders.FontFile
	FontName string // full name from the font file
	Glyphs   int    // number of glyphs checked
	Missing  []iconheaders.GlyphEntry
}

// Check compares each font's glyph list with the character maps of the
// font's font files. Fonts or font files which cannot be read are reported
// and skipped, as in Run.
func (d *Driver) Check() ([]Coverage, []error, error) {
	var coverage []Coverage
	var skipped []error
	for _, fd := range d.Fonts {
		ir, err := metadata.Build(fd)
		if errors.Is(err, iconheaders.ErrMissingSource) {
			tracer().Errorf("%v", err)
			skipped = append(skipped, err)
			continue
		} else if err != nil {
			return coverage, skipped, err
		}
		for _, ff := range ir.FontFiles {
			fb, err := fontload.Load(ir.Name, ff)
			if err != nil {
				tracer().Errorf("%v", err)
				skipped = append(skipped, err)
				continue
			}
			missing, err := fb.Missing(ir.Glyphs)
			if err != nil {
				skipped = append(skipped, &iconheaders.SourceError{Font: ir.Name, Path: ff.Source, Err: err})
				continue
			}
			coverage = append(coverage, Coverage{
				Font:     ir.Name,
				File:     ff,
				FontName: fb.Fontname,
				Glyphs:   len(ir.Glyphs),
				Missing:  missing,
			})
		}
	}
	return coverage, skipped, nil
}
