/*
Package config holds the font table and generator settings.

Icon fonts are described by hand-configured font descriptors. A catalog of
built-in descriptors is compiled into the generator; a TOML file may
replace the default settings and add fonts:

	output_dir = "include"
	languages = ["cpp", "go"]
	embed_font_files = false
	trace_level = "Info"

	[[font]]
	name = "FAReEdit"           # take descriptor from catalog

	[[font]]
	name = "Material Icons"
	abbr = "MD"
	metadata = "./material/codepoints"
	format = "codepoints"
	  [[font.files]]
	  code = "MD"
	  filename = "MaterialIcons-Regular.ttf"
	  source = "./material/MaterialIcons-Regular.ttf"

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/iconheaders"
	"github.com/npillmayer/iconheaders/render"
)

// Config is the set of settings for one generator run.
type Config struct {
	OutputDir      string                       `toml:"output_dir"`
	Languages      []string                     `toml:"languages"`
	EmbedFontFiles bool                         `toml:"embed_font_files"`
	TraceLevel     string                       `toml:"trace_level"`
	Fonts          []iconheaders.FontDescriptor `toml:"font"`
}

// FAReEdit is the icon font subset of Font Awesome 5 Pro used by RE Edit.
var FAReEdit = iconheaders.FontDescriptor{
	Name:     "FAReEdit",
	Abbr:     "fa",
	Metadata: "./re-edit-icons/metadata/icons.yml",
	Format:   iconheaders.FormatFontAwesome,
	Styles:   []string{"solid"},
	FontFiles: []iconheaders.FontFile{
		{Code: "FAS", Filename: "fa-solid-900.ttf", Source: "./re-edit-icons/webfonts/fa-solid-900.ttf"},
	},
}

// FontAwesome5 is Font Awesome version 5, regular and solid styles.
var FontAwesome5 = iconheaders.FontDescriptor{
	Name:     "Font Awesome 5",
	Abbr:     "FA",
	Metadata: "./Font-Awesome/metadata/icons.yml",
	Format:   iconheaders.FormatFontAwesome,
	Styles:   []string{"regular", "solid"},
	FontFiles: []iconheaders.FontFile{
		{Code: "FAR", Filename: "fa-regular-400.ttf", Source: "./Font-Awesome/webfonts/fa-regular-400.ttf"},
		{Code: "FAS", Filename: "fa-solid-900.ttf", Source: "./Font-Awesome/webfonts/fa-solid-900.ttf"},
	},
}

// FontAwesome5Brands is Font Awesome version 5, brands style. Its bounds
// are named differently to not clash with FontAwesome5.
var FontAwesome5Brands = iconheaders.FontDescriptor{
	Name:       "Font Awesome 5 Brands",
	Abbr:       "FAB",
	MinMaxAbbr: "FAB",
	Metadata:   "./Font-Awesome/metadata/icons.yml",
	Format:     iconheaders.FormatFontAwesome,
	Styles:     []string{"brands"},
	FontFiles: []iconheaders.FontFile{
		{Code: "FAB", Filename: "fa-brands-400.ttf", Source: "./Font-Awesome/webfonts/fa-brands-400.ttf"},
	},
}

// Catalog returns the built-in font descriptors.
func Catalog() []iconheaders.FontDescriptor {
	return []iconheaders.FontDescriptor{FAReEdit, FontAwesome5, FontAwesome5Brands}
}

// LookupFont finds a built-in font descriptor by display name.
func LookupFont(name string) (iconheaders.FontDescriptor, bool) {
	for _, fd := range Catalog() {
		if fd.Name == name {
			return fd, true
		}
	}
	return iconheaders.FontDescriptor{}, false
}

// Default returns the settings used without a configuration file: generate
// the C++ header for FAReEdit into the current directory, without
// embedding font files.
func Default() *Config {
	return &Config{
		OutputDir:  ".",
		Languages:  []string{"cpp"},
		TraceLevel: "Info",
		Fonts:      []iconheaders.FontDescriptor{FAReEdit},
	}
}

// Load reads settings from a TOML file. Settings missing from the file are
// taken from Default. A font table consisting of a name only refers to a
// catalog font.
func Load(path string) (*Config, error) {
	conf := &Config{}
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		tracer().Errorf("configuration %s: unknown key %s", path, key.String())
	}
	def := Default()
	if conf.OutputDir == "" {
		conf.OutputDir = def.OutputDir
	}
	if len(conf.Languages) == 0 {
		conf.Languages = def.Languages
	}
	if conf.TraceLevel == "" {
		conf.TraceLevel = def.TraceLevel
	}
	if len(conf.Fonts) == 0 {
		conf.Fonts = def.Fonts
	}
	for i, fd := range conf.Fonts {
		if fd.Metadata != "" {
			continue
		}
		builtin, ok := LookupFont(fd.Name)
		if !ok {
			return nil, fmt.Errorf("configuration %s: font %q has no metadata and is not a built-in font",
				path, fd.Name)
		}
		conf.Fonts[i] = overlay(builtin, fd)
	}
	tracer().Debugf("configuration %s: %d fonts, languages %v", path, len(conf.Fonts), conf.Languages)
	return conf, nil
}

// overlay returns the built-in descriptor with every field set in fd taking
// precedence.
func overlay(builtin, fd iconheaders.FontDescriptor) iconheaders.FontDescriptor {
	if fd.Abbr != "" {
		builtin.Abbr = fd.Abbr
	}
	if fd.MinMaxAbbr != "" {
		builtin.MinMaxAbbr = fd.MinMaxAbbr
	}
	if fd.Format != "" {
		builtin.Format = fd.Format
	}
	if len(fd.Styles) > 0 {
		builtin.Styles = fd.Styles
	}
	if len(fd.FontFiles) > 0 {
		builtin.FontFiles = fd.FontFiles
	}
	return builtin
}

// Renderers resolves the configured languages to renderers.
func (conf *Config) Renderers() ([]render.Renderer, error) {
	renderers := make([]render.Renderer, 0, len(conf.Languages))
	for _, lang := range conf.Languages {
		r, err := render.Lookup(lang)
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}
	return renderers, nil
}

// Font finds a configured font by display name.
func (conf *Config) Font(name string) (iconheaders.FontDescriptor, bool) {
	for _, fd := range conf.Fonts {
		if fd.Name == name {
			return fd, true
		}
	}
	return iconheaders.FontDescriptor{}, false
}
