package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (bool, error) {
	help(op.arg)
	return false, nil
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "bounds", "min", "max", "max16":
		pterm.Info.Println("Bounds")
		pterm.Println(`
	Every font has three code point bounds, computed independently:
	+-------+---------------------------------------+
	| Min   | smallest code point above U+0127      |
	| Max16 | largest code point not above U+FFFF   |
	| Max   | largest code point                    |
	+-------+---------------------------------------+
	Without glyphs, Min is U+10FFFF and both maxima are 0.
	`)
	case "render", "lang", "language":
		pterm.Info.Println("render <lang>")
		pterm.Println(`
	Prints the header generated for the current font.
	Languages are cpp (C and C++) and go.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	fonts            list configured and built-in fonts
	font <name>      load a font's metadata
	find <text>      list glyphs with names containing <text>
	glyph <name>     show a glyph's code point and encodings
	bounds           show the code point bounds of the font
	render <lang>    print the generated header
	help [topic]     this text, or help on bounds / render
	quit             leave
	`)
	}
}
