package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/iconheaders/config"
	"github.com/npillmayer/iconheaders/render"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

func fontsOp(intp *Intp, op *Op) (bool, error) {
	data := [][]string{{"Font", "Abbr", "Metadata", "Origin"}}
	seen := make(map[string]bool)
	for _, fd := range intp.conf.Fonts {
		seen[fd.Name] = true
		data = append(data, []string{fd.Name, fd.Abbr, fd.Metadata, "configured"})
	}
	for _, fd := range config.Catalog() {
		if !seen[fd.Name] {
			data = append(data, []string{fd.Name, fd.Abbr, fd.Metadata, "built-in"})
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}

func fontOp(intp *Intp, op *Op) (bool, error) {
	if op.arg == "" {
		return false, fmt.Errorf("usage: font <name>")
	}
	if err := intp.loadFont(op.arg); err != nil {
		return false, err
	}
	pterm.Printf("%s: %d glyphs, styles %v\n", intp.ir.Name, len(intp.ir.Glyphs), intp.ir.Styles)
	return false, nil
}

func findOp(intp *Intp, op *Op) (bool, error) {
	if err := intp.checkFont(); err != nil {
		return false, err
	}
	data := [][]string{{"Glyph", "Code Point", "Identifier"}}
	needle := strings.ToLower(op.arg)
	for _, g := range intp.ir.Glyphs {
		if strings.Contains(strings.ToLower(g.Name), needle) {
			data = append(data, []string{g.Name, "U+" + g.CodePoint, strings.ReplaceAll(g.Name, "-", "_")})
		}
	}
	if len(data) == 1 {
		pterm.Printf("no glyph matches %q\n", op.arg)
		return false, nil
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}

func glyphOp(intp *Intp, op *Op) (bool, error) {
	if err := intp.checkFont(); err != nil {
		return false, err
	}
	g, ok := intp.ir.Glyph(op.arg)
	if !ok {
		return false, fmt.Errorf("no glyph %q in font %s", op.arg, intp.ir.Name)
	}
	r := g.Rune()
	pterm.Printf("glyph      %s\n", g.Name)
	pterm.Printf("code point U+%s\n", g.CodePoint)
	if name := runenames.Name(r); name != "" {
		pterm.Printf("unicode    %s\n", name)
	}
	pterm.Printf("C/C++      \"%s\"\n", render.EscapeC(string(r)))
	pterm.Printf("Go         %s = %+q\n", render.GoIdentifier(g.Name), string(r))
	return false, nil
}

func boundsOp(intp *Intp, op *Op) (bool, error) {
	if err := intp.checkFont(); err != nil {
		return false, err
	}
	b := intp.ir.Bounds
	data := [][]string{
		{"Bound", "Code Point"},
		{"Min", fmt.Sprintf("%#04x", b.Min)},
		{"Max16", fmt.Sprintf("%#04x", b.Max16)},
		{"Max", fmt.Sprintf("%#04x", b.Max)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}

func renderOp(intp *Intp, op *Op) (bool, error) {
	if err := intp.checkFont(); err != nil {
		return false, err
	}
	lang := op.arg
	if lang == "" {
		lang = "cpp"
	}
	r, err := render.Lookup(lang)
	if err != nil {
		return false, err
	}
	text, err := r.Render(intp.ir)
	if err != nil {
		return false, err
	}
	pterm.Info.Println(r.Filename(intp.ir))
	pterm.Println(string(text))
	return false, nil
}
