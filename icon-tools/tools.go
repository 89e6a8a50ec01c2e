package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/iconheaders/config"
	"github.com/npillmayer/iconheaders/generate"
	"github.com/npillmayer/iconheaders/metadata"
	"github.com/npillmayer/iconheaders/render"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'iconheaders'
func tracer() tracing.Trace {
	return tracing.Select("iconheaders")
}

func main() {
	initDisplay()
	commando.
		SetExecutableName("icon-tools").
		SetVersion("v0.1.0").
		SetDescription("Generate source headers with named glyph constants from icon font metadata.")

	commando.
		Register(nil).
		AddFlag("config,c", "TOML configuration file", commando.String, "-").
		AddFlag("out,o", "output directory", commando.String, "-").
		AddFlag("lang,l", "output languages, e.g. cpp,go", commando.String, "-").
		AddFlag("embed,e", "convert font files into byte array listings", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "-").
		SetAction(runGenerateCommand)

	commando.
		Register("generate").
		SetDescription("Write one header file per configured font and output language.").
		SetShortDescription("generate headers").
		AddFlag("config,c", "TOML configuration file", commando.String, "-").
		AddFlag("out,o", "output directory", commando.String, "-").
		AddFlag("lang,l", "output languages, e.g. cpp,go", commando.String, "-").
		AddFlag("embed,e", "convert font files into byte array listings", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "-").
		SetAction(runGenerateCommand)

	commando.
		Register("list").
		SetDescription("Print configured fonts with glyph counts and code point bounds.").
		SetShortDescription("list fonts").
		AddFlag("config,c", "TOML configuration file", commando.String, "-").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "-").
		SetAction(runListCommand)

	commando.
		Register("check").
		SetDescription("Check that font files contain every glyph listed in the font's metadata.").
		SetShortDescription("check font files").
		AddFlag("config,c", "TOML configuration file", commando.String, "-").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "-").
		SetAction(runCheckCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func runGenerateCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conf := mustLoadConfig(flags)
	if out := optFlagString(flags["out"], "out"); out != "" {
		conf.OutputDir = out
	}
	if langs := optFlagString(flags["lang"], "lang"); langs != "" {
		conf.Languages = splitCSVSpace(langs)
	}
	if mustFlagBool(flags["embed"], "embed") {
		conf.EmbedFontFiles = true
	}
	driver, err := generate.FromConfig(conf)
	if err != nil {
		fatalf("%v", err)
	}
	report, err := driver.Run()
	if report != nil {
		for _, o := range report.Outputs {
			pterm.Info.Println(fmt.Sprintf("%s (%s) => %s", o.Font, o.Language, o.Path))
		}
		for _, e := range report.Skipped {
			pterm.Error.Println(e)
		}
	}
	if err != nil {
		fatalf("%v", err)
	}
}

func runListCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conf := mustLoadConfig(flags)
	data := [][]string{{"Font", "Abbr", "Format", "Styles", "Glyphs", "Min", "Max16", "Max"}}
	for _, fd := range conf.Fonts {
		ir, err := metadata.Build(fd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		data = append(data, []string{
			ir.Name,
			ir.Abbr,
			ir.Format,
			strings.Join(ir.Styles, ","),
			strconv.Itoa(len(ir.Glyphs)),
			fmt.Sprintf("%#04x", ir.Bounds.Min),
			fmt.Sprintf("%#04x", ir.Bounds.Max16),
			fmt.Sprintf("%#04x", ir.Bounds.Max),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("languages: %s (known: %s)\n", strings.Join(conf.Languages, ","),
		strings.Join(render.Keys(), ","))
}

func runCheckCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conf := mustLoadConfig(flags)
	driver, err := generate.FromConfig(conf)
	if err != nil {
		fatalf("%v", err)
	}
	coverage, skipped, err := driver.Check()
	for _, e := range skipped {
		pterm.Error.Println(e)
	}
	if err != nil {
		fatalf("%v", err)
	}
	data := [][]string{{"Font", "File", "Font Name", "Glyphs", "Missing"}}
	incomplete := false
	for _, c := range coverage {
		data = append(data, []string{c.Font, c.File.Filename, c.FontName,
			strconv.Itoa(c.Glyphs), strconv.Itoa(len(c.Missing))})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	for _, c := range coverage {
		for _, g := range c.Missing {
			incomplete = true
			pterm.Printf("%s: %s (U+%s) not in %s\n", c.Font, g.Name, g.CodePoint, c.File.Filename)
		}
	}
	if incomplete {
		os.Exit(2)
	}
}

// mustLoadConfig reads the configuration named by flag --config, or the
// default configuration, and sets up tracing.
func mustLoadConfig(flags map[string]commando.FlagValue) *config.Config {
	conf := config.Default()
	if path := optFlagString(flags["config"], "config"); path != "" {
		var err error
		if conf, err = config.Load(path); err != nil {
			fatalf("%v", err)
		}
	}
	if level := optFlagString(flags["trace"], "trace"); level != "" {
		conf.TraceLevel = level
	}
	if err := config.SetupTracing(conf.TraceLevel); err != nil {
		fatalf("%v", err)
	}
	tracer().Debugf("configuration: %d fonts, languages %v", len(conf.Fonts), conf.Languages)
	return conf
}

// optFlagString returns a string flag's value, or "" if unset ("-").
func optFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	s = strings.TrimSpace(s)
	if s == "-" {
		return ""
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "icon-tools: "+format+"\n", args...)
	os.Exit(1)
}
