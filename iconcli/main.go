package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/iconheaders"
	"github.com/npillmayer/iconheaders/config"
	"github.com/npillmayer/iconheaders/metadata"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// tracer traces with key 'iconheaders'
func tracer() tracing.Trace {
	return tracing.Select("iconheaders")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error], overrides configuration")
	confpath := flag.String("config", "", "TOML configuration file")
	fontname := flag.String("font", "", "Font to load")
	flag.Parse()

	conf := config.Default()
	if *confpath != "" {
		var err error
		if conf, err = config.Load(*confpath); err != nil {
			pterm.Error.Println(err)
			os.Exit(2)
		}
	}
	// set up logging
	if err := config.SetupTracing(traceLevel(*tlevel, conf)); err != nil {
		fmt.Printf("error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	pterm.Info.Println("Welcome to the icon font browser") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("icons > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, conf: conf}
	if *fontname != "" {
		if err := intp.loadFont(*fontname); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
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

// Intp is our interpreter object
type Intp struct {
	conf *config.Config
	repl *readline.Instance
	ir   *iconheaders.IR
}

func (intp *Intp) String() string {
	if intp == nil || intp.ir == nil {
		return "( no font )"
	}
	return fmt.Sprintf("( font=%s, %d glyphs )", intp.ir.Name, len(intp.ir.Glyphs))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a parsed command line: an op-code and an optional argument.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	FONTS
	FONT
	FIND
	GLYPH
	BOUNDS
	RENDER
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"fonts":  FONTS,
	"font":   FONT,
	"find":   FIND,
	"glyph":  GLYPH,
	"bounds": BOUNDS,
	"render": RENDER,
}

// parseCommand splits a line into command and argument. The argument is the
// remainder of the line, as font names may contain spaces.
// Unknown commands yield HELP.
func parseCommand(line string) Op {
	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		return Op{code: HELP, arg: word}
	}
	op := Op{code: code, arg: strings.TrimSpace(arg)}
	tracer().Debugf("parsed command: %v", op)
	return op
}

var commandFn = map[int]func(*Intp, *Op) (bool, error){
	QUIT:   quitOp,
	HELP:   helpOp,
	FONTS:  fontsOp,
	FONT:   fontOp,
	FIND:   findOp,
	GLYPH:  glyphOp,
	BOUNDS: boundsOp,
	RENDER: renderOp,
}

func (intp *Intp) execute(op Op) (stop bool, err error) {
	f, ok := commandFn[op.code]
	if !ok {
		return false, fmt.Errorf("unknown command code: %d", op.code)
	}
	return f(intp, &op)
}

func quitOp(intp *Intp, op *Op) (bool, error) {
	pterm.Println("Goodbye!")
	return true, nil
}

// --- Font Loading -----------------------------------------------------

var errNoFont = errors.New("no font loaded, use 'font <name>'")

func (intp *Intp) loadFont(name string) error {
	fd, ok := intp.conf.Font(name)
	if !ok {
		if fd, ok = config.LookupFont(name); !ok {
			return fmt.Errorf("font %q is neither configured nor built in", name)
		}
	}
	ir, err := metadata.Build(fd)
	if err != nil {
		return err
	}
	intp.ir = ir
	tracer().Infof("loaded font %s", ir.Name)
	return nil
}

func (intp *Intp) checkFont() error {
	if intp.ir == nil {
		return errNoFont
	}
	return nil
}

// traceLevel selects the trace level given on the command line, falling
// back to the configured one.
func traceLevel(flagLevel string, conf *config.Config) string {
	if flagLevel != "" {
		return flagLevel
	}
	return conf.TraceLevel
}
