package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lox/handnotes/internal/betting"
	"github.com/lox/handnotes/internal/cards"
	"github.com/lox/handnotes/internal/config"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/session"
	"github.com/lox/handnotes/internal/transcript"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config string `short:"c" type:"path" default:"handnotes.hcl" help:"Path to the HCL config file"`
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	TUI        TUICmd           `cmd:"tui" default:"withargs" help:"Record hands in the terminal UI"`
	Eval       EvalCmd          `cmd:"" help:"Evaluate an event log and print the betting state"`
	Transcript TranscriptCmd    `cmd:"" help:"Print the shareable transcript of an event log"`
	PHH        PHHCmd           `cmd:"phh" help:"Convert an event log to a PHH hand history"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handnotes"),
		kong.Description("Record poker hands and keep a running pot"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads and validates the config file.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", g.Config, err)
	}
	return cfg, nil
}

// SetupFlags describe the hero for transcript and PHH output.
type SetupFlags struct {
	Hero  string `help:"Hero seat (utg, hj, co, btn, sb, bb)"`
	Eff   string `help:"Effective stack in big blinds"`
	Cards string `help:"Hero hole cards, e.g. AhKh"`
}

func (f SetupFlags) setup() (transcript.Setup, error) {
	setup := transcript.NewSetup()
	setup.EffectiveStack = strings.TrimSpace(f.Eff)
	if f.Hero != "" {
		pos, err := hand.ParsePosition(f.Hero)
		if err != nil {
			return setup, err
		}
		setup.HeroPosition = pos
	}
	if f.Cards != "" {
		hole, err := cards.ParseRun(f.Cards)
		if err != nil {
			return setup, fmt.Errorf("hero cards: %w", err)
		}
		if len(hole) != 2 {
			return setup, fmt.Errorf("hero cards: want 2, got %d", len(hole))
		}
		setup.HeroCards = hole
	}
	return setup, nil
}

// readLog parses an event log file, "-" meaning stdin.
func readLog(path string) (hand.Log, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return hand.Log{}, err
		}
		defer f.Close()
		r = f
	}
	l, err := hand.ParseLog(r)
	if err != nil {
		return hand.Log{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return l, nil
}

// annotatedLog reads a log and fills in transcript text for its actions.
func annotatedLog(path string, cfg *config.Config) ([]hand.Event, error) {
	l, err := readLog(path)
	if err != nil {
		return nil, err
	}
	return session.Annotate(betting.NewEngine(cfg.Blinds()), l.Events()), nil
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
