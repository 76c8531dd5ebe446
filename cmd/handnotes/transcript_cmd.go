package main

import (
	"fmt"
	"io"

	"github.com/lox/handnotes/internal/export"
	"github.com/lox/handnotes/internal/transcript"
)

// TranscriptCmd prints the shareable transcript of an event log.
type TranscriptCmd struct {
	SetupFlags

	File  string `arg:"" name:"log" help:"Event log file, or - for stdin"`
	Title string `default:"Hand #1" help:"Transcript title"`
	Copy  bool   `help:"Copy to the clipboard (or export directory) instead of printing"`

	out io.Writer `kong:"-"`
}

func (cmd *TranscriptCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	setup, err := cmd.setup()
	if err != nil {
		return err
	}
	events, err := annotatedLog(cmd.File, cfg)
	if err != nil {
		return err
	}

	text := transcript.Text(cmd.Title, transcript.Items(events, setup))
	w := output(cmd.out)
	if !cmd.Copy {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	copier := export.NewClipboardCopier(cfg.Export.Directory, cfg.UseClipboard(), nil)
	dest, err := copier.Copy(cmd.Title, text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Copied %s to %s\n", cmd.Title, dest)
	return err
}
