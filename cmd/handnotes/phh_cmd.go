package main

import (
	"io"

	"github.com/coder/quartz"
	"github.com/lox/handnotes/internal/export"
	"github.com/lox/handnotes/internal/handid"
	"github.com/lox/handnotes/internal/phh"
)

// PHHCmd converts an event log to a PHH hand history.
type PHHCmd struct {
	SetupFlags

	File   string `arg:"" name:"log" help:"Event log file, or - for stdin"`
	ID     string `help:"Hand ID (generated when empty)"`
	Output string `short:"o" type:"path" help:"Write to this file instead of stdout"`

	out   io.Writer    `kong:"-"`
	clock quartz.Clock `kong:"-"`
}

func (cmd *PHHCmd) Run(g *Globals) error {
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

	id := cmd.ID
	if id == "" {
		if id, err = handid.New(); err != nil {
			return err
		}
	}

	clock := cmd.clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	data, err := phh.EncodeToBytes(phh.FromLog(events, phh.Options{
		HandID:    id,
		Setup:     setup,
		Blinds:    cfg.Blinds(),
		Timestamp: clock.Now(),
	}))
	if err != nil {
		return err
	}

	if cmd.Output != "" {
		return export.WriteFileAtomic(cmd.Output, data, 0o644)
	}
	_, err = output(cmd.out).Write(data)
	return err
}
