package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/handnotes/internal/export"
	"github.com/lox/handnotes/internal/session"
	"github.com/lox/handnotes/internal/tui"
)

// TUICmd runs the interactive recorder.
type TUICmd struct {
	Load    string `type:"existingfile" help:"Event log to load as the current hand"`
	LogFile string `help:"Debug log file (overrides ui.log_file)"`
}

func (cmd *TUICmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	logPath := cfg.UI.LogFile
	if cmd.LogFile != "" {
		logPath = cmd.LogFile
	}
	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "handnotes",
		Level:           cfg.LogLevel(),
	})
	logger.Info("Starting", "version", version, "config", g.Config)

	sess := session.New(session.Options{
		Blinds: cfg.Blinds(),
		Clock:  quartz.NewReal(),
		Logger: logger,
	})
	if cmd.Load != "" {
		l, err := readLog(cmd.Load)
		if err != nil {
			return err
		}
		sess.Load(l.Events())
		logger.Info("Loaded event log", "path", cmd.Load, "events", l.Len())
	}

	tui.ApplyTheme(cfg.UI.Theme)
	model := tui.NewTUIModel(sess, logger, tui.Options{
		Copier:    export.NewClipboardCopier(cfg.Export.Directory, cfg.UseClipboard(), logger),
		ExportDir: cfg.Export.Directory,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	logger.Info("Exiting", "saved_hands", len(sess.Saved()))
	return nil
}
