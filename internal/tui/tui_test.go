package tui

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/handnotes/internal/export"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCopier struct {
	name, text string
	dest       export.Destination
	err        error
}

func (f *fakeCopier) Copy(name, text string) (export.Destination, error) {
	f.name, f.text = name, text
	return f.dest, f.err
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestModel(t *testing.T, opts Options) *TUIModel {
	t.Helper()
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, time.November, 14, 15, 22, 0, 0, time.UTC))
	sess := session.New(session.Options{Clock: clock, Logger: quietLogger()})
	opts.TestMode = true
	return NewTUIModel(sess, quietLogger(), opts)
}

// submit types line into the input one key at a time and presses enter.
func submit(m *TUIModel, line string) tea.Cmd {
	for _, r := range line {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{r}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func lastStatus(t *testing.T, m *TUIModel) string {
	t.Helper()
	captured := m.GetCapturedLog()
	require.NotEmpty(t, captured)
	return captured[len(captured)-1]
}

func TestTUITestMode(t *testing.T) {
	t.Run("test mode captures status messages", func(t *testing.T) {
		m := newTestModel(t, Options{})
		assert.True(t, m.IsTestMode())
		assert.Empty(t, m.GetCapturedLog())

		submit(m, "btn")
		assert.Equal(t, []string{"Selected BTN"}, m.GetCapturedLog())
		assert.Equal(t, "Selected BTN", m.Status())
	})

	t.Run("production mode does not capture", func(t *testing.T) {
		sess := session.New(session.Options{Clock: quartz.NewMock(t), Logger: quietLogger()})
		m := NewTUIModel(sess, quietLogger(), Options{})
		assert.False(t, m.IsTestMode())

		submit(m, "btn")
		assert.Nil(t, m.GetCapturedLog())
		assert.Equal(t, "Selected BTN", m.Status())
	})
}

func TestRecordHandThroughCommands(t *testing.T) {
	copier := &fakeCopier{dest: export.Destination{Clipboard: true}}
	m := newTestModel(t, Options{Copier: copier})

	for _, line := range []string{
		"hero btn",
		"eff 100bb",
		"hole AhKh",
		"btn raise 3",
		"bb call",
		"flop As Kd 7c",
		"bb x",
		"btn bet 2",
		"bb c",
		"end",
		"copy",
	} {
		submit(m, line)
	}

	assert.Equal(t, []string{
		"Hero BTN",
		"Effective stack 100bb",
		"Picked Ah Kh",
		"BTN raises to 3bb",
		"BB calls 3bb",
		"Dealt flop",
		"BB checks",
		"BTN bets 2bb",
		"BB calls 2bb",
		"Saved Hand #1",
		"Copied Hand #1 to clipboard",
	}, m.GetCapturedLog())

	assert.Equal(t, strings.Join([]string{
		"Hand #1",
		"Setup · Hero BTN · AhKh · 100bb",
		"--- PREFLOP ---",
		"BTN raises to 3bb",
		"BB calls 3bb",
		"--- FLOP ---",
		"FLOP : AsKd7c",
		"BB checks",
		"BTN bets 2bb",
		"BB calls 2bb",
	}, "\n"), copier.text)
	assert.Len(t, copier.name, 26)
}

func TestCommandErrors(t *testing.T) {
	m := newTestModel(t, Options{})

	tests := []struct {
		line string
		want string
	}{
		{"raise 3", "Error: no seat selected"},
		{"wat", "Error: unknown command: wat (type 'help' for commands)"},
		{"copy", "Error: sharing is not configured"},
		{"phh", "Error: no saved hands"},
		{"eff lots", `Error: effective stack must be a positive number of big blinds, got "lots"`},
		{"btn raise", "Error: raise needs a size"},
		{"btn dance", `Error: unknown action: "dance"`},
		{"undo", "Error: nothing to undo"},
		{"flop", "Error: board cards missing: FLOP"},
		{"flop AsKd", "Error: FLOP needs 3 cards, got 2"},
		{"pick z9", `Error: unknown card slot "Z9"`},
		{"end", "Error: hand has no events"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			submit(m, tt.line)
			assert.Equal(t, tt.want, lastStatus(t, m))
		})
	}
}

func TestFoldedSeatCannotAct(t *testing.T) {
	m := newTestModel(t, Options{})
	submit(m, "utg fold")
	submit(m, "utg call")
	assert.Equal(t, "Error: seat has folded: UTG", lastStatus(t, m))
}

func TestPickCommands(t *testing.T) {
	m := newTestModel(t, Options{})

	submit(m, "pick f1 As Kd")
	assert.Equal(t, "Picked As Kd", lastStatus(t, m))
	assert.Equal(t, session.Flop3, m.session.PickTarget())

	submit(m, "7c")
	assert.Equal(t, "Picked 7c", lastStatus(t, m))

	submit(m, "pick r")
	assert.Equal(t, "Picking R", lastStatus(t, m))

	submit(m, "As")
	assert.Equal(t, "Error: card already in use: As in F1", lastStatus(t, m))

	submit(m, "hole Ah Kh Qh")
	assert.Equal(t, "Error: hole needs at most two cards, got 3", lastStatus(t, m))
}

func TestTypedEndSavesHand(t *testing.T) {
	m := newTestModel(t, Options{})
	submit(m, "btn raise 3")
	submit(m, "end")
	assert.Equal(t, "Saved Hand #1", lastStatus(t, m))
	assert.Empty(t, m.actionInput.Value())
	assert.Len(t, m.session.Saved(), 1)
}

func TestBoardCommandRefusesCardInUse(t *testing.T) {
	m := newTestModel(t, Options{})
	submit(m, "pick f1 AsKd7c")
	submit(m, "hole QhQs")
	submit(m, "flop 2c3cQh")
	assert.Equal(t, "Error: card already in use: Qh in H1", lastStatus(t, m))

	for slot, want := range map[session.Slot]string{
		session.Flop1: "As",
		session.Flop2: "Kd",
		session.Flop3: "7c",
		session.Hole1: "Qh",
		session.Hole2: "Qs",
	} {
		c, ok := m.session.SlotCard(slot)
		require.True(t, ok, slot.String())
		assert.Equal(t, want, c.String(), slot.String())
	}
	assert.Empty(t, m.session.Events())

	submit(m, "hole Ah7c")
	assert.Equal(t, "Error: card already in use: 7c in F3", lastStatus(t, m))
	c, _ := m.session.SlotCard(session.Hole1)
	assert.Equal(t, "Qh", c.String())

	submit(m, "flop 2c3c4c")
	assert.Equal(t, "Dealt flop", lastStatus(t, m))
	assert.True(t, m.session.CardInUse(c))
	first, _ := m.session.SlotCard(session.Flop1)
	assert.Equal(t, "2c", first.String())
}

func TestNextStreetCommand(t *testing.T) {
	m := newTestModel(t, Options{})
	submit(m, "btn raise 3")
	submit(m, "next")
	assert.Equal(t, "Moved to the flop", lastStatus(t, m))
	assert.Equal(t, hand.Flop, m.session.State().Street)

	submit(m, "next")
	assert.Equal(t, "Error: street already dealt", lastStatus(t, m))
}

func TestKeyboardShortcuts(t *testing.T) {
	m := newTestModel(t, Options{})
	submit(m, "btn raise 3")
	require.Len(t, m.session.Events(), 1)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Empty(t, m.session.Events())
	assert.Equal(t, "Undid last entry", lastStatus(t, m))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, hand.Flop, m.session.State().Street)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	assert.Equal(t, "Saved Hand #1", lastStatus(t, m))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	cmd := submit(m, "quit")
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	m = newTestModel(t, Options{})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestExportPHH(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ExportDir: dir})
	submit(m, "co raise 2.5")
	submit(m, "bb call")
	submit(m, "end")
	submit(m, "phh 1")

	saved := m.session.Saved()
	require.Len(t, saved, 1)
	path := filepath.Join(dir, saved[0].ID+".phh")
	assert.Equal(t, "Wrote Hand #1 to "+path, lastStatus(t, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `variant = "NT"`)
	assert.Contains(t, string(data), `"p5 cbr 2.5"`)

	submit(m, "phh 2")
	assert.Equal(t, `Error: no saved hand "2"`, lastStatus(t, m))
}

func TestCopyFallbackAndFailure(t *testing.T) {
	copier := &fakeCopier{dest: export.Destination{Path: "/tmp/hands/x.txt"}}
	m := newTestModel(t, Options{Copier: copier})
	submit(m, "btn raise 3")
	submit(m, "end")

	submit(m, "copy #1")
	assert.Equal(t, "Wrote Hand #1 to /tmp/hands/x.txt", lastStatus(t, m))

	copier.err = errors.New("disk full")
	submit(m, "copy")
	assert.Equal(t, "Error: disk full", lastStatus(t, m))
}

func TestView(t *testing.T) {
	m := newTestModel(t, Options{})
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	submit(m, "hero co")
	submit(m, "co raise 2.5")

	view := m.View()
	assert.Contains(t, view, "Current hand")
	assert.Contains(t, view, "Pot: 4bb")
	assert.Contains(t, view, "To call: 2.5bb")
	assert.Contains(t, view, "CO raises to 2.5bb")
	assert.Contains(t, view, "Setup · Hero CO · -- · -bb")

	submit(m, "end")
	assert.Contains(t, m.View(), "Saved hands")
}

func TestTabTogglesFocus(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focusedPane)

	// Enter does nothing while the log has focus.
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.GetCapturedLog())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focusedPane)
}
