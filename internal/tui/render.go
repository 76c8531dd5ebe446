package tui

import (
	"fmt"
	"strings"

	"github.com/lox/handnotes/internal/cards"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/session"
	"github.com/lox/handnotes/internal/transcript"
)

// renderLogPane renders the current hand followed by the saved hands.
func (m *TUIModel) renderLogPane() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render(" Current hand "))
	content.WriteString("\n")
	events := m.session.Events()
	items := transcript.Items(events, m.session.Setup())
	content.WriteString(renderItems(items))
	if len(events) == 0 {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render("No actions yet"))
	}

	saved := m.session.Saved()
	if len(saved) > 0 {
		content.WriteString("\n\n")
		content.WriteString(HeaderStyle.Render(" Saved hands "))
		for _, h := range saved {
			content.WriteString("\n\n")
			content.WriteString(ActionsStyle.Render(h.Title))
			content.WriteString(InfoStyle.Render(fmt.Sprintf("  %s · %s", h.ID, h.SavedAt.Format("15:04:05"))))
			content.WriteString("\n")
			content.WriteString(renderItems(h.Items))
		}
	}
	return content.String()
}

func renderItems(items []transcript.Item) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case transcript.KindSetup:
			lines = append(lines, InfoStyle.Render(transcript.SetupLine(it.Setup)))
		case transcript.KindStreet:
			lines = append(lines, StreetStyle.Render(fmt.Sprintf("--- %s ---", it.Street)))
		case transcript.KindBoard:
			board := formatCards(it.Cards)
			if board == "" {
				board = InfoStyle.Render("(no cards)")
			}
			lines = append(lines, fmt.Sprintf("%s : %s", it.Street, board))
		case transcript.KindAction:
			lines = append(lines, it.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// renderSidebarPane shows pot, seats and the current selection.
func (m *TUIModel) renderSidebarPane() string {
	var content strings.Builder
	st := m.session.State()

	content.WriteString(WarningStyle.Render(fmt.Sprintf("Pot: %sbb", transcript.FormatDecimal(st.Pot))))
	content.WriteString(" | ")
	content.WriteString(WarningStyle.Render(fmt.Sprintf("To call: %sbb", transcript.FormatDecimal(st.ToCall))))
	content.WriteString("\n")
	content.WriteString(StreetStyle.Render(st.Street.String()))
	content.WriteString("\n\n")

	selected, kind, hasAction := m.session.Selection()
	hero := m.session.Setup().HeroPosition
	for _, p := range hand.Positions {
		name := fmt.Sprintf("%-3s", p)
		marker := "  "
		if p == selected {
			marker = "▸ "
		}
		if p == hero {
			name += "★"
		} else {
			name += " "
		}
		switch {
		case st.Folded[p]:
			content.WriteString(InfoStyle.Render(marker + name + " folded"))
		case p == selected:
			content.WriteString(SelectedStyle.Render(marker+name) + " " + m.seatLine(p))
		default:
			content.WriteString(marker + name + " " + m.seatLine(p))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	action := "-"
	if hasAction {
		action = kind.String()
	}
	content.WriteString(InfoStyle.Render(fmt.Sprintf("Action: %s  Size: %s", action, orDash(m.session.Size()))))
	content.WriteString("\n\n")
	content.WriteString(m.renderSlots())

	if saved := m.session.Saved(); len(saved) > 0 {
		content.WriteString("\n\n")
		content.WriteString(InfoStyle.Render(fmt.Sprintf("Saved: %d (newest %s)", len(saved), saved[0].Title)))
	}
	return content.String()
}

func (m *TUIModel) seatLine(p hand.Position) string {
	st := m.session.State()
	line := fmt.Sprintf("in %sbb", transcript.FormatDecimal(st.Committed.Of(p)))
	if owed := st.Owed(p); owed.IsPositive() {
		line += fmt.Sprintf(", owes %sbb", transcript.FormatDecimal(owed))
	}
	return line
}

// renderSlots shows the hero and board card slots, highlighting the target.
func (m *TUIModel) renderSlots() string {
	groups := [][]session.Slot{
		{session.Hole1, session.Hole2},
		{session.Flop1, session.Flop2, session.Flop3},
		{session.TurnCard},
		{session.RiverCard},
	}
	var parts []string
	for _, g := range groups {
		var slots []string
		for _, slot := range g {
			text := "--"
			if c, ok := m.session.SlotCard(slot); ok {
				text = formatCard(c)
			}
			if slot == m.session.PickTarget() {
				text = SelectedStyle.Render(slot.String()) + ":" + text
			}
			slots = append(slots, text)
		}
		parts = append(parts, strings.Join(slots, " "))
	}
	return "Hole " + parts[0] + "\nBoard " + strings.Join(parts[1:], " | ")
}

// renderActionPane renders the card picker, input, status and help.
func (m *TUIModel) renderActionPane() string {
	var content strings.Builder

	content.WriteString(m.renderPicker())
	content.WriteString("\n")
	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			content.WriteString(ErrorStyle.Render(m.status))
		} else {
			content.WriteString(SuccessStyle.Render(m.status))
		}
		content.WriteString("\n")
	}

	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render("Enter to submit • ^Z undo • ^N next street • ^E end hand • ^Y copy • Tab to scroll • Ctrl+C to quit"))
	}
	return content.String()
}

// renderPicker shows the deck one suit per row, dimming cards in use.
func (m *TUIModel) renderPicker() string {
	rows := make([]string, 0, len(cards.Suits))
	var row []string
	for i, c := range cards.All() {
		if m.session.CardInUse(c) {
			row = append(row, UsedCardStyle.Render(c.String()))
		} else {
			row = append(row, formatCard(c))
		}
		if (i+1)%13 == 0 {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	return strings.Join(rows, "\n")
}

func formatCard(c cards.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// formatCards formats cards with colors
func formatCards(cs []cards.Card) string {
	formatted := make([]string, 0, len(cs))
	for _, c := range cs {
		formatted = append(formatted, formatCard(c))
	}
	return strings.Join(formatted, "")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
