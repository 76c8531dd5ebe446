package hand

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedLine is returned for log lines that cannot be parsed.
var ErrMalformedLine = errors.New("malformed log line")

// ParseLine parses a single log line.
//
//	board flop AsKd7c
//	btn raise 3
//	bb call
func ParseLine(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	if strings.EqualFold(fields[0], "board") {
		street, err := ParseStreet(fields[1])
		if err != nil {
			return nil, err
		}
		if street == Preflop {
			return nil, fmt.Errorf("%w: board cannot start preflop", ErrMalformedLine)
		}
		return BoardEvent{Street: street, Cards: strings.Join(fields[2:], "")}, nil
	}

	pos, err := ParsePosition(fields[0])
	if err != nil {
		return nil, err
	}
	kind, err := ParseActionKind(fields[1])
	if err != nil {
		return nil, err
	}
	ev := ActionEvent{Position: pos, Action: kind}
	switch len(fields) {
	case 2:
	case 3:
		if !kind.Sized() {
			return nil, fmt.Errorf("%w: %s takes no size", ErrMalformedLine, kind)
		}
		ev.Size = fields[2]
	default:
		return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	return ev, nil
}

// ParseLog reads one event per line. Blank lines and lines starting with #
// are skipped.
func ParseLog(r io.Reader) (Log, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := ParseLine(line)
		if err != nil {
			return Log{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return Log{}, fmt.Errorf("reading log: %w", err)
	}
	return NewLog(events...), nil
}

// FormatLine renders an event in the format accepted by ParseLine.
func FormatLine(ev Event) string {
	switch e := ev.(type) {
	case BoardEvent:
		line := "board " + strings.ToLower(e.Street.String())
		if e.Cards != "" {
			line += " " + e.Cards
		}
		return line
	case ActionEvent:
		line := strings.ToLower(e.Position.String()) + " " + actionToken(e.Action)
		if e.Action.Sized() && strings.TrimSpace(e.Size) != "" {
			line += " " + strings.TrimSpace(e.Size)
		}
		return line
	default:
		return ""
	}
}

// FormatLog writes the log one event per line.
func FormatLog(w io.Writer, l Log) error {
	for _, ev := range l.events {
		if _, err := fmt.Fprintln(w, FormatLine(ev)); err != nil {
			return err
		}
	}
	return nil
}

func actionToken(a ActionKind) string {
	if a == AllIn {
		return "allin"
	}
	return strings.ToLower(a.String())
}
