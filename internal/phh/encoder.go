package phh

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lox/handnotes/internal/hand"
)

// seatOrder is the PHH player order: blinds first, button last.
var seatOrder = []hand.Position{hand.SB, hand.BB, hand.UTG, hand.HJ, hand.CO, hand.BTN}

// PlayerIndex returns the 1-based PHH player number for pos, or 0 for an
// unknown seat.
func PlayerIndex(pos hand.Position) int {
	for i, p := range seatOrder {
		if p == pos {
			return i + 1
		}
	}
	return 0
}

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hh *HandHistory) error {
	if hh == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hh)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hh *HandHistory) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, hh); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
