// Package handid generates identifiers for saved hands.
//
// IDs are UUIDv7 values encoded as 26 characters of Crockford base32, so they
// sort by creation time.
package handid

import (
	"encoding/base32"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator creates hand IDs, reading randomness from an optional source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a generator reading random bits from r. A nil reader
// uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// New returns a fresh hand ID from the default generator.
func New() (string, error) {
	return NewGenerator(nil).New()
}

// New returns a fresh hand ID.
func (g *Generator) New() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		return "", fmt.Errorf("generating hand id: %w", err)
	}
	return encoding.EncodeToString(id[:]), nil
}

// Validate checks that id is 26 characters of the ID alphabet.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("hand ID must be exactly 26 characters, got %d", len(id))
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
