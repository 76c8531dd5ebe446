// Package cards models playing cards as they are picked and displayed.
package cards

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when card text cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// Suits lists suits in picker order.
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// Letter returns the lower-case suit letter used in card codes.
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankLetters = "23456789TJQKA"

// String returns the single-character rank, with T for ten.
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankLetters[r-Two])
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the card code, e.g. "As" or "Td".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Pretty returns the card with its suit symbol, e.g. "A♠". Tens are shown
// as 10.
func (c Card) Pretty() string {
	rank := c.Rank.String()
	if c.Rank == Ten {
		rank = "10"
	}
	return rank + c.Suit.Symbol()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// All returns the 52 cards in picker order: suit by suit, ranks ascending.
func All() []Card {
	out := make([]Card, 0, 52)
	for _, s := range Suits {
		for r := Two; r <= Ace; r++ {
			out = append(out, Card{Rank: r, Suit: s})
		}
	}
	return out
}

// Parse normalises user card text such as "as", "10h" or " K d ".
func Parse(text string) (Card, error) {
	s := strings.ToLower(strings.Join(strings.Fields(text), ""))
	if strings.HasPrefix(s, "10") {
		s = "t" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, text)
	}

	idx := strings.IndexByte(strings.ToLower(rankLetters), s[0])
	if idx < 0 {
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCard, text)
	}
	for _, suit := range Suits {
		if suit.Letter() == s[1:] {
			return Card{Rank: Two + Rank(idx), Suit: suit}, nil
		}
	}
	return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, text)
}

// ParseRun splits a run of card codes such as "AsKd7c".
func ParseRun(run string) ([]Card, error) {
	s := strings.Join(strings.Fields(run), "")
	s = strings.ReplaceAll(s, "10", "T")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length run %q", ErrInvalidCard, run)
	}
	out := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := Parse(s[i : i+2])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Join concatenates card codes, e.g. "AsKd7c".
func Join(cs []Card) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.String())
	}
	return b.String()
}
