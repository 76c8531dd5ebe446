package phh_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lox/handnotes/internal/betting"
	"github.com/lox/handnotes/internal/cards"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/phh"
	"github.com/lox/handnotes/internal/randutil"
	"github.com/lox/handnotes/internal/transcript"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerIndex(t *testing.T) {
	assert.Equal(t, 1, phh.PlayerIndex(hand.SB))
	assert.Equal(t, 2, phh.PlayerIndex(hand.BB))
	assert.Equal(t, 3, phh.PlayerIndex(hand.UTG))
	assert.Equal(t, 6, phh.PlayerIndex(hand.BTN))
	assert.Equal(t, 0, phh.PlayerIndex(hand.NoPosition))
}

func sampleLog() []hand.Event {
	return []hand.Event{
		hand.ActionEvent{Position: hand.UTG, Action: hand.Fold},
		hand.ActionEvent{Position: hand.BTN, Action: hand.Raise, Size: "3"},
		hand.ActionEvent{Position: hand.BB, Action: hand.Call},
		hand.ActionEvent{Position: hand.UTG, Action: hand.Call},
		hand.BoardEvent{Street: hand.Flop, Cards: "AsKd7c"},
		hand.ActionEvent{Position: hand.BB, Action: hand.Check},
		hand.ActionEvent{Position: hand.BTN, Action: hand.Raise, Size: "2"},
		hand.ActionEvent{Position: hand.BB, Action: hand.Raise},
		hand.ActionEvent{Position: hand.BB, Action: hand.Call},
		hand.BoardEvent{Street: hand.Turn},
	}
}

func TestFromLog(t *testing.T) {
	hero, err := cards.ParseRun("AhKh")
	require.NoError(t, err)

	hh := phh.FromLog(sampleLog(), phh.Options{
		HandID:    "hand-1",
		Setup:     transcript.Setup{HeroPosition: hand.BTN, EffectiveStack: "100", HeroCards: hero},
		Timestamp: time.Date(2025, time.November, 14, 15, 22, 0, 0, time.UTC),
	})

	assert.Equal(t, "NT", hh.Variant)
	assert.Equal(t, 6, hh.SeatCount)
	assert.Equal(t, []string{"SB", "BB", "UTG", "HJ", "CO", "BTN"}, hh.Players)
	assert.Equal(t, []float64{0.5, 1, 0, 0, 0, 0}, hh.BlindsOrStraddles)
	assert.Equal(t, []float64{100, 100, 100, 100, 100, 100}, hh.StartingStacks)
	assert.Equal(t, 1.0, hh.MinBet)
	assert.Equal(t, []string{
		"d dh p1 ????",
		"d dh p2 ????",
		"d dh p3 ????",
		"d dh p4 ????",
		"d dh p5 ????",
		"d dh p6 AhKh",
		"p3 f",
		"p6 cbr 3",
		"p2 cc",
		// HJ, CO and SB never acted preflop.
		"p1 f",
		"p4 f",
		"p5 f",
		"d db AsKd7c",
		"p2 cc",
		"p6 cbr 2",
		"p2 cc",
		"d db ??",
	}, hh.Actions)
	assert.Equal(t, "BTN", hh.Metadata["hero"])
	assert.Equal(t, 10.5, hh.Metadata["final_pot"])
	assert.Equal(t, 2025, hh.Year)
	assert.Equal(t, "15:22:00", hh.Time)
}

func TestFromLogCustomBlinds(t *testing.T) {
	hh := phh.FromLog(nil, phh.Options{
		Setup:  transcript.NewSetup(),
		Blinds: betting.Blinds{Small: decimal.NewFromInt(1), Big: decimal.NewFromInt(2)},
	})
	assert.Equal(t, []float64{1, 2, 0, 0, 0, 0}, hh.BlindsOrStraddles)
	assert.Equal(t, 2.0, hh.MinBet)
	assert.Equal(t, 3.0, hh.Metadata["final_pot"])
	assert.NotContains(t, hh.Metadata, "hero")
	assert.Zero(t, hh.Year)
}

func TestEncodeRoundTrip(t *testing.T) {
	hh := phh.FromLog(sampleLog(), phh.Options{
		HandID: "hand-00042",
		Setup:  transcript.Setup{HeroPosition: hand.SB, EffectiveStack: "50"},
	})

	var buf bytes.Buffer
	require.NoError(t, phh.Encode(&buf, hh))
	assert.Contains(t, buf.String(), "variant = \"NT\"\n")
	assert.Contains(t, buf.String(), "hand = \"hand-00042\"\n")

	var decoded phh.HandHistory
	_, err := toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, hh.Actions, decoded.Actions)
	assert.Equal(t, hh.StartingStacks, decoded.StartingStacks)
	assert.Equal(t, hh.BlindsOrStraddles, decoded.BlindsOrStraddles)
	assert.Equal(t, hh.Players, decoded.Players)
}

func TestEncodeNil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, phh.Encode(&buf, nil))
}

// replayPot adds up the chips a PHH reader would see move: blinds, calls up
// to the current bet and bets or raises to their street total.
func replayPot(t *testing.T, hh *phh.HandHistory) float64 {
	t.Helper()
	street := make([]decimal.Decimal, len(hh.BlindsOrStraddles))
	bet := decimal.Zero
	for i, b := range hh.BlindsOrStraddles {
		street[i] = decimal.NewFromFloat(b)
		bet = decimal.Max(bet, street[i])
	}
	pot := decimal.Zero
	closeStreet := func() {
		for i := range street {
			pot = pot.Add(street[i])
			street[i] = decimal.Zero
		}
		bet = decimal.Zero
	}

	for _, a := range hh.Actions {
		fields := strings.Fields(a)
		require.GreaterOrEqual(t, len(fields), 2, a)
		if fields[0] == "d" {
			if fields[1] == "db" {
				closeStreet()
			}
			continue
		}
		seat, err := strconv.Atoi(strings.TrimPrefix(fields[0], "p"))
		require.NoError(t, err, a)
		switch fields[1] {
		case "f":
		case "cc":
			street[seat-1] = decimal.Max(street[seat-1], bet)
		case "cbr":
			require.Len(t, fields, 3, a)
			to := decimal.RequireFromString(fields[2])
			require.True(t, to.GreaterThan(bet), "%s must raise the bet of %s", a, bet)
			street[seat-1] = to
			bet = to
		default:
			t.Fatalf("unexpected action %q", a)
		}
	}
	closeStreet()
	return pot.InexactFloat64()
}

func TestFromLogActions(t *testing.T) {
	tests := []struct {
		name   string
		events []hand.Event
		want   []string
	}{
		{
			name: "check facing a raise is dropped",
			events: []hand.Event{
				hand.ActionEvent{Position: hand.UTG, Action: hand.Raise, Size: "3"},
				hand.ActionEvent{Position: hand.HJ, Action: hand.Check},
			},
			want: []string{"p3 cbr 3"},
		},
		{
			name: "big blind checks its option",
			events: []hand.Event{
				hand.ActionEvent{Position: hand.SB, Action: hand.Call},
				hand.ActionEvent{Position: hand.BB, Action: hand.Check},
			},
			want: []string{"p1 cc", "p2 cc"},
		},
		{
			name: "postflop bet, shove and call",
			events: []hand.Event{
				hand.ActionEvent{Position: hand.BTN, Action: hand.Raise, Size: "3"},
				hand.ActionEvent{Position: hand.BB, Action: hand.Call},
				hand.BoardEvent{Street: hand.Flop, Cards: "AsKd7c"},
				hand.ActionEvent{Position: hand.BB, Action: hand.Raise, Size: "4"},
				hand.ActionEvent{Position: hand.BTN, Action: hand.AllIn, Size: "20"},
				hand.ActionEvent{Position: hand.BB, Action: hand.Call},
				hand.BoardEvent{Street: hand.Turn},
				hand.ActionEvent{Position: hand.BB, Action: hand.Check},
				hand.ActionEvent{Position: hand.BTN, Action: hand.Check},
			},
			want: []string{
				"p6 cbr 3", "p2 cc",
				"p1 f", "p3 f", "p4 f", "p5 f",
				"d db AsKd7c",
				"p2 cbr 4", "p6 cbr 20", "p2 cc",
				"d db ??",
				"p2 cc", "p6 cc",
			},
		},
		{
			name: "sizeless raise facing a bet is dropped",
			events: []hand.Event{
				hand.ActionEvent{Position: hand.BTN, Action: hand.Call},
				hand.ActionEvent{Position: hand.BB, Action: hand.Check},
				hand.BoardEvent{Street: hand.Flop, Cards: "AsKd7c"},
				hand.ActionEvent{Position: hand.BB, Action: hand.Raise, Size: "2"},
				hand.ActionEvent{Position: hand.BTN, Action: hand.Raise},
				hand.ActionEvent{Position: hand.BTN, Action: hand.Call},
			},
			want: []string{
				"p6 cc", "p2 cc",
				"p1 f", "p3 f", "p4 f", "p5 f",
				"d db AsKd7c",
				"p2 cbr 2", "p6 cc",
			},
		},
		{
			name: "unknown action kind is skipped",
			events: []hand.Event{
				hand.ActionEvent{Position: hand.BB, Action: hand.ActionKind(9)},
				hand.ActionEvent{Position: hand.CO, Action: hand.Raise, Size: "2.50"},
			},
			want: []string{"p5 cbr 2.5"},
		},
		{
			name: "actions by folded or unknown seats are skipped",
			events: []hand.Event{
				hand.ActionEvent{Position: hand.UTG, Action: hand.Fold},
				hand.ActionEvent{Position: hand.UTG, Action: hand.Raise, Size: "5"},
				hand.ActionEvent{Position: hand.Position(8), Action: hand.Call},
			},
			want: []string{"p3 f"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hh := phh.FromLog(tt.events, phh.Options{Setup: transcript.NewSetup()})
			require.Greater(t, len(hh.Actions), hand.SeatCount)
			assert.Equal(t, tt.want, hh.Actions[hand.SeatCount:])
			assert.Equal(t, hh.Metadata["final_pot"], replayPot(t, hh))
		})
	}
}

func TestFromLogReplaysToFinalPot(t *testing.T) {
	hh := phh.FromLog(sampleLog(), phh.Options{Setup: transcript.NewSetup()})
	assert.Equal(t, 10.5, replayPot(t, hh))
	assert.Equal(t, hh.Metadata["final_pot"], replayPot(t, hh))
}

func TestFromLogZeroSetupSeatsHeroAtUTG(t *testing.T) {
	hh := phh.FromLog(nil, phh.Options{})
	assert.Equal(t, "UTG", hh.Metadata["hero"])

	hh = phh.FromLog(nil, phh.Options{Setup: transcript.NewSetup()})
	assert.NotContains(t, hh.Metadata, "hero")
}

func TestFromLogRandomLogs(t *testing.T) {
	rng := randutil.New(11)
	for iter := 0; iter < 200; iter++ {
		events := randutil.Log(rng, rng.IntN(30))
		hh := phh.FromLog(events, phh.Options{Setup: transcript.NewSetup()})

		final := betting.Evaluate(events)
		assert.Equal(t, final.Pot.InexactFloat64(), hh.Metadata["final_pot"], "iter %d", iter)
		assert.Equal(t, final.Street.String(), hh.Metadata["street"], "iter %d", iter)

		boards := 0
		for _, a := range hh.Actions {
			fields := strings.Fields(a)
			require.GreaterOrEqual(t, len(fields), 2, "iter %d: %q", iter, a)
			switch fields[1] {
			case "f", "cc", "dh":
			case "db":
				boards++
			case "cbr":
				require.Len(t, fields, 3, "iter %d: %q", iter, a)
				_, err := decimal.NewFromString(fields[2])
				require.NoError(t, err, "iter %d: %q", iter, a)
			default:
				t.Fatalf("iter %d: unexpected action %q", iter, a)
			}
		}
		assert.LessOrEqual(t, boards, int(final.Street), "iter %d: at most one board deal per street", iter)
		assert.Equal(t, final.Street > hand.Preflop, boards > 0, "iter %d", iter)
	}
}
