package phh

// HandHistory is one recorded hand in PHH (Poker Hand History) TOML form.
// Amounts are in big blinds; players are listed blinds first.
type HandHistory struct {
	Variant           string    `toml:"variant"`
	SeatCount         int       `toml:"seat_count,omitempty"`
	Seats             []int     `toml:"seats,omitempty"`
	Players           []string  `toml:"players,omitempty"`
	Antes             []float64 `toml:"antes"`
	BlindsOrStraddles []float64 `toml:"blinds_or_straddles"`
	MinBet            float64   `toml:"min_bet"`
	StartingStacks    []float64 `toml:"starting_stacks"`
	Actions           []string  `toml:"actions"`
	HandID            string    `toml:"hand"`

	// PHH keeps the date and the time of day as separate keys.
	Time     string `toml:"time,omitempty"`
	TimeZone string `toml:"time_zone,omitempty"`
	Day      int    `toml:"day,omitempty"`
	Month    int    `toml:"month,omitempty"`
	Year     int    `toml:"year,omitempty"`

	// Metadata records what the recorder derived: final pot, street, hero.
	Metadata map[string]any `toml:"metadata,omitempty"`
}
