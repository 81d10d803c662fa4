package ui

import "time"

// Frames that fall further behind than this drop the backlog.
const maxCatchUp = 5

// Ticker converts elapsed frame time into a fixed number of update ticks per
// second.
type Ticker struct {
	interval time.Duration
	lag      time.Duration
}

func NewTicker(updatesPerSecond int) *Ticker {
	return &Ticker{interval: time.Second / time.Duration(updatesPerSecond)}
}

// Advance accounts for dt of wall time and returns how many updates are due.
func (t *Ticker) Advance(dt time.Duration) int {
	if dt < 0 {
		return 0
	}
	t.lag += dt

	n := int(t.lag / t.interval)
	t.lag -= time.Duration(n) * t.interval
	if n > maxCatchUp {
		n = maxCatchUp
		t.lag = 0
	}
	return n
}
