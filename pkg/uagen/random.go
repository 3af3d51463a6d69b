package uagen

import (
	"fmt"
	"time"
)

// Source is the random number generator used by a session. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a non-negative pseudo-random number in [0,n).
	Intn(n int) int
}

// epoch is the earliest Firefox build date handed out.
var epoch = time.Date(2011, time.January, 1, 0, 0, 0, 0, time.UTC)

const buildDateFormat = "20060102"

// dice draws the randomized sub-fields of a single rendering.
type dice struct {
	rnd Source
	now time.Time
}

// between returns a uniform integer in [lo, hi].
func (d *dice) between(lo, hi int) int {
	return lo + d.rnd.Intn(hi-lo+1)
}

// pick returns one of the given strings uniformly.
func (d *dice) pick(opts ...string) string {
	return opts[d.rnd.Intn(len(opts))]
}

// date returns a uniform instant between epoch and the start of today, at second
// granularity. Today is the calendar date of now in its own location.
func (d *dice) date() time.Time {
	y, m, day := d.now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, epoch.Location())
	span := int(today.Sub(epoch) / time.Second)
	if span <= 0 {
		return epoch
	}
	return epoch.Add(time.Duration(d.rnd.Intn(span+1)) * time.Second)
}

// windowsNT renders the "Windows NT x.y" token shared by most Windows templates.
func (d *dice) windowsNT() string {
	return fmt.Sprintf("Windows NT %d.%d", d.between(5, 6), d.between(0, 1))
}

// macOSX renders the "10_x_y" version shared by the Macintosh templates.
func (d *dice) macOSX() string {
	return fmt.Sprintf("10_%d_%d", d.between(5, 7), d.between(0, 9))
}

// extra renders the optional trailing token of IExplorer and Opera agents.
func (d *dice) extra() string {
	switch d.rnd.Intn(3) {
	case 1:
		return fmt.Sprintf("; .NET CLR 1.1.%d", d.between(4320, 4325))
	case 2:
		return "; WOW64"
	default:
		return ""
	}
}
