package window

import "time"

// TimeSynchronizer bounds how often the refresh loop spins when idle.
type TimeSynchronizer struct {
	prevTicks, interval time.Duration
	clock               Clock
}

func NewTimeSynchronizer(clock Clock, interval time.Duration) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTicks: clock.Ticks(),
		interval:  interval,
		clock:     clock,
	}
}

// MaySleep sleeps for what remains of the current interval. A zero interval
// never sleeps.
func (ts *TimeSynchronizer) MaySleep() {
	if ts.interval <= 0 {
		return
	}
	cur := ts.clock.Ticks()
	if cur < ts.prevTicks {
		ts.prevTicks = cur
		return
	}
	diff := ts.interval - (cur - ts.prevTicks)
	if diff > 0 {
		ts.clock.Delay(diff)
		ts.prevTicks += ts.interval
		return
	}
	// Late: restart the cadence from now instead of bursting to catch up.
	ts.prevTicks = cur
}
