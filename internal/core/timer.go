package core

import "time"

// Interval reports when a fixed wall-clock period has elapsed. The preview
// uses it to regenerate sprites on a steady cadence independent of TPS.
type Interval struct {
	period time.Duration
	next   time.Time
	now    func() time.Time
}

// NewInterval constructs an Interval firing every period. Non-positive
// periods default to one second.
func NewInterval(period time.Duration) *Interval {
	if period <= 0 {
		period = time.Second
	}
	return &Interval{period: period, now: time.Now}
}

// Reset restarts the countdown from the current time.
func (i *Interval) Reset() {
	i.next = i.now().Add(i.period)
}

// Due reports whether the period has elapsed since the last time Due
// returned true (or since Reset). The first call arms the interval.
func (i *Interval) Due() bool {
	now := i.now()
	if i.next.IsZero() {
		i.next = now.Add(i.period)
		return false
	}
	if now.Before(i.next) {
		return false
	}
	i.next = i.next.Add(i.period)
	if i.next.Before(now) {
		i.next = now.Add(i.period)
	}
	return true
}
