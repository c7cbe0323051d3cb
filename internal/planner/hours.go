package planner

import (
	"fmt"
	"time"
)

// Clock is a time of day in minutes since midnight.
type Clock int

// NewClock builds a Clock from an hour and minute pair.
func NewClock(hour, minute int) Clock { return Clock(hour*60 + minute) }

// ParseClock parses "HH:MM".
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", s)
	}
	return NewClock(h, m), nil
}

func (c Clock) Hour() int   { return int(c) / 60 % 24 }
func (c Clock) Minute() int { return int(c) % 60 }

// String renders "HH:MM".
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute()) }

// Add advances the clock by a fractional number of hours, wrapping past
// midnight.
func (c Clock) Add(hours float64) Clock {
	m := (int(c) + int(hours*60+0.5)) % (24 * 60)
	if m < 0 {
		m += 24 * 60
	}
	return Clock(m)
}

const minutesPerDay = 24 * 60

// OpenPeriod is a single open/close span on one day of the week. A close
// time numerically before the open time means the venue stays open past
// midnight.
type OpenPeriod struct {
	Day   time.Weekday
	Open  Clock
	Close Clock
}

// OpeningHours is the weekly opening schedule of a place.
type OpeningHours struct {
	Periods []OpenPeriod
}

// Venues that publish no hours are assumed open 08:00-22:00 every day.
var defaultPeriodSpan = struct{ open, close Clock }{NewClock(8, 0), NewClock(22, 0)}

// periodsOn returns the open periods applying on the given weekday. When
// the schedule has periods but none for that day, the first listed day's
// periods are used as an approximation rather than treating the venue as
// closed outright.
func periodsOn(h *OpeningHours, day time.Weekday) []OpenPeriod {
	if h == nil || len(h.Periods) == 0 {
		return []OpenPeriod{{Day: day, Open: defaultPeriodSpan.open, Close: defaultPeriodSpan.close}}
	}
	var out []OpenPeriod
	for _, p := range h.Periods {
		if p.Day == day {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		return out
	}
	fallbackDay := h.Periods[0].Day
	for _, p := range h.Periods {
		if p.Day == fallbackDay {
			out = append(out, p)
		}
	}
	return out
}

// Coverage computes the fraction of the block's duration during which the
// place is open on the given weekday. Overnight blocks and overnight open
// periods are both normalized onto a 48-hour axis before overlapping.
func Coverage(h *OpeningHours, block TimeBlock, day time.Weekday) float64 {
	blockStart := int(block.Start)
	blockEnd := int(block.End)
	if blockEnd < blockStart {
		blockEnd += minutesPerDay
	}
	duration := blockEnd - blockStart
	if duration <= 0 {
		return 0
	}

	covered := 0
	for _, p := range periodsOn(h, day) {
		open := int(p.Open)
		close := int(p.Close)
		if close < open {
			close += minutesPerDay
		}
		lo := max(blockStart, open)
		hi := min(blockEnd, close)
		if hi > lo {
			covered += hi - lo
		}
	}
	return float64(covered) / float64(duration)
}
