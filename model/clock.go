package model

import "time"

// MoonPhase is one of the eight classic phases.
type MoonPhase int

const (
	NewMoon MoonPhase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

func (m MoonPhase) String() string {
	switch m {
	case NewMoon:
		return "New Moon"
	case WaxingCrescent:
		return "Waxing Crescent"
	case FirstQuarter:
		return "First Quarter"
	case WaxingGibbous:
		return "Waxing Gibbous"
	case FullMoon:
		return "Full Moon"
	case WaningGibbous:
		return "Waning Gibbous"
	case LastQuarter:
		return "Last Quarter"
	case WaningCrescent:
		return "Waning Crescent"
	default:
		return "New Moon"
	}
}

// moonCycleDays approximates the synodic month on a clean game calendar.
const moonCycleDays = 30

// WorldClock supplies the in-world date to anything with temporal flavor
// (moon-bound lore, the status line). It is passed explicitly wherever
// needed; injecting a fixed clock makes those callers deterministic.
type WorldClock struct {
	now func() time.Time
}

func SystemClock() WorldClock {
	return WorldClock{now: time.Now}
}

// NewWorldClock builds a clock around the given time source.
func NewWorldClock(now func() time.Time) WorldClock {
	return WorldClock{now: now}
}

func (c WorldClock) Now() time.Time {
	return c.now()
}

// Day is the number of whole days since the Unix epoch.
func (c WorldClock) Day() int {
	return int(c.now().Unix() / 86400)
}

func (c WorldClock) MoonPhase() MoonPhase {
	day := c.Day() % moonCycleDays
	if day < 0 {
		day += moonCycleDays
	}
	return MoonPhase(day * 8 / moonCycleDays)
}
