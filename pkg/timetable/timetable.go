// Package timetable computes how a fixed reference-timezone workday maps
// onto other timezones' local clocks, classifying each sampled hour as
// early/late, noon or normal working time.
package timetable

import "time"

// Classification buckets one target-local wall-clock time within the workday.
type Classification int

const (
	// Normal is regular working time.
	Normal Classification = iota
	// EarlyLate is before 09:00 or from 18:00 on.
	EarlyLate
	// Noon is the 12:00 lunch hour.
	Noon
)

// String returns the classification's bucket name.
func (c Classification) String() string {
	switch c {
	case EarlyLate:
		return "early_late"
	case Noon:
		return "noon"
	case Normal:
		return "normal"
	default:
		return "unknown"
	}
}

// Classify buckets a local time by its decimal hour. Boundaries are exact:
// 08:59 is early/late and 09:00 is normal; 12:00 through 12:59 is noon;
// 17:59 is normal and 18:00 is early/late.
func Classify(hour, minute int) Classification {
	h := float64(hour) + float64(minute)/60
	switch {
	case h < 9 || h >= 18:
		return EarlyLate
	case h >= 12 && h < 13:
		return Noon
	default:
		return Normal
	}
}

// Period is one sampled reference hour expressed in a target zone's local
// clock. The local calendar date may differ from the reference date when the
// conversion wraps past midnight; consumers should read hour and minute only.
type Period struct {
	Local time.Time
	Class Classification
}

// Label formats the local time for display. Zones on half-hour or 45-minute
// offsets keep their minutes visible instead of flattening to :00.
func (p Period) Label() string {
	if p.Local.Minute() != 0 {
		return p.Local.Format("15:04")
	}
	return p.Local.Format("15:00")
}

// WorkingWindow is the range of reference-local hours sampled, Start
// inclusive and End exclusive, both in [0,24).
type WorkingWindow struct {
	Start int
	End   int
}

// DefaultWindow samples the reference workday from 08:00 through 19:00.
var DefaultWindow = WorkingWindow{Start: 8, End: 20}
