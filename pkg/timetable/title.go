package timetable

import (
	"fmt"
	"time"

	"github.com/codeGROOVE-dev/tzgrid/pkg/country"
)

// Title describes the reference zone at the anchor instant, e.g.
// "Summer time in France (GMT +02:00)". Summer vs. winter follows whether
// daylight saving is active in the reference zone at that instant.
func (e *Engine) Title(resolver *country.Resolver, at time.Time) string {
	ref := at.In(e.refLoc)
	season := "Winter"
	if ref.IsDST() {
		season = "Summer"
	}
	return fmt.Sprintf("%s time in %s (%s)", season, resolver.CountryNameForZone(e.refZone), offsetLabel(ref))
}

// offsetLabel formats the instant's UTC offset as "GMT +HH:MM".
func offsetLabel(t time.Time) string {
	_, off := t.Zone()
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	return fmt.Sprintf("GMT %s%02d:%02d", sign, off/3600, off%3600/60)
}
