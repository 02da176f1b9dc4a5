package timetable

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/tzgrid/pkg/country"
	"github.com/codeGROOVE-dev/tzgrid/pkg/zonecache"
)

// ErrInvalidReference means the reference location could not be resolved.
var ErrInvalidReference = errors.New("invalid reference location")

// Engine converts reference-workday hours into target-zone local times. The
// reference zone and working window are fixed at construction; all methods
// are pure given an anchor instant, so one engine serves any number of
// target zones.
type Engine struct {
	refZone string
	refLoc  *time.Location
	window  WorkingWindow
	zones   *zonecache.Cache
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWindow overrides the default {8,20} working window.
func WithWindow(w WorkingWindow) Option {
	return func(e *Engine) { e.window = w }
}

// NewEngine resolves the reference token and builds an engine around it.
// A token that fails resolution is fatal here: without a reference zone
// there is nothing to compare against.
func NewEngine(reference string, resolver *country.Resolver, zones *zonecache.Cache, logger *slog.Logger, opts ...Option) (*Engine, error) {
	zone, err := resolver.Resolve(reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}

	// Resolve already verified the zone loads, so this is a cache hit.
	loc, err := zones.Location(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}

	e := &Engine{
		refZone: zone,
		refLoc:  loc,
		window:  DefaultWindow,
		zones:   zones,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.window.Start < 0 || e.window.End > 24 || e.window.Start >= e.window.End {
		return nil, fmt.Errorf("invalid working window %d-%d", e.window.Start, e.window.End)
	}

	logger.Debug("engine ready", "reference_zone", zone, "window_start", e.window.Start, "window_end", e.window.End)
	return e, nil
}

// ReferenceZone returns the resolved reference zone identifier.
func (e *Engine) ReferenceZone() string {
	return e.refZone
}

// Window returns the engine's working window.
func (e *Engine) Window() WorkingWindow {
	return e.window
}

// ComputePeriods samples every whole reference hour of the working window on
// the anchor's reference-local calendar date and converts each instant to
// the target zone's wall clock. Conversions go through the timezone
// database, so daylight saving and fractional-hour offsets active at the
// anchor date are applied. The result is ordered by reference hour and has
// exactly End-Start entries.
func (e *Engine) ComputePeriods(zone string, at time.Time) ([]Period, error) {
	loc, err := e.zones.Location(zone)
	if err != nil {
		return nil, fmt.Errorf("unresolvable target zone %q: %w", zone, err)
	}

	ref := at.In(e.refLoc)
	periods := make([]Period, 0, e.window.End-e.window.Start)
	for h := e.window.Start; h < e.window.End; h++ {
		t := time.Date(ref.Year(), ref.Month(), ref.Day(), h, 0, 0, 0, e.refLoc)
		local := t.In(loc)
		periods = append(periods, Period{
			Local: local,
			Class: Classify(local.Hour(), local.Minute()),
		})
	}
	e.logger.Debug("periods computed", "zone", zone, "count", len(periods))
	return periods, nil
}

// HeaderHours returns the reference-hour labels shared by every row.
func (e *Engine) HeaderHours() []string {
	labels := make([]string, 0, e.window.End-e.window.Start)
	for h := e.window.Start; h < e.window.End; h++ {
		labels = append(labels, fmt.Sprintf("%02d:00", h))
	}
	return labels
}
