package timetable

import (
	"errors"
	"sort"
	"time"

	"github.com/codeGROOVE-dev/tzgrid/pkg/country"
)

// ErrEmptyResult means no input location resolved successfully.
var ErrEmptyResult = errors.New("no valid locations found in the input file")

// Row is one output line: a display label plus the converted periods for
// that location's zone. Rows are built once per run and never mutated.
type Row struct {
	Label   string
	Zone    string
	Periods []Period
}

// Skip records one input token that could not be turned into a row.
type Skip struct {
	Token string
	Err   error
}

// BuildRows resolves each token and computes one row per resolved location,
// all against the same anchor instant so every row shares one calendar date.
// Tokens that fail resolution are returned as skips for the caller to warn
// about; they never abort the run. ErrEmptyResult is returned only when the
// whole list produced no rows. Rows come back sorted by first-period local
// time.
func BuildRows(e *Engine, resolver *country.Resolver, tokens []string, at time.Time) ([]Row, []Skip, error) {
	var rows []Row
	var skips []Skip
	for _, token := range tokens {
		zone, err := resolver.Resolve(token)
		if err != nil {
			skips = append(skips, Skip{Token: token, Err: err})
			continue
		}

		periods, err := e.ComputePeriods(zone, at)
		if err != nil {
			skips = append(skips, Skip{Token: token, Err: err})
			continue
		}

		rows = append(rows, Row{
			Label:   resolver.DisplayName(token),
			Zone:    zone,
			Periods: periods,
		})
	}

	if len(rows) == 0 {
		return nil, skips, ErrEmptyResult
	}

	SortRows(rows)
	return rows, skips, nil
}

// SortRows orders rows by each row's first local time of day, earliest
// first. The sort is stable, so rows whose first periods tie keep their
// input order.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return startMinutes(rows[i]) < startMinutes(rows[j])
	})
}

func startMinutes(r Row) int {
	t := r.Periods[0].Local
	return t.Hour()*60 + t.Minute()
}
