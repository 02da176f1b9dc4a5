// Package country resolves location tokens to canonical timezone identifiers
// and display names. A token is an ISO alpha-3 country code, a composite
// region code for countries spanning several zones (e.g. USA-E), or a raw
// IANA identifier such as Asia/Tokyo.
package country

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/codeGROOVE-dev/tzgrid/pkg/zonecache"
)

var (
	// ErrUnknownLocation means the token has no entry in the lookup tables.
	ErrUnknownLocation = errors.New("unknown location code")
	// ErrUnknownTimezone means the mapped identifier is not in the timezone database.
	ErrUnknownTimezone = errors.New("unknown timezone")
)

// Resolver maps location tokens to timezone identifiers using immutable
// lookup tables and a shared zone cache.
type Resolver struct {
	tables Tables
	zones  *zonecache.Cache
	logger *slog.Logger
}

// NewResolver creates a resolver over the given tables.
func NewResolver(tables Tables, zones *zonecache.Cache, logger *slog.Logger) *Resolver {
	return &Resolver{tables: tables, zones: zones, logger: logger}
}

// Resolve maps a token to a canonical timezone identifier. The identifier is
// verified against the timezone database so callers can trust it loads.
func (r *Resolver) Resolve(token string) (string, error) {
	zone, ok := r.lookup(token)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownLocation, token)
	}

	if _, err := r.zones.Location(zone); err != nil {
		return "", fmt.Errorf("%w for %s: %s", ErrUnknownTimezone, r.DisplayName(token), zone)
	}

	r.logger.Debug("resolved location", "token", token, "zone", zone)
	return zone, nil
}

func (r *Resolver) lookup(token string) (string, bool) {
	if entry, ok := r.tables.Composite[token]; ok {
		return entry.Zone, true
	}
	if entry, ok := r.tables.Countries[token]; ok {
		return entry.Zone, true
	}
	// Raw IANA identifiers pass through; Resolve verifies them against the
	// zone database.
	if strings.Contains(token, "/") {
		return token, true
	}
	return "", false
}

// DisplayName returns the friendly name for a token, falling back to the
// trailing zone segment for raw identifiers and to the token itself
// otherwise.
func (r *Resolver) DisplayName(token string) string {
	if entry, ok := r.tables.Composite[token]; ok {
		return entry.Name
	}
	if entry, ok := r.tables.Countries[token]; ok {
		return entry.Name
	}
	if i := strings.LastIndex(token, "/"); i >= 0 {
		return strings.ReplaceAll(token[i+1:], "_", " ")
	}
	return token
}

// CountryNameForZone returns the display name of the country whose canonical
// zone matches the identifier. Composite regions win over plain country
// entries, and country codes are scanned in sorted order so a zone shared by
// several entries always resolves the same way.
func (r *Resolver) CountryNameForZone(zone string) string {
	for _, code := range sortedKeys(r.tables.Composite) {
		if r.tables.Composite[code].Zone == zone {
			return r.tables.Composite[code].Name
		}
	}
	for _, code := range sortedKeys(r.tables.Countries) {
		if r.tables.Countries[code].Zone == zone {
			return r.tables.Countries[code].Name
		}
	}
	if i := strings.LastIndex(zone, "/"); i >= 0 {
		return strings.ReplaceAll(zone[i+1:], "_", " ")
	}
	return zone
}

func sortedKeys(m map[string]Entry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
