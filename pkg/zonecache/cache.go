// Package zonecache caches loaded timezone locations so repeated lookups of
// the same zone identifier skip the tzdata parse.
package zonecache

import (
	"log/slog"
	"time"

	// Embed the IANA database so zone resolution works on hosts without
	// /usr/share/zoneinfo.
	_ "time/tzdata"

	"github.com/maypok86/otter/v2"
)

// Cache is an in-memory cache of resolved time.Location handles. Zone
// definitions are fixed for the lifetime of a run, so entries never expire.
// Reads are safe from multiple goroutines.
type Cache struct {
	cache  *otter.Cache[string, *time.Location]
	logger *slog.Logger
}

// New creates an empty cache.
func New(logger *slog.Logger) *Cache {
	cache := otter.Must(&otter.Options[string, *time.Location]{
		MaximumSize:     1_000,
		InitialCapacity: 64,
	})

	return &Cache{cache: cache, logger: logger}
}

// Location returns the named zone, loading it from the timezone database on
// first use. The error is the underlying tzdata lookup failure.
func (c *Cache) Location(name string) (*time.Location, error) {
	if loc, ok := c.cache.GetIfPresent(name); ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		c.logger.Debug("zone load failed", "zone", name, "error", err)
		return nil, err
	}

	c.cache.Set(name, loc)
	c.logger.Debug("zone loaded", "zone", name, "entries", c.cache.EstimatedSize())
	return loc, nil
}
