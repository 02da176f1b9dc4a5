package country

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/codeGROOVE-dev/tzgrid/pkg/zonecache"
)

func newTestResolver() *Resolver {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewResolver(DefaultTables(), zonecache.New(logger), logger)
}

func TestResolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"alpha-3 code", "FRA", "Europe/Paris"},
		{"composite region code", "USA-E", "America/New_York"},
		{"half-hour offset country", "IND", "Asia/Kolkata"},
		{"raw zone identifier", "Asia/Tokyo", "Asia/Tokyo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.token)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}

	t.Run("unknown code", func(t *testing.T) {
		_, err := r.Resolve("XYZ")
		if !errors.Is(err, ErrUnknownLocation) {
			t.Errorf("Resolve(XYZ) error = %v, want ErrUnknownLocation", err)
		}
	})

	t.Run("bogus raw identifier", func(t *testing.T) {
		_, err := r.Resolve("Nowhere/Atlantis")
		if !errors.Is(err, ErrUnknownTimezone) {
			t.Errorf("Resolve(Nowhere/Atlantis) error = %v, want ErrUnknownTimezone", err)
		}
	})

	t.Run("parent of composite country has no bare mapping", func(t *testing.T) {
		_, err := r.Resolve("USA")
		if !errors.Is(err, ErrUnknownLocation) {
			t.Errorf("Resolve(USA) error = %v, want ErrUnknownLocation", err)
		}
	})
}

func TestDisplayName(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"alpha-3 code", "FRA", "France"},
		{"composite region code", "USA-E", "United States (Eastern)"},
		{"raw identifier uses trailing segment", "Pacific/Auckland", "Auckland"},
		{"underscores become spaces", "America/New_York", "New York"},
		{"unknown token passes through", "XYZ", "XYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.DisplayName(tt.token); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestCountryNameForZone(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		zone string
		want string
	}{
		{"composite region wins", "America/New_York", "United States (Eastern)"},
		{"plain country", "Europe/Paris", "France"},
		{"unmapped zone falls back to segment", "Pacific/Chatham", "Chatham"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.CountryNameForZone(tt.zone); got != tt.want {
				t.Errorf("CountryNameForZone(%q) = %q, want %q", tt.zone, got, tt.want)
			}
		})
	}

	t.Run("deterministic across calls", func(t *testing.T) {
		first := r.CountryNameForZone("America/New_York")
		for range 10 {
			if got := r.CountryNameForZone("America/New_York"); got != first {
				t.Fatalf("CountryNameForZone returned %q after %q", got, first)
			}
		}
	})
}

func TestTableZonesAllLoad(t *testing.T) {
	r := newTestResolver()

	for code, entry := range DefaultTables().Composite {
		if _, err := r.Resolve(code); err != nil {
			t.Errorf("composite %s (%s) does not resolve: %v", code, entry.Zone, err)
		}
	}
	for code, entry := range DefaultTables().Countries {
		if _, err := r.Resolve(code); err != nil {
			t.Errorf("country %s (%s) does not resolve: %v", code, entry.Zone, err)
		}
	}
}
