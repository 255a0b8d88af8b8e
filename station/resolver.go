// Package station resolves an ICAO identifier to the geographic fix and
// stable UUID the encoder needs for the featureOfInterest/aerodrome
// sub-tree. This is the out-of-scope collaborator spec.md describes only
// by its external file format; three backends are provided for it, each
// implementing the same Resolver interface.
package station

import (
	"context"
	"errors"
)

// ErrUnknownStation is returned when an ICAO identifier has no entry in
// the backing metadata table. The caller signals this upward; no XML is
// produced for the report.
var ErrUnknownStation = errors.New("station: unknown ICAO identifier")

// Station is one row of the metadata table: the geographic fix and
// identity fields the encoder's aerodrome feature needs.
type Station struct {
	UUID      string
	ICAO      string
	Name      string
	Latitude  float64
	Longitude float64
	// Elevation is in metres, the unit the aerodrome ARP point requires.
	Elevation float64
}

// Pos renders the station's geographic fix as the space-joined
// "lat lon elev" triple the gml:pos element carries.
func (s Station) Pos() string {
	return formatPos(s.Latitude, s.Longitude, s.Elevation)
}

// Resolver looks up station metadata by ICAO identifier. Implementations
// are read-only after construction and safe for concurrent use.
type Resolver interface {
	Resolve(ctx context.Context, icao string) (Station, error)
}
