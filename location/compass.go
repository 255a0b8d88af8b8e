// Package location expands the compass-bearing location strings embedded
// in lightning and thunderstorm-movement remarks (e.g. "DSNT N-E", "OHD",
// "VC SE") into sector arcs, bucketed by the qualifier under which they
// were reported.
//
// Grounded on original_source/usMetarDecoder.py's processLocationString
// and parseLocationString.
package location

import "github.com/mdoberfield/metar-iwxxm/record"

// degrees maps each compass point to its 45-degree arc, centred on the
// point, expressed as (counter-clockwise bound, clockwise bound).
var degrees = map[string]record.Arc{
	"N":  {CCW: 337.5, CW: 22.5},
	"NE": {CCW: 22.5, CW: 67.5},
	"E":  {CCW: 67.5, CW: 112.5},
	"SE": {CCW: 112.5, CW: 157.5},
	"S":  {CCW: 157.5, CW: 202.5},
	"SW": {CCW: 202.5, CW: 247.5},
	"W":  {CCW: 247.5, CW: 292.5},
	"NW": {CCW: 292.5, CW: 337.5},
}

// fullCircle is the OHD (overhead) sector.
var fullCircle = record.Arc{CCW: 0, CW: 360}

func isCompassPoint(s string) bool {
	_, ok := degrees[s]
	return ok
}

// Sector resolves a single compass point to its 45-degree arc.
func Sector(point string) (record.Arc, bool) {
	a, ok := degrees[point]
	return a, ok
}
