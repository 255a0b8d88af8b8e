package location

import (
	"strings"

	"github.com/mdoberfield/metar-iwxxm/record"
)

// Parse scans a location substring for the three optional qualifier
// prefixes OHD, VC, and DSNT, bucketing the directional tokens that
// follow each one; anything before the first qualifier (or when no
// qualifier appears at all) is bucketed as ATSTN (bare, at the station).
//
// A token containing a hyphen, e.g. "E-SE", is an arc running from the
// first point through the second; the literal word AND marks a
// discontinuity between sectors and is otherwise skipped. Adjacent
// sectors within a bucket are merged when one's clockwise bound equals
// the next's counter-clockwise bound.
func Parse(s string) record.Locations {
	var loc record.Locations
	bucket := "ATSTN"

	for _, w := range strings.Fields(s) {
		switch w {
		case "OHD":
			loc.OHD = append(loc.OHD, fullCircle)
			bucket = "OHD"
			continue
		case "VC":
			bucket = "VC"
			continue
		case "DSNT":
			bucket = "DSNT"
			continue
		case "AND":
			continue
		}

		arc, ok := parseToken(w)
		if !ok {
			continue
		}
		switch bucket {
		case "OHD":
			loc.OHD = append(loc.OHD, arc)
		case "VC":
			loc.VC = append(loc.VC, arc)
		case "DSNT":
			loc.DSNT = append(loc.DSNT, arc)
		default:
			loc.ATSTN = append(loc.ATSTN, arc)
		}
	}

	loc.OHD = mergeAdjacent(loc.OHD)
	loc.VC = mergeAdjacent(loc.VC)
	loc.DSNT = mergeAdjacent(loc.DSNT)
	loc.ATSTN = mergeAdjacent(loc.ATSTN)
	return loc
}

// parseToken resolves one directional word - a bare compass point, or a
// hyphenated range - into a single arc.
func parseToken(w string) (record.Arc, bool) {
	if lo, hi, ok := strings.Cut(w, "-"); ok {
		loArc, loOK := degrees[lo]
		hiArc, hiOK := degrees[hi]
		if !loOK || !hiOK {
			return record.Arc{}, false
		}
		return record.Arc{CCW: loArc.CCW, CW: hiArc.CW}, true
	}
	a, ok := degrees[w]
	return a, ok
}

// mergeAdjacent folds consecutive arcs into one whenever one sector's
// clockwise bound meets the next sector's counter-clockwise bound.
func mergeAdjacent(arcs []record.Arc) []record.Arc {
	if len(arcs) < 2 {
		return arcs
	}
	merged := []record.Arc{arcs[0]}
	for _, a := range arcs[1:] {
		last := &merged[len(merged)-1]
		if last.CW == a.CCW {
			last.CW = a.CW
			continue
		}
		merged = append(merged, a)
	}
	return merged
}
