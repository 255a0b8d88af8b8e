package encode

import "strings"

// usPrefixes are the ICAO identifier prefixes spec.md designates as U.S.
var usPrefixes = []string{"K", "P", "TJ"}

func isUSStation(icao string) bool {
	for _, p := range usPrefixes {
		if strings.HasPrefix(icao, p) {
			return true
		}
	}
	return false
}

// namespace resolves which default namespace prefix a report's root
// element uses. The U.S. extension only activates when the station is
// U.S. *and* the caller opted in.
func namespace(icao string, allowUSExtensions bool) string {
	if isUSStation(icao) && allowUSExtensions {
		return "iwxxm-us"
	}
	return "iwxxm"
}

const (
	nsIWXXM    = "http://icao.int/iwxxm/3.0"
	nsIWXXMUS  = "https://nws.weather.gov/schemas/iwxxm-us/1.0"
	nsOM       = "http://www.opengis.net/om/2.0"
	nsGML      = "http://www.opengis.net/gml/3.2"
	nsXlink    = "http://www.w3.org/1999/xlink"
	nsXsi      = "http://www.w3.org/2001/XMLSchema-instance"
	nsGco      = "http://www.isotc211.org/2005/gco"
	nsSams     = "http://www.opengis.net/samplingSpatial/2.0"
	nsSam      = "http://www.opengis.net/sampling/2.0"
	nsAixm     = "http://www.aixm.aero/schema/5.1.1"
	nsMetce    = "http://def.wmo.int/metce/2013"
)
