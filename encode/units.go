package encode

import "fmt"

// Unit conversion factors, grounded on original_source/METARXMLEncoder.py's
// literal constants (the decoder never converts; every factor below is
// applied only here, at emission time).
const (
	ktToKmh   = 1.85184  // [kn_i] -> km/h
	miToM     = 1609.34  // [mi_i] -> m
	ftToM     = 0.3048   // [ft_i] -> m
	inToM     = 0.0254   // inch -> m
	inhToKgSM = 7.06e-3  // in/h -> kg/(s*m^2)
	inHgToHpa = 33.8639  // inHg -> hPa, for the qnh element
)

func knotsToKmh(kt float64) float64 { return kt * ktToKmh }

func milesToMetres(mi float64) float64 { return mi * miToM }

func feetToMetres(ft float64) float64 { return ft * ftToM }

func inchesToMetres(in float64) float64 { return in * inToM }

func inchesPerHourToKgPerSM(inh float64) float64 { return inh * inhToKgSM }

// isoDuration renders a minute count as the ISO-8601 duration form the
// sunshine element requires: PTxHyM0S.
func isoDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	return fmt.Sprintf("PT%dH%dM0S", h, m)
}

// scientificNotation2 renders a value in the "%.2e" form snow depth uses.
func scientificNotation2(v float64) string {
	return fmt.Sprintf("%.2e", v)
}
