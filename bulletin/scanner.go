// Package bulletin slices a raw WMO bulletin transmission into the
// individual `=`-terminated METAR/SPECI reports it carries, the way
// original_source/parse_metar_us.py does before handing each report to
// the decoder. This is an out-of-scope collaborator made concrete: the
// core decode/encode pipeline never sees bulletin envelopes, only the
// already-sliced report text this package produces.
package bulletin

import (
	"regexp"
	"strings"
)

// soh/eot are the ASCII start-of-heading / end-of-text control
// characters some bulletin feeds wrap each transmission in.
const (
	soh = "\x01"
	eot = "\x03"
)

var envelopeRe = regexp.MustCompile(`(?s)` + soh + `(.*?)` + eot)

var wmoHeaderRe = regexp.MustCompile(`(?s)^\s*(?:[A-Za-z0-9]{3}\s+)?` +
	`[A-Z0-9]{6}\s+[A-Z][A-Z0-9]{3}\s+[0-3][0-9][0-2][0-9][0-5][0-9]\s*` +
	`(?:(?:RR|CC|AA)[A-Z]|P[A-Z]{2})?\s*`)

var typePrefixRe = regexp.MustCompile(`(?s)^\s*(?:MTR[A-Z]{3}\s*)?(METAR|SPECI)\s*`)

var nilRe = regexp.MustCompile(`^(METAR|SPECI)\s[A-Z]{4}\s\d{6}Z\sNIL`)

// Scanner splits one bulletin transmission into individual report texts.
type Scanner struct{}

// Split extracts envelope(s) from raw, strips the WMO abbreviated header
// and any MTRxxx prefix, then splits on "=" to recover each report. NIL
// reports are dropped, matching spec.md §6 ("NIL reports are recognized
// but not encoded").
func (Scanner) Split(raw string) []string {
	var envelopes []string
	if m := envelopeRe.FindAllStringSubmatch(raw, -1); len(m) > 0 {
		for _, g := range m {
			envelopes = append(envelopes, g[1])
		}
	} else {
		envelopes = []string{raw}
	}

	var reports []string
	for _, env := range envelopes {
		text := wmoHeaderRe.ReplaceAllString(env, "")

		m := typePrefixRe.FindStringSubmatch(text)
		reportType := "METAR"
		if m != nil {
			reportType = m[1]
			text = text[len(m[0]):]
		}

		for _, chunk := range strings.Split(text, "=") {
			stext := strings.TrimSpace(collapseWhitespace(chunk))
			if stext == "" {
				continue
			}
			if !strings.HasPrefix(stext, "METAR") && !strings.HasPrefix(stext, "SPECI") {
				stext = reportType + " " + stext
			}
			if nilRe.MatchString(stext) {
				continue
			}
			reports = append(reports, stext+"=")
		}
	}
	return reports
}

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}
