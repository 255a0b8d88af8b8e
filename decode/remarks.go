package decode

import (
	"strconv"
	"strings"

	"github.com/mdoberfield/metar-iwxxm/location"
	"github.com/mdoberfield/metar-iwxxm/record"
	"github.com/mdoberfield/metar-iwxxm/token"
)

// scanRemarks walks the words after RMK, dispatching each recognized
// group to its handler and advancing past it. An unrecognized word is
// consumed silently (the "any" grammar alternative) and left unmasked, so
// it survives unparsed accounting as part of the additive free text.
func scanRemarks(s *state) {
	matchers := []func(*state) bool{
		matchPkWnd,
		matchWshft,
		matchSfcVis,
		matchTwrVis,
		matchVisGroup,
		matchCigGroup,
		matchObsc,
		matchLtgTstm,
		matchPcpnHist,
		matchHail,
		matchTempDec,
		matchPtndcy3h,
		matchMaxMin6h,
		matchXtrmET,
		matchPcp1h,
		matchPcp6h,
		matchPcp24h,
		matchIceAcc,
		matchSnoDpth,
		matchLWE,
		matchSunshine,
		matchSensorStat,
		matchEstWind,
		matchSingle(token.OsType, func(s *state, e record.Elem) { s.rec.OsType = &record.Ident{Elem: e} }),
		matchSingle(token.Pchgr, func(s *state, e record.Elem) {
			value := "RISING"
			if e.Lexeme == "PRESFR" {
				value = "FALLING"
			}
			s.rec.Pchgr = &record.PressureChangeRapid{Elem: e, Value: value}
		}),
		matchMslp,
		matchSingle(token.NoSpeci, func(s *state, e record.Elem) { s.rec.NoSpeci = &record.Ident{Elem: e} }),
		matchSingle(token.Aurbo, func(s *state, e record.Elem) { s.rec.Aurbo = &record.Ident{Elem: e} }),
		matchSingle(token.Contrails, func(s *state, e record.Elem) { s.rec.Contrails = &record.Ident{Elem: e} }),
		matchSnoIncr,
		matchSingle(token.Other, func(s *state, e record.Elem) { s.rec.Event = &record.Event{Elem: e} }),
		matchSingle(token.Maintenance, func(s *state, e record.Elem) { s.rec.Maintenance = &e }),
		matchRunway,
	}

	for s.remaining() > 0 {
		progressed := false
		for _, m := range matchers {
			if m(s) {
				progressed = true
				break
			}
		}
		if !progressed {
			s.pos++ // "any": unrecognized token, left unmasked
		}
	}
}

// matchSingle builds a one-word matcher from a token pattern plus a
// setter, the shape shared by the simplest remark tokens.
func matchSingle(re interface{ MatchString(string) bool }, set func(*state, record.Elem)) func(*state) bool {
	return func(s *state) bool {
		if !re.MatchString(s.word(0)) {
			return false
		}
		e := s.elem(s.pos, s.pos+1)
		set(s, e)
		s.mark(s.pos, s.pos+1)
		s.pos++
		return true
	}
}

func matchRunway(s *state) bool {
	if !token.Runway.MatchString(s.word(0)) {
		return false
	}
	// Declared in the token catalogue; deliberately has no handler.
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchPkWnd(s *state) bool {
	if s.word(0) != "PK" || s.word(1) != "WND" {
		return false
	}
	m := token.PkWndValue.FindStringSubmatch(s.word(2))
	if m == nil {
		return false
	}
	dir, _ := strconv.Atoi(m[1])
	spd, _ := strconv.Atoi(m[2])
	hour := s.rec.IssueTime.Hour
	if m[3] != "" {
		hour, _ = strconv.Atoi(m[3])
	}
	minute, _ := strconv.Atoi(m[4])
	e := s.elem(s.pos, s.pos+3)
	s.rec.PeakWind = &record.PeakWind{
		Elem:      e,
		Direction: dir,
		Speed:     spd,
		Epoch:     eventTimestamp(s.issue, hour, minute).Unix(),
	}
	s.mark(s.pos, s.pos+3)
	s.pos += 3
	return true
}

func matchWshft(s *state) bool {
	if s.word(0) != "WSHFT" {
		return false
	}
	m := token.WshftValue.FindStringSubmatch(s.word(1))
	if m == nil {
		return false
	}
	hour := s.rec.IssueTime.Hour
	minute := 0
	if m[1] != "" {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
	} else {
		minute, _ = strconv.Atoi(m[2])
	}
	to := s.pos + 2
	fropa := false
	if s.word(2) == "FROPA" {
		fropa = true
		to++
	}
	s.rec.WindShift = &record.WindShift{
		Elem:  s.elem(s.pos, to),
		Epoch: eventTimestamp(s.issue, hour, minute).Unix(),
		FROPA: fropa,
	}
	s.mark(s.pos, to)
	s.pos = to
	return true
}

func matchSfcVis(s *state) bool {
	if s.word(0) != "SFC" || s.word(1) != "VIS" {
		return false
	}
	v, consumed, ok := parseVisFraction(s, s.pos+2)
	if !ok {
		return false
	}
	to := s.pos + 2 + consumed
	e := s.elem(s.pos, to)
	if s.rec.Visibility != nil {
		s.rec.TwrVsby = s.rec.Visibility
	}
	s.rec.Visibility = &record.Visibility{Elem: e, Value: v, UOM: "[mi_i]"}
	s.mark(s.pos, to)
	s.pos = to
	return true
}

func matchTwrVis(s *state) bool {
	if s.word(0) != "TWR" || s.word(1) != "VIS" {
		return false
	}
	v, consumed, ok := parseVisFraction(s, s.pos+2)
	if !ok {
		return false
	}
	to := s.pos + 2 + consumed
	s.rec.TwrVsby = &record.Visibility{Elem: s.elem(s.pos, to), Value: v, UOM: "[mi_i]"}
	s.mark(s.pos, to)
	s.pos = to
	return true
}

// parseVisFraction reads a whole-number and/or fraction visibility value
// starting at word index from, returning the decoded value and how many
// words it consumed (1 or 2).
func parseVisFraction(s *state, from int) (float64, int, bool) {
	if from >= len(s.words) {
		return 0, 0, false
	}
	w0 := s.words[from].text
	if num, den, ok := strings.Cut(w0, "/"); ok {
		n, err1 := strconv.Atoi(num)
		d, err2 := strconv.Atoi(den)
		if err2 == nil && d != 0 && err1 == nil {
			return float64(n) / float64(d), 1, true
		}
		return 0, 0, false
	}
	whole, err := strconv.Atoi(w0)
	if err != nil {
		return 0, 0, false
	}
	if from+1 < len(s.words) {
		if num, den, ok := strings.Cut(s.words[from+1].text, "/"); ok {
			n, err1 := strconv.Atoi(num)
			d, err2 := strconv.Atoi(den)
			if err1 == nil && err2 == nil && d != 0 {
				return float64(whole) + float64(n)/float64(d), 2, true
			}
		}
	}
	return float64(whole), 1, true
}

// matchVisGroup covers vis2loc ("VIS 1/2 RWY22") and sctrvis
// ("VIS NE 1 1/2"): a bare VIS remark qualified by direction or runway.
func matchVisGroup(s *state) bool {
	if s.word(0) != "VIS" {
		return false
	}
	if token.CompassPoint.MatchString(s.word(1)) {
		dir := s.word(1)
		v, consumed, ok := parseVisFraction(s, s.pos+2)
		if !ok {
			return false
		}
		to := s.pos + 2 + consumed
		arc, _ := location.Sector(dir)
		s.rec.SectorVis = &record.SectorVisibility{
			Elem:      s.elem(s.pos, to),
			Value:     v,
			Direction: arc,
			UOM:       "[mi_i]",
		}
		s.mark(s.pos, to)
		s.pos = to
		return true
	}
	v, consumed, ok := parseVisFraction(s, s.pos+1)
	if !ok {
		return false
	}
	locIdx := s.pos + 1 + consumed
	loc := s.word(1 + consumed)
	if loc == "" {
		return false
	}
	to := locIdx + 1
	s.rec.Vis2ndLoc = &record.SecondLocationVisibility{
		Elem:     s.elem(s.pos, to),
		Value:    v,
		Location: loc,
		UOM:      "[mi_i]",
	}
	s.mark(s.pos, to)
	s.pos = to
	return true
}

// matchCigGroup covers vcig ("CIG 015V021") and cig2loc ("CIG 015 RWY22").
func matchCigGroup(s *state) bool {
	if s.word(0) != "CIG" {
		return false
	}
	if m := token.VCigValue.FindStringSubmatch(s.word(1)); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		to := s.pos + 2
		s.rec.VCig = &record.VariableCeiling{Elem: s.elem(s.pos, to), Lo: lo * 100, Hi: hi * 100, UOM: "[ft_i]"}
		s.mark(s.pos, to)
		s.pos = to
		return true
	}
	height, err := strconv.Atoi(s.word(1))
	if err != nil || s.word(2) == "" {
		return false
	}
	to := s.pos + 3
	s.rec.Cig2ndLoc = &record.SecondLocationCeiling{
		Elem:     s.elem(s.pos, to),
		Value:    height * 100,
		UOM:      "[ft_i]",
		Location: s.word(2),
	}
	s.mark(s.pos, to)
	s.pos = to
	return true
}

func matchObsc(s *state) bool {
	if !token.ObscPhenom.MatchString(s.word(0)) {
		return false
	}
	m := token.VSkyLayer.FindStringSubmatch(s.word(1))
	if m == nil {
		return false
	}
	to := s.pos + 2
	s.rec.Obsc = &record.Obscuration{Elem: s.elem(s.pos, to), Phenomenon: s.word(0), Sky: s.word(1)}
	s.mark(s.pos, to)
	s.pos = to
	return true
}

// matchLtgTstm covers ltg and tstmvmt: a frequency/type token followed by
// a run of location words, with an optional "MOV <direction>" movement
// clause for tstmvmt.
func matchLtgTstm(s *state) bool {
	isLtg := token.LtgFreq.MatchString(s.word(0)) && strings.Contains(s.word(0), "LTG")
	isTstm := s.word(0) == "TS" || s.word(0) == "CB"
	if !isLtg && !isTstm {
		return false
	}
	start := s.pos
	s.pos++
	locStart := s.pos
	for s.remaining() > 0 && isLocationWord(s.word(0)) {
		s.pos++
	}
	locStr := joined(s.words, locStart, s.pos)
	cl := &record.ConvectiveLocation{
		Elem:      s.elem(start, s.pos),
		Locations: location.Parse(locStr),
	}
	if isLtg {
		cl.Frequency = token.LtgFreq.FindStringSubmatch(s.words[start].text)[1]
	}
	if isTstm && s.word(0) == "MOV" {
		s.pos++
		movStart := s.pos
		for s.remaining() > 0 && isLocationWord(s.word(0)) {
			s.pos++
		}
		mv := location.Parse(joined(s.words, movStart, s.pos))
		cl.Movement = &mv
		cl.Elem = s.elem(start, s.pos)
	}
	if isLtg {
		s.rec.Lightning = cl
	} else {
		s.rec.TstmMvmt = cl
	}
	s.mark(start, s.pos)
	return true
}

func isLocationWord(w string) bool {
	if w == "OHD" || w == "VC" || w == "DSNT" || w == "AND" {
		return true
	}
	if token.CompassPoint.MatchString(w) {
		return true
	}
	if lo, hi, ok := strings.Cut(w, "-"); ok {
		return token.CompassPoint.MatchString(lo) && token.CompassPoint.MatchString(hi)
	}
	return false
}

func matchPcpnHist(s *state) bool {
	m := token.PcpnHist.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	events := token.PcpnEvents(s.word(0))
	ph := s.rec.PcpnHist
	if ph == nil {
		ph = &record.PrecipHistory{Elem: s.elem(s.pos, s.pos+1)}
	} else {
		ph.Lexeme += " " + s.word(0)
	}
	for _, ev := range events {
		hour, minute := s.issue.Hour(), 0
		if ev[3] != "" {
			hour, _ = strconv.Atoi(ev[2])
			minute, _ = strconv.Atoi(ev[3])
		} else {
			minute, _ = strconv.Atoi(ev[2])
		}
		ph.Events = append(ph.Events, record.PrecipEvent{
			Kind:  ev[1],
			Epoch: eventTimestamp(s.issue, hour, minute).Unix(),
		})
	}
	s.rec.PcpnHist = ph
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchHail(s *state) bool {
	if s.word(0) != "GR" {
		return false
	}
	w := s.word(1)
	to := s.pos + 2
	if strings.Contains(s.word(2), "/") && s.remaining() >= 3 {
		// whole-number followed by fraction, e.g. "GR 1 1/4"
		if whole, err := strconv.Atoi(s.word(1)); err == nil {
			num, den, ok := strings.Cut(s.word(2), "/")
			n, err1 := strconv.Atoi(num)
			d, err2 := strconv.Atoi(den)
			if ok && err1 == nil && err2 == nil && d != 0 {
				v := float64(whole) + float64(n)/float64(d)
				s.rec.Hail = &record.Hail{Elem: s.elem(s.pos, s.pos+3), Value: v}
				s.mark(s.pos, s.pos+3)
				s.pos += 3
				return true
			}
		}
	}
	var v float64
	if num, den, ok := strings.Cut(w, "/"); ok {
		n, err1 := strconv.Atoi(num)
		d, err2 := strconv.Atoi(den)
		if !ok || err1 != nil || err2 != nil || d == 0 {
			return false
		}
		v = float64(n) / float64(d)
	} else {
		n, err := strconv.Atoi(w)
		if err != nil {
			return false
		}
		v = float64(n)
	}
	s.rec.Hail = &record.Hail{Elem: s.elem(s.pos, to), Value: v}
	s.mark(s.pos, to)
	s.pos = to
	return true
}

func matchTempDec(s *state) bool {
	m := token.TempDec.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	tt := parseDecimalTemp(m[1], m[2])
	td := parseDecimalTemp(m[3], m[4])
	s.rec.TempDec = &record.TemperatureDecimal{Elem: s.elem(s.pos, s.pos+1), Tt: tt, Td: td}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func parseDecimalTemp(sign, digits string) float64 {
	n, _ := strconv.Atoi(digits)
	v := float64(n) / 10.0
	if sign == "1" {
		v = -v
	}
	return v
}

func matchPtndcy3h(s *state) bool {
	m := token.Ptndcy3h.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	n, _ := strconv.Atoi(m[2])
	s.rec.Ptndcy3h = &record.PressureTendency3h{
		Elem:      s.elem(s.pos, s.pos+1),
		Character: m[1],
		Change:    float64(n) / 10.0,
	}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchMaxMin6h(s *state) bool {
	if m := token.MaxT6h.FindStringSubmatch(s.word(0)); m != nil {
		s.rec.MaxT6h = &record.TempExtremum{Elem: s.elem(s.pos, s.pos+1), Value: parseDecimalTemp(m[1], m[2]), Period: "6h"}
		s.mark(s.pos, s.pos+1)
		s.pos++
		return true
	}
	if m := token.MinT6h.FindStringSubmatch(s.word(0)); m != nil {
		s.rec.MinT6h = &record.TempExtremum{Elem: s.elem(s.pos, s.pos+1), Value: parseDecimalTemp(m[1], m[2]), Period: "6h"}
		s.mark(s.pos, s.pos+1)
		s.pos++
		return true
	}
	return false
}

func matchXtrmET(s *state) bool {
	m := token.XtrmET.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	e := s.elem(s.pos, s.pos+1)
	s.rec.MaxT24h = &record.TempExtremum{Elem: e, Value: parseDecimalTemp(m[1], m[2]), Period: "24h"}
	s.rec.MinT24h = &record.TempExtremum{Elem: e, Value: parseDecimalTemp(m[3], m[4]), Period: "24h"}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchPcp1h(s *state) bool {
	m := token.Pcp1h.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	v, _ := strconv.ParseFloat(m[1], 64)
	period := pcp6hPeriod(s.rec.IssueTime)
	_ = period
	s.rec.Pcp1h = &record.StatisticalQuantity{Elem: s.elem(s.pos, s.pos+1), Value: v / 100.0, Period: "1h", UOM: "[in_i]"}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

// pcp6hPeriod infers whether a 6nnnn group covers 3 or 6 hours from the
// report's issue hour and the tens digit of its minute field (HH*10 +
// MM/10): 025/085/145/205 are 3h, 055/115/175/235 are 6h.
func pcp6hPeriod(it *record.IssueTime) string {
	if it == nil {
		return "3h"
	}
	switch it.Hour*10 + it.Minute/10 {
	case 25, 85, 145, 205:
		return "3h"
	case 55, 115, 175, 235:
		return "6h"
	}
	return "3h"
}

func matchPcp6h(s *state) bool {
	m := token.Pcp6h.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	v, _ := strconv.ParseFloat(m[1], 64)
	s.rec.PcpAmt = &record.StatisticalQuantity{
		Elem:   s.elem(s.pos, s.pos+1),
		Value:  v / 100.0,
		Period: pcp6hPeriod(s.rec.IssueTime),
		UOM:    "[in_i]",
	}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchPcp24h(s *state) bool {
	m := token.Pcp24h.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	v, _ := strconv.ParseFloat(m[1], 64)
	s.rec.PcpAmt24h = &record.StatisticalQuantity{Elem: s.elem(s.pos, s.pos+1), Value: v / 100.0, Period: "24h", UOM: "[in_i]"}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchIceAcc(s *state) bool {
	m := token.IceAcc.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	v, _ := strconv.ParseFloat(m[2], 64)
	q := &record.StatisticalQuantity{Elem: s.elem(s.pos, s.pos+1), Value: v / 100.0, Period: m[1] + "h", UOM: "[in_i]"}
	switch m[1] {
	case "1":
		s.rec.IceAcc1 = q
	case "3":
		s.rec.IceAcc3 = q
	case "6":
		s.rec.IceAcc6 = q
	}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchSnoDpth(s *state) bool {
	m := token.SnoDpth.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	v, _ := strconv.ParseFloat(m[1], 64)
	s.rec.SnowDepth = &record.SnowDepth{Elem: s.elem(s.pos, s.pos+1), Value: v, UOM: "[in_i]"}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchLWE(s *state) bool {
	m := token.LWE.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	v, _ := strconv.ParseFloat(m[1], 64)
	s.rec.LWE = &record.StatisticalQuantity{Elem: s.elem(s.pos, s.pos+1), Value: v / 100.0, Period: "24h", UOM: "[in_i]"}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchSunshine(s *state) bool {
	m := token.Sunshine.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	minutes, _ := strconv.Atoi(m[1])
	s.rec.Sunshine = &record.Sunshine{Elem: s.elem(s.pos, s.pos+1), Minutes: minutes}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchSensorStat(s *state) bool {
	if !token.SensorStat.MatchString(s.word(0)) {
		return false
	}
	to := s.pos + 1
	w0 := s.word(0)
	if (w0 == "VISNO" || w0 == "CHINO") && (token.CompassPoint.MatchString(s.word(1)) || token.Runway.MatchString(s.word(1))) {
		to++
	}
	if s.rec.SensorStat == nil {
		s.rec.SensorStat = &record.SensorStatus{Elem: s.elem(s.pos, to)}
	} else {
		s.rec.SensorStat.Lexeme += " " + joined(s.words, s.pos, to)
	}
	s.mark(s.pos, to)
	s.pos = to
	return true
}

func matchEstWind(s *state) bool {
	if s.word(0) != "WIND" || s.word(1) != "ESTIMATED" {
		return false
	}
	e := s.elem(s.pos, s.pos+2)
	s.rec.EstWind = &e
	s.mark(s.pos, s.pos+2)
	s.pos += 2
	return true
}

func matchMslp(s *state) bool {
	m := token.Mslp.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	n, _ := strconv.ParseFloat(m[1], 64)
	v := n / 10.0
	if v >= 60.0 {
		v += 900.0
	} else {
		v += 1000.0
	}
	s.rec.MSLP = &record.MSLP{Elem: s.elem(s.pos, s.pos+1), Value: v}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchSnoIncr(s *state) bool {
	if !token.SnoIncr.MatchString(s.word(0)) {
		return false
	}
	parts := strings.SplitN(s.word(1), "/", 2)
	to := s.pos + 2
	si := &record.SnowIncrease{Elem: s.elem(s.pos, to), Period: "1h", UOM: "[in_i]"}
	if len(parts) == 2 {
		si.Value, _ = strconv.Atoi(parts[0])
		si.Depth, _ = strconv.Atoi(parts[1])
	}
	s.rec.SnoIncr = si
	s.mark(s.pos, to)
	s.pos = to
	return true
}
