package decode

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mdoberfield/metar-iwxxm/record"
	"github.com/mdoberfield/metar-iwxxm/token"
)

// scanMandatory consumes as many mandatory-body elements as it can find
// starting at s.pos, in any order (observers do not always report them in
// canonical sequence), stopping at the first word that matches none of
// them.
func scanMandatory(s *state) {
	matchers := []func(*state) bool{
		matchWind,
		matchWindVrb,
		matchCAVOK,
		matchVsby,
		matchRVR,
		matchWWGroup,
		matchSky,
		matchTemp,
		matchAlt,
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
			return
		}
	}
}

func matchWind(s *state) bool {
	m := token.Wind.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	speed, _ := strconv.Atoi(m[2])
	uom := "[kn_i]"
	if m[5] == "MPS" {
		uom = "m/s"
	}
	w := &record.Wind{
		Elem:      s.elem(s.pos, s.pos+1),
		Direction: m[1],
		Speed:     speed,
		UOM:       uom,
	}
	if m[4] != "" {
		g, _ := strconv.Atoi(m[4])
		w.Gust = record.IntPtr(g)
	}
	s.rec.Wind = w
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchWindVrb(s *state) bool {
	if s.rec.Wind == nil {
		return false
	}
	m := token.WindVrb.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	s.rec.Wind.CCW = m[1]
	s.rec.Wind.CW = m[2]
	// Extend the existing wind element's span and lexeme in place.
	start := s.rec.Wind.Span.Start
	s.rec.Wind.Lexeme = s.rec.Wind.Lexeme + " " + s.word(0)
	s.rec.Wind.Span = span(s.words, s.pos, s.pos+1)
	s.rec.Wind.Span.Start = start
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

var visJoinRe = regexp.MustCompile(`^(M|P)?(\d{1,3})?(?:\s?(\d)/(\d{1,2}))?SM$`)

func matchVsby(s *state) bool {
	if s.remaining() >= 2 {
		lex := joined(s.words, s.pos, s.pos+2)
		if m := visJoinRe.FindStringSubmatch(lex); m != nil && (m[2] != "" || m[3] != "") {
			setVisibility(s, m, s.pos, s.pos+2, lex)
			return true
		}
	}
	w0 := s.word(0)
	if m := visJoinRe.FindStringSubmatch(w0); m != nil && (m[2] != "" || m[3] != "") {
		setVisibility(s, m, s.pos, s.pos+1, w0)
		return true
	}
	if m := token.VsbyMeters.FindStringSubmatch(w0); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		s.rec.Visibility = &record.Visibility{
			Elem:  s.elem(s.pos, s.pos+1),
			Value: v,
			UOM:   "m",
		}
		s.mark(s.pos, s.pos+1)
		s.pos++
		return true
	}
	return false
}

func setVisibility(s *state, m []string, from, to int, lex string) {
	whole := 0.0
	if m[2] != "" {
		whole, _ = strconv.ParseFloat(m[2], 64)
	}
	if m[3] != "" && m[4] != "" {
		num, _ := strconv.ParseFloat(m[3], 64)
		den, _ := strconv.ParseFloat(m[4], 64)
		whole += num / den
	}
	v := &record.Visibility{
		Elem:  s.elem(from, to),
		Value: whole,
		UOM:   "[mi_i]",
	}
	if m[1] == "M" {
		v.Oper = "M"
	} else if m[1] == "P" {
		v.Oper = "P"
	}
	s.rec.Visibility = v
	s.mark(from, to)
	s.pos = to
}

func matchCAVOK(s *state) bool {
	if !token.CAVOK.MatchString(s.word(0)) {
		return false
	}
	s.rec.CAVOK = &record.Ident{Elem: s.elem(s.pos, s.pos+1)}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchRVR(s *state) bool {
	m := token.RVR.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	r := record.RVR{
		Elem: s.elem(s.pos, s.pos+1),
		UOM:  "[ft_i]",
		Rwy:  m[1],
		Mean: m[3],
	}
	if m[2] != "" {
		r.Oper = m[2]
	} else {
		r.Oper = " "
	}
	if m[8] != "" {
		r.Tend = m[8]
	} else {
		r.Tend = " "
	}
	s.rec.RVR = append(s.rec.RVR, r)
	if m[4] != "" {
		s.rec.VrbRVR = &record.VariableRVR{
			Elem: s.elem(s.pos, s.pos+1),
			UOM:  "[ft_i]",
			Lo:   m[3],
			Hi:   m[6],
			Oper: m[5],
		}
	}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchWWGroup(s *state) bool {
	w0 := s.word(0)
	switch {
	case token.Vcnty.MatchString(w0):
		s.rec.Vcnty = &record.Phenomenon{Elem: s.elem(s.pos, s.pos+1)}
	case token.Funnel.MatchString(w0):
		s.rec.Pcp = &record.Phenomenon{Elem: s.elem(s.pos, s.pos+1)}
	case token.Obv.MatchString(w0):
		s.rec.Obv = &record.Phenomenon{Elem: s.elem(s.pos, s.pos+1)}
	case token.Pcp.MatchString(w0):
		s.rec.Pcp = &record.Phenomenon{Elem: s.elem(s.pos, s.pos+1)}
	default:
		return false
	}
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func matchSky(s *state) bool {
	start := s.pos
	var layers []record.CloudLayer
	for s.remaining() > 0 {
		m := token.SkyLayer.FindStringSubmatch(s.word(0))
		if m == nil {
			break
		}
		layers = append(layers, record.CloudLayer{Cover: m[1], Height: m[2], Type: m[3]})
		s.pos++
	}
	if len(layers) == 0 {
		return false
	}
	s.rec.Sky = &record.Sky{Elem: s.elem(start, s.pos), Layers: layers}
	s.mark(start, s.pos)
	return true
}

func matchTemp(s *state) bool {
	m := token.Temp.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	t := &record.Temperature{Elem: s.elem(s.pos, s.pos+1)}
	if v, ok := parseSignedTemp(m[1]); ok {
		t.Tt = record.IntPtr(v)
	}
	if m[2] != "" {
		if v, ok := parseSignedTemp(m[2]); ok {
			t.Td = record.IntPtr(v)
		}
	}
	s.rec.Temp = t
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}

func parseSignedTemp(raw string) (int, bool) {
	neg := strings.HasPrefix(raw, "M")
	digits := strings.TrimPrefix(raw, "M")
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

func matchAlt(s *state) bool {
	m := token.Alt.FindStringSubmatch(s.word(0))
	if m == nil {
		return false
	}
	raw, _ := strconv.ParseFloat(m[2], 64)
	a := &record.Altimeter{Elem: s.elem(s.pos, s.pos+1)}
	if m[1] == "A" {
		a.Value = raw / 100.0
		a.UOM = "[in_i'Hg]"
	} else {
		a.Value = raw
		a.UOM = "hPa"
	}
	s.rec.Alt = a
	s.mark(s.pos, s.pos+1)
	s.pos++
	return true
}
