package decode

import (
	"errors"
	"time"

	"github.com/mdoberfield/metar-iwxxm/record"
	"github.com/mdoberfield/metar-iwxxm/token"
)

// ErrNilReport is returned for a recognized NIL report: the grammar
// matched cleanly but there is nothing to encode.
var ErrNilReport = errors.New("decode: NIL report, nothing to encode")

// Decoder parses METAR/SPECI TAC strings into observation records. It is
// safe for concurrent use: every call builds its own state and mutates no
// shared data.
type Decoder struct {
	// Now returns the wall-clock reference used to resolve the report's
	// day-of-month-only timestamp. Defaults to time.Now when nil; tests
	// substitute a fixed instant.
	Now func() time.Time
}

// NewDecoder returns a Decoder using the real wall clock.
func NewDecoder() *Decoder {
	return &Decoder{Now: time.Now}
}

func (d *Decoder) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Decode parses one report. On a grammar fault below REPORT level it
// returns the partial record built so far rather than an error; the only
// sentinel error is ErrNilReport.
func (d *Decoder) Decode(report string) (*record.Record, error) {
	text := normalize(report)
	s := newState(text, d.now().UTC())

	if s.remaining() < 2 {
		return s.rec, nil
	}

	if !token.Type.MatchString(s.word(0)) || !token.Ident.MatchString(s.word(1)) {
		return s.rec, nil
	}
	s.rec.Type = &record.Ident{Elem: s.elem(s.pos, s.pos+1)}
	s.mark(s.pos, s.pos+1)
	s.pos++
	s.rec.Ident = &record.Ident{Elem: s.elem(s.pos, s.pos+1)}
	s.mark(s.pos, s.pos+1)
	s.pos++

	if s.remaining() > 0 && token.Nil.MatchString(s.word(0)) {
		return s.rec, ErrNilReport
	}

	if s.remaining() == 0 || !token.ITime.MatchString(s.word(0)) {
		return s.rec, nil
	}
	matchITime(s)

	for s.remaining() > 0 && token.AutoCor.MatchString(s.word(0)) {
		if s.rec.AutoCor == nil {
			s.rec.AutoCor = &record.AutoCor{Elem: s.elem(s.pos, s.pos+1)}
		} else {
			s.rec.AutoCor.Lexeme += " " + s.word(0)
		}
		s.mark(s.pos, s.pos+1)
		s.pos++
	}

	scanMandatory(s)

	if s.remaining() > 0 && s.word(0) != "RMK" {
		// noRMK: tolerate a single unrecognized token, then retry.
		s.pos++
		scanMandatory(s)
	}

	rmkStart := len(text)
	if s.remaining() > 0 && s.word(0) == "RMK" {
		s.mark(s.pos, s.pos+1)
		s.pos++
		rmkStart = s.words[s.pos-1].end
		scanRemarks(s)
	}

	s.rec.Unparsed, s.rec.Additive = unparsedAccounting(text, s.spans, rmkStart)
	return s.rec, nil
}

func matchITime(s *state) {
	m := token.ITime.FindStringSubmatch(s.word(0))
	day, _ := atoiSafe(m[1])
	hour, _ := atoiSafe(m[2])
	minute, _ := atoiSafe(m[3])

	it := &record.IssueTime{
		Elem:   s.elem(s.pos, s.pos+1),
		Day:    day,
		Hour:   hour,
		Minute: minute,
	}
	if t, ok := fixDate(s.now, day, hour, minute); ok {
		it.Epoch = t.Unix()
		it.Year, it.Month, it.Day = t.Year(), int(t.Month()), t.Day()
		it.Hour, it.Minute = t.Hour(), t.Minute()
		s.issue = t
	} else {
		it.Epoch = s.now.Unix()
		it.Error = "InvalidTime"
		s.issue = s.now
	}
	s.rec.IssueTime = it
	s.mark(s.pos, s.pos+1)
	s.pos++
}

func atoiSafe(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
