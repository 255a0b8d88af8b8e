package decode

import (
	"time"

	"github.com/mdoberfield/metar-iwxxm/record"
)

// state is the mutable workspace threaded through one report's decode.
// It plays the role the teacher's decoder functions play with loose
// locals, collected here so handlers can be plain methods instead of
// closures capturing half a dozen variables.
type state struct {
	words []word
	pos   int
	rec   *record.Record
	spans []rangeMask

	now   time.Time // wall-clock reference for the date-fix procedure
	issue time.Time // resolved issue time, once itime has been handled
}

func newState(text string, now time.Time) *state {
	return &state{
		words: tokenize(text),
		rec:   &record.Record{},
		now:   now,
	}
}

func (s *state) remaining() int { return len(s.words) - s.pos }

func (s *state) word(offset int) string {
	i := s.pos + offset
	if i < 0 || i >= len(s.words) {
		return ""
	}
	return s.words[i].text
}

// mark records that words[from:to) were consumed by a recognized
// element, so unparsed accounting masks them out.
func (s *state) mark(from, to int) {
	s.spans = append(s.spans, rangeMask{start: s.words[from].start, end: s.words[to-1].end})
}

func (s *state) elem(from, to int) record.Elem {
	return record.Elem{Lexeme: joined(s.words, from, to), Span: span(s.words, from, to)}
}
