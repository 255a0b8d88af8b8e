package decode

import (
	"strings"

	"github.com/mdoberfield/metar-iwxxm/record"
)

// word is one whitespace-delimited token of the normalized report text,
// together with its byte offsets into that text.
type word struct {
	text  string
	start int
	end   int // exclusive
}

// normalize collapses line breaks and runs of whitespace the way a WMO
// bulletin's wrapped TAC text arrives, and cuts the text at the first "="
// report terminator, mirroring
// original_source/parse_metar_us.py's per-report cleanup.
func normalize(report string) string {
	report = strings.ReplaceAll(report, "\r\n", " ")
	report = strings.ReplaceAll(report, "\r", " ")
	report = strings.ReplaceAll(report, "\n", " ")
	if eot := strings.IndexByte(report, '='); eot >= 0 {
		report = report[:eot]
	}
	return strings.TrimSpace(collapseSpaces(report))
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// tokenize splits text into words with byte offsets.
func tokenize(text string) []word {
	var words []word
	inWord := false
	start := 0
	for i, r := range text {
		isSpace := r == ' '
		if isSpace {
			if inWord {
				words = append(words, word{text: text[start:i], start: start, end: i})
				inWord = false
			}
			continue
		}
		if !inWord {
			start = i
			inWord = true
		}
	}
	if inWord {
		words = append(words, word{text: text[start:], start: start, end: len(text)})
	}
	return words
}

// span reports the character range of words[from:to] (to exclusive),
// including any internal whitespace, as a record.Span. The decoder treats
// the normalized report as a single logical line.
func span(words []word, from, to int) record.Span {
	return record.Span{
		Start: record.Pos{Line: 1, Col: words[from].start + 1},
		End:   record.Pos{Line: 1, Col: words[to-1].end},
	}
}

// joined reconstructs the original substring (with single-space
// separators) spanned by words[from:to].
func joined(words []word, from, to int) string {
	parts := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		parts = append(parts, words[i].text)
	}
	return strings.Join(parts, " ")
}
