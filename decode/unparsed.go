package decode

import "strings"

// unparsedAccounting masks every matched span out of a copy of text, then
// partitions whatever characters survive at the first RMK token: text
// before that point is grammar-error residue (unparsed); text after is
// free-form observer prose (additive).
//
// Grounded on original_source/usMetarDecoder.py Decoder.unparsed, which
// "whites out" every recorded element's character range before splitting
// the remainder at RMK.
func unparsedAccounting(text string, spans []rangeMask, rmkStart int) (unparsed, additive string) {
	mask := []byte(text)
	for _, s := range spans {
		for i := s.start; i < s.end && i < len(mask); i++ {
			mask[i] = ' '
		}
	}

	before := string(mask)
	after := ""
	if rmkStart >= 0 && rmkStart <= len(mask) {
		before = string(mask[:rmkStart])
		after = string(mask[rmkStart:])
	}
	return strings.TrimSpace(collapseSpaces(before)), strings.TrimSpace(collapseSpaces(after))
}

// rangeMask is a byte-offset range (end exclusive) consumed by some
// matched element, independent of which record field it populated.
type rangeMask struct {
	start, end int
}
