package bulletin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStripsWMOHeaderAndSlicesReports(t *testing.T) {
	raw := "SAUS46 KWBC 121753\n" +
		"METAR KDEN 121753Z 27015G25KT 10SM FEW050 22/M01 A3012=" +
		"KBOS 121753Z 10SM CLR 20/10 A3000=\n"

	s := Scanner{}
	reports := s.Split(raw)

	assert.Len(t, reports, 2)
	assert.Contains(t, reports[0], "METAR KDEN 121753Z")
	assert.Contains(t, reports[1], "METAR KBOS 121753Z")
}

func TestSplitDropsNilReports(t *testing.T) {
	raw := "METAR KBOS 121753Z NIL=METAR KDEN 121753Z 10SM CLR 20/10 A3000="
	s := Scanner{}
	reports := s.Split(raw)

	assert.Len(t, reports, 1)
	assert.Contains(t, reports[0], "KDEN")
}

func TestSplitHandlesSOHEOTEnvelope(t *testing.T) {
	raw := "\x01SAUS46 KWBC 121753\nMETAR KDEN 121753Z 10SM CLR 20/10 A3000=\x03"
	s := Scanner{}
	reports := s.Split(raw)

	assert.Len(t, reports, 1)
	assert.Contains(t, reports[0], "KDEN")
}
