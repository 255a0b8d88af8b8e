package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMandatoryBodyPatterns(t *testing.T) {
	assert.True(t, Type.MatchString("METAR"))
	assert.True(t, Type.MatchString("SPECI"))
	assert.False(t, Type.MatchString("TAF"))

	assert.True(t, Ident.MatchString("KDEN"))
	assert.False(t, Ident.MatchString("12345"))

	assert.True(t, ITime.MatchString("121753Z"))
	assert.False(t, ITime.MatchString("1217Z"))

	assert.True(t, Wind.MatchString("27015G25KT"))
	assert.True(t, Wind.MatchString("VRB03KT"))
	assert.False(t, Wind.MatchString("27015"))

	assert.True(t, WindVrb.MatchString("240V280"))

	assert.True(t, VsbyWhole.MatchString("1SM"))
	assert.True(t, VsbyWhole.MatchString("M1/4SM"))
	assert.True(t, VsbyMeters.MatchString("9999"))

	assert.True(t, RVR.MatchString("R22L/3000FT"))
	assert.True(t, RVR.MatchString("R22L/M0600VP6000FT"))

	assert.True(t, SkyLayer.MatchString("FEW050"))
	assert.True(t, SkyLayer.MatchString("BKN250CB"))
	assert.True(t, SkyLayer.MatchString("VV///"))

	assert.True(t, Temp.MatchString("22/M01"))
	assert.True(t, Alt.MatchString("A3012"))
	assert.True(t, Alt.MatchString("Q1013"))

	assert.True(t, CAVOK.MatchString("CAVOK"))
}

func TestPcpnHistEventsAllowsMinuteOnlySecondMarker(t *testing.T) {
	assert.True(t, PcpnHist.MatchString("TSB15E47"))

	events := PcpnEvents("TSB15E47")
	if assert.Len(t, events, 2) {
		assert.Equal(t, "B", events[0][1])
		assert.Equal(t, "15", events[0][2])
		assert.Equal(t, "E", events[1][1])
		assert.Equal(t, "47", events[1][2])
	}
}

func TestRemarksPatterns(t *testing.T) {
	assert.True(t, OsType.MatchString("AO2"))
	assert.True(t, Mslp.MatchString("SLP178"))
	assert.True(t, TempDec.MatchString("T02221006"))
	assert.True(t, Hail.MatchString("GR1"))
	assert.True(t, Hail.MatchString("GR1/4"))
}
