package decode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 12, 18, 0, 0, 0, time.UTC)
}

func newTestDecoder() *Decoder {
	return &Decoder{Now: fixedNow}
}

func TestDecodeBasicObservation(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR KDEN 121753Z 27015G25KT 10SM FEW050 SCT120 BKN250 22/M01 A3012 RMK AO2 SLP178 T02221006=")
	require.NoError(t, err)
	require.NotNil(t, rec.Wind)

	assert.Equal(t, "270", rec.Wind.Direction)
	assert.Equal(t, 15, rec.Wind.Speed)
	require.NotNil(t, rec.Wind.Gust)
	assert.Equal(t, 25, *rec.Wind.Gust)

	require.NotNil(t, rec.Visibility)
	assert.Equal(t, 10.0, rec.Visibility.Value)
	assert.Equal(t, "[mi_i]", rec.Visibility.UOM)

	require.NotNil(t, rec.Sky)
	require.Len(t, rec.Sky.Layers, 3)
	assert.Equal(t, "050", rec.Sky.Layers[0].Height)
	assert.Equal(t, "120", rec.Sky.Layers[1].Height)
	assert.Equal(t, "250", rec.Sky.Layers[2].Height)

	require.NotNil(t, rec.Temp)
	require.NotNil(t, rec.Temp.Tt)
	require.NotNil(t, rec.Temp.Td)
	assert.Equal(t, 22, *rec.Temp.Tt)
	assert.Equal(t, -1, *rec.Temp.Td)

	require.NotNil(t, rec.Alt)
	assert.InDelta(t, 30.12, rec.Alt.Value, 1e-9)

	require.NotNil(t, rec.OsType)
	require.NotNil(t, rec.MSLP)
	assert.InDelta(t, 1017.8, rec.MSLP.Value, 1e-9)

	require.NotNil(t, rec.TempDec)
	assert.InDelta(t, 22.2, rec.TempDec.Tt, 1e-9)
	assert.InDelta(t, -0.6, rec.TempDec.Td, 1e-9)

	assert.Nil(t, rec.AutoCor)
	assert.Empty(t, rec.Unparsed)
}

func TestDecodeVariableRVRIsStoredSeparatelyFromMean(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR KDEN 121753Z 27015KT R22L/1000V1400FT 10SM FEW050 22/M01 A3012=")
	require.NoError(t, err)

	require.Len(t, rec.RVR, 1)
	assert.Equal(t, "1000", rec.RVR[0].Mean, "the base mean must not carry the embedded variable-high value")

	require.NotNil(t, rec.VrbRVR)
	assert.Equal(t, "1000", rec.VrbRVR.Lo)
	assert.Equal(t, "1400", rec.VrbRVR.Hi)
}

func TestDecodeAutoCorSetsStatus(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR KBOS 121753Z AUTO COR 10SM CLR 20/10 A3000=")
	require.NoError(t, err)
	require.NotNil(t, rec.AutoCor)
	assert.Contains(t, rec.AutoCor.Lexeme, "AUTO")
	assert.Contains(t, rec.AutoCor.Lexeme, "COR")
}

func TestDecodeNilReport(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR KBOS NIL=")
	assert.ErrorIs(t, err, ErrNilReport)
	assert.Nil(t, rec.Wind)
}

func TestDecodeMalformedSegmentRecoversViaNoRMK(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR KBOS 121753Z X$X 10SM CLR 20/10 A3000=")
	require.NoError(t, err)

	require.NotNil(t, rec.Visibility)
	require.NotNil(t, rec.Sky)
	require.NotNil(t, rec.Temp)
	require.NotNil(t, rec.Alt)
	assert.Contains(t, rec.Unparsed, "X$X")
}

func TestDecodePcpnHistTwoWeatherTypes(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR KBOS 121753Z 10SM CLR 20/10 A3000 RMK TSB15E47 RAB10E45=")
	require.NoError(t, err)
	require.NotNil(t, rec.PcpnHist)
	assert.Len(t, rec.PcpnHist.Events, 4)
}

func TestDecodeLightningLocationBuckets(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR KBOS 121753Z 10SM CLR 20/10 A3000 RMK LTG DSNT N AND E-SE OHD=")
	require.NoError(t, err)
	require.NotNil(t, rec.Lightning)
	assert.Len(t, rec.Lightning.Locations.DSNT, 2)
	assert.Len(t, rec.Lightning.Locations.OHD, 1)
	assert.Equal(t, 0.0, rec.Lightning.Locations.OHD[0].CCW)
	assert.Equal(t, 360.0, rec.Lightning.Locations.OHD[0].CW)
}

func TestUnparsedAndAdditivePartitionDisjointly(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR KDEN 121753Z 27015G25KT 10SM FEW050 22/M01 A3012 RMK AO2 SOME FREEFORM TEXT=")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.Additive)
	assert.Contains(t, rec.Additive, "FREEFORM")
	assert.NotContains(t, rec.Unparsed, "FREEFORM")
}
