package encode

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdoberfield/metar-iwxxm/decode"
	"github.com/mdoberfield/metar-iwxxm/station"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 12, 18, 0, 0, 0, time.UTC)
}

func newTestDecoder() *decode.Decoder {
	return &decode.Decoder{Now: fixedNow}
}

type stubResolver struct {
	st  station.Station
	err error
}

func (s stubResolver) Resolve(_ context.Context, _ string) (station.Station, error) {
	return s.st, s.err
}

func fixedUUID() string { return "00000000-0000-0000-0000-000000000000" }

func TestEncodeBasicObservationUsesUSNamespace(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR KDEN 121753Z 27015G25KT 10SM FEW050 SCT120 BKN250 22/M01 A3012 RMK AO2 SLP178 T02221006=")
	require.NoError(t, err)

	resolver := stubResolver{st: station.Station{
		UUID: "uuid-kden", ICAO: "KDEN", Name: "Denver Intl",
		Latitude: 39.8617, Longitude: -104.6732, Elevation: 1655,
	}}
	e := NewEncoder(resolver, nil, Options{AllowUSExtensions: true, DeclareNamespaces: true})
	e.newUUID = fixedUUID

	doc, err := e.Encode(context.Background(), rec, "")
	require.NoError(t, err)
	rendered := doc.Root.Render()

	assert.Contains(t, rendered, "iwxxm-us:METAR")
	assert.Contains(t, rendered, `status="NORMAL"`)
	assert.Contains(t, rendered, `automatedStation="false"`)
	assert.Contains(t, rendered, "27.778")
	assert.Contains(t, rendered, "46.296")
	assert.Contains(t, rendered, "16093.4")
	assert.Contains(t, rendered, "22.2")
	assert.Contains(t, rendered, "-0.6")
	assert.Contains(t, rendered, "1017.8")
}

func TestEncodeNonUSStationNeverUsesUSNamespace(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR EGLL 121753Z 27015KT 10SM CLR 20/10 A3000=")
	require.NoError(t, err)

	resolver := stubResolver{st: station.Station{UUID: "uuid-egll", ICAO: "EGLL", Name: "Heathrow"}}
	e := NewEncoder(resolver, nil, Options{AllowUSExtensions: true})
	e.newUUID = fixedUUID

	doc, err := e.Encode(context.Background(), rec, "")
	require.NoError(t, err)
	rendered := doc.Root.Render()
	assert.True(t, strings.HasPrefix(rendered, "<iwxxm:METAR"))
	assert.NotContains(t, rendered, "iwxxm-us:")
}

func TestSensorStatusURICoversAllSensorStatusTokens(t *testing.T) {
	for _, token := range []string{"RVRNO", "PWINO", "PNO", "FZRANO", "TSNO", "VISNO", "CHINO", "SLPNO", "WINDNO"} {
		_, ok := sensorStatusURI(token)
		assert.True(t, ok, "expected a mapped URI for %s", token)
	}
}

func TestEncodeUnknownStationFails(t *testing.T) {
	d := newTestDecoder()
	rec, err := d.Decode("METAR ZZZZ 121753Z 27015KT 10SM CLR 20/10 A3000=")
	require.NoError(t, err)

	resolver := stubResolver{err: station.ErrUnknownStation}
	e := NewEncoder(resolver, nil, Options{})

	_, err = e.Encode(context.Background(), rec, "")
	assert.ErrorIs(t, err, station.ErrUnknownStation)
}
