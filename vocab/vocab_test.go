package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSKOS = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:skos="http://www.w3.org/2004/02/skos/core#">
  <skos:Concept rdf:about="http://codes.wmo.int/306/4678/+TS">
    <skos:notation>+TS</skos:notation>
    <skos:prefLabel xml:lang="en">Thunderstorm</skos:prefLabel>
  </skos:Concept>
  <skos:Concept rdf:about="http://codes.wmo.int/306/4678/RA">
    <skos:prefLabel xml:lang="en">Rain</skos:prefLabel>
  </skos:Concept>
</rdf:RDF>`

func TestLoadResolvesConceptsByLastPathSegment(t *testing.T) {
	table, err := Load(strings.NewReader(sampleSKOS))
	require.NoError(t, err)

	term, ok := table.Lookup("RA")
	require.True(t, ok)
	assert.Equal(t, "Rain", term.Title)
	assert.Equal(t, "http://codes.wmo.int/306/4678/RA", term.URI)
}

func TestLoadTakesTheLastChildElementAsTitle(t *testing.T) {
	table, err := Load(strings.NewReader(sampleSKOS))
	require.NoError(t, err)

	term, ok := table.Lookup("+TS")
	require.True(t, ok)
	assert.Equal(t, "Thunderstorm", term.Title)
}

func TestSplitSearchRecoversCompoundPhenomenon(t *testing.T) {
	table, err := Load(strings.NewReader(sampleSKOS))
	require.NoError(t, err)

	_, ok := table.Lookup("+TSRA")
	require.False(t, ok, "the compound form is not catalogued on its own")

	head, tail, ok := table.SplitSearch("+TSRA")
	require.True(t, ok)
	assert.Equal(t, "Thunderstorm", head.Title)
	assert.Equal(t, "Rain", tail.Title)
}
