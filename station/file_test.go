package station

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMetadataFile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "stations.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestFileResolverParsesAndResolves(t *testing.T) {
	path := writeMetadataFile(t, ""+
		"# comment line, ignored\n"+
		"a1b2c3|KDEN|39.8617|-104.6732|1655|Denver Intl\n"+
		"\n"+
		"d4e5f6|KBOS|42.3643|-71.0052|6|Logan Intl\n")

	r, err := LoadFileResolver(path)
	require.NoError(t, err)

	st, err := r.Resolve(context.Background(), "KDEN")
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3", st.UUID)
	assert.Equal(t, "Denver Intl", st.Name)
	assert.InDelta(t, 39.8617, st.Latitude, 1e-9)
	assert.InDelta(t, -104.6732, st.Longitude, 1e-9)
	assert.InDelta(t, 1655.0, st.Elevation, 1e-9)
	assert.Equal(t, "39.8617 -104.6732 1655", st.Pos())
}

func TestFileResolverUnknownStation(t *testing.T) {
	path := writeMetadataFile(t, "a1b2c3|KDEN|39.8617|-104.6732|1655|Denver Intl\n")
	r, err := LoadFileResolver(path)
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, ErrUnknownStation)
}

func TestFileResolverSkipsMalformedLines(t *testing.T) {
	path := writeMetadataFile(t, ""+
		"a1b2c3|KDEN|not-a-number|-104.6732|1655|Denver Intl\n"+
		"too|few|fields\n"+
		"d4e5f6|KBOS|42.3643|-71.0052|6|Logan Intl\n")

	r, err := LoadFileResolver(path)
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), "KDEN")
	assert.ErrorIs(t, err, ErrUnknownStation)

	st, err := r.Resolve(context.Background(), "KBOS")
	require.NoError(t, err)
	assert.Equal(t, "KBOS", st.ICAO)
}
