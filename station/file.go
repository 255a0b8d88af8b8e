package station

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// FileResolver serves station lookups from the flat pipe-delimited
// metadata file described in spec.md §6: `uuid|icao|lat|lon|elev|name|…|…`,
// `#`-prefixed comment lines, keyed by icao.
//
// Grounded on original_source/METARXMLEncoder.py:getGeography, which reads
// the same file shape line by line and splits on "|".
type FileResolver struct {
	mu       sync.RWMutex
	stations map[string]Station
}

// LoadFileResolver reads the entire metadata file into memory.
func LoadFileResolver(path string) (*FileResolver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("station: open metadata file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := &FileResolver{stations: make(map[string]Station)}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		st, ok := parseStationLine(line)
		if !ok {
			continue
		}
		r.stations[st.ICAO] = st
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("station: read metadata file: %w", err)
	}
	return r, nil
}

func parseStationLine(line string) (Station, bool) {
	fields := strings.Split(line, "|")
	if len(fields) < 6 {
		return Station{}, false
	}
	lat, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Station{}, false
	}
	lon, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Station{}, false
	}
	elev, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Station{}, false
	}
	return Station{
		UUID:      fields[0],
		ICAO:      fields[1],
		Latitude:  lat,
		Longitude: lon,
		Elevation: elev,
		Name:      fields[5],
	}, true
}

// Resolve implements Resolver.
func (r *FileResolver) Resolve(_ context.Context, icao string) (Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.stations[icao]
	if !ok {
		return Station{}, ErrUnknownStation
	}
	return st, nil
}

func formatPos(lat, lon, elev float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + " " +
		strconv.FormatFloat(lon, 'f', -1, 64) + " " +
		strconv.FormatFloat(elev, 'f', -1, 64)
}
