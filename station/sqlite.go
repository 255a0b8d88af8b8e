package station

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteResolver serves station lookups from a SQLite database opened
// read-only, the way plane-watch-acars-parser's storage.SQLiteDB opens its
// parsed-message archive.
type SQLiteResolver struct {
	db *sql.DB
}

// OpenSQLite opens path read-only and expects a `stations` table with
// columns uuid, icao, lat, lon, elev, name.
func OpenSQLite(path string) (*SQLiteResolver, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("station: open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("station: ping sqlite: %w", err)
	}
	return &SQLiteResolver{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SQLiteResolver) Close() error {
	return r.db.Close()
}

// Resolve implements Resolver.
func (r *SQLiteResolver) Resolve(ctx context.Context, icao string) (Station, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT uuid, icao, lat, lon, elev, name FROM stations WHERE icao = ?`, icao)

	var st Station
	var name sql.NullString
	if err := row.Scan(&st.UUID, &st.ICAO, &st.Latitude, &st.Longitude, &st.Elevation, &name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Station{}, ErrUnknownStation
		}
		return Station{}, fmt.Errorf("station: query sqlite: %w", err)
	}
	if name.Valid {
		st.Name = name.String
	}
	return st, nil
}
