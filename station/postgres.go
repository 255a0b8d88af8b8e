package station

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds the connection settings for a PostgresResolver.
type PostgresConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string // disable, require, verify-ca, verify-full. Default: disable.
}

// PostgresResolver serves station lookups from a PostgreSQL `stations`
// table (uuid, icao, lat, lon, elev, name), grounded on
// plane-watch-acars-parser's storage.PostgresDB connection-pool setup.
type PostgresResolver struct {
	pool *pgxpool.Pool
}

// OpenPostgres opens a connection pool and verifies it with a ping.
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*PostgresResolver, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, url.QueryEscape(cfg.Password), cfg.Host, cfg.Port, cfg.Database, sslMode)

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("station: parse postgres config: %w", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("station: open postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("station: ping postgres: %w", err)
	}
	return &PostgresResolver{pool: pool}, nil
}

// Close releases the connection pool.
func (r *PostgresResolver) Close() {
	r.pool.Close()
}

// Resolve implements Resolver.
func (r *PostgresResolver) Resolve(ctx context.Context, icao string) (Station, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT uuid, icao, lat, lon, elev, name FROM stations WHERE icao = $1`, icao)

	var st Station
	if err := row.Scan(&st.UUID, &st.ICAO, &st.Latitude, &st.Longitude, &st.Elevation, &st.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Station{}, ErrUnknownStation
		}
		return Station{}, fmt.Errorf("station: query postgres: %w", err)
	}
	return st, nil
}
