// Package store archives decoded-and-encoded observations, an
// out-of-scope collaborator made concrete. The core decode/encode
// pipeline never depends on this package; a caller (cmd/metardecode or a
// longer-lived service) wires a Sink in after encoding to keep a
// queryable record of every report processed.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// ClickHouseConfig holds connection settings for a ClickHouseSink.
type ClickHouseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// ClickHouseSink archives decoded reports and their unparsed-character
// counts to ClickHouse, grounded on plane-watch-acars-parser's
// storage.ClickHouseDB connection setup and insert shape.
type ClickHouseSink struct {
	conn driver.Conn
}

// OpenClickHouseSink opens a connection and verifies it with a ping.
func OpenClickHouseSink(ctx context.Context, cfg ClickHouseConfig) (*ClickHouseSink, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		DialTimeout:     10 * time.Second,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open clickhouse: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("store: ping clickhouse: %w", err)
	}
	return &ClickHouseSink{conn: conn}, nil
}

// Close closes the underlying connection.
func (s *ClickHouseSink) Close() error {
	return s.conn.Close()
}

// CreateSchema creates the archive table if it doesn't already exist.
func (s *ClickHouseSink) CreateSchema(ctx context.Context) error {
	return s.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS observations (
			station           LowCardinality(String),
			report_type       LowCardinality(String),
			issue_time        DateTime64(0),
			raw_tac           String,
			xml_document      String,
			unparsed          String,
			unparsed_chars    UInt32,
			namespace         LowCardinality(String),
			archived_at       DateTime64(3) DEFAULT now64(3)
		)
		ENGINE = MergeTree()
		PARTITION BY toYYYYMM(issue_time)
		ORDER BY (station, issue_time)
		SETTINGS index_granularity = 8192`)
}

// Record is one archived report.
type Record struct {
	Station     string
	ReportType  string
	IssueTime   time.Time
	RawTAC      string
	XMLDocument string
	Unparsed    string
	Namespace   string
}

// Archive stores a single decoded-and-encoded report.
func (s *ClickHouseSink) Archive(ctx context.Context, r Record) error {
	return s.conn.Exec(ctx, `
		INSERT INTO observations (station, report_type, issue_time, raw_tac, xml_document, unparsed, unparsed_chars, namespace)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.Station, r.ReportType, r.IssueTime, r.RawTAC, r.XMLDocument, r.Unparsed, uint32(len(r.Unparsed)), r.Namespace)
}

// ArchiveBatch stores multiple reports in one round trip.
func (s *ClickHouseSink) ArchiveBatch(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO observations (station, report_type, issue_time, raw_tac, xml_document, unparsed, unparsed_chars, namespace)
	`)
	if err != nil {
		return fmt.Errorf("store: prepare batch: %w", err)
	}
	for _, r := range records {
		if err := batch.Append(r.Station, r.ReportType, r.IssueTime, r.RawTAC, r.XMLDocument, r.Unparsed, uint32(len(r.Unparsed)), r.Namespace); err != nil {
			return fmt.Errorf("store: append to batch: %w", err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("store: send batch: %w", err)
	}
	return nil
}
