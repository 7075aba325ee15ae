// Package clickhouse persists infrastructure snapshot documents.
// Columnar storage keeps the append-only snapshot history cheap to retain
// and fast to query by account/region.
package clickhouse

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/google/uuid"
)

// SnapshotRow is one archived snapshot document.
type SnapshotRow struct {
	ID        uuid.UUID `ch:"id"`
	Account   string    `ch:"account"`
	Region    string    `ch:"region"`
	Hash      string    `ch:"hash"`
	FetchedAt time.Time `ch:"fetched_at"`
	Body      string    `ch:"body"`
	CreatedAt time.Time `ch:"created_at"`
}

// Config holds ClickHouse connection configuration.
type Config struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Debug    bool
}

// DefaultConfig returns default development configuration.
func DefaultConfig() *Config {
	return &Config{
		Host:     "localhost",
		Port:     9000,
		Database: "opsboard",
		Username: "default",
		Password: "",
		Debug:    false,
	}
}

// Store is the ClickHouse snapshot archive.
type Store struct {
	conn clickhouse.Conn
	cfg  *Config
}

// NewStore connects to ClickHouse.
func NewStore(cfg *Config) (*Store, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Debug: cfg.Debug,
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}
	return &Store{conn: conn, cfg: cfg}, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Migrate creates the archive table when missing.
func (s *Store) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS infra_snapshots (
			id UUID,
			account String,
			region String,
			hash String,
			fetched_at DateTime64(3),
			body String,
			created_at DateTime64(3)
		)
		ENGINE = MergeTree()
		ORDER BY (account, region, fetched_at)
	`
	if err := s.conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create infra_snapshots: %w", err)
	}
	return nil
}

// Archive inserts a raw snapshot document and returns its id. The body hash
// lets callers detect unchanged refetches without comparing documents.
func (s *Store) Archive(ctx context.Context, account, region string, fetchedAt time.Time, body []byte) (uuid.UUID, error) {
	sum := sha256.Sum256(body)
	id := uuid.New()

	query := `
		INSERT INTO infra_snapshots (id, account, region, hash, fetched_at, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	err := s.conn.Exec(ctx, query,
		id,
		account,
		region,
		hex.EncodeToString(sum[:]),
		fetchedAt,
		string(body),
		time.Now(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to archive snapshot: %w", err)
	}
	return id, nil
}

// Latest retrieves the most recent snapshot for an account/region, or nil
// when none is archived yet.
func (s *Store) Latest(ctx context.Context, account, region string) (*SnapshotRow, error) {
	query := `
		SELECT id, account, region, hash, fetched_at, body, created_at
		FROM infra_snapshots
		WHERE account = ? AND region = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`
	row := s.conn.QueryRow(ctx, query, account, region)

	var snap SnapshotRow
	err := row.Scan(
		&snap.ID, &snap.Account, &snap.Region, &snap.Hash,
		&snap.FetchedAt, &snap.Body, &snap.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return &snap, nil
}

// History lists archive metadata for an account/region, newest first. Body
// columns are omitted to keep listings cheap.
func (s *Store) History(ctx context.Context, account, region string, limit int) ([]SnapshotRow, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, account, region, hash, fetched_at, created_at
		FROM infra_snapshots
		WHERE account = ? AND region = ?
		ORDER BY fetched_at DESC
		LIMIT ?
	`
	rows, err := s.conn.Query(ctx, query, account, region, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotRow
	for rows.Next() {
		var snap SnapshotRow
		if err := rows.Scan(&snap.ID, &snap.Account, &snap.Region, &snap.Hash, &snap.FetchedAt, &snap.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}
