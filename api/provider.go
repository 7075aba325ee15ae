package api

import (
	"context"
	"fmt"
	"os"

	"opsboard/db/clickhouse"
	"opsboard/pkg/snapshot"
)

// FileProvider serves a snapshot decoded from a local JSON document.
// Used for development and for deployments where the fetch collaborator
// drops its output on disk.
type FileProvider struct {
	Path string
}

// Latest re-reads the document on every call so an updated file is picked
// up without a restart.
func (p *FileProvider) Latest(ctx context.Context) (*snapshot.Snapshot, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return snapshot.Decode(data)
}

// ArchiveProvider serves the most recent snapshot from the ClickHouse
// archive, where the fetch collaborator posts refreshed documents.
type ArchiveProvider struct {
	Store   *clickhouse.Store
	Account string
	Region  string
}

// Latest loads and decodes the newest archived document.
func (p *ArchiveProvider) Latest(ctx context.Context) (*snapshot.Snapshot, error) {
	row, err := p.Store.Latest(ctx, p.Account, p.Region)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("no snapshot archived for %s/%s", p.Account, p.Region)
	}
	return snapshot.Decode([]byte(row.Body))
}

// StaticProvider serves a fixed snapshot. Used by tests.
type StaticProvider struct {
	Snapshot *snapshot.Snapshot
}

// Latest returns the fixed snapshot.
func (p *StaticProvider) Latest(ctx context.Context) (*snapshot.Snapshot, error) {
	if p.Snapshot == nil {
		return nil, fmt.Errorf("no snapshot configured")
	}
	return p.Snapshot, nil
}
