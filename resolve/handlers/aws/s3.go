package aws

import (
	"opsboard/pkg/snapshot"
	"opsboard/resolve"
)

// S3AllID is the aggregate identifier for the s3 family. Buckets are viewed
// as one page, so the family exposes a single identifier for all of them.
const S3AllID = "s3-all"

// S3Handler serves the s3 family.
type S3Handler struct {
	resolve.IdentityParser
}

// NewS3Handler creates a new bucket handler.
func NewS3Handler() *S3Handler {
	return &S3Handler{}
}

// ResourceType returns the registry tag.
func (h *S3Handler) ResourceType() string {
	return "s3"
}

// GetID returns the aggregate identifier regardless of record content.
func (h *S3Handler) GetID(rec snapshot.Record) string {
	return S3AllID
}

// FindInInfra returns a synthesized aggregate record holding the full
// bucket sequence when asked for the aggregate id.
func (h *S3Handler) FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record {
	if id != S3AllID || !snap.S3Buckets.Present() {
		return nil
	}
	return snapshot.Record{
		"id":      S3AllID,
		"buckets": snap.S3Buckets.Records(),
	}
}

// FindAll returns the bucket sequence unmodified.
func (h *S3Handler) FindAll(snap *snapshot.Snapshot) []snapshot.Record {
	return snap.S3Buckets.Records()
}
