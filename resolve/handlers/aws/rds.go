package aws

import (
	"opsboard/pkg/snapshot"
	"opsboard/resolve"
)

// RDSHandler serves the rds family.
type RDSHandler struct {
	resolve.IdentityParser
}

// NewRDSHandler creates a new database instance handler.
func NewRDSHandler() *RDSHandler {
	return &RDSHandler{}
}

// ResourceType returns the registry tag.
func (h *RDSHandler) ResourceType() string {
	return "rds"
}

// GetID prefers the human-assigned database name over the raw instance
// identifier, which not every producer version populates the same way.
func (h *RDSHandler) GetID(rec snapshot.Record) string {
	return rec.StrAny("dbName", "dbInstanceIdentifier")
}

// FindInInfra locates a database instance by identifier.
func (h *RDSHandler) FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record {
	return findByID(snap.RDS, id, h.GetID)
}

// FindAll enumerates every database instance in the snapshot.
func (h *RDSHandler) FindAll(snap *snapshot.Snapshot) []snapshot.Record {
	return snap.RDS.Records()
}
