// Package resolve provides the resource handler registry and resolver.
// Each AWS resource family implements ResourceHandler independently; the
// resolver is the only query-time consumer of the registry.
package resolve

import "opsboard/pkg/snapshot"

// ParsedID is a decoded identifier. For simple families only ID is set; the
// composite task identifier also carries the service and task components.
type ParsedID struct {
	ID      string `json:"id"`
	Service string `json:"service,omitempty"`
	TaskID  string `json:"taskId,omitempty"`
	FullID  string `json:"fullId,omitempty"`
}

// ResourceHandler is the contract each resource family implements.
//
// GetID must be a pure function of the record. For any record reachable via
// FindAll, FindInInfra(GetID(record), snap) must return a record equal to it
// on every field GetID reads. Absence is reported through empty results,
// never through panics or errors.
type ResourceHandler interface {
	// ResourceType returns the registry tag for this family.
	ResourceType() string

	// GetID derives the stable external identifier for a record.
	// Empty string means the record is not identifiable.
	GetID(rec snapshot.Record) string

	// FindInInfra locates the record matching id, or nil when absent.
	FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record

	// FindAll enumerates every record of this family in the snapshot.
	FindAll(snap *snapshot.Snapshot) []snapshot.Record

	// ParseID decodes an identifier into its structural parts.
	ParseID(id string) ParsedID
}

// IdentityParser is the default ParseID implementation: the identifier has
// no internal structure and is returned wrapped as-is. Handlers embed it so
// only composite families implement ParseID themselves.
type IdentityParser struct{}

// ParseID wraps the raw identifier unchanged.
func (IdentityParser) ParseID(id string) ParsedID {
	return ParsedID{ID: id}
}
