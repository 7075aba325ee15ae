package resolve

import (
	"errors"
	"fmt"

	"opsboard/pkg/snapshot"
)

// ErrNoHandler marks a resource type with no registered handler. It is
// distinct from "record not found", which is a nil record with a nil error.
var ErrNoHandler = errors.New("no handler registered for resource type")

// Resolver answers lookup and listing queries against a snapshot. It is a
// pure function of its inputs: no caching, no retries, no I/O.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver over the given registry.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{registry: reg}
}

// Resolve finds the record of the given type matching id. A nil record with
// nil error means the handler exists but the snapshot holds no such record;
// that is a common outcome (stale snapshot, API-resolved family) and not a
// failure.
func (r *Resolver) Resolve(resourceType, id string, snap *snapshot.Snapshot) (snapshot.Record, error) {
	h, ok := r.registry.Get(resourceType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, resourceType)
	}
	return h.FindInInfra(id, snap), nil
}

// ListAll enumerates every record of the given type in the snapshot.
func (r *Resolver) ListAll(resourceType string, snap *snapshot.Snapshot) ([]snapshot.Record, error) {
	h, ok := r.registry.Get(resourceType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, resourceType)
	}
	return h.FindAll(snap), nil
}

// ParseID decodes an identifier using the family's codec.
func (r *Resolver) ParseID(resourceType, id string) (ParsedID, error) {
	h, ok := r.registry.Get(resourceType)
	if !ok {
		return ParsedID{}, fmt.Errorf("%w: %s", ErrNoHandler, resourceType)
	}
	return h.ParseID(id), nil
}
