package aws

import (
	"opsboard/pkg/snapshot"
	"opsboard/resolve"
)

// RedisHandler serves the redis family. Cache identifiers differ between
// single clusters and replication groups, hence the fallback chain.
type RedisHandler struct {
	resolve.IdentityParser
}

// NewRedisHandler creates a new cache cluster handler.
func NewRedisHandler() *RedisHandler {
	return &RedisHandler{}
}

// ResourceType returns the registry tag.
func (h *RedisHandler) ResourceType() string {
	return "redis"
}

// GetID tries the cluster id, then the replication group id, then the
// generic id field.
func (h *RedisHandler) GetID(rec snapshot.Record) string {
	return rec.StrAny("cacheClusterId", "replicationGroupId", "id")
}

// FindInInfra locates a cache cluster by identifier.
func (h *RedisHandler) FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record {
	return findByID(snap.Redis, id, h.GetID)
}

// FindAll enumerates every cache cluster in the snapshot.
func (h *RedisHandler) FindAll(snap *snapshot.Snapshot) []snapshot.Record {
	return snap.Redis.Records()
}
