package aws

import (
	"opsboard/pkg/snapshot"
	"opsboard/resolve"
)

// CloudFrontHandler serves the cdn family. The cloudfront leaf appears as a
// single distribution or a list depending on the account layout.
type CloudFrontHandler struct {
	resolve.IdentityParser
}

// NewCloudFrontHandler creates a new CDN distribution handler.
func NewCloudFrontHandler() *CloudFrontHandler {
	return &CloudFrontHandler{}
}

// ResourceType returns the registry tag.
func (h *CloudFrontHandler) ResourceType() string {
	return "cdn"
}

// GetID uses the distribution id, falling back to the domain name for
// producers that omit it.
func (h *CloudFrontHandler) GetID(rec snapshot.Record) string {
	return rec.StrAny("id", "domainName")
}

// FindInInfra locates a distribution by identifier.
func (h *CloudFrontHandler) FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record {
	return findByID(snap.CloudFront, id, h.GetID)
}

// FindAll enumerates every distribution in the snapshot.
func (h *CloudFrontHandler) FindAll(snap *snapshot.Snapshot) []snapshot.Record {
	return snap.CloudFront.Records()
}
