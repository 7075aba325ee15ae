// Package snapshot models the infrastructure snapshot tree produced by the
// data-collection layer. Leaf shapes vary by resource family and by producer
// version, so family leaves decode through the Collection union.
package snapshot

import (
	"encoding/json"
	"fmt"
)

// Snapshot is one point-in-time capture of the monitored infrastructure.
// The resolver treats it as read-only.
type Snapshot struct {
	CloudFront Collection `json:"cloudfront"`
	ALB        Collection `json:"alb"`
	RDS        Collection `json:"rds"`
	Redis      Collection `json:"redis"`
	S3Buckets  Collection `json:"s3Buckets"`
	Network    Network    `json:"network"`
}

// Network holds the networking subtree. Subnets may arrive as a flat list
// under Subnets, grouped by availability zone under SubnetsByAz, or both,
// depending on which collection path produced the snapshot.
type Network struct {
	Subnets     Collection          `json:"subnets"`
	SubnetsByAz map[string][]Record `json:"subnetsByAz"`
	RouteTables Collection          `json:"routeTables"`
	Endpoints   Collection          `json:"endpoints"`
	VPC         Collection          `json:"vpc"`
	IGW         Collection          `json:"igw"`
	Peerings    Collection          `json:"peerings"`
	VPNs        Collection          `json:"vpns"`
	TGW         Collection          `json:"tgw"`
}

// Decode parses a raw snapshot document.
func Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// Collection is a snapshot leaf that may arrive as a single record object,
// an ordered sequence of records, or be absent entirely.
type Collection struct {
	records []Record
	present bool
	single  bool
}

// Single builds a single-record collection. Used by fixtures and tests.
func Single(rec Record) Collection {
	return Collection{records: []Record{rec}, present: true, single: true}
}

// Many builds a multi-record collection. Used by fixtures and tests.
func Many(recs ...Record) Collection {
	return Collection{records: recs, present: true}
}

// UnmarshalJSON accepts either a JSON object or a JSON array of objects.
// A JSON null leaves the collection absent.
func (c *Collection) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var many []Record
	if err := json.Unmarshal(data, &many); err == nil {
		c.records = many
		c.present = true
		return nil
	}

	var one Record
	if err := json.Unmarshal(data, &one); err != nil {
		return fmt.Errorf("collection is neither object nor array: %w", err)
	}
	c.records = []Record{one}
	c.present = true
	c.single = true
	return nil
}

// Present reports whether the leaf appeared in the snapshot at all.
func (c Collection) Present() bool {
	return c.present
}

// One returns the record when the leaf arrived as a single object.
func (c Collection) One() (Record, bool) {
	if c.single && len(c.records) == 1 {
		return c.records[0], true
	}
	return nil, false
}

// Records returns the records as an ordered sequence, regardless of the
// shape the leaf arrived in. Absent leaves yield nil.
func (c Collection) Records() []Record {
	return c.records
}

// Len returns the record count.
func (c Collection) Len() int {
	return len(c.records)
}
