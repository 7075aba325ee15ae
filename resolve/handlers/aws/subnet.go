package aws

import (
	"sort"

	"opsboard/pkg/snapshot"
	"opsboard/resolve"
)

// SubnetHandler serves the subnet family. Subnet data is split across two
// collection paths: a flat list under network.subnets and a richer by-az
// grouping under network.subnetsByAz. The flat list is the primary source;
// the by-az grouping is the fallback for lookups and the preferred source
// for listings because it carries the subnet type.
type SubnetHandler struct {
	resolve.IdentityParser
}

// NewSubnetHandler creates a new subnet handler.
func NewSubnetHandler() *SubnetHandler {
	return &SubnetHandler{}
}

// ResourceType returns the registry tag.
func (h *SubnetHandler) ResourceType() string {
	return "subnet"
}

// GetID uses the subnet id.
func (h *SubnetHandler) GetID(rec snapshot.Record) string {
	return rec.StrAny("subnetId", "id")
}

// FindInInfra tries the flat subnet list first, then falls back to the
// by-az grouping, synthesizing a normalized record on that path.
func (h *SubnetHandler) FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record {
	if rec := findByID(snap.Network.Subnets, id, h.GetID); rec != nil {
		return rec
	}

	vpcID := primaryVPCID(snap)
	for _, az := range sortedZones(snap.Network.SubnetsByAz) {
		for _, rec := range snap.Network.SubnetsByAz[az] {
			if h.GetID(rec) == id {
				return normalizeSubnet(rec, az, vpcID)
			}
		}
	}
	return nil
}

// FindAll prefers the by-az grouping when present, flattened in zone order
// and annotated with az and normalized type; otherwise the flat list.
func (h *SubnetHandler) FindAll(snap *snapshot.Snapshot) []snapshot.Record {
	if len(snap.Network.SubnetsByAz) == 0 {
		return snap.Network.Subnets.Records()
	}

	vpcID := primaryVPCID(snap)
	var out []snapshot.Record
	for _, az := range sortedZones(snap.Network.SubnetsByAz) {
		for _, rec := range snap.Network.SubnetsByAz[az] {
			out = append(out, normalizeSubnet(rec, az, vpcID))
		}
	}
	return out
}

// normalizeSubnet merges a by-az subnet record into the canonical shape the
// flat list uses: the az key, a canonical subnetType field taken from
// whichever of subnetType or type the producer populated, and the parent
// VPC id, which the nested records do not carry themselves.
func normalizeSubnet(rec snapshot.Record, az, vpcID string) snapshot.Record {
	out := rec.Clone()
	out["az"] = az
	if t := rec.StrAny("subnetType", "type"); t != "" {
		out["subnetType"] = t
	}
	if vpcID != "" && out.Str("vpcId") == "" {
		out["vpcId"] = vpcID
	}
	return out
}

// primaryVPCID derives the parent VPC identifier from the vpc leaf.
func primaryVPCID(snap *snapshot.Snapshot) string {
	recs := snap.Network.VPC.Records()
	if len(recs) == 0 {
		return ""
	}
	return recs[0].StrAny("vpcId", "id")
}

func sortedZones(byAz map[string][]snapshot.Record) []string {
	zones := make([]string, 0, len(byAz))
	for az := range byAz {
		zones = append(zones, az)
	}
	sort.Strings(zones)
	return zones
}
