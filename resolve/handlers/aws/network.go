package aws

import (
	"opsboard/pkg/snapshot"
	"opsboard/resolve"
)

// The remaining networking families share one shape: a stable AWS id field,
// a leaf in the network subtree, no composite encoding. networkHandler
// carries the common behavior; each family supplies its tag, id fields, and
// leaf accessor.
type networkHandler struct {
	resolve.IdentityParser
	tag      string
	idFields []string
	leaf     func(*snapshot.Snapshot) snapshot.Collection
}

// ResourceType returns the registry tag.
func (h *networkHandler) ResourceType() string {
	return h.tag
}

// GetID returns the first present id field.
func (h *networkHandler) GetID(rec snapshot.Record) string {
	return rec.StrAny(h.idFields...)
}

// FindInInfra locates a record in the family's leaf.
func (h *networkHandler) FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record {
	return findByID(h.leaf(snap), id, h.GetID)
}

// FindAll enumerates the family's leaf.
func (h *networkHandler) FindAll(snap *snapshot.Snapshot) []snapshot.Record {
	return h.leaf(snap).Records()
}

// NewRouteTableHandler creates the route table handler.
func NewRouteTableHandler() resolve.ResourceHandler {
	return &networkHandler{
		tag:      "routeTable",
		idFields: []string{"routeTableId", "id"},
		leaf:     func(s *snapshot.Snapshot) snapshot.Collection { return s.Network.RouteTables },
	}
}

// NewEndpointHandler creates the VPC endpoint handler.
func NewEndpointHandler() resolve.ResourceHandler {
	return &networkHandler{
		tag:      "endpoint",
		idFields: []string{"vpcEndpointId", "id"},
		leaf:     func(s *snapshot.Snapshot) snapshot.Collection { return s.Network.Endpoints },
	}
}

// NewVPCHandler creates the VPC handler. The vpc leaf may be a single
// record or a list.
func NewVPCHandler() resolve.ResourceHandler {
	return &networkHandler{
		tag:      "vpc",
		idFields: []string{"vpcId", "id"},
		leaf:     func(s *snapshot.Snapshot) snapshot.Collection { return s.Network.VPC },
	}
}

// NewIGWHandler creates the internet gateway handler. The igw leaf may be a
// single record or a list.
func NewIGWHandler() resolve.ResourceHandler {
	return &networkHandler{
		tag:      "igw",
		idFields: []string{"internetGatewayId", "id"},
		leaf:     func(s *snapshot.Snapshot) snapshot.Collection { return s.Network.IGW },
	}
}

// NewPeeringHandler creates the VPC peering connection handler.
func NewPeeringHandler() resolve.ResourceHandler {
	return &networkHandler{
		tag:      "peering",
		idFields: []string{"vpcPeeringConnectionId", "id"},
		leaf:     func(s *snapshot.Snapshot) snapshot.Collection { return s.Network.Peerings },
	}
}

// NewVPNHandler creates the VPN connection handler.
func NewVPNHandler() resolve.ResourceHandler {
	return &networkHandler{
		tag:      "vpn",
		idFields: []string{"vpnConnectionId", "id"},
		leaf:     func(s *snapshot.Snapshot) snapshot.Collection { return s.Network.VPNs },
	}
}

// NewTGWHandler creates the transit gateway handler.
func NewTGWHandler() resolve.ResourceHandler {
	return &networkHandler{
		tag:      "tgw",
		idFields: []string{"transitGatewayId", "id"},
		leaf:     func(s *snapshot.Snapshot) snapshot.Collection { return s.Network.TGW },
	}
}
