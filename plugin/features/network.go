package features

import (
	"opsboard/plugin"
	"opsboard/resolve"
)

// Network contributes the networking views: subnets, route tables,
// endpoints, VPCs, gateways, peerings, VPNs, and transit gateways.
func Network(res *resolve.Resolver) plugin.Descriptor {
	return plugin.Descriptor{
		ID: "network",
		Pages: []plugin.PageDescriptor{
			{
				Path:      "/network/subnets",
				Title:     "Subnets",
				NavOrder:  30,
				Component: listFactory(res, "subnet"),
			},
			{
				Path:      "/network/route-tables",
				Title:     "Route Tables",
				NavOrder:  31,
				Component: listFactory(res, "routeTable"),
			},
			{
				Path:      "/network/endpoints",
				Title:     "VPC Endpoints",
				NavOrder:  32,
				Component: listFactory(res, "endpoint"),
			},
			{
				Path:      "/network/vpcs",
				Title:     "VPCs",
				NavOrder:  33,
				Component: listFactory(res, "vpc"),
			},
		},
		Widgets: []plugin.WidgetDescriptor{
			{
				ID:        "network-summary",
				Positions: []string{"overview"},
				Priority:  30,
				Component: countFactory(res, "subnet", "routeTable", "endpoint", "vpc", "igw", "peering", "vpn", "tgw"),
			},
		},
		NavItems: []plugin.NavItem{
			{
				Label: "Network",
				Path:  "/network",
				Order: 30,
				Children: []plugin.NavItem{
					{Label: "Subnets", Path: "/network/subnets", Order: 1},
					{Label: "Route Tables", Path: "/network/route-tables", Order: 2},
					{Label: "Endpoints", Path: "/network/endpoints", Order: 3},
					{Label: "VPCs", Path: "/network/vpcs", Order: 4},
				},
			},
		},
	}
}
