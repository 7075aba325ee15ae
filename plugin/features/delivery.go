package features

import (
	"opsboard/plugin"
	"opsboard/resolve"
)

// Delivery contributes the edge views: CDN distributions and load balancers.
func Delivery(res *resolve.Resolver) plugin.Descriptor {
	return plugin.Descriptor{
		ID: "delivery",
		Pages: []plugin.PageDescriptor{
			{
				Path:      "/delivery/cdn",
				Title:     "CDN Distributions",
				NavOrder:  20,
				Component: listFactory(res, "cdn"),
			},
			{
				Path:      "/delivery/alb",
				Title:     "Load Balancers",
				NavOrder:  21,
				Component: listFactory(res, "alb"),
			},
		},
		Widgets: []plugin.WidgetDescriptor{
			{
				ID:        "delivery-summary",
				Positions: []string{"overview"},
				Priority:  20,
				Component: countFactory(res, "cdn", "alb"),
			},
		},
		NavItems: []plugin.NavItem{
			{
				Label: "Delivery",
				Path:  "/delivery",
				Order: 20,
				Children: []plugin.NavItem{
					{Label: "CDN", Path: "/delivery/cdn", Order: 1},
					{Label: "Load Balancers", Path: "/delivery/alb", Order: 2},
				},
			},
		},
	}
}
