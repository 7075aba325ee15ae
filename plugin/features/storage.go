package features

import (
	"opsboard/plugin"
	"opsboard/resolve"
)

// Storage contributes the database, cache, and bucket views.
func Storage(res *resolve.Resolver) plugin.Descriptor {
	return plugin.Descriptor{
		ID: "storage",
		Pages: []plugin.PageDescriptor{
			{
				Path:      "/storage/rds",
				Title:     "Databases",
				NavOrder:  40,
				Component: listFactory(res, "rds"),
			},
			{
				Path:      "/storage/redis",
				Title:     "Caches",
				NavOrder:  41,
				Component: listFactory(res, "redis"),
			},
			{
				Path:      "/storage/s3",
				Title:     "Buckets",
				NavOrder:  42,
				Component: listFactory(res, "s3"),
			},
		},
		Widgets: []plugin.WidgetDescriptor{
			{
				ID:        "storage-summary",
				Positions: []string{"overview", "sidebar"},
				Priority:  40,
				Component: countFactory(res, "rds", "redis", "s3"),
			},
		},
		NavItems: []plugin.NavItem{
			{
				Label: "Storage",
				Path:  "/storage",
				Order: 40,
				Children: []plugin.NavItem{
					{Label: "Databases", Path: "/storage/rds", Order: 1},
					{Label: "Caches", Path: "/storage/redis", Order: 2},
					{Label: "Buckets", Path: "/storage/s3", Order: 3},
				},
			},
		},
	}
}
