package features

import (
	"opsboard/plugin"
	"opsboard/resolve"
)

// Compute contributes the ECS service and task views. Task detail pages are
// hidden from navigation because they are reached from the service view.
func Compute(res *resolve.Resolver) plugin.Descriptor {
	return plugin.Descriptor{
		ID: "compute",
		Pages: []plugin.PageDescriptor{
			{
				Path:      "/tasks",
				Title:     "ECS Tasks",
				NavOrder:  10,
				Component: listFactory(res, "task"),
			},
			{
				Path:      "/tasks/:id",
				Title:     "Task Detail",
				Hidden:    true,
				Component: listFactory(res, "task"),
			},
		},
		Widgets: []plugin.WidgetDescriptor{
			{
				ID:        "compute-summary",
				Positions: []string{"overview", "sidebar"},
				Priority:  10,
				Component: countFactory(res, "task"),
			},
		},
		NavItems: []plugin.NavItem{
			{Label: "Compute", Path: "/tasks", Order: 10},
		},
	}
}
