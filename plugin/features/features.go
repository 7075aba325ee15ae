// Package features holds the built-in dashboard plugins: one feature module
// per resource area, each contributing its pages, widgets, and navigation
// items through the plugin composition layer.
package features

import (
	"context"

	"opsboard/pkg/snapshot"
	"opsboard/plugin"
	"opsboard/resolve"
)

// All returns the built-in plugins in their registration order.
func All(res *resolve.Resolver) []plugin.Descriptor {
	return []plugin.Descriptor{
		Compute(res),
		Network(res),
		Storage(res),
		Delivery(res),
	}
}

// listComponent renders the records of one resource family as a listing
// view model.
type listComponent struct {
	res          *resolve.Resolver
	resourceType string
}

func (c *listComponent) Render(ctx context.Context, snap *snapshot.Snapshot) (interface{}, error) {
	recs, err := c.res.ListAll(c.resourceType, snap)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"resourceType": c.resourceType,
		"count":        len(recs),
		"items":        recs,
	}, nil
}

// countComponent renders only record counts across several families, for
// overview widgets.
type countComponent struct {
	res   *resolve.Resolver
	types []string
}

func (c *countComponent) Render(ctx context.Context, snap *snapshot.Snapshot) (interface{}, error) {
	counts := make(map[string]int, len(c.types))
	for _, t := range c.types {
		recs, err := c.res.ListAll(t, snap)
		if err != nil {
			return nil, err
		}
		counts[t] = len(recs)
	}
	return counts, nil
}

func listFactory(res *resolve.Resolver, resourceType string) plugin.ComponentFactory {
	return func() plugin.Component {
		return &listComponent{res: res, resourceType: resourceType}
	}
}

func countFactory(res *resolve.Resolver, types ...string) plugin.ComponentFactory {
	return func() plugin.Component {
		return &countComponent{res: res, types: types}
	}
}
