package plugin

import (
	"context"
	"fmt"
	"sort"
)

// Composed holds the merged contributions of every plugin, ready for the
// shell. Ordering is stable: explicit order/priority first (lower sorts
// first), registration order breaks ties.
type Composed struct {
	Pages    []PageDescriptor
	Widgets  []WidgetDescriptor
	NavItems []NavItem
}

// Compose merges plugin descriptors additively. Component factories are
// stored as-is and never invoked here.
func Compose(plugins ...Descriptor) Composed {
	var c Composed
	for _, p := range plugins {
		c.Pages = append(c.Pages, p.Pages...)
		c.Widgets = append(c.Widgets, p.Widgets...)
		c.NavItems = append(c.NavItems, p.NavItems...)
	}

	sort.SliceStable(c.Pages, func(i, j int) bool {
		return c.Pages[i].NavOrder < c.Pages[j].NavOrder
	})
	sort.SliceStable(c.Widgets, func(i, j int) bool {
		return c.Widgets[i].Priority < c.Widgets[j].Priority
	})
	sort.SliceStable(c.NavItems, func(i, j int) bool {
		return c.NavItems[i].Order < c.NavItems[j].Order
	})
	return c
}

// WidgetsFor filters widgets eligible for a placement position, preserving
// the composed order.
func (c Composed) WidgetsFor(position string) []WidgetDescriptor {
	var out []WidgetDescriptor
	for _, w := range c.Widgets {
		for _, p := range w.Positions {
			if p == position {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

// VisiblePages returns the pages that appear in navigation.
func (c Composed) VisiblePages() []PageDescriptor {
	var out []PageDescriptor
	for _, p := range c.Pages {
		if !p.Hidden {
			out = append(out, p)
		}
	}
	return out
}

// Initialize runs every plugin's startup hook once with the merged
// configuration. The first failure aborts startup.
func Initialize(ctx context.Context, plugins []Descriptor, cfg map[string]string) error {
	for _, p := range plugins {
		if p.Initialize == nil {
			continue
		}
		if err := p.Initialize(ctx, cfg); err != nil {
			return fmt.Errorf("plugin %s failed to initialize: %w", p.ID, err)
		}
	}
	return nil
}
