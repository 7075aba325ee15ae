// Package plugin composes pages, widgets, and navigation items contributed
// by independently authored feature modules into the flat structures the
// dashboard shell consumes.
package plugin

import (
	"context"

	"opsboard/pkg/snapshot"
)

// Component produces the view model for a page or widget from the current
// snapshot.
type Component interface {
	Render(ctx context.Context, snap *snapshot.Snapshot) (interface{}, error)
}

// ComponentFactory defers component construction. Composition only stores
// the factory; the render layer calls it on first use.
type ComponentFactory func() Component

// PageDescriptor declares one navigable page.
type PageDescriptor struct {
	Path      string           `json:"path"`
	Title     string           `json:"title"`
	NavOrder  int              `json:"navOrder"`
	Hidden    bool             `json:"hidden"`
	Component ComponentFactory `json:"-"`
}

// WidgetDescriptor declares one widget and the placement positions it is
// eligible for. Position filtering happens at render time, never here.
type WidgetDescriptor struct {
	ID        string           `json:"id"`
	Positions []string         `json:"positions"`
	Priority  int              `json:"priority"`
	Component ComponentFactory `json:"-"`
}

// NavItem declares one navigation entry, optionally nested.
type NavItem struct {
	Label    string    `json:"label"`
	Path     string    `json:"path"`
	Order    int       `json:"order"`
	Children []NavItem `json:"children,omitempty"`
}

// Descriptor is a feature module's contribution. It is consumed additively
// and never mutated after registration.
type Descriptor struct {
	ID       string
	Pages    []PageDescriptor
	Widgets  []WidgetDescriptor
	NavItems []NavItem

	// Initialize is an optional startup hook, invoked once with the merged
	// application configuration before the shell starts serving.
	Initialize func(ctx context.Context, cfg map[string]string) error
}
