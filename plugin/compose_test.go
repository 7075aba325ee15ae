package plugin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/pkg/snapshot"
)

type probeComponent struct{ built *int }

func (c *probeComponent) Render(ctx context.Context, snap *snapshot.Snapshot) (interface{}, error) {
	return "ok", nil
}

func TestComposeOrdersNavItemsByExplicitOrder(t *testing.T) {
	a := Descriptor{ID: "a", NavItems: []NavItem{{Label: "Second", Order: 20}}}
	b := Descriptor{ID: "b", NavItems: []NavItem{{Label: "First", Order: 10}}}

	c := Compose(a, b)
	require.Len(t, c.NavItems, 2)
	assert.Equal(t, "First", c.NavItems[0].Label)
	assert.Equal(t, "Second", c.NavItems[1].Label)
}

func TestComposeTiesPreserveRegistrationOrder(t *testing.T) {
	a := Descriptor{ID: "a", Widgets: []WidgetDescriptor{{ID: "w-a", Priority: 10}}}
	b := Descriptor{ID: "b", Widgets: []WidgetDescriptor{{ID: "w-b", Priority: 10}}}

	c := Compose(a, b)
	require.Len(t, c.Widgets, 2)
	assert.Equal(t, "w-a", c.Widgets[0].ID)
	assert.Equal(t, "w-b", c.Widgets[1].ID)
}

func TestComposeNeverInvokesFactories(t *testing.T) {
	built := 0
	factory := func() Component {
		built++
		return &probeComponent{built: &built}
	}

	c := Compose(Descriptor{
		ID:      "a",
		Pages:   []PageDescriptor{{Path: "/p", Component: factory}},
		Widgets: []WidgetDescriptor{{ID: "w", Positions: []string{"overview"}, Component: factory}},
	})

	_ = c.WidgetsFor("overview")
	_ = c.VisiblePages()
	assert.Zero(t, built)
}

func TestWidgetsForFiltersByPosition(t *testing.T) {
	c := Compose(Descriptor{
		ID: "a",
		Widgets: []WidgetDescriptor{
			{ID: "w1", Positions: []string{"overview", "sidebar"}, Priority: 2},
			{ID: "w2", Positions: []string{"sidebar"}, Priority: 1},
			{ID: "w3", Positions: []string{"footer"}, Priority: 0},
		},
	})

	sidebar := c.WidgetsFor("sidebar")
	require.Len(t, sidebar, 2)
	assert.Equal(t, "w2", sidebar[0].ID)
	assert.Equal(t, "w1", sidebar[1].ID)

	assert.Empty(t, c.WidgetsFor("header"))
}

func TestVisiblePagesDropsHiddenOnes(t *testing.T) {
	c := Compose(Descriptor{
		ID: "a",
		Pages: []PageDescriptor{
			{Path: "/list", NavOrder: 1},
			{Path: "/detail/:id", Hidden: true},
		},
	})

	pages := c.VisiblePages()
	require.Len(t, pages, 1)
	assert.Equal(t, "/list", pages[0].Path)
}

func TestInitializeRunsHooksAndStopsOnFailure(t *testing.T) {
	var ran []string
	hook := func(id string, err error) func(context.Context, map[string]string) error {
		return func(ctx context.Context, cfg map[string]string) error {
			ran = append(ran, id+"="+cfg["region"])
			return err
		}
	}

	plugins := []Descriptor{
		{ID: "a", Initialize: hook("a", nil)},
		{ID: "b"},
		{ID: "c", Initialize: hook("c", errors.New("boom"))},
		{ID: "d", Initialize: hook("d", nil)},
	}

	err := Initialize(context.Background(), plugins, map[string]string{"region": "us-east-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugin c")
	assert.Equal(t, []string{"a=us-east-1", "c=us-east-1"}, ran)
}
