package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/pkg/snapshot"
)

type stubHandler struct {
	IdentityParser
	tag   string
	label string
}

func (h *stubHandler) ResourceType() string { return h.tag }

func (h *stubHandler) GetID(rec snapshot.Record) string { return rec.Str("id") }

func (h *stubHandler) FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record {
	return nil
}

func (h *stubHandler) FindAll(snap *snapshot.Snapshot) []snapshot.Record {
	return nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubHandler{tag: "cdn"})
	reg.Register(&stubHandler{tag: "alb"})

	h, ok := reg.Get("cdn")
	require.True(t, ok)
	assert.Equal(t, "cdn", h.ResourceType())

	_, ok = reg.Get("bogus")
	assert.False(t, ok)
}

func TestRegistryLastWriteWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubHandler{tag: "cdn", label: "first"})
	reg.Register(&stubHandler{tag: "cdn", label: "override"})

	h, ok := reg.Get("cdn")
	require.True(t, ok)
	assert.Equal(t, "override", h.(*stubHandler).label)

	// The tag is not duplicated in the type listing.
	assert.Equal(t, []string{"cdn"}, reg.Types())
}

func TestRegistryTypesPreservesRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	for _, tag := range []string{"vpc", "alb", "cdn"} {
		reg.Register(&stubHandler{tag: tag})
	}
	assert.Equal(t, []string{"vpc", "alb", "cdn"}, reg.Types())
}
