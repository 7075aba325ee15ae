package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/pkg/snapshot"
)

type singleRecordHandler struct {
	stubHandler
	rec snapshot.Record
}

func (h *singleRecordHandler) FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record {
	if h.rec.Str("id") == id {
		return h.rec
	}
	return nil
}

func (h *singleRecordHandler) FindAll(snap *snapshot.Snapshot) []snapshot.Record {
	return []snapshot.Record{h.rec}
}

func TestResolveDistinguishesNoHandlerFromNotFound(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&singleRecordHandler{
		stubHandler: stubHandler{tag: "vpc"},
		rec:         snapshot.Record{"id": "vpc-1"},
	})
	res := NewResolver(reg)
	snap := &snapshot.Snapshot{}

	// Unregistered type: ErrNoHandler, never a panic.
	rec, err := res.Resolve("bogus", "x", snap)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrNoHandler)

	// Registered type, missing record: nil record, nil error.
	rec, err = res.Resolve("vpc", "vpc-404", snap)
	assert.NoError(t, err)
	assert.Nil(t, rec)

	// Found.
	rec, err = res.Resolve("vpc", "vpc-1", snap)
	require.NoError(t, err)
	assert.Equal(t, "vpc-1", rec.Str("id"))
}

func TestListAllUnregisteredType(t *testing.T) {
	res := NewResolver(NewRegistry())
	recs, err := res.ListAll("bogus", &snapshot.Snapshot{})
	assert.Nil(t, recs)
	assert.ErrorIs(t, err, ErrNoHandler)
}

func TestParseIDDefaultsToIdentity(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubHandler{tag: "vpc"})
	res := NewResolver(reg)

	parsed, err := res.ParseID("vpc", "vpc-1")
	require.NoError(t, err)
	assert.Equal(t, ParsedID{ID: "vpc-1"}, parsed)

	_, err = res.ParseID("bogus", "x")
	assert.ErrorIs(t, err, ErrNoHandler)
}
