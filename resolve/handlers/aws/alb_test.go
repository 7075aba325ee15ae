package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/pkg/snapshot"
)

const webALBArn = "arn:aws:elasticloadbalancing:us-east-1:123456789012:loadbalancer/app/my-alb/abc123"

func TestALBGetIDExtractsShortName(t *testing.T) {
	h := NewALBHandler()

	assert.Equal(t, "my-alb", h.GetID(snapshot.Record{"arn": webALBArn}))

	// Malformed ARN falls back to the full ARN.
	assert.Equal(t, "arn:aws:elasticloadbalancing:net/my-nlb",
		h.GetID(snapshot.Record{"arn": "arn:aws:elasticloadbalancing:net/my-nlb"}))

	// No ARN at all falls back to the name field.
	assert.Equal(t, "my-alb", h.GetID(snapshot.Record{"name": "my-alb"}))

	assert.Equal(t, "", h.GetID(snapshot.Record{}))
}

func TestALBFindInInfraMatchesEitherForm(t *testing.T) {
	h := NewALBHandler()
	snap := &snapshot.Snapshot{
		ALB: snapshot.Many(
			snapshot.Record{"arn": webALBArn},
			snapshot.Record{"name": "other-alb"},
		),
	}

	// Short name and raw ARN both resolve to the same record.
	byShort := h.FindInInfra("my-alb", snap)
	require.NotNil(t, byShort)
	byArn := h.FindInInfra(webALBArn, snap)
	require.NotNil(t, byArn)
	assert.Equal(t, byShort.Str("arn"), byArn.Str("arn"))

	// Name-only records match by name.
	assert.NotNil(t, h.FindInInfra("other-alb", snap))

	assert.Nil(t, h.FindInInfra("absent", snap))
	assert.Nil(t, h.FindInInfra("", snap))
}

func TestALBSingularLeaf(t *testing.T) {
	h := NewALBHandler()
	snap := &snapshot.Snapshot{
		ALB: snapshot.Single(snapshot.Record{"arn": webALBArn}),
	}

	assert.NotNil(t, h.FindInInfra("my-alb", snap))
	assert.Nil(t, h.FindInInfra("nope", snap))
	assert.Len(t, h.FindAll(snap), 1)
}
