package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/pkg/snapshot"
)

func byAzSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Network: snapshot.Network{
			VPC: snapshot.Single(snapshot.Record{"vpcId": "vpc-1"}),
			SubnetsByAz: map[string][]snapshot.Record{
				"us-east-1b": {
					{"subnetId": "subnet-2", "subnetType": "public"},
				},
				"us-east-1a": {
					{"subnetId": "subnet-1", "type": "private"},
				},
			},
		},
	}
}

func TestSubnetFindInInfraFallsBackToByAz(t *testing.T) {
	h := NewSubnetHandler()
	rec := h.FindInInfra("subnet-1", byAzSnapshot())
	require.NotNil(t, rec)

	// The synthesized record carries the az, the canonical type field name,
	// and the derived parent VPC id.
	assert.Equal(t, "us-east-1a", rec.Str("az"))
	assert.Equal(t, "private", rec.Str("subnetType"))
	assert.Equal(t, "vpc-1", rec.Str("vpcId"))
}

func TestSubnetFindInInfraPrefersFlatList(t *testing.T) {
	snap := byAzSnapshot()
	snap.Network.Subnets = snapshot.Many(
		snapshot.Record{"subnetId": "subnet-1", "az": "us-east-1a", "subnetType": "private", "cidr": "10.0.0.0/24"},
	)

	h := NewSubnetHandler()
	rec := h.FindInInfra("subnet-1", snap)
	require.NotNil(t, rec)
	assert.Equal(t, "10.0.0.0/24", rec.Str("cidr"))
}

func TestSubnetFindAllFlattensByAzInZoneOrder(t *testing.T) {
	h := NewSubnetHandler()
	recs := h.FindAll(byAzSnapshot())
	require.Len(t, recs, 2)

	assert.Equal(t, "subnet-1", recs[0].Str("subnetId"))
	assert.Equal(t, "us-east-1a", recs[0].Str("az"))
	assert.Equal(t, "private", recs[0].Str("subnetType"))

	assert.Equal(t, "subnet-2", recs[1].Str("subnetId"))
	assert.Equal(t, "us-east-1b", recs[1].Str("az"))
	assert.Equal(t, "public", recs[1].Str("subnetType"))
}

func TestSubnetFindAllUsesFlatListWhenByAzAbsent(t *testing.T) {
	snap := &snapshot.Snapshot{
		Network: snapshot.Network{
			Subnets: snapshot.Many(snapshot.Record{"subnetId": "subnet-9"}),
		},
	}
	recs := NewSubnetHandler().FindAll(snap)
	require.Len(t, recs, 1)
	assert.Equal(t, "subnet-9", recs[0].Str("subnetId"))
}

func TestNormalizeSubnetDoesNotMutateSource(t *testing.T) {
	src := snapshot.Record{"subnetId": "subnet-1", "type": "private"}
	out := normalizeSubnet(src, "us-east-1a", "vpc-1")

	assert.Equal(t, "us-east-1a", out.Str("az"))
	assert.Equal(t, "private", out.Str("subnetType"))
	assert.Equal(t, "vpc-1", out.Str("vpcId"))

	// The snapshot record itself stays untouched.
	assert.Equal(t, "", src.Str("az"))
	assert.Equal(t, "", src.Str("subnetType"))
}
