package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCollectionShapes(t *testing.T) {
	doc := []byte(`{
		"cloudfront": {"id": "E123", "domainName": "d111.cloudfront.net"},
		"alb": [
			{"arn": "arn:aws:elasticloadbalancing:us-east-1:1:loadbalancer/app/web/abc"},
			{"arn": "arn:aws:elasticloadbalancing:us-east-1:1:loadbalancer/app/api/def"}
		],
		"rds": null,
		"s3Buckets": [{"name": "logs"}, {"name": "assets"}],
		"network": {
			"vpc": {"vpcId": "vpc-1"},
			"subnetsByAz": {
				"us-east-1a": [{"subnetId": "subnet-1", "type": "private"}]
			}
		}
	}`)

	snap, err := Decode(doc)
	require.NoError(t, err)

	// Single object leaf
	rec, ok := snap.CloudFront.One()
	require.True(t, ok)
	assert.Equal(t, "E123", rec.Str("id"))
	assert.Len(t, snap.CloudFront.Records(), 1)

	// Array leaf
	_, ok = snap.ALB.One()
	assert.False(t, ok)
	assert.Equal(t, 2, snap.ALB.Len())

	// Null leaf stays absent
	assert.False(t, snap.RDS.Present())
	assert.Nil(t, snap.RDS.Records())

	// Absent key stays absent
	assert.False(t, snap.Redis.Present())

	// Nested network shapes
	require.Contains(t, snap.Network.SubnetsByAz, "us-east-1a")
	assert.Equal(t, "subnet-1", snap.Network.SubnetsByAz["us-east-1a"][0].Str("subnetId"))
	vpc, ok := snap.Network.VPC.One()
	require.True(t, ok)
	assert.Equal(t, "vpc-1", vpc.Str("vpcId"))
}

func TestDecodeRejectsMalformedLeaf(t *testing.T) {
	_, err := Decode([]byte(`{"alb": 42}`))
	assert.Error(t, err)
}

func TestRecordExtractors(t *testing.T) {
	rec := Record{
		"name":  "web",
		"count": float64(3),
		"flag":  true,
		"origin": map[string]interface{}{
			"items": []interface{}{
				map[string]interface{}{"domain": "example.org"},
			},
		},
	}

	assert.Equal(t, "web", rec.Str("name"))
	assert.Equal(t, "", rec.Str("missing"))
	assert.Equal(t, "web", rec.StrAny("missing", "name"))
	assert.Equal(t, 3, rec.Int("count", 0))
	assert.Equal(t, 7, rec.Int("missing", 7))
	assert.True(t, rec.Bool("flag", false))
	assert.Equal(t, "example.org", rec.Nested("origin.items.0.domain"))
	assert.Nil(t, rec.Nested("origin.items.5.domain"))
}

func TestRecordCloneDoesNotAliasOriginal(t *testing.T) {
	rec := Record{"a": "1"}
	clone := rec.Clone()
	clone["a"] = "2"
	clone["b"] = "3"
	assert.Equal(t, "1", rec.Str("a"))
	assert.Equal(t, "", rec.Str("b"))
}
