package aws

import (
	"strings"

	"opsboard/pkg/snapshot"
	"opsboard/resolve"
)

const albARNMarker = "loadbalancer/app/"

// ALBHandler serves the alb family. Load balancers are identified by the
// short name embedded in their ARN.
type ALBHandler struct {
	resolve.IdentityParser
}

// NewALBHandler creates a new application load balancer handler.
func NewALBHandler() *ALBHandler {
	return &ALBHandler{}
}

// ResourceType returns the registry tag.
func (h *ALBHandler) ResourceType() string {
	return "alb"
}

// shortNameFromARN extracts the load balancer name from its ARN: the
// segment between "loadbalancer/app/" and the next "/". Returns "" when
// the ARN does not follow that layout.
func shortNameFromARN(arn string) string {
	idx := strings.Index(arn, albARNMarker)
	if idx < 0 {
		return ""
	}
	rest := arn[idx+len(albARNMarker):]
	end := strings.Index(rest, "/")
	if end < 0 {
		return ""
	}
	return rest[:end]
}

// GetID derives the short name from the ARN, falling back to the full ARN
// when extraction fails, and to the name field when there is no ARN at all.
func (h *ALBHandler) GetID(rec snapshot.Record) string {
	arn := rec.StrAny("arn", "loadBalancerArn")
	if arn != "" {
		if short := shortNameFromARN(arn); short != "" {
			return short
		}
		return arn
	}
	return rec.Str("name")
}

// FindInInfra locates a load balancer. Callers may pass either the short
// name or the raw ARN, so each candidate is matched against both forms.
func (h *ALBHandler) FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record {
	if id == "" {
		return nil
	}
	if rec, ok := snap.ALB.One(); ok {
		if h.matches(rec, id) {
			return rec
		}
		return nil
	}
	for _, rec := range snap.ALB.Records() {
		if h.matches(rec, id) {
			return rec
		}
	}
	return nil
}

func (h *ALBHandler) matches(rec snapshot.Record, id string) bool {
	arn := rec.StrAny("arn", "loadBalancerArn")
	if arn != "" {
		if shortNameFromARN(arn) == id || arn == id {
			return true
		}
	}
	return rec.Str("name") == id
}

// FindAll enumerates every load balancer in the snapshot.
func (h *ALBHandler) FindAll(snap *snapshot.Snapshot) []snapshot.Record {
	return snap.ALB.Records()
}
