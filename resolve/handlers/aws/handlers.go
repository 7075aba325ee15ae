// Package aws provides the resource family handlers for the dashboard.
// One handler per family, each registered under its resource type tag.
package aws

import "opsboard/resolve"

// RegisterAllHandlers registers every resource family handler with the registry.
func RegisterAllHandlers(reg *resolve.Registry) {
	// Delivery
	reg.Register(NewCloudFrontHandler())
	reg.Register(NewALBHandler())

	// Data stores
	reg.Register(NewRDSHandler())
	reg.Register(NewRedisHandler())
	reg.Register(NewS3Handler())

	// Networking
	reg.Register(NewSubnetHandler())
	reg.Register(NewRouteTableHandler())
	reg.Register(NewEndpointHandler())
	reg.Register(NewVPCHandler())
	reg.Register(NewIGWHandler())
	reg.Register(NewPeeringHandler())
	reg.Register(NewVPNHandler())
	reg.Register(NewTGWHandler())

	// Compute
	reg.Register(NewTaskHandler())
}

// SupportedResourceTypes returns all resource types with handlers.
func SupportedResourceTypes() []string {
	return []string{
		"cdn",
		"alb",
		"rds",
		"redis",
		"s3",
		"subnet",
		"routeTable",
		"endpoint",
		"vpc",
		"igw",
		"peering",
		"vpn",
		"tgw",
		"task",
	}
}
