package resolve

// Registry holds the resource handlers keyed by resource type tag. It is
// built once at startup, injected into every consumer, and read-only after
// that, so no locking is needed.
type Registry struct {
	handlers map[string]ResourceHandler
	order    []string // registration order, for stable listings
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]ResourceHandler),
	}
}

// Register stores a handler under its resource type tag. Registering the
// same tag twice replaces the previous handler; hosts use this to override
// a built-in family.
func (r *Registry) Register(h ResourceHandler) {
	tag := h.ResourceType()
	if _, exists := r.handlers[tag]; !exists {
		r.order = append(r.order, tag)
	}
	r.handlers[tag] = h
}

// Get retrieves the handler for a resource type. A missing handler is
// reported through ok, never through an error.
func (r *Registry) Get(resourceType string) (ResourceHandler, bool) {
	h, ok := r.handlers[resourceType]
	return h, ok
}

// Types returns all registered resource type tags in registration order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
