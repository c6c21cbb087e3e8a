package commands

import "context"

type managerKey struct{}

var defaultManager = NewManager()

// Default returns the manager handed out when none was injected.
func Default() *Manager {
	return defaultManager
}

// WithManager returns a copy of ctx carrying m.
func WithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, managerKey{}, m)
}

// FromContext returns the manager injected with WithManager, or the shared
// default manager.
func FromContext(ctx context.Context) *Manager {
	if ctx != nil {
		if m, ok := ctx.Value(managerKey{}).(*Manager); ok && m != nil {
			return m
		}
	}
	return defaultManager
}
