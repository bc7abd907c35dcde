package session

import "context"

type contextKey struct{}

// NewContext returns a context carrying the session. The composition
// root wraps its base context once; everything below reaches the session
// through FromContext or MustFromContext.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session carried by ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}

// MustFromContext returns the session carried by ctx and panics if there
// is none. Reaching for the session outside the composition root's
// context is a programming error, not a runtime condition to handle.
func MustFromContext(ctx context.Context) *Session {
	s, ok := FromContext(ctx)
	if !ok {
		panic("session: no Session in context; wrap the root context with session.NewContext")
	}
	return s
}
