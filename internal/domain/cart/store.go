package cart

import "context"

// SessionStore holds guest carts keyed by the cookie-carried session id.
// A missing session reads as an empty cart; lifecycle of the id itself is
// owned by the transport layer.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	Put(ctx context.Context, sessionID string, c Cart) error
	Clear(ctx context.Context, sessionID string) error
}
