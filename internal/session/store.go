// Package session implements the client-side authentication state: the
// persistent token slot, unverified token payload decoding, and the session
// manager that resolves and caches the current user.
package session

import "context"

// tokenKey is the single fixed key the bearer token lives under.
const tokenKey = "token"

// TokenStore is a persistent slot for one bearer token. It enforces no
// expiry and performs no validation; it is a plain key-value cell with
// last-writer-wins semantics.
//
// Read reports an absent token as ("", nil): absence is a state of the
// session, not a failure.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Read(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
