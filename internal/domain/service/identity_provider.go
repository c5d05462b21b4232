package service

import "context"

// Identity is the caller as known by the identity provider.
type Identity struct {
	// UserID is the provider's opaque, stable user key.
	UserID string
	Email  string
}

// IdentityProvider resolves bearer tokens into identities.
// The application never authenticates users itself.
type IdentityProvider interface {
	// Verify validates a bearer token and returns the identity it names.
	// Invalid or expired tokens yield errors.ErrInvalidToken.
	Verify(ctx context.Context, token string) (*Identity, error)
}

// TokenIssuer is implemented by identity providers that can mint tokens locally,
// such as the development JWT provider.
type TokenIssuer interface {
	Issue(identity Identity) (string, error)
}
