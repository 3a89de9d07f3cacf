package service

import (
	"time"
)

// TokenCodec defines the interface for minting and validating the signed,
// self-contained bearer tokens issued after a successful login. Tokens are
// never persisted; expiry is enforced by the codec alone.
type TokenCodec interface {
	// Mint creates a signed token carrying the account ID, expiring after
	// the configured TTL.
	Mint(accountID int64) (string, error)

	// Validate checks the token's signature and expiry and returns the
	// embedded account ID. The signature is verified before the expiry is
	// interpreted; failures surface as domainerrors.ErrTokenExpired or
	// domainerrors.ErrTokenInvalid.
	Validate(token string) (int64, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
