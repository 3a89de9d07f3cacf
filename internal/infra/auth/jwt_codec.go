package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/errors"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using
// HMAC-signed JWTs. The signing secret and token TTL are fixed at
// construction and immutable for the process lifetime.
type jwtCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time // injectable for expiry tests
}

// NewJWTCodec is the constructor for jwtCodec.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("signing secret must be provided")
	}

	ttl := time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtCodec{
		secret: []byte(cfg.SecretKey.Signing),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Mint creates a signed token for the given account with an absolute
// expiry of now + TTL.
func (s *jwtCodec) Mint(accountID int64) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the token's signature and expiry and returns the embedded
// account ID. The jwt parser verifies the HMAC signature (constant time)
// before it looks at any claim, so an expiry failure can only be reported
// for a token this process actually signed. Everything else (malformed,
// truncated, tampered, wrong secret, wrong algorithm) collapses into
// ErrTokenInvalid.
func (s *jwtCodec) Validate(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domainerrors.ErrTokenExpired.WrapMessage("token validation failed")
		}

		return 0, domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, domainerrors.ErrTokenInvalid.WrapMessage("token carries no subject")
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrTokenInvalid.WrapMessage("token subject is not an account id")
	}

	return accountID, nil
}

// TTL returns the configured token lifetime.
func (s *jwtCodec) TTL() time.Duration {
	return s.ttl
}
