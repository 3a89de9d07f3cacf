package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/errors"
)

func testCodecConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Signing = secret
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	return cfg
}

func TestJWTCodec_MintAndValidate(t *testing.T) {
	codec, err := NewJWTCodec(testCodecConfig("test_signing_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	accountID := int64(42)

	token, err := codec.Mint(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	gotID, err := codec.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, accountID, gotID)
}

func TestJWTCodec_MissingSecret(t *testing.T) {
	_, err := NewJWTCodec(testCodecConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTCodec_TTLDefault(t *testing.T) {
	codec, err := NewJWTCodec(testCodecConfig("secret", 0))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, codec.TTL())

	codec, err = NewJWTCodec(testCodecConfig("secret", 90*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, codec.TTL())
}

func TestJWTCodec_Expired(t *testing.T) {
	codec := &jwtCodec{
		secret: []byte("test_signing_secret"),
		ttl:    time.Second,
		now:    time.Now,
	}

	token, err := codec.Mint(7)
	require.NoError(t, err)

	// Shift the codec's clock two simulated seconds past minting.
	issued := time.Now()
	codec.now = func() time.Time { return issued.Add(2 * time.Second) }

	_, err = codec.Validate(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTCodec_ValidJustBeforeExpiry(t *testing.T) {
	codec := &jwtCodec{
		secret: []byte("test_signing_secret"),
		ttl:    time.Hour,
		now:    time.Now,
	}

	token, err := codec.Mint(7)
	require.NoError(t, err)

	issued := time.Now()
	codec.now = func() time.Time { return issued.Add(59 * time.Minute) }

	gotID, err := codec.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), gotID)
}

func TestJWTCodec_TamperedToken(t *testing.T) {
	codec := &jwtCodec{
		secret: []byte("test_signing_secret"),
		ttl:    time.Hour,
		now:    time.Now,
	}

	token, err := codec.Mint(7)
	require.NoError(t, err)

	// Flipping any byte of the compact form must fail signature
	// verification, never parse as a different account.
	for _, i := range []int{0, len(token) / 2, len(token) - 1} {
		raw := []byte(token)
		if raw[i] == 'A' {
			raw[i] = 'B'
		} else {
			raw[i] = 'A'
		}

		_, err := codec.Validate(string(raw))
		assert.Error(t, err, "tampered byte %d", i)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	}
}

func TestJWTCodec_WrongSecret(t *testing.T) {
	minter := &jwtCodec{secret: []byte("secret_one"), ttl: time.Hour, now: time.Now}
	verifier := &jwtCodec{secret: []byte("secret_two"), ttl: time.Hour, now: time.Now}

	token, err := minter.Mint(7)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTCodec_ExpiredWithWrongSecretIsInvalid(t *testing.T) {
	// An attacker must not learn whether an unsigned token would have been
	// expired: signature failure wins over expiry.
	minter := &jwtCodec{secret: []byte("secret_one"), ttl: time.Second, now: time.Now}
	verifier := &jwtCodec{secret: []byte("secret_two"), ttl: time.Second, now: time.Now}

	token, err := minter.Mint(7)
	require.NoError(t, err)

	issued := time.Now()
	verifier.now = func() time.Time { return issued.Add(time.Minute) }

	_, err = verifier.Validate(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTCodec_GarbageInput(t *testing.T) {
	codec := &jwtCodec{secret: []byte("test_signing_secret"), ttl: time.Hour, now: time.Now}

	for _, garbage := range []string{
		"",
		"clearly-not-a-jwt",
		"a.b",
		"a.b.c.d",
		"eyJhbGciOiJub25lIn0..", // alg=none is rejected by WithValidMethods
	} {
		_, err := codec.Validate(garbage)
		assert.Error(t, err, "input %q", garbage)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	}
}
