package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

func signToken(t *testing.T, email string, role domain.Role, issuedAt, expiresAt *time.Time) string {
	t.Helper()
	claims := &Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: email},
	}
	if issuedAt != nil {
		claims.IssuedAt = jwt.NewNumericDate(*issuedAt)
	}
	if expiresAt != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*expiresAt)
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodeToken_ValidClaims(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	exp := now.Add(time.Hour)
	raw := signToken(t, "alice@example.com", domain.RoleAdmin, &now, &exp)

	claims, err := DecodeToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email())
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.True(t, claims.IssuedAt.Time.Equal(now))
	assert.True(t, claims.ExpiresAt.Time.Equal(exp))
}

func TestDecodeToken_IgnoresSignature(t *testing.T) {
	now := time.Now()
	exp := now.Add(time.Hour)
	raw := signToken(t, "alice@example.com", domain.RoleStaff, &now, &exp)

	// Corrupt the signature segment only; the payload must still decode.
	tampered := raw[:len(raw)-4] + "AAAA"
	claims, err := DecodeToken(tampered)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email())
}

func TestDecodeToken_Malformed(t *testing.T) {
	cases := []string{
		"",
		"garbage",
		"a.b",
		"only-one-segment",
		"!!!.@@@.###",
		"a.b.c.d",
		"eyJhbGciOiJIUzI1NiJ9.not-base64son.sig",
	}
	for _, raw := range cases {
		claims, err := DecodeToken(raw)
		assert.Nil(t, claims, "input %q", raw)
		require.Error(t, err, "input %q", raw)
		assert.ErrorIs(t, err, ErrMalformedToken, "input %q", raw)
	}
}

func TestClaimsExpired_Boundary(t *testing.T) {
	exp := time.Unix(1_900_000_000, 0)
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}}

	assert.False(t, claims.Expired(exp.Add(-time.Second)))
	assert.True(t, claims.Expired(exp), "expired exactly at the expiry instant")
	assert.True(t, claims.Expired(exp.Add(time.Second)))
}

func TestClaimsExpired_MissingExpiry(t *testing.T) {
	claims := &Claims{}
	assert.True(t, claims.Expired(time.Now()), "a token without exp never counts as live")
}

func TestClaimsExpiresSoon(t *testing.T) {
	now := time.Unix(1_900_000_000, 0)

	mkClaims := func(ttl time.Duration) *Claims {
		return &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(ttl))}}
	}

	assert.False(t, mkClaims(10*time.Minute).ExpiresSoon(now, 0))
	assert.True(t, mkClaims(4*time.Minute).ExpiresSoon(now, 0))
	assert.False(t, mkClaims(5*time.Minute).ExpiresSoon(now, 0), "exactly the window away is not yet soon")
	assert.True(t, mkClaims(-time.Minute).ExpiresSoon(now, 0), "already expired is as soon as it gets")

	// Explicit window.
	assert.True(t, mkClaims(30*time.Minute).ExpiresSoon(now, time.Hour))

	// No exp claim: advisory check stays quiet.
	assert.False(t, (&Claims{}).ExpiresSoon(now, 0))
}
