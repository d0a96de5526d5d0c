package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

// DefaultExpiryWarnWindow is how close to expiry a token must be before the
// console starts prompting for re-authentication.
const DefaultExpiryWarnWindow = 5 * time.Minute

// ErrMalformedToken marks tokens whose payload cannot be parsed. Callers
// treat this the same as having no credential at all.
var ErrMalformedToken = errors.New("malformed token")

// Claims is the payload of a backend-issued bearer token. The subject claim
// carries the account email.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Email returns the account email from the subject claim.
func (c *Claims) Email() string {
	return c.Subject
}

// DecodeToken parses the token payload without verifying the signature.
// Signature verification is the server's job; the console only needs the
// claims to derive identity and role.
func DecodeToken(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}

// Expired reports whether the token is expired at now. The boundary is
// inclusive: a token is expired the instant now reaches its expiry. Tokens
// missing the exp claim count as expired.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !now.Before(c.ExpiresAt.Time)
}

// ExpiresSoon reports whether less than window remains before expiry.
// Advisory only; tokens missing the exp claim report false. A window <= 0
// falls back to DefaultExpiryWarnWindow.
func (c *Claims) ExpiresSoon(now time.Time, window time.Duration) bool {
	if c.ExpiresAt == nil {
		return false
	}
	if window <= 0 {
		window = DefaultExpiryWarnWindow
	}
	return c.ExpiresAt.Time.Sub(now) < window
}
