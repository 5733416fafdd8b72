package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskward/taskward/core"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "Authentication"

// SessionCodec issues and validates signed session tokens.
//
// Tokens are HS256 JWTs whose payload binds exactly one user ID and an
// expiry instant. There is no server-side session store: any process
// holding the secret can validate any token, and a token stays usable
// until its expiry regardless of logout. The TTL is the sole upper
// bound on a leaked token's lifetime.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewSessionCodec(secret string, ttl time.Duration) *SessionCodec {
	return &SessionCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue produces a signed token for userID expiring after the
// configured TTL.
func (c *SessionCodec) Issue(userID string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry of token and returns the
// subject user ID. A token is invalid from its expiry instant onward,
// not merely after it.
func (c *SessionCodec) Validate(token string) (string, error) {
	if token == "" {
		return "", core.ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", core.ErrTokenExpired
		}
		return "", core.ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", core.ErrInvalidToken
	}

	// The library treats exactly-at-expiry as valid; we do not.
	if claims.ExpiresAt == nil || !c.now().Before(claims.ExpiresAt.Time) {
		return "", core.ErrTokenExpired
	}

	return claims.Subject, nil
}

// SessionCookie wraps token in an HttpOnly cookie whose lifetime
// matches the token TTL.
func (c *SessionCodec) SessionCookie(token string) core.CookieSpec {
	return core.CookieSpec{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		Expires:  c.now().Add(c.ttl),
		HTTPOnly: true,
	}
}

// ClearCookie returns the same cookie with zero lifetime. Clearing is
// purely client-side convenience; it does not invalidate the token.
func (c *SessionCodec) ClearCookie() core.CookieSpec {
	return core.CookieSpec{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
	}
}
