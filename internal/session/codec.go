package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken marks tokens that could not be decoded. Callers treat it
// as "no session", never as a user-visible error.
var ErrMalformedToken = errors.New("malformed token")

// DecodeToken extracts the claims from the payload segment of a compact JWT
// without verifying the signature. The payload is trusted content but not
// trusted authenticity: it is only ever used for UI gating and expiry checks,
// while the backend verifies signatures on every request.
//
// DecodeToken is pure: the same token always yields the same claims or the
// same failure, and it never panics on malformed input.
func DecodeToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}

// TokenExpiry returns the expiry instant carried in the token's exp claim.
// The second result is false when the token cannot be decoded or carries no
// usable exp.
func TokenExpiry(token string) (time.Time, bool) {
	claims, err := DecodeToken(token)
	if err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
