package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired is a best-effort local check that saves a round trip when a
// restored token is a JWT that has plainly expired. The token is otherwise
// treated as opaque: anything that does not parse, or carries no exp claim,
// is left for the gateway to judge.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
