package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt reads the exp claim from an access token without verifying the
// signature. The backend signs its own tokens; the gateway only needs the
// expiry to decide when to refresh.
func ExpiresAt(raw string) (time.Time, error) {
	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	exp, err := tok.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("exp claim not present")
	}
	return exp.Time, nil
}

// ExpiringSoon reports whether the token expires within the given leeway.
// Unparseable tokens are treated as expiring so the caller attempts a refresh.
func ExpiringSoon(raw string, leeway time.Duration) bool {
	exp, err := ExpiresAt(raw)
	if err != nil {
		return true
	}
	return time.Until(exp) < leeway
}
