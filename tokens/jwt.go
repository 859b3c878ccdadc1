package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/sources"
)

// NewFromRaw builds the record for a token minted by an external source. The
// stored expiry is the earlier of the token's own exp claim and
// now+maxDuration, so opaque tokens and tokens with runaway claims both
// expire within the configured window.
func NewFromRaw(raw string, source sources.Source, data map[string]interface{}, now time.Time, maxDuration time.Duration) JwtToken {
	exp := now.Add(maxDuration)
	if claimed, err := ExpFromJWT(raw); err == nil && claimed.Before(exp) {
		exp = claimed
	}

	return JwtToken{
		Token:  raw,
		Source: source,
		Exp:    exp,
		Data:   data,
	}
}

// ExpFromJWT extracts the expiry claim from a JWT-shaped access token issued
// by an external source. The signature is deliberately not verified: the
// token is stored and compared opaquely, the claim only bounds its lifetime.
func ExpFromJWT(raw string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: token is not a valid JWT", errors.BadRequest)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("%w: token has no expiration claim", errors.BadRequest)
	}

	return exp.Time, nil
}
