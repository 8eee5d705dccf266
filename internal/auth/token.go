package auth

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Issuer mints and verifies session tokens. A single HS256 secret is
// enough for a single-service deployment; there is no key rotation or
// multi-issuer story here.
type Issuer struct {
	Iss       string
	Secret    []byte
	AccessTTL time.Duration
	TimeNow   func() time.Time // for testing, defaults to time.Now
}

func NewIssuer(iss string, secret []byte, accessTTL time.Duration) *Issuer {
	return &Issuer{
		Iss:       iss,
		Secret:    secret,
		AccessTTL: accessTTL,
		TimeNow:   time.Now,
	}
}

// Mint signs a session token for the user.
func (i *Issuer) Mint(userID string) (string, error) {
	now := i.TimeNow()
	claims := jwtv5.RegisteredClaims{
		Issuer:    i.Iss,
		Subject:   userID,
		IssuedAt:  jwtv5.NewNumericDate(now),
		ExpiresAt: jwtv5.NewNumericDate(now.Add(i.AccessTTL)),
	}

	tok := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.Secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify validates signature, issuer and expiry, and returns the user id
// from the subject claim.
func (i *Issuer) Verify(token string) (string, error) {
	tok, err := jwtv5.ParseWithClaims(token, &jwtv5.RegisteredClaims{},
		func(t *jwtv5.Token) (any, error) { return i.Secret, nil },
		jwtv5.WithValidMethods([]string{"HS256"}),
		jwtv5.WithIssuer(i.Iss),
		jwtv5.WithExpirationRequired(),
		jwtv5.WithTimeFunc(func() time.Time { return i.TimeNow() }),
	)
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(*jwtv5.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Subject checks signature and issuer but tolerates an expired claim
// set. Logout uses it so a session whose token just lapsed can still
// drop its server-side cache.
func (i *Issuer) Subject(token string) (string, error) {
	tok, err := jwtv5.ParseWithClaims(token, &jwtv5.RegisteredClaims{},
		func(t *jwtv5.Token) (any, error) { return i.Secret, nil },
		jwtv5.WithValidMethods([]string{"HS256"}),
		jwtv5.WithIssuer(i.Iss),
		jwtv5.WithoutClaimsValidation(),
	)
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(*jwtv5.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	if claims.Issuer != i.Iss {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
