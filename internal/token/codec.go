// Package token issues and verifies the signed identity assertions that
// authenticate every request after login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrInvalidSignature means the token was not signed with our secret.
	ErrInvalidSignature = errors.New("token: invalid signature")
	// ErrExpired means the token's validity window has elapsed.
	ErrExpired = errors.New("token: expired")
	// ErrMalformed covers every other way a token can fail to parse.
	ErrMalformed = errors.New("token: malformed")
)

// Claims carries the caller-supplied payload embedded alongside the user id.
type Claims map[string]interface{}

// Identity is the verified content of a token.
type Identity struct {
	UserID uint
	Claims Claims
}

// Codec signs and verifies identity tokens with a shared HS256 secret.
// It keeps no state beyond the secret and expiry window.
type Codec struct {
	secret []byte
	expiry time.Duration
}

// NewCodec builds a Codec. The secret must be provisioned via configuration;
// an empty secret is a startup error, never a fallback.
func NewCodec(secret string, expiry time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret cannot be empty")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), expiry: expiry}, nil
}

// Issue produces a signed token embedding userID and the supplied claims.
// The reserved claims (user_id, iat, exp) always win over caller values.
func (c *Codec) Issue(userID uint, claims Claims) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["user_id"] = userID
	mapClaims["iat"] = now.Unix()
	mapClaims["exp"] = now.Add(c.expiry).Unix()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token: failed to sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. It returns the embedded
// identity, or one of ErrInvalidSignature, ErrExpired, ErrMalformed.
// A token that fails verification is never partially trusted.
func (c *Codec) Verify(tokenStr string) (*Identity, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, classify(err)
	}

	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, ErrMalformed
	}

	// JWT numbers decode as float64; the user id must be a positive integer.
	idClaim, ok := mapClaims["user_id"]
	if !ok {
		return nil, ErrMalformed
	}
	idFloat, ok := idClaim.(float64)
	if !ok || idFloat <= 0 || idFloat != float64(uint(idFloat)) {
		return nil, ErrMalformed
	}

	claims := Claims{}
	for k, v := range mapClaims {
		if k == "user_id" || k == "iat" || k == "exp" {
			continue
		}
		claims[k] = v
	}
	return &Identity{UserID: uint(idFloat), Claims: claims}, nil
}

// classify maps jwt library errors onto the codec's sentinel errors.
func classify(err error) error {
	var verr *jwt.ValidationError
	if errors.As(err, &verr) {
		switch {
		case verr.Errors&jwt.ValidationErrorExpired != 0:
			return ErrExpired
		case verr.Errors&jwt.ValidationErrorSignatureInvalid != 0:
			return ErrInvalidSignature
		case errors.Is(verr.Inner, jwt.ErrSignatureInvalid):
			// Keyfunc rejected the signing method.
			return ErrInvalidSignature
		}
	}
	return ErrMalformed
}
