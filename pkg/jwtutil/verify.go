package jwtutil

import (
	"crypto/rsa"
	"errors"

	"matrimony-service/pkg/xerrors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks RS256/384/512 access tokens. Tokens naming a kid are
// checked against that key; the rest against the default key.
type Verifier struct {
	keys     map[string]*rsa.PublicKey
	fallback *rsa.PublicKey
	parser   *jwt.Parser
}

// NewVerifier builds a verifier. Empty issuer or audience skips that check.
func NewVerifier(fallback *rsa.PublicKey, issuer, audience string) *Verifier {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"})}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Verifier{
		keys:     map[string]*rsa.PublicKey{},
		fallback: fallback,
		parser:   jwt.NewParser(opts...),
	}
}

// AddKey registers a rotated key. Not safe to call while verifying.
func (v *Verifier) AddKey(kid string, pub *rsa.PublicKey) {
	v.keys[kid] = pub
}

func (v *Verifier) keyFor(t *jwt.Token) (any, error) {
	if kid, _ := t.Header["kid"].(string); kid != "" {
		if k, ok := v.keys[kid]; ok {
			return k, nil
		}
	}
	return v.fallback, nil
}

// ParseAndValidate returns the token's claims, xerrors.ErrExpiredToken for
// an expired token and xerrors.ErrInvalidToken for anything else wrong,
// including a token without a user id.
func (v *Verifier) ParseAndValidate(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := v.parser.ParseWithClaims(tokenStr, claims, v.keyFor)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, xerrors.ErrExpiredToken
	case err != nil, !token.Valid, claims.UserID == "":
		return nil, xerrors.ErrInvalidToken
	}
	return claims, nil
}
