// Package auth implements the deposit authorization gate: Ed25519-signed
// tokens minted by a trusted authority, bound to a single requester and
// accepted at most once.
package auth

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tidemill/haulbatch/internal/common"
)

// Claims bind an authorization token to one requester address. The JTI makes
// the token single-use; expiry is the standard registered claim.
type Claims struct {
	jwt.RegisteredClaims
	Requester string `json:"requester"`
}

// MintToken issues a deposit authorization for the requester, signed with the
// authority's Ed25519 key. Used by the authority CLI and by tests.
func MintToken(key ed25519.PrivateKey, requester string, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		Requester: requester,
	})

	signed, err := token.SignedString(key)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// ParseToken verifies the signature against the authority public key and
// returns the claims. Any parse or signature failure comes back as
// common.ErrInvalidAuthorization.
func ParseToken(tokenString string, authorityKey ed25519.PublicKey) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return authorityKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidAuthorization, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidAuthorization
	}

	return claims, nil
}

// DecodeAuthorityKey parses a hex-encoded Ed25519 public key as stored in the
// params row.
func DecodeAuthorityKey(hexKey string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: malformed authority key", common.ErrInvalidParameter)
	}
	return ed25519.PublicKey(raw), nil
}
