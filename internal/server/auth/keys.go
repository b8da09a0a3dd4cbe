package auth

import (
	"crypto/ed25519"

	"golang.org/x/crypto/argon2"
)

// DeriveAuthorityKey deterministically derives the authority's Ed25519 key
// pair from a passphrase and salt using Argon2id. The authority never stores
// the private key; it re-derives it whenever it mints tokens.
func DeriveAuthorityKey(passphrase, salt []byte) ed25519.PrivateKey {
	seed := argon2.IDKey(passphrase, salt, 1, 64*1024, 4, ed25519.SeedSize)
	return ed25519.NewKeyFromSeed(seed)
}
