package auth

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/tidemill/haulbatch/internal/common"
)

func testKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	return DeriveAuthorityKey([]byte("correct horse"), []byte("salt0001"))
}

func TestMintAndParseToken(t *testing.T) {
	key := testKey(t)

	token, err := MintToken(key, "user1", time.Minute)
	if err != nil {
		t.Fatalf("MintToken error: %v", err)
	}

	claims, err := ParseToken(token, key.Public().(ed25519.PublicKey))
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Requester != "user1" {
		t.Errorf("requester = %s, want user1", claims.Requester)
	}
	if claims.ID == "" {
		t.Error("token has no JTI")
	}
}

func TestParseTokenWrongKey(t *testing.T) {
	key := testKey(t)
	other := DeriveAuthorityKey([]byte("other"), []byte("salt0002"))

	token, err := MintToken(key, "user1", time.Minute)
	if err != nil {
		t.Fatalf("MintToken error: %v", err)
	}

	_, err = ParseToken(token, other.Public().(ed25519.PublicKey))
	if !errors.Is(err, common.ErrInvalidAuthorization) {
		t.Fatalf("error = %v, want ErrInvalidAuthorization", err)
	}
}

func TestParseTokenExpired(t *testing.T) {
	key := testKey(t)

	token, err := MintToken(key, "user1", -time.Minute)
	if err != nil {
		t.Fatalf("MintToken error: %v", err)
	}

	_, err = ParseToken(token, key.Public().(ed25519.PublicKey))
	if !errors.Is(err, common.ErrInvalidAuthorization) {
		t.Fatalf("error = %v, want ErrInvalidAuthorization", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	key := testKey(t)

	_, err := ParseToken("not.a.token", key.Public().(ed25519.PublicKey))
	if !errors.Is(err, common.ErrInvalidAuthorization) {
		t.Fatalf("error = %v, want ErrInvalidAuthorization", err)
	}
}

func TestDecodeAuthorityKey(t *testing.T) {
	key := testKey(t)
	encoded := hex.EncodeToString(key.Public().(ed25519.PublicKey))

	decoded, err := DecodeAuthorityKey(encoded)
	if err != nil {
		t.Fatalf("DecodeAuthorityKey error: %v", err)
	}
	if !decoded.Equal(key.Public().(ed25519.PublicKey)) {
		t.Error("decoded key differs from original")
	}

	for _, bad := range []string{"", "zz", "abcd"} {
		if _, err := DecodeAuthorityKey(bad); !errors.Is(err, common.ErrInvalidParameter) {
			t.Errorf("DecodeAuthorityKey(%q) error = %v, want ErrInvalidParameter", bad, err)
		}
	}
}

func TestDeriveAuthorityKeyDeterministic(t *testing.T) {
	a := DeriveAuthorityKey([]byte("pass"), []byte("salt"))
	b := DeriveAuthorityKey([]byte("pass"), []byte("salt"))
	if !a.Equal(b) {
		t.Error("same inputs derived different keys")
	}

	c := DeriveAuthorityKey([]byte("pass"), []byte("other salt"))
	if a.Equal(c) {
		t.Error("different salts derived the same key")
	}
}
