package auth

import (
	"crypto/ed25519"
	"errors"
	"testing"
	"time"

	"cosmossdk.io/math"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/server/models"
)

func newGate(t *testing.T) *Gate {
	t.Helper()
	g, err := NewGate(16)
	if err != nil {
		t.Fatalf("NewGate error: %v", err)
	}
	return g
}

func TestAuthorizeDeposit(t *testing.T) {
	key := testKey(t)
	pub := key.Public().(ed25519.PublicKey)
	g := newGate(t)

	token, err := MintToken(key, "user1", time.Minute)
	if err != nil {
		t.Fatalf("MintToken error: %v", err)
	}

	account := models.NewAccount("user1")
	id, err := g.AuthorizeDeposit("user1", token, pub, account)
	if err != nil {
		t.Fatalf("AuthorizeDeposit error: %v", err)
	}
	if id == "" {
		t.Fatal("empty token id")
	}

	// Authorization alone does not consume: the token validates again until
	// the caller marks it used.
	if _, err := g.AuthorizeDeposit("user1", token, pub, account); err != nil {
		t.Fatalf("second authorize before consume error: %v", err)
	}

	g.Consume(id)

	_, err = g.AuthorizeDeposit("user1", token, pub, account)
	if !errors.Is(err, common.ErrInvalidAuthorization) {
		t.Fatalf("replay error = %v, want ErrInvalidAuthorization", err)
	}
}

func TestAuthorizeDepositRequesterMismatch(t *testing.T) {
	key := testKey(t)
	pub := key.Public().(ed25519.PublicKey)
	g := newGate(t)

	token, err := MintToken(key, "user1", time.Minute)
	if err != nil {
		t.Fatalf("MintToken error: %v", err)
	}

	_, err = g.AuthorizeDeposit("user2", token, pub, models.NewAccount("user2"))
	if !errors.Is(err, common.ErrInvalidAuthorization) {
		t.Fatalf("error = %v, want ErrInvalidAuthorization", err)
	}

	// The failed attempt must not consume the token for its real owner.
	if _, err := g.AuthorizeDeposit("user1", token, pub, models.NewAccount("user1")); err != nil {
		t.Fatalf("owner blocked after failed attempt: %v", err)
	}
}

func TestAuthorizeDepositConflictingDirection(t *testing.T) {
	key := testKey(t)
	pub := key.Public().(ed25519.PublicKey)
	g := newGate(t)

	token, err := MintToken(key, "user1", time.Minute)
	if err != nil {
		t.Fatalf("MintToken error: %v", err)
	}

	account := models.NewAccount("user1")
	account.PendingWithdraw = math.NewInt(5)

	_, err = g.AuthorizeDeposit("user1", token, pub, account)
	if !errors.Is(err, common.ErrConflictingDirection) {
		t.Fatalf("error = %v, want ErrConflictingDirection", err)
	}

	// The rejection is side-effect free: once the withdrawal clears, the
	// same token works.
	account.PendingWithdraw = math.ZeroInt()
	if _, err := g.AuthorizeDeposit("user1", token, pub, account); err != nil {
		t.Fatalf("token consumed by rejected attempt: %v", err)
	}
}
