package auth

import (
	"crypto/ed25519"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/server/models"
)

// Gate validates deposit authorizations. It holds no authority key of its
// own: the key is read from governance params on every call, so rotating the
// authority takes effect immediately.
//
// Validation is side-effect free: AuthorizeDeposit only checks. The caller
// marks the token used via Consume once the deposit's external effects have
// landed, so a failed deposit never burns an authorization.
type Gate struct {
	seen *lru.Cache[string, struct{}]
}

// NewGate builds a gate with a replay cache of the given size. The cache is
// an LRU; a token older than the cache horizon could in principle be replayed,
// so size it well above the expected token volume within one token lifetime.
func NewGate(replayCacheSize int) (*Gate, error) {
	seen, err := lru.New[string, struct{}](replayCacheSize)
	if err != nil {
		return nil, err
	}
	return &Gate{seen: seen}, nil
}

// AuthorizeDeposit checks that the token was signed by the authority, is
// bound to the requester, has not been used before, and that the requester is
// not mid-withdrawal. It returns the token id; the caller consumes it with
// Consume once the deposit's external transfers have succeeded, so a deposit
// that fails downstream leaves the token usable.
func (g *Gate) AuthorizeDeposit(requester, tokenString string, authorityKey ed25519.PublicKey, account *models.Account) (string, error) {
	claims, err := ParseToken(tokenString, authorityKey)
	if err != nil {
		return "", err
	}

	if claims.Requester != requester {
		return "", fmt.Errorf("%w: token bound to another requester", common.ErrInvalidAuthorization)
	}
	if claims.ID == "" {
		return "", fmt.Errorf("%w: token has no id", common.ErrInvalidAuthorization)
	}
	if g.seen.Contains(claims.ID) {
		return "", fmt.Errorf("%w: token already used", common.ErrInvalidAuthorization)
	}

	if account.PendingWithdraw.IsPositive() {
		return "", common.ErrConflictingDirection
	}

	return claims.ID, nil
}

// Consume marks the token id as used. Later AuthorizeDeposit calls carrying
// the same id are rejected as replays.
func (g *Gate) Consume(id string) {
	g.seen.Add(id, struct{}{})
}
