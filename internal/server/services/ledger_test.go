package services

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/math"
	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/server/models"
)

func newLedgerService(t *testing.T, rm *fakeRepoManager, node *fakeNode) (*LedgerService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		db.Close()
	})
	return NewLedgerService(db, rm, newTestGate(t), node, NewOpGuard(), testConfig(), testLogger()), mock
}

func TestRequestDeposit(t *testing.T) {
	key, authorityHex := testAuthority(t)
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: authorityHex}

	node := &fakeNode{}
	svc, mock := newLedgerService(t, rm, node)
	mock.ExpectBegin()
	mock.ExpectCommit()

	token := mintTestToken(t, key, "user1")
	account, err := svc.RequestDeposit(context.Background(), "user1", math.NewInt(500), token)
	if err != nil {
		t.Fatalf("RequestDeposit error: %v", err)
	}

	if !account.PendingDeposit.Equal(math.NewInt(500)) {
		t.Errorf("pending deposit = %s, want 500", account.PendingDeposit)
	}
	if len(node.transferFroms) != 1 {
		t.Fatalf("transferFrom calls = %d, want 1", len(node.transferFroms))
	}
	tf := node.transferFroms[0]
	if tf.asset != "usdq" || tf.from != "user1" || tf.to != "batcher1" || !tf.amount.Equal(math.NewInt(500)) {
		t.Errorf("unexpected transferFrom %+v", tf)
	}
	b, _ := rm.b.Get(context.Background())
	if !b.CurrentPending.Equal(math.NewInt(500)) {
		t.Errorf("current pending = %s, want 500", b.CurrentPending)
	}
}

func TestRequestDepositRejectsReplay(t *testing.T) {
	key, authorityHex := testAuthority(t)
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: authorityHex}

	svc, mock := newLedgerService(t, rm, &fakeNode{})
	mock.ExpectBegin()
	mock.ExpectCommit()

	token := mintTestToken(t, key, "user1")
	if _, err := svc.RequestDeposit(context.Background(), "user1", math.NewInt(100), token); err != nil {
		t.Fatalf("first deposit error: %v", err)
	}
	_, err := svc.RequestDeposit(context.Background(), "user1", math.NewInt(100), token)
	if !errors.Is(err, common.ErrInvalidAuthorization) {
		t.Fatalf("replay error = %v, want ErrInvalidAuthorization", err)
	}
}

func TestRequestDepositTransferFailureKeepsToken(t *testing.T) {
	key, authorityHex := testAuthority(t)
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: authorityHex}

	node := &fakeNode{transferFrom: errors.New("node unavailable")}
	svc, mock := newLedgerService(t, rm, node)

	token := mintTestToken(t, key, "user1")
	if _, err := svc.RequestDeposit(context.Background(), "user1", math.NewInt(100), token); err == nil {
		t.Fatal("expected transfer error")
	}

	// The failed transfer must not burn the authorization: the same token
	// works once the node recovers.
	node.transferFrom = nil
	mock.ExpectBegin()
	mock.ExpectCommit()
	account, err := svc.RequestDeposit(context.Background(), "user1", math.NewInt(100), token)
	if err != nil {
		t.Fatalf("retry after transfer failure error: %v", err)
	}
	if !account.PendingDeposit.Equal(math.NewInt(100)) {
		t.Errorf("pending deposit = %s, want 100", account.PendingDeposit)
	}
}

func TestRequestDepositRejectsForeignToken(t *testing.T) {
	key, authorityHex := testAuthority(t)
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: authorityHex}

	svc, _ := newLedgerService(t, rm, &fakeNode{})

	token := mintTestToken(t, key, "someone-else")
	_, err := svc.RequestDeposit(context.Background(), "user1", math.NewInt(100), token)
	if !errors.Is(err, common.ErrInvalidAuthorization) {
		t.Fatalf("error = %v, want ErrInvalidAuthorization", err)
	}
}

func TestRequestDepositConflictsWithPendingWithdraw(t *testing.T) {
	key, authorityHex := testAuthority(t)
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: authorityHex}
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.ZeroInt(), PendingWithdraw: math.NewInt(10), SettledShares: math.ZeroInt()})

	node := &fakeNode{}
	svc, _ := newLedgerService(t, rm, node)

	token := mintTestToken(t, key, "user1")
	_, err := svc.RequestDeposit(context.Background(), "user1", math.NewInt(100), token)
	if !errors.Is(err, common.ErrConflictingDirection) {
		t.Fatalf("error = %v, want ErrConflictingDirection", err)
	}
	if len(node.transferFroms) != 0 {
		t.Errorf("assets moved despite rejection")
	}
}

func TestRequestDepositCapacityExceeded(t *testing.T) {
	key, authorityHex := testAuthority(t)
	rm := newFakeRepoManager()
	b := newTestBinding()
	b.MaxPending = math.NewInt(100)
	b.CurrentPending = math.NewInt(80)
	rm.b.binding = b
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: authorityHex}

	node := &fakeNode{}
	svc, _ := newLedgerService(t, rm, node)

	token := mintTestToken(t, key, "user1")
	_, err := svc.RequestDeposit(context.Background(), "user1", math.NewInt(21), token)
	if !errors.Is(err, common.ErrCapacityExceeded) {
		t.Fatalf("error = %v, want ErrCapacityExceeded", err)
	}
	if len(node.transferFroms) != 0 {
		t.Errorf("assets moved despite capacity rejection")
	}
}

func TestRequestDepositRejectsNonPositiveAmount(t *testing.T) {
	rm := newFakeRepoManager()
	svc, _ := newLedgerService(t, rm, &fakeNode{})

	_, err := svc.RequestDeposit(context.Background(), "user1", math.ZeroInt(), "token")
	if !errors.Is(err, common.ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}

func TestRequestWithdraw(t *testing.T) {
	rm := newFakeRepoManager()
	b := newTestBinding()
	b.CurrentPending = math.NewInt(30)
	rm.b.binding = b
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.ZeroInt(), PendingWithdraw: math.ZeroInt(), SettledShares: math.NewInt(200)})

	node := &fakeNode{}
	svc, mock := newLedgerService(t, rm, node)
	mock.ExpectBegin()
	mock.ExpectCommit()

	account, err := svc.RequestWithdraw(context.Background(), "user1", math.NewInt(150), math.ZeroInt())
	if err != nil {
		t.Fatalf("RequestWithdraw error: %v", err)
	}

	if !account.SettledShares.Equal(math.NewInt(50)) {
		t.Errorf("settled shares = %s, want 50", account.SettledShares)
	}
	if !account.PendingWithdraw.Equal(math.NewInt(150)) {
		t.Errorf("pending withdraw = %s, want 150", account.PendingWithdraw)
	}
	// 30 - 150 floors at zero.
	saved, _ := rm.b.Get(context.Background())
	if !saved.CurrentPending.IsZero() {
		t.Errorf("current pending = %s, want 0", saved.CurrentPending)
	}
	if len(node.transferFroms) != 0 {
		t.Errorf("no share transfer expected without transfer-in")
	}
}

func TestRequestWithdrawWithTransferIn(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.ZeroInt(), PendingWithdraw: math.ZeroInt(), SettledShares: math.NewInt(60)})

	node := &fakeNode{}
	svc, mock := newLedgerService(t, rm, node)
	mock.ExpectBegin()
	mock.ExpectCommit()

	account, err := svc.RequestWithdraw(context.Background(), "user1", math.NewInt(100), math.NewInt(40))
	if err != nil {
		t.Fatalf("RequestWithdraw error: %v", err)
	}

	if !account.SettledShares.IsZero() {
		t.Errorf("settled shares = %s, want 0", account.SettledShares)
	}
	if len(node.transferFroms) != 1 {
		t.Fatalf("transferFrom calls = %d, want 1", len(node.transferFroms))
	}
	tf := node.transferFroms[0]
	if tf.asset != "vault-1" || !tf.amount.Equal(math.NewInt(40)) {
		t.Errorf("share transfer-in %+v, want 40 of vault-1", tf)
	}
}

func TestRequestWithdrawConflictsWithPendingDeposit(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.NewInt(5), PendingWithdraw: math.ZeroInt(), SettledShares: math.NewInt(100)})

	svc, _ := newLedgerService(t, rm, &fakeNode{})

	_, err := svc.RequestWithdraw(context.Background(), "user1", math.NewInt(10), math.ZeroInt())
	if !errors.Is(err, common.ErrConflictingDirection) {
		t.Fatalf("error = %v, want ErrConflictingDirection", err)
	}
}

func TestRequestWithdrawInsufficientSettled(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.ZeroInt(), PendingWithdraw: math.ZeroInt(), SettledShares: math.NewInt(10)})

	svc, _ := newLedgerService(t, rm, &fakeNode{})

	_, err := svc.RequestWithdraw(context.Background(), "user1", math.NewInt(100), math.NewInt(20))
	if !errors.Is(err, common.ErrInsufficientBalance) {
		t.Fatalf("error = %v, want ErrInsufficientBalance", err)
	}
}

func TestRequestWithdrawTransferInBounds(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	svc, _ := newLedgerService(t, rm, &fakeNode{})

	for _, transferIn := range []math.Int{math.NewInt(-1), math.NewInt(11)} {
		_, err := svc.RequestWithdraw(context.Background(), "user1", math.NewInt(10), transferIn)
		if !errors.Is(err, common.ErrInvalidParameter) {
			t.Errorf("transferIn %s: error = %v, want ErrInvalidParameter", transferIn, err)
		}
	}
}

func TestClaim(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.ZeroInt(), PendingWithdraw: math.ZeroInt(), SettledShares: math.NewInt(100)})

	node := &fakeNode{}
	svc, _ := newLedgerService(t, rm, node)

	account, err := svc.Claim(context.Background(), "user1", math.NewInt(60), "cold1")
	if err != nil {
		t.Fatalf("Claim error: %v", err)
	}

	if !account.SettledShares.Equal(math.NewInt(40)) {
		t.Errorf("settled shares = %s, want 40", account.SettledShares)
	}
	if len(node.transfers) != 1 {
		t.Fatalf("transfers = %d, want 1", len(node.transfers))
	}
	tr := node.transfers[0]
	if tr.asset != "vault-1" || tr.to != "cold1" || !tr.amount.Equal(math.NewInt(60)) {
		t.Errorf("unexpected transfer %+v", tr)
	}
}

func TestClaimInsufficientBalance(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.ZeroInt(), PendingWithdraw: math.ZeroInt(), SettledShares: math.NewInt(10)})

	node := &fakeNode{}
	svc, _ := newLedgerService(t, rm, node)

	_, err := svc.Claim(context.Background(), "user1", math.NewInt(60), "cold1")
	if !errors.Is(err, common.ErrInsufficientBalance) {
		t.Fatalf("error = %v, want ErrInsufficientBalance", err)
	}
	if len(node.transfers) != 0 {
		t.Errorf("shares moved despite rejection")
	}
}

func TestGetAccountAbsentIsZeroed(t *testing.T) {
	rm := newFakeRepoManager()
	svc, _ := newLedgerService(t, rm, &fakeNode{})

	account, err := svc.GetAccount(context.Background(), "fresh1")
	if err != nil {
		t.Fatalf("GetAccount error: %v", err)
	}
	if account.Address != "fresh1" {
		t.Errorf("address = %s, want fresh1", account.Address)
	}
	if !account.PendingDeposit.IsZero() || !account.PendingWithdraw.IsZero() || !account.SettledShares.IsZero() {
		t.Errorf("fresh account not zeroed: %+v", account)
	}
}
