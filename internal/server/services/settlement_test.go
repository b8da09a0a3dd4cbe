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

func newTestBinding() *models.Binding {
	return &models.Binding{
		VaultID:        "vault-1",
		AcceptedAsset:  "usdq",
		MaxPending:     math.NewInt(1_000_000),
		CurrentPending: math.ZeroInt(),
	}
}

func newSettlementService(t *testing.T, rm *fakeRepoManager, node *fakeNode) (*SettlementService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		db.Close()
	})
	return NewSettlementService(db, rm, node, NewOpGuard(), nil, testConfig(), testLogger()), mock
}

func TestSettleDepositsProRata(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.NewInt(100), PendingWithdraw: math.ZeroInt(), SettledShares: math.ZeroInt()})
	rm.a.put(&models.Account{Address: "user2", PendingDeposit: math.NewInt(50), PendingWithdraw: math.ZeroInt(), SettledShares: math.NewInt(7)})

	node := &fakeNode{
		operator:        "op1",
		balanceSeq:      []math.Int{math.NewInt(10), math.NewInt(85)},
		depositReported: math.NewInt(75),
	}

	svc, mock := newSettlementService(t, rm, node)
	mock.ExpectBegin()
	mock.ExpectCommit()

	record, err := svc.SettleDeposits(context.Background(), "op1", []string{"user1", "user2"})
	if err != nil {
		t.Fatalf("SettleDeposits error: %v", err)
	}

	if !record.Requested.Equal(math.NewInt(150)) {
		t.Errorf("requested = %s, want 150", record.Requested)
	}
	if !record.Measured.Equal(math.NewInt(75)) {
		t.Errorf("measured = %s, want 75", record.Measured)
	}
	if !record.Residue.IsZero() {
		t.Errorf("residue = %s, want 0", record.Residue)
	}
	if record.Direction != models.SettleDeposits {
		t.Errorf("direction = %s, want %s", record.Direction, models.SettleDeposits)
	}

	a1, _ := rm.a.Get(context.Background(), "user1")
	if !a1.SettledShares.Equal(math.NewInt(50)) {
		t.Errorf("user1 shares = %s, want 50", a1.SettledShares)
	}
	if !a1.PendingDeposit.IsZero() {
		t.Errorf("user1 pending deposit = %s, want 0", a1.PendingDeposit)
	}
	a2, _ := rm.a.Get(context.Background(), "user2")
	if !a2.SettledShares.Equal(math.NewInt(32)) {
		t.Errorf("user2 shares = %s, want 32", a2.SettledShares)
	}

	stored, err := rm.s.Get(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("settlement record not persisted: %v", err)
	}
	if len(stored.Users) != 2 {
		t.Errorf("stored users = %v, want 2 entries", stored.Users)
	}
}

func TestSettleDepositsResidueStaysBelowUserCount(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	for _, addr := range []string{"u1", "u2", "u3"} {
		rm.a.put(&models.Account{Address: addr, PendingDeposit: math.NewInt(1), PendingWithdraw: math.ZeroInt(), SettledShares: math.ZeroInt()})
	}

	node := &fakeNode{
		operator:        "op1",
		balanceSeq:      []math.Int{math.ZeroInt(), math.NewInt(2)},
		depositReported: math.NewInt(2),
	}

	svc, mock := newSettlementService(t, rm, node)
	mock.ExpectBegin()
	mock.ExpectCommit()

	record, err := svc.SettleDeposits(context.Background(), "op1", []string{"u1", "u2", "u3"})
	if err != nil {
		t.Fatalf("SettleDeposits error: %v", err)
	}

	// 1*2/3 floors to zero for everyone, so the whole amount is residue.
	if !record.Residue.Equal(math.NewInt(2)) {
		t.Errorf("residue = %s, want 2", record.Residue)
	}
	if !record.Residue.LT(math.NewInt(3)) {
		t.Errorf("residue %s not below user count", record.Residue)
	}
}

func TestSettleDepositsDeduplicatesUsers(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.NewInt(40), PendingWithdraw: math.ZeroInt(), SettledShares: math.ZeroInt()})

	node := &fakeNode{
		operator:        "op1",
		balanceSeq:      []math.Int{math.ZeroInt(), math.NewInt(40)},
		depositReported: math.NewInt(40),
	}

	svc, mock := newSettlementService(t, rm, node)
	mock.ExpectBegin()
	mock.ExpectCommit()

	record, err := svc.SettleDeposits(context.Background(), "op1", []string{"user1", "user1", "user1"})
	if err != nil {
		t.Fatalf("SettleDeposits error: %v", err)
	}

	if !record.Requested.Equal(math.NewInt(40)) {
		t.Errorf("requested = %s, want 40 (duplicates counted once)", record.Requested)
	}
	if len(record.Users) != 1 {
		t.Errorf("users = %v, want single entry", record.Users)
	}
	a, _ := rm.a.Get(context.Background(), "user1")
	if !a.SettledShares.Equal(math.NewInt(40)) {
		t.Errorf("shares = %s, want 40", a.SettledShares)
	}
}

func TestSettleDepositsMismatchAborts(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.NewInt(100), PendingWithdraw: math.ZeroInt(), SettledShares: math.ZeroInt()})

	node := &fakeNode{
		operator:        "op1",
		balanceSeq:      []math.Int{math.ZeroInt(), math.NewInt(74)},
		depositReported: math.NewInt(75),
	}

	// No Begin expected: a mismatch must abort before any ledger write.
	svc, _ := newSettlementService(t, rm, node)

	_, err := svc.SettleDeposits(context.Background(), "op1", []string{"user1"})
	if !errors.Is(err, common.ErrSettlementMismatch) {
		t.Fatalf("error = %v, want ErrSettlementMismatch", err)
	}

	a, _ := rm.a.Get(context.Background(), "user1")
	if !a.PendingDeposit.Equal(math.NewInt(100)) {
		t.Errorf("pending deposit = %s, want unchanged 100", a.PendingDeposit)
	}
	if len(rm.s.records) != 0 {
		t.Errorf("settlement record persisted despite mismatch")
	}
}

func TestSettleDepositsEmptyBatch(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.ZeroInt(), PendingWithdraw: math.ZeroInt(), SettledShares: math.NewInt(5)})

	node := &fakeNode{operator: "op1"}
	svc, _ := newSettlementService(t, rm, node)

	_, err := svc.SettleDeposits(context.Background(), "op1", []string{"user1", "unknown"})
	if !errors.Is(err, common.ErrEmptyBatch) {
		t.Fatalf("error = %v, want ErrEmptyBatch", err)
	}
}

func TestSettleDepositsRequiresOperator(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()

	node := &fakeNode{operator: "op1"}
	svc, _ := newSettlementService(t, rm, node)

	_, err := svc.SettleDeposits(context.Background(), "intruder", []string{"user1"})
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
}

func TestSettleWithdrawalsPaysOutProRata(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.ZeroInt(), PendingWithdraw: math.NewInt(100), SettledShares: math.ZeroInt()})
	rm.a.put(&models.Account{Address: "user2", PendingDeposit: math.ZeroInt(), PendingWithdraw: math.NewInt(50), SettledShares: math.ZeroInt()})

	node := &fakeNode{
		operator:         "op1",
		balanceSeq:       []math.Int{math.ZeroInt(), math.NewInt(120)},
		withdrawReported: math.NewInt(120),
	}

	svc, mock := newSettlementService(t, rm, node)
	mock.ExpectBegin()
	mock.ExpectCommit()

	record, err := svc.SettleWithdrawals(context.Background(), "op1", []string{"user1", "user2"})
	if err != nil {
		t.Fatalf("SettleWithdrawals error: %v", err)
	}

	if record.Direction != models.SettleWithdrawals {
		t.Errorf("direction = %s, want %s", record.Direction, models.SettleWithdrawals)
	}
	if len(node.transfers) != 2 {
		t.Fatalf("payout transfers = %d, want 2", len(node.transfers))
	}
	if node.transfers[0].to != "user1" || !node.transfers[0].amount.Equal(math.NewInt(80)) {
		t.Errorf("payout[0] = %+v, want 80 to user1", node.transfers[0])
	}
	if node.transfers[1].to != "user2" || !node.transfers[1].amount.Equal(math.NewInt(40)) {
		t.Errorf("payout[1] = %+v, want 40 to user2", node.transfers[1])
	}
	if node.transfers[0].asset != "usdq" {
		t.Errorf("payout asset = %s, want usdq", node.transfers[0].asset)
	}

	a1, _ := rm.a.Get(context.Background(), "user1")
	if !a1.PendingWithdraw.IsZero() {
		t.Errorf("user1 pending withdraw = %s, want 0", a1.PendingWithdraw)
	}
}

func TestSettleWithdrawalsPayoutFailureAborts(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.a.put(&models.Account{Address: "user1", PendingDeposit: math.ZeroInt(), PendingWithdraw: math.NewInt(100), SettledShares: math.ZeroInt()})

	node := &fakeNode{
		operator:         "op1",
		balanceSeq:       []math.Int{math.ZeroInt(), math.NewInt(100)},
		withdrawReported: math.NewInt(100),
		transferErr:      errors.New("node unavailable"),
	}

	// No Begin expected: a failed payout aborts before the ledger write.
	svc, _ := newSettlementService(t, rm, node)

	_, err := svc.SettleWithdrawals(context.Background(), "op1", []string{"user1"})
	if err == nil {
		t.Fatal("expected payout error")
	}

	a, _ := rm.a.Get(context.Background(), "user1")
	if !a.PendingWithdraw.Equal(math.NewInt(100)) {
		t.Errorf("pending withdraw = %s, want unchanged 100", a.PendingWithdraw)
	}
}

func TestGetSettlementNotFound(t *testing.T) {
	rm := newFakeRepoManager()
	svc, _ := newSettlementService(t, rm, &fakeNode{})

	_, err := svc.GetSettlement(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestAllocateConservation(t *testing.T) {
	entries := []batchEntry{
		{amount: math.NewInt(3)},
		{amount: math.NewInt(7)},
		{amount: math.NewInt(11)},
	}
	total := math.NewInt(21)
	measured := math.NewInt(100)

	shares, residue := allocate(entries, total, measured)

	sum := residue
	for _, s := range shares {
		sum = sum.Add(s)
	}
	if !sum.Equal(measured) {
		t.Errorf("shares+residue = %s, want %s", sum, measured)
	}
	if residue.IsNegative() {
		t.Errorf("residue = %s, want nonnegative", residue)
	}
	if !residue.LT(math.NewInt(int64(len(entries)))) {
		t.Errorf("residue = %s, want below entry count", residue)
	}
}
