package services

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/math"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/server/models"
)

func newAdminService(t *testing.T, rm *fakeRepoManager, node *fakeNode) *AdminService {
	t.Helper()
	db, mock := newSQLMockDB(t)
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		db.Close()
	})
	return NewAdminService(db, rm, node, NewOpGuard(), testConfig(), testLogger())
}

func TestBootstrapSeedsRows(t *testing.T) {
	rm := newFakeRepoManager()
	node := &fakeNode{acceptedAsset: "usdq"}
	svc := newAdminService(t, rm, node)

	cfg := testConfig()
	cfg.VaultID = "vault-1"
	cfg.MaxPendingDeposits = "5000"
	cfg.SlippageBps = 75
	cfg.Governance = "gov1"

	if err := svc.Bootstrap(context.Background(), cfg); err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}

	b, err := rm.b.Get(context.Background())
	if err != nil {
		t.Fatalf("binding not created: %v", err)
	}
	if b.VaultID != "vault-1" || b.AcceptedAsset != "usdq" {
		t.Errorf("binding = %+v", b)
	}
	if !b.MaxPending.Equal(math.NewInt(5000)) || !b.CurrentPending.IsZero() {
		t.Errorf("binding counters = max %s current %s", b.MaxPending, b.CurrentPending)
	}

	p, err := rm.p.Get(context.Background())
	if err != nil {
		t.Fatalf("params not created: %v", err)
	}
	if p.SlippageBps != 75 || p.Governance != "gov1" {
		t.Errorf("params = %+v", p)
	}
}

func TestBootstrapKeepsExistingRows(t *testing.T) {
	rm := newFakeRepoManager()
	b := newTestBinding()
	b.CurrentPending = math.NewInt(42)
	rm.b.binding = b
	rm.p.params = &models.Params{SlippageBps: 10, Governance: "oldgov", AuthorityKey: "aa"}

	svc := newAdminService(t, rm, &fakeNode{acceptedAsset: "other"})

	if err := svc.Bootstrap(context.Background(), testConfig()); err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}

	got, _ := rm.b.Get(context.Background())
	if !got.CurrentPending.Equal(math.NewInt(42)) {
		t.Errorf("binding clobbered on restart: %+v", got)
	}
	p, _ := rm.p.Get(context.Background())
	if p.Governance != "oldgov" {
		t.Errorf("params clobbered on restart: %+v", p)
	}
}

func TestSetCapacity(t *testing.T) {
	rm := newFakeRepoManager()
	b := newTestBinding()
	b.CurrentPending = math.NewInt(500)
	rm.b.binding = b

	svc := newAdminService(t, rm, &fakeNode{operator: "op1"})

	// Below the current aggregate is allowed; the cap binds future deposits.
	if err := svc.SetCapacity(context.Background(), "op1", math.NewInt(100)); err != nil {
		t.Fatalf("SetCapacity error: %v", err)
	}
	got, _ := rm.b.Get(context.Background())
	if !got.MaxPending.Equal(math.NewInt(100)) {
		t.Errorf("max pending = %s, want 100", got.MaxPending)
	}

	if err := svc.SetCapacity(context.Background(), "op1", math.NewInt(-1)); !errors.Is(err, common.ErrInvalidParameter) {
		t.Errorf("negative cap error = %v, want ErrInvalidParameter", err)
	}
	if err := svc.SetCapacity(context.Background(), "stranger", math.NewInt(100)); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("non-operator error = %v, want ErrUnauthorized", err)
	}
}

func TestSetSlippageTolerance(t *testing.T) {
	rm := newFakeRepoManager()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: "aa"}

	svc := newAdminService(t, rm, &fakeNode{operator: "op1"})

	if err := svc.SetSlippageTolerance(context.Background(), "op1", 250); err != nil {
		t.Fatalf("SetSlippageTolerance error: %v", err)
	}
	p, _ := rm.p.Get(context.Background())
	if p.SlippageBps != 250 {
		t.Errorf("slippage = %d, want 250", p.SlippageBps)
	}

	for _, bps := range []int32{-1, 10_001} {
		if err := svc.SetSlippageTolerance(context.Background(), "op1", bps); !errors.Is(err, common.ErrInvalidParameter) {
			t.Errorf("bps %d: error = %v, want ErrInvalidParameter", bps, err)
		}
	}
	if err := svc.SetSlippageTolerance(context.Background(), "stranger", 250); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("non-operator error = %v, want ErrUnauthorized", err)
	}
}

func TestSetAuthority(t *testing.T) {
	_, authorityHex := testAuthority(t)
	rm := newFakeRepoManager()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: "aa"}

	svc := newAdminService(t, rm, &fakeNode{})

	if err := svc.SetAuthority(context.Background(), "gov1", authorityHex); err != nil {
		t.Fatalf("SetAuthority error: %v", err)
	}
	p, _ := rm.p.Get(context.Background())
	if p.AuthorityKey != authorityHex {
		t.Errorf("authority key not updated")
	}

	if err := svc.SetAuthority(context.Background(), "gov1", "not-hex"); !errors.Is(err, common.ErrInvalidParameter) {
		t.Errorf("malformed key error = %v, want ErrInvalidParameter", err)
	}
	if err := svc.SetAuthority(context.Background(), "op1", authorityHex); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("non-governance error = %v, want ErrUnauthorized", err)
	}
}

func TestGovernanceHandover(t *testing.T) {
	rm := newFakeRepoManager()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: "aa"}

	svc := newAdminService(t, rm, &fakeNode{})

	if err := svc.ProposeGovernance(context.Background(), "intruder", "gov2"); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("propose by non-governance error = %v, want ErrUnauthorized", err)
	}
	if err := svc.ProposeGovernance(context.Background(), "gov1", ""); !errors.Is(err, common.ErrInvalidParameter) {
		t.Fatalf("empty candidate error = %v, want ErrInvalidParameter", err)
	}

	if err := svc.ProposeGovernance(context.Background(), "gov1", "gov2"); err != nil {
		t.Fatalf("ProposeGovernance error: %v", err)
	}

	// Until accepted, the old governance keeps its rights and the candidate
	// has none.
	if err := svc.SetAuthority(context.Background(), "gov2", "aa"); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("candidate gained rights before accepting: %v", err)
	}
	if err := svc.AcceptGovernance(context.Background(), "gov1"); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("accept by non-candidate error = %v, want ErrUnauthorized", err)
	}

	if err := svc.AcceptGovernance(context.Background(), "gov2"); err != nil {
		t.Fatalf("AcceptGovernance error: %v", err)
	}
	p, _ := rm.p.Get(context.Background())
	if p.Governance != "gov2" || p.PendingGovernance != "" {
		t.Errorf("handover incomplete: %+v", p)
	}

	// A second accept must fail: there is no pending candidate anymore.
	if err := svc.AcceptGovernance(context.Background(), "gov2"); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("repeat accept error = %v, want ErrUnauthorized", err)
	}
}

func TestEmergencySweep(t *testing.T) {
	rm := newFakeRepoManager()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: "aa"}

	node := &fakeNode{balanceSeq: []math.Int{math.NewInt(777)}}
	svc := newAdminService(t, rm, node)

	swept, err := svc.EmergencySweep(context.Background(), "gov1", "usdq")
	if err != nil {
		t.Fatalf("EmergencySweep error: %v", err)
	}
	if !swept.Equal(math.NewInt(777)) {
		t.Errorf("swept = %s, want 777", swept)
	}
	if len(node.transfers) != 1 {
		t.Fatalf("transfers = %d, want 1", len(node.transfers))
	}
	tr := node.transfers[0]
	if tr.asset != "usdq" || tr.to != "gov1" || !tr.amount.Equal(math.NewInt(777)) {
		t.Errorf("unexpected sweep transfer %+v", tr)
	}
}

func TestEmergencySweepZeroBalance(t *testing.T) {
	rm := newFakeRepoManager()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: "aa"}

	node := &fakeNode{}
	svc := newAdminService(t, rm, node)

	swept, err := svc.EmergencySweep(context.Background(), "gov1", "usdq")
	if err != nil {
		t.Fatalf("EmergencySweep error: %v", err)
	}
	if !swept.IsZero() {
		t.Errorf("swept = %s, want 0", swept)
	}
	if len(node.transfers) != 0 {
		t.Errorf("transfer issued for zero balance")
	}
}

func TestEmergencySweepRequiresGovernance(t *testing.T) {
	rm := newFakeRepoManager()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: "aa"}

	svc := newAdminService(t, rm, &fakeNode{})

	_, err := svc.EmergencySweep(context.Background(), "op1", "usdq")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
}

func TestGetParams(t *testing.T) {
	rm := newFakeRepoManager()
	rm.b.binding = newTestBinding()
	rm.p.params = &models.Params{SlippageBps: 100, Governance: "gov1", AuthorityKey: "aa"}

	svc := newAdminService(t, rm, &fakeNode{})

	p, b, err := svc.GetParams(context.Background())
	if err != nil {
		t.Fatalf("GetParams error: %v", err)
	}
	if p.Governance != "gov1" || b.VaultID != "vault-1" {
		t.Errorf("GetParams = %+v / %+v", p, b)
	}
}
