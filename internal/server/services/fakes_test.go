package services

import (
	"context"
	"crypto/ed25519"
	"database/sql"
	"encoding/hex"
	"io"
	"log/slog"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/dbx"
	"github.com/tidemill/haulbatch/internal/logging"
	"github.com/tidemill/haulbatch/internal/server/auth"
	"github.com/tidemill/haulbatch/internal/server/config"
	"github.com/tidemill/haulbatch/internal/server/models"
	accountsrepo "github.com/tidemill/haulbatch/internal/server/repositories/accounts"
	bindingrepo "github.com/tidemill/haulbatch/internal/server/repositories/binding"
	paramsrepo "github.com/tidemill/haulbatch/internal/server/repositories/params"
	settlementsrepo "github.com/tidemill/haulbatch/internal/server/repositories/settlements"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SelfAddress = "batcher1"
	cfg.InputAsset = "lp"
	cfg.PoolID = "pool-1"
	cfg.PoolAssetIndex = 0
	return cfg
}

// testAuthority derives a deterministic authority key pair and returns the
// private key plus its hex public key as stored in params.
func testAuthority(t *testing.T) (ed25519.PrivateKey, string) {
	t.Helper()
	key := auth.DeriveAuthorityKey([]byte("passphrase"), []byte("salt"))
	return key, hex.EncodeToString(key.Public().(ed25519.PublicKey))
}

func mintTestToken(t *testing.T, key ed25519.PrivateKey, requester string) string {
	t.Helper()
	token, err := auth.MintToken(key, requester, time.Minute)
	if err != nil {
		t.Fatalf("MintToken error: %v", err)
	}
	return token
}

func newTestGate(t *testing.T) *auth.Gate {
	t.Helper()
	gate, err := auth.NewGate(128)
	if err != nil {
		t.Fatalf("NewGate error: %v", err)
	}
	return gate
}

// --- in-memory repositories ---

type fakeAccountsRepo struct {
	accounts map[string]*models.Account
	getErr   error
	saveErr  error
}

func newFakeAccountsRepo() *fakeAccountsRepo {
	return &fakeAccountsRepo{accounts: make(map[string]*models.Account)}
}

func (f *fakeAccountsRepo) put(a *models.Account) {
	cp := *a
	f.accounts[a.Address] = &cp
}

func (f *fakeAccountsRepo) Get(ctx context.Context, address string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.accounts[address]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountsRepo) Save(ctx context.Context, a *models.Account) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.put(a)
	return nil
}

type fakeBindingRepo struct {
	binding *models.Binding
	getErr  error
	saveErr error
}

func (f *fakeBindingRepo) Get(ctx context.Context) (*models.Binding, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.binding == nil {
		return nil, common.ErrNotFound
	}
	cp := *f.binding
	return &cp, nil
}

func (f *fakeBindingRepo) Save(ctx context.Context, b *models.Binding) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *b
	f.binding = &cp
	return nil
}

type fakeParamsRepo struct {
	params  *models.Params
	getErr  error
	saveErr error
}

func (f *fakeParamsRepo) Get(ctx context.Context) (*models.Params, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.params == nil {
		return nil, common.ErrNotFound
	}
	cp := *f.params
	return &cp, nil
}

func (f *fakeParamsRepo) Save(ctx context.Context, p *models.Params) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *p
	f.params = &cp
	return nil
}

type fakeSettlementsRepo struct {
	records   map[string]*models.Settlement
	createErr error
}

func newFakeSettlementsRepo() *fakeSettlementsRepo {
	return &fakeSettlementsRepo{records: make(map[string]*models.Settlement)}
}

func (f *fakeSettlementsRepo) Create(ctx context.Context, s *models.Settlement) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *s
	f.records[s.ID] = &cp
	return nil
}

func (f *fakeSettlementsRepo) Get(ctx context.Context, id string) (*models.Settlement, error) {
	s, ok := f.records[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

type fakeRepoManager struct {
	a *fakeAccountsRepo
	b *fakeBindingRepo
	p *fakeParamsRepo
	s *fakeSettlementsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		a: newFakeAccountsRepo(),
		b: &fakeBindingRepo{},
		p: &fakeParamsRepo{},
		s: newFakeSettlementsRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error       { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository       { return m.a }
func (m *fakeRepoManager) Binding(db dbx.DBTX) bindingrepo.Repository         { return m.b }
func (m *fakeRepoManager) Params(db dbx.DBTX) paramsrepo.Repository           { return m.p }
func (m *fakeRepoManager) Settlements(db dbx.DBTX) settlementsrepo.Repository { return m.s }

// --- fake hauler node ---

type transferCall struct {
	asset  string
	from   string
	to     string
	amount math.Int
}

type fakeNode struct {
	operator    string
	operatorErr error

	acceptedAsset string

	// balanceSeq is popped once per BalanceOf call.
	balanceSeq []math.Int

	depositReported math.Int
	depositErr      error

	withdrawReported math.Int
	withdrawErr      error

	transfers     []transferCall
	transferErr   error
	transferFroms []transferCall
	transferFrom  error
	approvals     []transferCall
	approveErr    error

	estimateOut math.Int
	estimateErr error

	convertOut  math.Int
	convertErr  error
	lastMinOut  math.Int
	convertedIn math.Int
}

func (n *fakeNode) Deposit(ctx context.Context, amount math.Int, beneficiary string) (math.Int, error) {
	if n.depositErr != nil {
		return math.ZeroInt(), n.depositErr
	}
	return n.depositReported, nil
}

func (n *fakeNode) Withdraw(ctx context.Context, shareAmount math.Int, beneficiary string) (math.Int, error) {
	if n.withdrawErr != nil {
		return math.ZeroInt(), n.withdrawErr
	}
	return n.withdrawReported, nil
}

func (n *fakeNode) AcceptedAsset(ctx context.Context) (string, error) {
	return n.acceptedAsset, nil
}

func (n *fakeNode) Operator(ctx context.Context) (string, error) {
	if n.operatorErr != nil {
		return "", n.operatorErr
	}
	return n.operator, nil
}

func (n *fakeNode) Transfer(ctx context.Context, asset, to string, amount math.Int) error {
	if n.transferErr != nil {
		return n.transferErr
	}
	n.transfers = append(n.transfers, transferCall{asset: asset, to: to, amount: amount})
	return nil
}

func (n *fakeNode) TransferFrom(ctx context.Context, asset, from, to string, amount math.Int) error {
	if n.transferFrom != nil {
		return n.transferFrom
	}
	n.transferFroms = append(n.transferFroms, transferCall{asset: asset, from: from, to: to, amount: amount})
	return nil
}

func (n *fakeNode) BalanceOf(ctx context.Context, asset, holder string) (math.Int, error) {
	if len(n.balanceSeq) == 0 {
		return math.ZeroInt(), nil
	}
	v := n.balanceSeq[0]
	n.balanceSeq = n.balanceSeq[1:]
	return v, nil
}

func (n *fakeNode) Approve(ctx context.Context, asset, spender string, amount math.Int) error {
	if n.approveErr != nil {
		return n.approveErr
	}
	n.approvals = append(n.approvals, transferCall{asset: asset, to: spender, amount: amount})
	return nil
}

func (n *fakeNode) EstimateWithdrawOneAsset(ctx context.Context, pool string, amount math.Int, assetIndex int32) (math.Int, error) {
	if n.estimateErr != nil {
		return math.ZeroInt(), n.estimateErr
	}
	return n.estimateOut, nil
}

func (n *fakeNode) WithdrawOneAsset(ctx context.Context, pool string, amount math.Int, assetIndex int32, minOut math.Int) (math.Int, error) {
	n.lastMinOut = minOut
	n.convertedIn = amount
	if n.convertErr != nil {
		return math.ZeroInt(), n.convertErr
	}
	return n.convertOut, nil
}
