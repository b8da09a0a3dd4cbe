package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tidemill/haulbatch/internal/client/config"
	pb "github.com/tidemill/haulbatch/internal/proto"
)

type fakeClient struct {
	account    *pb.Account
	settlement *pb.Settlement
	err        error

	lastUsers []string
	lastBps   int32
	lastMax   string
}

func (c *fakeClient) Close() error { return nil }

func (c *fakeClient) RequestDeposit(ctx context.Context, requester, amount, authorization string) (*pb.Account, error) {
	return c.account, c.err
}

func (c *fakeClient) RequestDepositViaConversion(ctx context.Context, requester, amountIn, authorization string) (string, *pb.Account, error) {
	return "990", c.account, c.err
}

func (c *fakeClient) RequestWithdraw(ctx context.Context, requester, amount, transferInShares string) (*pb.Account, error) {
	return c.account, c.err
}

func (c *fakeClient) Claim(ctx context.Context, requester, recipient, amount string) (*pb.Account, error) {
	return c.account, c.err
}

func (c *fakeClient) SettleDeposits(ctx context.Context, users []string) (*pb.Settlement, error) {
	c.lastUsers = users
	return c.settlement, c.err
}

func (c *fakeClient) SettleWithdrawals(ctx context.Context, users []string) (*pb.Settlement, error) {
	c.lastUsers = users
	return c.settlement, c.err
}

func (c *fakeClient) SetCapacity(ctx context.Context, max string) error {
	c.lastMax = max
	return c.err
}

func (c *fakeClient) SetSlippageTolerance(ctx context.Context, bps int32) error {
	c.lastBps = bps
	return c.err
}

func (c *fakeClient) SetAuthority(ctx context.Context, authorityKey string) error { return c.err }
func (c *fakeClient) ProposeGovernance(ctx context.Context, candidate string) error {
	return c.err
}
func (c *fakeClient) AcceptGovernance(ctx context.Context) error { return c.err }
func (c *fakeClient) EmergencySweep(ctx context.Context, asset string) (string, error) {
	return "777", c.err
}

func (c *fakeClient) GetAccount(ctx context.Context, address string) (*pb.Account, error) {
	return c.account, c.err
}

func (c *fakeClient) GetParams(ctx context.Context) (*pb.Params, *pb.Binding, error) {
	return &pb.Params{Governance: "gov1"}, &pb.Binding{VaultId: "vault-1"}, c.err
}

func (c *fakeClient) GetSettlement(ctx context.Context, id string) (*pb.Settlement, error) {
	return c.settlement, c.err
}

func newTestApp(input string, c *fakeClient) *App {
	return &App{
		config: &config.Config{},
		client: c,
		reader: bufio.NewReader(strings.NewReader(input)),
	}
}

func testAccount() *pb.Account {
	return &pb.Account{
		Address:         "user1",
		PendingDeposit:  "100",
		PendingWithdraw: "0",
		SettledShares:   "250",
	}
}

func TestAppDeposit(t *testing.T) {
	c := &fakeClient{account: testAccount()}
	a := newTestApp("user1\n100\nsome.token\n", c)

	if err := a.Deposit(context.Background()); err != nil {
		t.Fatalf("Deposit error: %v", err)
	}
}

func TestAppDepositClientError(t *testing.T) {
	c := &fakeClient{err: errors.New("capacity exceeded")}
	a := newTestApp("user1\n100\nsome.token\n", c)

	if err := a.Deposit(context.Background()); err == nil {
		t.Fatal("expected client error")
	}
}

func TestAppWithdraw(t *testing.T) {
	c := &fakeClient{account: testAccount()}
	a := newTestApp("user1\n150\n\n", c)

	if err := a.Withdraw(context.Background()); err != nil {
		t.Fatalf("Withdraw error: %v", err)
	}
}

func TestAppSettleDepositsParsesUserList(t *testing.T) {
	c := &fakeClient{settlement: &pb.Settlement{Id: "b-1", Users: []string{"user1", "user2"}, Measured: "75", Residue: "0"}}
	a := newTestApp("user1 user2  user3\n", c)

	if err := a.SettleDeposits(context.Background()); err != nil {
		t.Fatalf("SettleDeposits error: %v", err)
	}
	if len(c.lastUsers) != 3 || c.lastUsers[2] != "user3" {
		t.Errorf("users = %v, want 3 split on whitespace", c.lastUsers)
	}
}

func TestAppSetSlippage(t *testing.T) {
	c := &fakeClient{}
	a := newTestApp("250\n", c)

	if err := a.SetSlippage(context.Background()); err != nil {
		t.Fatalf("SetSlippage error: %v", err)
	}
	if c.lastBps != 250 {
		t.Errorf("bps = %d, want 250", c.lastBps)
	}
}

func TestAppSetSlippageRejectsNonNumeric(t *testing.T) {
	c := &fakeClient{}
	a := newTestApp("lots\n", c)

	if err := a.SetSlippage(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
	if c.lastBps != 0 {
		t.Errorf("client called despite parse error")
	}
}

func TestAppSetCapacity(t *testing.T) {
	c := &fakeClient{}
	a := newTestApp("9000\n", c)

	if err := a.SetCapacity(context.Background()); err != nil {
		t.Fatalf("SetCapacity error: %v", err)
	}
	if c.lastMax != "9000" {
		t.Errorf("max = %q, want 9000", c.lastMax)
	}
}

func TestAppParams(t *testing.T) {
	c := &fakeClient{}
	a := newTestApp("", c)

	if err := a.Params(context.Background()); err != nil {
		t.Fatalf("Params error: %v", err)
	}
}

func TestAppAccount(t *testing.T) {
	c := &fakeClient{account: testAccount()}
	a := newTestApp("user1\n", c)

	if err := a.Account(context.Background()); err != nil {
		t.Fatalf("Account error: %v", err)
	}
}
