package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Account(ctx context.Context) error
	Params(ctx context.Context) error
	Settlement(ctx context.Context) error
	Export(ctx context.Context) error
	Deposit(ctx context.Context) error
	ConvDeposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Claim(ctx context.Context) error
	SettleDeposits(ctx context.Context) error
	SettleWithdrawals(ctx context.Context) error
	SetCapacity(ctx context.Context) error
	SetSlippage(ctx context.Context) error
	SetAuthority(ctx context.Context) error
	ProposeGov(ctx context.Context) error
	AcceptGov(ctx context.Context) error
	Sweep(ctx context.Context) error
	MintToken(ctx context.Context) error
	GenSalt(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the batcher CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hb> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Queries: account, params, settlement, export")
			printlnFn("Ledger: deposit, convdeposit, withdraw, claim")
			printlnFn("Settlement: settle-deposits, settle-withdrawals")
			printlnFn("Admin: set-capacity, set-slippage, set-authority, propose-gov, accept-gov, sweep")
			printlnFn("Authority: mint-token, gen-salt")
			printlnFn("exit | quit")

		case "account":
			_ = a.Account(ctx)

		case "params":
			_ = a.Params(ctx)

		case "settlement":
			_ = a.Settlement(ctx)

		case "export":
			_ = a.Export(ctx)

		case "deposit":
			_ = a.Deposit(ctx)

		case "convdeposit":
			_ = a.ConvDeposit(ctx)

		case "withdraw":
			_ = a.Withdraw(ctx)

		case "claim":
			_ = a.Claim(ctx)

		case "settle-deposits":
			_ = a.SettleDeposits(ctx)

		case "settle-withdrawals":
			_ = a.SettleWithdrawals(ctx)

		case "set-capacity":
			_ = a.SetCapacity(ctx)

		case "set-slippage":
			_ = a.SetSlippage(ctx)

		case "set-authority":
			_ = a.SetAuthority(ctx)

		case "propose-gov":
			_ = a.ProposeGov(ctx)

		case "accept-gov":
			_ = a.AcceptGov(ctx)

		case "sweep":
			_ = a.Sweep(ctx)

		case "mint-token":
			_ = a.MintToken(ctx)

		case "gen-salt":
			_ = a.GenSalt(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
