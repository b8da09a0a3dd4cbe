package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tidemill/haulbatch/internal/filex"
)

func (a *App) Account(ctx context.Context) error {

	address, err := GetSimpleText(a.reader, "- Enter account address", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	account, err := a.client.GetAccount(ctx, address)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("address: %s\n", account.Address)
	fmt.Printf("pending deposit: %s\n", account.PendingDeposit)
	fmt.Printf("pending withdraw: %s\n", account.PendingWithdraw)
	fmt.Printf("settled shares: %s\n", account.SettledShares)
	return nil
}

func (a *App) Params(ctx context.Context) error {

	params, binding, err := a.client.GetParams(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("vault: %s (accepted asset %s)\n", binding.VaultId, binding.AcceptedAsset)
	fmt.Printf("pending: %s / %s\n", binding.CurrentPending, binding.MaxPending)
	fmt.Printf("slippage: %d bps\n", params.SlippageBps)
	fmt.Printf("governance: %s", params.Governance)
	if params.PendingGovernance != "" {
		fmt.Printf(" (handover pending to %s)", params.PendingGovernance)
	}
	fmt.Println()
	fmt.Printf("authority key: %s\n", params.AuthorityKey)
	return nil
}

func (a *App) Settlement(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "- Enter settlement id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	record, err := a.client.GetSettlement(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("%s %s: %d users, requested %s, reported %s, measured %s, residue %s\n",
		record.Id, record.Direction, len(record.Users), record.Requested, record.Reported, record.Measured, record.Residue)
	return nil
}

// Export fetches one settlement record and saves it as JSON under ./exports.
func (a *App) Export(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "- Enter settlement id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	record, err := a.client.GetSettlement(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	dir, err := filex.EnsureSubDir("exports")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path := filepath.Join(dir, record.Id+".json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("saved %s\n", path)
	return nil
}
