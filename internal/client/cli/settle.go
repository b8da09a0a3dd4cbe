package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getUserList() ([]string, error) {
	line, err := GetSimpleText(a.reader, "- Enter user addresses (space separated)", os.Stdout)
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

func (a *App) SettleDeposits(ctx context.Context) error {

	users, err := a.getUserList()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	record, err := a.client.SettleDeposits(ctx, users)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("batch %s settled: %d users, measured %s, residue %s\n",
		record.Id, len(record.Users), record.Measured, record.Residue)
	return nil
}

func (a *App) SettleWithdrawals(ctx context.Context) error {

	users, err := a.getUserList()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	record, err := a.client.SettleWithdrawals(ctx, users)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("batch %s settled: %d users, measured %s, residue %s\n",
		record.Id, len(record.Users), record.Measured, record.Residue)
	return nil
}
