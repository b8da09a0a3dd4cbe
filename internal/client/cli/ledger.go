package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) Deposit(ctx context.Context) error {

	requester, err := GetSimpleText(a.reader, "- Enter requester address", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	amount, err := GetSimpleText(a.reader, "- Enter amount", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	authorization, err := GetSimpleText(a.reader, "- Enter authorization token", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	account, err := a.client.RequestDeposit(ctx, requester, amount, authorization)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("pending deposit: %s\n", account.PendingDeposit)
	return nil
}

func (a *App) ConvDeposit(ctx context.Context) error {

	requester, err := GetSimpleText(a.reader, "- Enter requester address", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	amountIn, err := GetSimpleText(a.reader, "- Enter input asset amount", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	authorization, err := GetSimpleText(a.reader, "- Enter authorization token", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	converted, account, err := a.client.RequestDepositViaConversion(ctx, requester, amountIn, authorization)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("converted: %s, pending deposit: %s\n", converted, account.PendingDeposit)
	return nil
}

func (a *App) Withdraw(ctx context.Context) error {

	requester, err := GetSimpleText(a.reader, "- Enter requester address", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	amount, err := GetSimpleText(a.reader, "- Enter share amount", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	transferIn, err := GetSimpleText(a.reader, "- Enter shares to transfer in (empty for none)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	account, err := a.client.RequestWithdraw(ctx, requester, amount, transferIn)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("pending withdraw: %s\n", account.PendingWithdraw)
	return nil
}

func (a *App) Claim(ctx context.Context) error {

	requester, err := GetSimpleText(a.reader, "- Enter requester address", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	recipient, err := GetSimpleText(a.reader, "- Enter recipient address", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	amount, err := GetSimpleText(a.reader, "- Enter share amount", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	account, err := a.client.Claim(ctx, requester, recipient, amount)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("settled shares remaining: %s\n", account.SettledShares)
	return nil
}
