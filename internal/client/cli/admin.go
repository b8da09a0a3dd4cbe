package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

func (a *App) SetCapacity(ctx context.Context) error {

	max, err := GetSimpleText(a.reader, "- Enter new pending-deposit cap", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.SetCapacity(ctx, max); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("capacity updated")
	return nil
}

func (a *App) SetSlippage(ctx context.Context) error {

	line, err := GetSimpleText(a.reader, "- Enter slippage tolerance (basis points)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	bps, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.SetSlippageTolerance(ctx, int32(bps)); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("slippage updated")
	return nil
}

func (a *App) SetAuthority(ctx context.Context) error {

	key, err := GetSimpleText(a.reader, "- Enter authority public key (hex)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.SetAuthority(ctx, key); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("authority updated")
	return nil
}

func (a *App) ProposeGov(ctx context.Context) error {

	candidate, err := GetSimpleText(a.reader, "- Enter governance candidate address", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.ProposeGovernance(ctx, candidate); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("handover proposed")
	return nil
}

func (a *App) AcceptGov(ctx context.Context) error {

	if err := a.client.AcceptGovernance(ctx); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("handover accepted")
	return nil
}

func (a *App) Sweep(ctx context.Context) error {

	asset, err := GetSimpleText(a.reader, "- Enter asset id to sweep", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	amount, err := a.client.EmergencySweep(ctx, asset)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("swept %s %s to governance\n", amount, asset)
	return nil
}
