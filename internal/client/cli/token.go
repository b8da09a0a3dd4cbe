package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/tidemill/haulbatch/internal/server/auth"
	"github.com/tidemill/haulbatch/internal/shared"
)

// MintToken derives the authority key pair from a passphrase and salt and
// signs a deposit authorization for one requester. The private key never
// leaves this process; the printed public key is what governance registers
// on the server.
func (a *App) MintToken(ctx context.Context) error {

	requester, err := GetSimpleText(a.reader, "- Enter requester address", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	saltHex, err := GetSimpleText(a.reader, "- Enter key salt (hex)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	minutesLine, err := GetSimpleText(a.reader, "- Enter validity (minutes)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	minutes, err := strconv.Atoi(minutesLine)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	passphrase, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer shared.WipeByteArray(passphrase)

	key := auth.DeriveAuthorityKey(passphrase, salt)

	token, err := auth.MintToken(key, requester, time.Duration(minutes)*time.Minute)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("public key: %x\n", key.Public())
	fmt.Printf("token: %s\n", token)
	return nil
}

// GenSalt prints a fresh random salt for authority key derivation.
func (a *App) GenSalt(ctx context.Context) error {

	salt, err := shared.MakeRandHexString(16)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("salt: %s\n", salt)
	return nil
}
