// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gitlab.com/antelopenetwork/chaincore/pkg/keys"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <key> <signature> <message>",
	Short: "Verify a signature over a message",
	Args:  cobra.ExactArgs(3),
	Run:   verifySignature,
}

func init() {
	cmd.AddCommand(verifyCmd)
}

func verifySignature(_ *cobra.Command, args []string) {
	key, err := keys.ParsePublicKey(args[0])
	checkf(err, "parse public key")

	sig, err := keys.ParseSignature(args[1])
	checkf(err, "parse signature")

	err = key.Verify([]byte(args[2]), sig)
	switch {
	case err == nil:
		color.Green("✔ %s signed %q\n", args[0], args[2])
	case errors.Is(err, keys.ErrVerification):
		hash := sha256.Sum256([]byte(args[2]))
		if signer, err := keys.RecoverPublicKey(hash[:], sig); err == nil {
			fmt.Printf("Recovered signer %s\n", signer.Text())
		}
		color.Red("✘ signature does not match\n")
		os.Exit(1)
	default:
		check(err)
	}
}
