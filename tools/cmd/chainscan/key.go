// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gitlab.com/antelopenetwork/chaincore/pkg/keys"
)

var keyCmd = &cobra.Command{
	Use:   "key <text|hex>",
	Short: "Inspect a public key",
	Args:  cobra.ExactArgs(1),
	Run:   inspectKey,
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new key pair",
	Args:  cobra.NoArgs,
	Run:   generateKey,
}

func init() {
	cmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keyGenerateCmd)
}

func inspectKey(_ *cobra.Command, args []string) {
	key := parseKeyArg(args[0])

	wr := tabwriter.NewWriter(os.Stdout, 3, 4, 2, ' ', 0)
	fmt.Fprintf(wr, "Text\t%s\n", key.Text())
	fmt.Fprintf(wr, "Compressed\t%x\n", key.Key.SerializeCompressed())
	fmt.Fprintf(wr, "Uncompressed\t%x\n", key.Key.SerializeUncompressed())
	fmt.Fprintf(wr, "Wire form\t%d bytes\n", key.BinarySize())
	check(wr.Flush())
}

func parseKeyArg(s string) keys.PublicKey {
	if strings.HasPrefix(s, keys.PublicKeyPrefix) {
		key, err := keys.ParsePublicKey(s)
		checkf(err, "parse key text")
		return key
	}

	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	checkf(err, "decode hex")
	key, err := keys.PublicKeyFromBytes(b)
	checkf(err, "parse key bytes")
	return key
}

func generateKey(*cobra.Command, []string) {
	sk, err := keys.GenerateSecretKey()
	check(err)

	fmt.Printf("Secret %s\n", sk.WIF())
	fmt.Printf("Public %s\n", sk.PublicKey().Text())
}
