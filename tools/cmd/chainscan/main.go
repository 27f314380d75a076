// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Chainscan decodes and inspects chain core value types: block headers,
// public keys and signatures.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/antelopenetwork/chaincore"
)

var cmd = &cobra.Command{
	Use:   "chainscan",
	Short: "Chain value type utilities",
}

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(*cobra.Command, []string) {
		fmt.Printf("%s %s\n", cmd.Short, chaincore.Version)
	},
}

func init() {
	cmd.AddCommand(cmdVersion)
}

func main() {
	_ = cmd.Execute()
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%+v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %+v", append(otherArgs, err)...)
	}
}
