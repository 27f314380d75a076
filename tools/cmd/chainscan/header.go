// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
	"gitlab.com/antelopenetwork/chaincore/protocol"
)

var headerCmd = &cobra.Command{
	Use:   "header <hex>",
	Short: "Decode a block header",
	Args:  cobra.ExactArgs(1),
	Run:   decodeHeader,
}

var headerFlag = struct {
	Signed bool
	V1     bool
	Dump   bool
}{}

func init() {
	cmd.AddCommand(headerCmd)
	headerCmd.Flags().BoolVarP(&headerFlag.Signed, "signed", "s", false, "The input carries the producer signature")
	headerCmd.Flags().BoolVar(&headerFlag.V1, "v1", false, "The schedule slot uses the legacy schedule type")
	headerCmd.Flags().BoolVar(&headerFlag.Dump, "dump", false, "Dump the decoded value")
}

func decodeHeader(_ *cobra.Command, args []string) {
	data, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
	checkf(err, "decode hex")

	switch {
	case headerFlag.V1 && headerFlag.Signed:
		fatalf("signed headers always carry the current schedule type")
	case headerFlag.V1:
		decodeV1Header(data)
	case headerFlag.Signed:
		decodeSignedHeader(data)
	default:
		decodeCurrentHeader(data)
	}
}

func decodeCurrentHeader(data []byte) {
	r := encoding.NewReader(data)
	h := new(protocol.BlockHeader)
	checkf(h.UnmarshalBinaryFrom(r), "decode header")
	checkTrailing(r)

	digest, err := h.Digest()
	check(err)
	id, err := h.ID()
	check(err)

	wr := tabwriter.NewWriter(os.Stdout, 3, 4, 2, ' ', 0)
	printHeaderRows(wr, h.BlockNum(), id, digest, h.Timestamp, h.Producer, h.Confirmed, h.Previous, h.TransactionMroot, h.ActionMroot, h.ScheduleVersion)
	if h.NewProducers != nil {
		printSchedule(wr, h.NewProducers.Version, h.NewProducers.Producers)
	}
	printExtensions(wr, h.HeaderExtensions)
	check(wr.Flush())

	if headerFlag.Dump {
		spew.Dump(h)
	}
}

func decodeV1Header(data []byte) {
	r := encoding.NewReader(data)
	h := new(protocol.BlockHeaderV1)
	checkf(h.UnmarshalBinaryFrom(r), "decode header")
	checkTrailing(r)

	digest, err := h.Digest()
	check(err)
	id, err := h.ID()
	check(err)

	wr := tabwriter.NewWriter(os.Stdout, 3, 4, 2, ' ', 0)
	printHeaderRows(wr, h.BlockNum(), id, digest, h.Timestamp, h.Producer, h.Confirmed, h.Previous, h.TransactionMroot, h.ActionMroot, h.ScheduleVersion)
	if h.NewProducers != nil {
		printSchedule(wr, h.NewProducers.Version, h.NewProducers.Producers)
	}
	printExtensions(wr, h.HeaderExtensions)
	check(wr.Flush())

	if headerFlag.Dump {
		spew.Dump(h)
	}
}

func decodeSignedHeader(data []byte) {
	r := encoding.NewReader(data)
	h := new(protocol.SignedBlockHeader)
	checkf(h.UnmarshalBinaryFrom(r), "decode signed header")
	checkTrailing(r)

	digest, err := h.Digest()
	check(err)
	id, err := h.ID()
	check(err)

	wr := tabwriter.NewWriter(os.Stdout, 3, 4, 2, ' ', 0)
	printHeaderRows(wr, h.BlockNum(), id, digest, h.Timestamp, h.Producer, h.Confirmed, h.Previous, h.TransactionMroot, h.ActionMroot, h.ScheduleVersion)
	if h.NewProducers != nil {
		printSchedule(wr, h.NewProducers.Version, h.NewProducers.Producers)
	}
	printExtensions(wr, h.HeaderExtensions)
	fmt.Fprintf(wr, "Signature\t%v\n", h.ProducerSignature)
	check(wr.Flush())

	if headerFlag.Dump {
		spew.Dump(h)
	}
}

func printHeaderRows(wr io.Writer, num uint32, id, digest protocol.Checksum256, ts protocol.BlockTimestamp, producer protocol.AccountName, confirmed uint16, previous, txMroot, actMroot protocol.Checksum256, version uint32) {
	fmt.Fprintf(wr, "Block\t%d\n", num)
	fmt.Fprintf(wr, "ID\t%v\n", id)
	fmt.Fprintf(wr, "Digest\t%v\n", digest)
	fmt.Fprintf(wr, "Timestamp\t%v\n", ts)
	fmt.Fprintf(wr, "Producer\t%v\n", producer)
	fmt.Fprintf(wr, "Confirmed\t%d\n", confirmed)
	fmt.Fprintf(wr, "Previous\t%v\n", previous)
	fmt.Fprintf(wr, "Transaction mroot\t%v\n", txMroot)
	fmt.Fprintf(wr, "Action mroot\t%v\n", actMroot)
	fmt.Fprintf(wr, "Schedule version\t%d\n", version)
}

func printSchedule(wr io.Writer, version uint32, producers []protocol.ProducerKey) {
	fmt.Fprintf(wr, "New producers\tversion %d\n", version)
	for _, p := range producers {
		fmt.Fprintf(wr, "\t%v %s\n", p.ProducerName, p.BlockSigningKey.Text())
	}
}

func printExtensions(wr io.Writer, exts []protocol.Extension) {
	for _, e := range exts {
		fmt.Fprintf(wr, "Extension %d\t%x\n", e.Type, e.Data)
	}
}

func checkTrailing(r *encoding.Reader) {
	if r.Remaining() > 0 {
		fatalf("%d trailing bytes after offset %d", r.Remaining(), r.Pos())
	}
}
